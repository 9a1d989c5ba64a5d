package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"finwatch/internal/repositories"
	"finwatch/internal/services/generator"
	"finwatch/internal/utils/response"
)

const (
	defaultBatchCount       = 20
	maxBatchCount           = 500 // per-request cap; the generator itself is uncapped
	defaultHighRiskFraction = 0.3
)

type TransactionHandler struct {
	generator generator.Service
	store     repositories.Store
}

func NewTransactionHandler(gen generator.Service, store repositories.Store) *TransactionHandler {
	return &TransactionHandler{generator: gen, store: store}
}

// GenerateBatch creates a batch of synthetic transactions, stores them and
// returns them newest first. Query params: count, highRisk.
func (h *TransactionHandler) GenerateBatch(c *fiber.Ctx) error {
	count, err := strconv.Atoi(c.Query("count", strconv.Itoa(defaultBatchCount)))
	if err != nil {
		return response.BadRequest(c, "count must be an integer")
	}
	if count > maxBatchCount {
		return response.BadRequest(c, "count exceeds the maximum of 500")
	}

	fraction, err := strconv.ParseFloat(c.Query("highRisk", strconv.FormatFloat(defaultHighRiskFraction, 'f', -1, 64)), 64)
	if err != nil {
		return response.BadRequest(c, "highRisk must be a number")
	}

	txs, err := h.generator.GenerateBatch(count, fraction)
	if err != nil {
		return respondDomainError(c, err)
	}

	for _, tx := range txs {
		h.store.SaveTransaction(tx)
	}

	log.WithFields(log.Fields{"count": len(txs), "highRisk": fraction}).
		Info("generated transaction batch")

	return c.JSON(fiber.Map{
		"transactions": txs,
		"count":        len(txs),
	})
}

// Generate creates a single transaction. The optional JSON body may pin
// country, riskLevel and transactionType.
func (h *TransactionHandler) Generate(c *fiber.Ctx) error {
	var input struct {
		Country         string `json:"country"`
		RiskLevel       string `json:"riskLevel"`
		TransactionType string `json:"transactionType"`
	}

	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}

	tx, err := h.generator.Generate(generator.Options{
		Country:         input.Country,
		RiskLevel:       input.RiskLevel,
		TransactionType: input.TransactionType,
	})
	if err != nil {
		return respondDomainError(c, err)
	}

	h.store.SaveTransaction(tx)

	return c.Status(fiber.StatusCreated).JSON(tx)
}

// Get looks a stored transaction up by id.
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	tx, ok := h.store.Transaction(c.Params("id"))
	if !ok {
		return response.NotFound(c, "transaction not found")
	}
	return c.JSON(tx)
}

// Clear resets the store and reports the counts that were dropped.
func (h *TransactionHandler) Clear(c *fiber.Ctx) error {
	txCount, anCount := h.store.Clear()

	log.WithFields(log.Fields{"transactions": txCount, "analyses": anCount}).
		Info("store cleared")

	return c.JSON(fiber.Map{
		"cleared": fiber.Map{
			"transactions": txCount,
			"analyses":     anCount,
		},
	})
}
