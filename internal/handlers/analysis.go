package handlers

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"finwatch/internal/models"
	"finwatch/internal/repositories"
	"finwatch/internal/services/analyzer"
	"finwatch/internal/utils/response"
)

type AnalysisHandler struct {
	analyzer analyzer.Service
	store    repositories.Store
}

func NewAnalysisHandler(an analyzer.Service, store repositories.Store) *AnalysisHandler {
	return &AnalysisHandler{analyzer: an, store: store}
}

// Analyze scores a transaction. The body carries either a full transaction
// or the id of a stored one.
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	var input struct {
		TransactionID string              `json:"transactionId"`
		Transaction   *models.Transaction `json:"transaction"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	tx := input.Transaction
	if tx == nil {
		if input.TransactionID == "" {
			return response.BadRequest(c, "transaction or transactionId is required")
		}
		stored, ok := h.store.Transaction(input.TransactionID)
		if !ok {
			return response.NotFound(c, "transaction not found")
		}
		tx = stored
	}

	res, err := h.analyzer.Analyze(tx)
	if err != nil {
		log.WithError(err).WithField("transactionId", tx.ID).Error("analysis failed")
		return respondDomainError(c, err)
	}

	h.store.SaveAnalysis(res)

	return c.JSON(res)
}

// AnalyzeBatch maps Analyze over a list of transactions.
func (h *AnalysisHandler) AnalyzeBatch(c *fiber.Ctx) error {
	var input struct {
		Transactions []*models.Transaction `json:"transactions"`
	}

	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(input.Transactions) == 0 {
		return response.BadRequest(c, "transactions list is empty")
	}

	results, err := h.analyzer.AnalyzeBatch(input.Transactions)
	if err != nil {
		log.WithError(err).Error("batch analysis failed")
		return respondDomainError(c, err)
	}

	for _, res := range results {
		h.store.SaveAnalysis(res)
	}

	return c.JSON(fiber.Map{
		"analyses": results,
		"count":    len(results),
	})
}

// Get returns the stored analysis for a transaction id.
func (h *AnalysisHandler) Get(c *fiber.Ctx) error {
	res, ok := h.store.Analysis(c.Params("id"))
	if !ok {
		return response.NotFound(c, "analysis not found")
	}
	return c.JSON(res)
}
