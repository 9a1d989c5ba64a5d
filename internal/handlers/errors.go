package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	apperrors "finwatch/internal/errors"
	"finwatch/internal/utils/response"
)

// respondDomainError maps a DomainError code onto an HTTP status. Unknown
// errors become a 500 without leaking internals.
func respondDomainError(c *fiber.Ctx, err error) error {
	var derr *apperrors.DomainError
	if !errors.As(err, &derr) {
		return response.ServerError(c, "unexpected error")
	}

	status := fiber.StatusBadRequest
	switch derr.Code {
	case apperrors.CodeTransactionNotFound, apperrors.CodeAnalysisNotFound:
		status = fiber.StatusNotFound
	case apperrors.CodeUnknownTransactionType:
		status = fiber.StatusInternalServerError
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
		"code":  derr.Code,
	})
}
