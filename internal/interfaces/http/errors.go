package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restocker-api/internal/application/dto"
	"github.com/jhoicas/restocker-api/internal/application/report"
	"github.com/jhoicas/restocker-api/internal/domain"
)

// writeError traduce errores de dominio a status HTTP + dto.ErrorResponse.
// El orden importa: un error de IA por timeout es TIMEOUT, no AI_ERROR.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		status, code = fiber.StatusUnsupportedMediaType, "UNSUPPORTED_FORMAT"
	case errors.Is(err, domain.ErrMissingColumns):
		status, code = fiber.StatusUnprocessableEntity, "MISSING_COLUMNS"
	case errors.Is(err, domain.ErrInvalidNumber):
		status, code = fiber.StatusUnprocessableEntity, "INVALID_NUMBER"
	case errors.Is(err, domain.ErrNotCompareMode):
		status, code = fiber.StatusBadRequest, "NOT_COMPARE_MODE"
	case errors.Is(err, domain.ErrUnknownCompany):
		status, code = fiber.StatusBadRequest, "UNKNOWN_COMPANY"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{
			Code: "TIMEOUT", Message: "el servicio de IA tardó demasiado; intenta de nuevo",
		})
	case errors.Is(err, report.ErrAI):
		status, code = fiber.StatusBadGateway, "AI_ERROR"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
