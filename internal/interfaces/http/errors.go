package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tallersoft/stockcaja/internal/application/dto"
	"github.com/tallersoft/stockcaja/internal/domain"
)

// respondError traduce un error de dominio a su respuesta HTTP. Los casos de
// uso envuelven errores con %w, así que el mapeo usa errors.Is/As en vez de
// comparación directa. El orden importa: ErrInsufficientStock es a la vez un
// error de validación y debe conservar su código propio.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return writeError(c, fiber.StatusBadRequest, "INSUFFICIENT_STOCK", err.Error())
	case errors.As(err, &verr):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION", verr.Reason)
	case errors.Is(err, domain.ErrInvalidInput):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return writeError(c, fiber.StatusConflict, "EMAIL_EXISTS", err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return writeError(c, fiber.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, domain.ErrConflict):
		return writeError(c, fiber.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		// No se revela si el email existe: misma respuesta para ambos casos.
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}
