package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Usuarios-api/internal/application/dto"
	"github.com/jhoicas/Usuarios-api/internal/domain"
)

// respondError traduce errores del caso de uso a HTTP.
// AlertError -> 400 con headers de fallo (incluye idnotfound en PUT/PATCH);
// ErrNotFound sin alerta -> 404; ErrInvalidArgument -> 400; el resto -> 500 sin detalles.
func (h *UsuariosHandler) respondError(c *fiber.Ctx, err error) error {
	var alert *domain.AlertError
	switch {
	case errors.As(err, &alert):
		setFailureAlert(c, h.appName, alert.EntityName, alert.ErrorKey)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:       "BAD_REQUEST",
			Message:    alert.Message,
			EntityName: alert.EntityName,
			ErrorKey:   alert.ErrorKey,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	case errors.Is(err, domain.ErrInvalidArgument):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
	default:
		h.requestLog(c).Error().Err(err).Msg("error no controlado en usuarios")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
