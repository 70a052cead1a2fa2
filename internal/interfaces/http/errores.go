package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/infrastructure/api"
)

// respuestaError traduce los errores de dominio a respuestas HTTP. Un
// error del backend real conserva su status original.
func respuestaError(c *fiber.Ctx, err error) error {
	var errHTTP *api.ErrorHTTP
	if errors.As(err, &errHTTP) {
		return c.Status(errHTTP.Status).JSON(dto.ErrorResponse{Code: "BACKEND", Message: errHTTP.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrEntradaInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrCredencialesInvalidas):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrNoIntegrante):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NOT_MEMBER", Message: err.Error()})
	case errors.Is(err, domain.ErrMiembroDuplicado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_MEMBER", Message: err.Error()})
	case errors.Is(err, domain.ErrRolInmutable):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ROLE_IMMUTABLE", Message: err.Error()})
	case errors.Is(err, domain.ErrNoSoportado):
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_SUPPORTED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
