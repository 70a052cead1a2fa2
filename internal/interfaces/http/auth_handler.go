package http

import (
	"errors"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/metrics"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	auth      ports.Autenticador
	collector *metrics.Collector
}

// NewAuthHandler construye el handler de auth. collector puede ser nil.
func NewAuthHandler(auth ports.Autenticador, collector *metrics.Collector) *AuthHandler {
	return &AuthHandler{auth: auth, collector: collector}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.auth.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrCredencialesInvalidas) && h.collector != nil {
			h.collector.RecordLoginFailure()
		}
		return respuestaError(c, err)
	}
	return c.JSON(out)
}
