package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
)

// RegistroHandler maneja las altas con flujo de aprobación (protegido).
// Quien da el alta queda registrado como creador.
type RegistroHandler struct {
	registro ports.RegistroService
}

// NewRegistroHandler construye el handler.
func NewRegistroHandler(registro ports.RegistroService) *RegistroHandler {
	return &RegistroHandler{registro: registro}
}

// Usmya godoc
// @Summary      Alta de usmya (queda pendiente de aprobación)
// @Tags         registro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroUsmyaRequest  true  "Datos del usmya"
// @Success      201   {object}  entity.Usuario
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/registro/usmya [post]
func (h *RegistroHandler) Usmya(c *fiber.Ctx) error {
	var in dto.RegistroUsmyaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.CreadoPor = GetUserID(c)
	out, err := h.registro.PostUsmya(c.UserContext(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Referente godoc
// @Summary      Alta de referente afectivo (queda pendiente de aprobación)
// @Tags         registro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroReferenteRequest  true  "Datos del referente"
// @Success      201   {object}  entity.Usuario
// @Router       /api/registro/referente [post]
func (h *RegistroHandler) Referente(c *fiber.Ctx) error {
	var in dto.RegistroReferenteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.CreadoPor = GetUserID(c)
	out, err := h.registro.PostReferente(c.UserContext(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Efector godoc
// @Summary      Alta de efector de salud (queda pendiente de aprobación)
// @Tags         registro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroEfectorRequest  true  "Datos del efector"
// @Success      201   {object}  entity.Usuario
// @Router       /api/registro/efector [post]
func (h *RegistroHandler) Efector(c *fiber.Ctx) error {
	var in dto.RegistroEfectorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.CreadoPor = GetUserID(c)
	out, err := h.registro.PostEfector(c.UserContext(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
