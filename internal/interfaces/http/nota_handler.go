package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// NotaHandler maneja las notas de trayectoria (protegido).
type NotaHandler struct {
	notas ports.NotaTrayectoriaService
}

// NewNotaHandler construye el handler.
func NewNotaHandler(notas ports.NotaTrayectoriaService) *NotaHandler {
	return &NotaHandler{notas: notas}
}

// ListByUsmya godoc
// @Summary      Notas de trayectoria de un usmya
// @Tags         trayectoria
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del usmya"
// @Success      200  {array}  entity.NotaTrayectoria
// @Router       /api/usmyas/{id}/notas [get]
func (h *NotaHandler) ListByUsmya(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	notas, err := h.notas.ListByUsmya(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(notas)
}

// Create godoc
// @Summary      Crear nota de trayectoria
// @Tags         trayectoria
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usmya"
// @Param        body  body  entity.NotaTrayectoria  true  "titulo, observacion, fecha, hora"
// @Success      201   {object}  entity.NotaTrayectoria
// @Router       /api/usmyas/{id}/notas [post]
func (h *NotaHandler) Create(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in entity.NotaTrayectoria
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.IDUsmya = id
	in.IDAutor = GetUserID(c)
	if in.Titulo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "titulo es requerido"})
	}
	out, err := h.notas.Create(c.UserContext(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar nota de trayectoria
// @Tags         trayectoria
// @Security     Bearer
// @Param        id  path  int  true  "ID de la nota"
// @Success      204
// @Router       /api/notas/{id} [delete]
func (h *NotaHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	borrado, err := h.notas.Delete(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	if !borrado {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
