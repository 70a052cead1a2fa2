package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// TagHandler maneja la taxonomía de etiquetas (protegido, administración).
type TagHandler struct {
	tags ports.TagService
}

// NewTagHandler construye el handler.
func NewTagHandler(tags ports.TagService) *TagHandler {
	return &TagHandler{tags: tags}
}

// List devuelve todas las etiquetas.
func (h *TagHandler) List(c *fiber.Ctx) error {
	tags, err := h.tags.List(c.UserContext())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(tags)
}

// GetByID devuelve una etiqueta o 404.
func (h *TagHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	t, err := h.tags.GetByID(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	if t == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "etiqueta no encontrada"})
	}
	return c.JSON(t)
}

// Create da de alta una etiqueta.
func (h *TagHandler) Create(c *fiber.Ctx) error {
	var in entity.Tag
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.tags.Create(c.UserContext(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Patch aplica una actualización parcial.
func (h *TagHandler) Patch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.PatchTagRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.tags.Update(c.UserContext(), id, in.Aplicar)
	if err != nil {
		return respuestaError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "etiqueta no encontrada"})
	}
	return c.JSON(out)
}

// Delete elimina una etiqueta.
func (h *TagHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	borrado, err := h.tags.Delete(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	if !borrado {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "etiqueta no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
