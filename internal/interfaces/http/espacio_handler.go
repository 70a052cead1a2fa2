package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// EspacioHandler maneja las peticiones HTTP para Espacio (protegido).
type EspacioHandler struct {
	espacios ports.EspacioService
}

// NewEspacioHandler construye el handler.
func NewEspacioHandler(espacios ports.EspacioService) *EspacioHandler {
	return &EspacioHandler{espacios: espacios}
}

// List godoc
// @Summary      Listar espacios, con búsqueda opcional
// @Tags         espacios
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "nombre, barrio o tipo"
// @Success      200  {array}  entity.Espacio
// @Router       /api/espacios [get]
func (h *EspacioHandler) List(c *fiber.Ctx) error {
	termino := c.Query("search")
	var (
		espacios []entity.Espacio
		err      error
	)
	if termino != "" {
		espacios, err = h.espacios.Search(c.UserContext(), termino)
	} else {
		espacios, err = h.espacios.List(c.UserContext())
	}
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(espacios)
}

// GetByID godoc
// @Summary      Obtener espacio por ID
// @Tags         espacios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del espacio"
// @Success      200  {object}  entity.Espacio
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/espacios/{id} [get]
func (h *EspacioHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	e, err := h.espacios.GetByID(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	if e == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "espacio no encontrado"})
	}
	return c.JSON(e)
}

// Create godoc
// @Summary      Crear espacio
// @Tags         espacios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Espacio  true  "Datos del espacio"
// @Success      201   {object}  entity.Espacio
// @Router       /api/espacios [post]
func (h *EspacioHandler) Create(c *fiber.Ctx) error {
	var in entity.Espacio
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.espacios.Create(c.UserContext(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Patch godoc
// @Summary      Actualización parcial de un espacio
// @Tags         espacios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del espacio"
// @Param        body  body  dto.PatchEspacioRequest  true  "Campos a actualizar"
// @Success      200   {object}  entity.Espacio
// @Router       /api/espacios/{id} [patch]
func (h *EspacioHandler) Patch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.PatchEspacioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.espacios.Update(c.UserContext(), id, in.Aplicar)
	if err != nil {
		return respuestaError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "espacio no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar espacio
// @Tags         espacios
// @Security     Bearer
// @Param        id  path  int  true  "ID del espacio"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/espacios/{id} [delete]
func (h *EspacioHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	borrado, err := h.espacios.Delete(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	if !borrado {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "espacio no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
