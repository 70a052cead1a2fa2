package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// ActividadHandler maneja las peticiones HTTP para Actividad (protegido).
type ActividadHandler struct {
	actividades ports.ActividadService
}

// NewActividadHandler construye el handler.
func NewActividadHandler(actividades ports.ActividadService) *ActividadHandler {
	return &ActividadHandler{actividades: actividades}
}

// ListByEspacio godoc
// @Summary      Actividades de un espacio
// @Tags         actividades
// @Security     Bearer
// @Produce      json
// @Param        idEspacio  query  int  true  "ID del espacio"
// @Success      200  {array}  entity.Actividad
// @Router       /api/actividades [get]
func (h *ActividadHandler) ListByEspacio(c *fiber.Ctx) error {
	idEspacio := c.QueryInt("idEspacio")
	if idEspacio == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "idEspacio es requerido"})
	}
	actividades, err := h.actividades.ListByEspacio(c.UserContext(), idEspacio)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(actividades)
}

// Pendientes godoc
// @Summary      Actividades pendientes de aprobación
// @Tags         actividades
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Actividad
// @Router       /api/actividades/pendientes [get]
func (h *ActividadHandler) Pendientes(c *fiber.Ctx) error {
	actividades, err := h.actividades.ListPendientes(c.UserContext())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(actividades)
}

// GetByID godoc
// @Summary      Obtener actividad por ID
// @Tags         actividades
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la actividad"
// @Success      200  {object}  entity.Actividad
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/actividades/{id} [get]
func (h *ActividadHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	a, err := h.actividades.GetByID(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	if a == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actividad no encontrada"})
	}
	return c.JSON(a)
}

// Create godoc
// @Summary      Crear actividad
// @Description  Nace pendiente salvo que la cree el agente del propio espacio.
// @Tags         actividades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Actividad  true  "Datos de la actividad"
// @Success      201   {object}  entity.Actividad
// @Router       /api/actividades [post]
func (h *ActividadHandler) Create(c *fiber.Ctx) error {
	var in entity.Actividad
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" || in.IDEspacio == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre e idEspacio son requeridos"})
	}
	out, err := h.actividades.Create(c.UserContext(), in, GetUserID(c))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Patch godoc
// @Summary      Actualización parcial de una actividad
// @Tags         actividades
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la actividad"
// @Param        body  body  dto.PatchActividadRequest  true  "Campos a actualizar"
// @Success      200   {object}  entity.Actividad
// @Router       /api/actividades/{id} [patch]
func (h *ActividadHandler) Patch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.PatchActividadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.actividades.Update(c.UserContext(), id, in.Aplicar)
	if err != nil {
		return respuestaError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actividad no encontrada"})
	}
	return c.JSON(out)
}

// Aprobar godoc
// @Summary      Aprobar actividad pendiente
// @Tags         actividades
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la actividad"
// @Success      200  {object}  entity.Actividad
// @Router       /api/actividades/{id}/aprobar [post]
func (h *ActividadHandler) Aprobar(c *fiber.Ctx) error {
	return h.transicion(c, h.actividades.Aprobar)
}

// Rechazar godoc
// @Summary      Rechazar actividad pendiente
// @Tags         actividades
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la actividad"
// @Success      200  {object}  entity.Actividad
// @Router       /api/actividades/{id}/rechazar [post]
func (h *ActividadHandler) Rechazar(c *fiber.Ctx) error {
	return h.transicion(c, h.actividades.Rechazar)
}

// Delete godoc
// @Summary      Eliminar actividad
// @Tags         actividades
// @Security     Bearer
// @Param        id  path  int  true  "ID de la actividad"
// @Success      204
// @Router       /api/actividades/{id} [delete]
func (h *ActividadHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	borrado, err := h.actividades.Delete(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	if !borrado {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actividad no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ActividadHandler) transicion(c *fiber.Ctx, fn func(ctx context.Context, id int) (*entity.Actividad, error)) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := fn(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actividad no encontrada"})
	}
	return c.JSON(out)
}
