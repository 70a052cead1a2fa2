package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// UsuarioHandler maneja las peticiones HTTP para Usuario (protegido).
type UsuarioHandler struct {
	usuarios ports.UsuarioService
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(usuarios ports.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarios: usuarios}
}

// List godoc
// @Summary      Listar usuarios, con búsqueda opcional
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "nombre, apellido, dni o alias"
// @Success      200  {array}  entity.Usuario
// @Router       /api/usuarios [get]
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	termino := c.Query("search")
	var (
		usuarios []entity.Usuario
		err      error
	)
	if termino != "" {
		usuarios, err = h.usuarios.Search(c.UserContext(), termino)
	} else {
		usuarios, err = h.usuarios.List(c.UserContext())
	}
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(usuarios)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  entity.Usuario
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [get]
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	u, err := h.usuarios.GetByID(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	if u == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(u)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Usuario  true  "Datos del usuario"
// @Success      201   {object}  entity.Usuario
// @Router       /api/usuarios [post]
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in entity.Usuario
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre es requerido"})
	}
	out, err := h.usuarios.Create(c.UserContext(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Patch godoc
// @Summary      Actualización parcial de un usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.PatchUsuarioRequest  true  "Campos a actualizar"
// @Success      200   {object}  entity.Usuario
// @Failure      409   {object}  dto.ErrorResponse  "intento de cambiar el rol"
// @Router       /api/usuarios/{id} [patch]
func (h *UsuarioHandler) Patch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in dto.PatchUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.usuarios.Patch(c.UserContext(), id, in.Aplicar)
	if err != nil {
		return respuestaError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         usuarios
// @Security     Bearer
// @Param        id  path  int  true  "ID del usuario"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [delete]
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	borrado, err := h.usuarios.Delete(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	if !borrado {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Pendientes godoc
// @Summary      Usuarios pendientes de aprobación
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Usuario
// @Router       /api/usuarios/pendientes [get]
func (h *UsuarioHandler) Pendientes(c *fiber.Ctx) error {
	usuarios, err := h.usuarios.GetUsersPendingApproval(c.UserContext())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(usuarios)
}

// Aprobar godoc
// @Summary      Aprobar un usuario pendiente
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del usuario"
// @Success      200  {object}  entity.Usuario
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/verificado [post]
func (h *UsuarioHandler) Aprobar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	out, err := h.usuarios.PostVerified(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// UsmyasDisponibles lista los usmyas aprobados aún no vinculados al
// referente o efector de la sesión. El rol de la sesión decide qué
// relación se consulta.
func (h *UsuarioHandler) UsmyasDisponibles(c *fiber.Ctx) error {
	termino := c.Query("search")
	var (
		usuarios []entity.Usuario
		err      error
	)
	switch GetRol(c) {
	case entity.RolReferente:
		usuarios, err = h.usuarios.SearchAvailableUsmya(c.UserContext(), termino, GetUserID(c))
	case entity.RolEfector:
		usuarios, err = h.usuarios.SearchAvailableUsmyaForEfector(c.UserContext(), termino, GetUserID(c))
	default:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo referentes y efectores consultan usmyas disponibles"})
	}
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(usuarios)
}
