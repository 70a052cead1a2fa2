package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/usecase"
)

// TrayectoriaHandler expone la línea de tiempo de un usmya y los
// contadores de pendientes del panel (protegido).
type TrayectoriaHandler struct {
	trayectoria    *usecase.TrayectoriaUseCase
	notificaciones *usecase.NotificacionUseCase
}

// NewTrayectoriaHandler construye el handler.
func NewTrayectoriaHandler(trayectoria *usecase.TrayectoriaUseCase, notificaciones *usecase.NotificacionUseCase) *TrayectoriaHandler {
	return &TrayectoriaHandler{trayectoria: trayectoria, notificaciones: notificaciones}
}

// Timeline godoc
// @Summary      Línea de tiempo de un usmya
// @Description  Asistencias y notas fusionadas, de la más reciente a la más antigua.
// @Tags         trayectoria
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del usmya"
// @Success      200  {array}  dto.EventoTrayectoria
// @Router       /api/usmyas/{id}/trayectoria [get]
func (h *TrayectoriaHandler) Timeline(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	eventos, err := h.trayectoria.Timeline(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(eventos)
}

// Pendientes godoc
// @Summary      Contadores de usuarios pendientes por rol
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ContadoresPendientes
// @Router       /api/admin/pendientes [get]
func (h *TrayectoriaHandler) Pendientes(c *fiber.Ctx) error {
	contadores, err := h.notificaciones.ContadoresPendientes(c.UserContext())
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(contadores)
}
