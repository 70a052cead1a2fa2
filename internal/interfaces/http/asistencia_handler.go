package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/application/usecase"
)

// AsistenciaHandler maneja el registro y la consulta de asistencias, y la
// planilla PDF (protegido).
type AsistenciaHandler struct {
	asistencias ports.AsistenciaService
	reportes    *usecase.ReporteUseCase
}

// NewAsistenciaHandler construye el handler.
func NewAsistenciaHandler(asistencias ports.AsistenciaService, reportes *usecase.ReporteUseCase) *AsistenciaHandler {
	return &AsistenciaHandler{asistencias: asistencias, reportes: reportes}
}

// ListByActividad godoc
// @Summary      Asistencias de una actividad
// @Tags         asistencias
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la actividad"
// @Success      200  {array}  entity.Asistencia
// @Router       /api/actividades/{id}/asistencias [get]
func (h *AsistenciaHandler) ListByActividad(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	asistencias, err := h.asistencias.ListByActividad(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(asistencias)
}

// RegistrarMasivo godoc
// @Summary      Registrar asistencias en lote
// @Description  Upsert por (actividad, usuario) en el orden recibido.
// @Tags         asistencias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la actividad"
// @Param        body  body  []dto.RegistroAsistencia  true  "Filas a registrar"
// @Success      200   {array}  entity.Asistencia
// @Router       /api/actividades/{id}/asistencias [post]
func (h *AsistenciaHandler) RegistrarMasivo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var registros []dto.RegistroAsistencia
	if err := c.BodyParser(&registros); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.asistencias.RegistrarAsistenciasMasivo(c.UserContext(), id, registros)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(out)
}

// Estadisticas godoc
// @Summary      Resumen de asistencia de una actividad
// @Tags         asistencias
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la actividad"
// @Success      200  {object}  dto.EstadisticasAsistencia
// @Router       /api/actividades/{id}/asistencias/estadisticas [get]
func (h *AsistenciaHandler) Estadisticas(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	est, err := h.asistencias.GetEstadisticasByActividad(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(est)
}

// Planilla godoc
// @Summary      Planilla de asistencia en PDF
// @Tags         asistencias
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la actividad"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/actividades/{id}/asistencias/planilla [get]
func (h *AsistenciaHandler) Planilla(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	pdf, err := h.reportes.PDFAsistencias(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="asistencia-actividad-%d.pdf"`, id))
	return c.Send(pdf)
}
