package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// RelacionHandler maneja los vínculos referente-usmya y efector-usmya
// (protegido).
type RelacionHandler struct {
	relaciones ports.RelacionService
}

// NewRelacionHandler construye el handler.
func NewRelacionHandler(relaciones ports.RelacionService) *RelacionHandler {
	return &RelacionHandler{relaciones: relaciones}
}

type vinculoRequest struct {
	IDUsmya int `json:"idUsmya"`
}

// CrearReferente vincula al referente de la sesión con un usmya.
func (h *RelacionHandler) CrearReferente(c *fiber.Ctx) error {
	var in vinculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.IDUsmya == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "idUsmya es requerido"})
	}
	out, err := h.relaciones.CreateReferente(c.UserContext(), GetUserID(c), in.IDUsmya)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CrearEfector vincula al efector de la sesión con un usmya.
func (h *RelacionHandler) CrearEfector(c *fiber.Ctx) error {
	var in vinculoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.IDUsmya == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "idUsmya es requerido"})
	}
	out, err := h.relaciones.CreateEfector(c.UserContext(), GetUserID(c), in.IDUsmya)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UsmyasVinculados lista los ids de usmyas vinculados a la sesión. En modo
// vivo responde 501: el contrato actual no expone la consulta.
func (h *RelacionHandler) UsmyasVinculados(c *fiber.Ctx) error {
	var (
		ids []int
		err error
	)
	switch GetRol(c) {
	case entity.RolReferente:
		ids, err = h.relaciones.ListUsmyasByReferente(c.UserContext(), GetUserID(c))
	case entity.RolEfector:
		ids, err = h.relaciones.ListUsmyasByEfector(c.UserContext(), GetUserID(c))
	default:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo referentes y efectores tienen vínculos"})
	}
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(ids)
}
