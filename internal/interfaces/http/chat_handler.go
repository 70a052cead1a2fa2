package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/application/usecase"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// ChatHandler maneja conversaciones y mensajes (protegido).
type ChatHandler struct {
	chats   *usecase.ChatUseCase
	miembro ports.ChatService
}

// NewChatHandler construye el handler.
func NewChatHandler(chats *usecase.ChatUseCase, miembro ports.ChatService) *ChatHandler {
	return &ChatHandler{chats: chats, miembro: miembro}
}

// abrirChatRequest cuerpo para abrir o recuperar una conversación.
type abrirChatRequest struct {
	IDUsmya int    `json:"idUsmya"`
	Tipo    string `json:"tipo"` // general | tratante
}

// Abrir godoc
// @Summary      Abrir (o recuperar) el chat de un usmya
// @Description  Crea el chat del par (usmya, tipo) si no existe y suma al
// @Description  solicitante como integrante.
// @Tags         chats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  abrirChatRequest  true  "usmya y tipo de chat"
// @Success      200   {object}  entity.Chat
// @Router       /api/chats/abrir [post]
func (h *ChatHandler) Abrir(c *fiber.Ctx) error {
	var in abrirChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.IDUsmya == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "idUsmya es requerido"})
	}
	if in.Tipo != entity.ChatGeneral && in.Tipo != entity.ChatTratante {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser general o tratante"})
	}
	chat, err := h.chats.AbrirChat(c.UserContext(), in.IDUsmya, in.Tipo, GetUserID(c))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(chat)
}

// ListByUsuario godoc
// @Summary      Bandeja de chats de la sesión
// @Tags         chats
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  usecase.ResumenChat
// @Router       /api/chats [get]
func (h *ChatHandler) ListByUsuario(c *fiber.Ctx) error {
	resumen, err := h.chats.ChatsDeUsuario(c.UserContext(), GetUserID(c))
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(resumen)
}

// Conversacion godoc
// @Summary      Mensajes de un chat en orden cronológico
// @Tags         chats
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del chat"
// @Success      200  {array}  entity.Mensaje
// @Router       /api/chats/{id}/mensajes [get]
func (h *ChatHandler) Conversacion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	mensajes, err := h.chats.Conversacion(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(mensajes)
}

// EnviarMensaje godoc
// @Summary      Enviar un mensaje al chat
// @Tags         chats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del chat"
// @Param        body  body  entity.Mensaje  true  "texto, fecha y hora"
// @Success      201   {object}  entity.Mensaje
// @Failure      403   {object}  dto.ErrorResponse  "el emisor no integra el chat"
// @Router       /api/chats/{id}/mensajes [post]
func (h *ChatHandler) EnviarMensaje(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in entity.Mensaje
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.IDChat = id
	in.IDEmisor = GetUserID(c)
	if in.Texto == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "texto es requerido"})
	}
	out, err := h.chats.EnviarMensaje(c.UserContext(), in)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Integrantes godoc
// @Summary      Integrantes de un chat
// @Tags         chats
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del chat"
// @Success      200  {array}  entity.IntegranteChat
// @Router       /api/chats/{id}/integrantes [get]
func (h *ChatHandler) Integrantes(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	integrantes, err := h.miembro.ListIntegrantes(c.UserContext(), id)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.JSON(integrantes)
}

// AgregarIntegrante godoc
// @Summary      Sumar un integrante al chat
// @Tags         chats
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del chat"
// @Param        body  body  entity.IntegranteChat  true  "idUser"
// @Success      201   {object}  entity.IntegranteChat
// @Failure      409   {object}  dto.ErrorResponse  "ya es integrante"
// @Router       /api/chats/{id}/integrantes [post]
func (h *ChatHandler) AgregarIntegrante(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id numérico requerido"})
	}
	var in entity.IntegranteChat
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.IDUser == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "idUser es requerido"})
	}
	out, err := h.miembro.CreateIntegrante(c.UserContext(), id, in.IDUser)
	if err != nil {
		return respuestaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
