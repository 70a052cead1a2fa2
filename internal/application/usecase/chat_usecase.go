package usecase

import (
	"context"
	"errors"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// ChatUseCase orquesta la apertura de conversaciones y el envío de
// mensajes sobre los puertos de chat y mensajes.
type ChatUseCase struct {
	chats    ports.ChatService
	mensajes ports.MensajeService
}

// NewChatUseCase construye el caso de uso.
func NewChatUseCase(chats ports.ChatService, mensajes ports.MensajeService) *ChatUseCase {
	return &ChatUseCase{chats: chats, mensajes: mensajes}
}

// AbrirChat devuelve el chat del par (usmya, tipo), creándolo si no
// existe, y garantiza que el solicitante sea integrante. La membresía se
// verifica antes de crearla; un duplicado concurrente no es error.
func (uc *ChatUseCase) AbrirChat(ctx context.Context, idUsmya int, tipo string, idSolicitante int) (*entity.Chat, error) {
	chat, err := uc.chats.GetByUsmyaYTipo(ctx, idUsmya, tipo)
	if err != nil {
		return nil, err
	}
	if chat == nil {
		chat, err = uc.chats.Create(ctx, idUsmya, tipo)
		if err != nil {
			return nil, err
		}
	}

	esIntegrante, err := uc.chats.EsIntegrante(ctx, chat.ID, idSolicitante)
	if err != nil {
		return nil, err
	}
	if !esIntegrante {
		if _, err := uc.chats.CreateIntegrante(ctx, chat.ID, idSolicitante); err != nil &&
			!errors.Is(err, domain.ErrMiembroDuplicado) {
			return nil, err
		}
	}
	return chat, nil
}

// EnviarMensaje agrega un mensaje al chat. El emisor debe ser integrante.
func (uc *ChatUseCase) EnviarMensaje(ctx context.Context, m entity.Mensaje) (*entity.Mensaje, error) {
	esIntegrante, err := uc.chats.EsIntegrante(ctx, m.IDChat, m.IDEmisor)
	if err != nil {
		return nil, err
	}
	if !esIntegrante {
		return nil, domain.ErrNoIntegrante
	}
	return uc.mensajes.Create(ctx, m)
}

// Conversacion devuelve los mensajes del chat en orden cronológico.
func (uc *ChatUseCase) Conversacion(ctx context.Context, idChat int) ([]entity.Mensaje, error) {
	return uc.mensajes.GetMensajesByChatIDOrdered(ctx, idChat)
}

// ChatsDeUsuario lista los chats del usuario con su último mensaje para la
// bandeja de conversaciones.
func (uc *ChatUseCase) ChatsDeUsuario(ctx context.Context, idUser int) ([]ResumenChat, error) {
	chats, err := uc.chats.ListByUsuario(ctx, idUser)
	if err != nil {
		return nil, err
	}
	resumen := make([]ResumenChat, 0, len(chats))
	for _, ch := range chats {
		ultimo, err := uc.mensajes.GetUltimoMensaje(ctx, ch.ID)
		if err != nil {
			return nil, err
		}
		resumen = append(resumen, ResumenChat{Chat: ch, UltimoMensaje: ultimo})
	}
	return resumen, nil
}

// ResumenChat es una fila de la bandeja: el chat y su mensaje más reciente
// (nil si aún no hay mensajes).
type ResumenChat struct {
	Chat          entity.Chat     `json:"chat"`
	UltimoMensaje *entity.Mensaje `json:"ultimoMensaje,omitempty"`
}
