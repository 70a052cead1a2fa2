package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.ChatService = (*ChatService)(nil)

// Formas wire de /chats y /chat-members.
type chatDTO struct {
	ID      int    `json:"id"`
	UsmyaID int    `json:"usmyaId"`
	Type    string `json:"type"`
}

type chatMemberDTO struct {
	ID     int `json:"id"`
	ChatID int `json:"chatId"`
	UserID int `json:"userId"`
}

// ChatService implementación del puerto de chats sobre /chats y
// /chat-members.
type ChatService struct {
	client *Client
}

// NewChatService construye el servicio.
func NewChatService(client *Client) *ChatService {
	return &ChatService{client: client}
}

// GetByUsmyaYTipo consulta /chats?usmyaId=&type=.
func (s *ChatService) GetByUsmyaYTipo(ctx context.Context, idUsmya int, tipo string) (*entity.Chat, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, fmt.Sprintf("/chats?usmyaId=%d&type=%s", idUsmya, tipo), nil)
	if err != nil {
		return nil, err
	}
	chats, err := decodificarLista[chatDTO](datos)
	if err != nil || len(chats) == 0 {
		return nil, err
	}
	c := chatDesde(chats[0])
	return &c, nil
}

// Create publica en /chats.
func (s *ChatService) Create(ctx context.Context, idUsmya int, tipo string) (*entity.Chat, error) {
	datos, err := s.client.Do(ctx, http.MethodPost, "/chats", chatDTO{UsmyaID: idUsmya, Type: tipo})
	if err != nil {
		return nil, err
	}
	if d := decodificarEntidad[chatDTO](datos); d != nil {
		c := chatDesde(*d)
		return &c, nil
	}
	return nil, nil
}

// ListByUsuario consulta /chats?userId=.
func (s *ChatService) ListByUsuario(ctx context.Context, idUser int) ([]entity.Chat, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, fmt.Sprintf("/chats?userId=%d", idUser), nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decodificarLista[chatDTO](datos)
	if err != nil {
		return nil, err
	}
	chats := make([]entity.Chat, 0, len(dtos))
	for _, d := range dtos {
		chats = append(chats, chatDesde(d))
	}
	return chats, nil
}

// CreateIntegrante publica en /chat-members. Un 409 del backend se traduce
// al error de dominio de membresía duplicada.
func (s *ChatService) CreateIntegrante(ctx context.Context, idChat, idUser int) (*entity.IntegranteChat, error) {
	datos, err := s.client.Do(ctx, http.MethodPost, "/chat-members", chatMemberDTO{ChatID: idChat, UserID: idUser})
	if err != nil {
		if errHTTP, ok := err.(*ErrorHTTP); ok && errHTTP.Status == http.StatusConflict {
			return nil, domain.ErrMiembroDuplicado
		}
		return nil, err
	}
	if d := decodificarEntidad[chatMemberDTO](datos); d != nil {
		return &entity.IntegranteChat{ID: d.ID, IDChat: d.ChatID, IDUser: d.UserID}, nil
	}
	return nil, nil
}

// EsIntegrante consulta las membresías del chat y busca al usuario.
func (s *ChatService) EsIntegrante(ctx context.Context, idChat, idUser int) (bool, error) {
	integrantes, err := s.ListIntegrantes(ctx, idChat)
	if err != nil {
		return false, err
	}
	for _, i := range integrantes {
		if i.IDUser == idUser {
			return true, nil
		}
	}
	return false, nil
}

// ListIntegrantes consulta /chat-members?chatId=.
func (s *ChatService) ListIntegrantes(ctx context.Context, idChat int) ([]entity.IntegranteChat, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, fmt.Sprintf("/chat-members?chatId=%d", idChat), nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decodificarLista[chatMemberDTO](datos)
	if err != nil {
		return nil, err
	}
	integrantes := make([]entity.IntegranteChat, 0, len(dtos))
	for _, d := range dtos {
		integrantes = append(integrantes, entity.IntegranteChat{ID: d.ID, IDChat: d.ChatID, IDUser: d.UserID})
	}
	return integrantes, nil
}

func chatDesde(d chatDTO) entity.Chat {
	return entity.Chat{ID: d.ID, IDUsmya: d.UsmyaID, Tipo: d.Type}
}
