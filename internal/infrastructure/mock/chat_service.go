package mock

import (
	"context"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.ChatService = (*ChatService)(nil)

// ChatService implementación mock del puerto de chats y membresias.
type ChatService struct {
	store *Store
}

// NewChatService construye el servicio.
func NewChatService(store *Store) *ChatService {
	return &ChatService{store: store}
}

// GetByUsmyaYTipo devuelve el chat del par (usmya, tipo), o nil.
func (s *ChatService) GetByUsmyaYTipo(ctx context.Context, idUsmya int, tipo string) (*entity.Chat, error) {
	s.store.simularLatencia()
	return s.store.Chats.First(func(c entity.Chat) bool {
		return c.IDUsmya == idUsmya && c.Tipo == tipo
	}), nil
}

// Create da de alta un chat. La unicidad del par (usmya, tipo) se controla
// acá, al crear; no es una restricción dura del store.
func (s *ChatService) Create(ctx context.Context, idUsmya int, tipo string) (*entity.Chat, error) {
	s.store.simularLatencia()
	if existente := s.store.Chats.First(func(c entity.Chat) bool {
		return c.IDUsmya == idUsmya && c.Tipo == tipo
	}); existente != nil {
		return existente, nil
	}
	creado := s.store.Chats.Insert(entity.Chat{IDUsmya: idUsmya, Tipo: tipo})
	return &creado, nil
}

// ListByUsuario devuelve los chats en los que el usuario es integrante.
func (s *ChatService) ListByUsuario(ctx context.Context, idUser int) ([]entity.Chat, error) {
	s.store.simularLatencia()
	membresias := s.store.IntegrantesChat.Find(func(i entity.IntegranteChat) bool {
		return i.IDUser == idUser
	})
	ids := map[int]bool{}
	for _, m := range membresias {
		ids[m.IDChat] = true
	}
	return s.store.Chats.Find(func(c entity.Chat) bool { return ids[c.ID] }), nil
}

// CreateIntegrante agrega al usuario al chat. A lo sumo una membresía por
// par (chat, usuario): el duplicado devuelve ErrMiembroDuplicado.
func (s *ChatService) CreateIntegrante(ctx context.Context, idChat, idUser int) (*entity.IntegranteChat, error) {
	s.store.simularLatencia()
	if existente := s.store.IntegrantesChat.First(func(i entity.IntegranteChat) bool {
		return i.IDChat == idChat && i.IDUser == idUser
	}); existente != nil {
		return nil, domain.ErrMiembroDuplicado
	}
	creado := s.store.IntegrantesChat.Insert(entity.IntegranteChat{IDChat: idChat, IDUser: idUser})
	return &creado, nil
}

// EsIntegrante informa si el usuario ya pertenece al chat.
func (s *ChatService) EsIntegrante(ctx context.Context, idChat, idUser int) (bool, error) {
	s.store.simularLatencia()
	return s.store.IntegrantesChat.First(func(i entity.IntegranteChat) bool {
		return i.IDChat == idChat && i.IDUser == idUser
	}) != nil, nil
}

// ListIntegrantes devuelve las membresias del chat.
func (s *ChatService) ListIntegrantes(ctx context.Context, idChat int) ([]entity.IntegranteChat, error) {
	s.store.simularLatencia()
	return s.store.IntegrantesChat.Find(func(i entity.IntegranteChat) bool {
		return i.IDChat == idChat
	}), nil
}
