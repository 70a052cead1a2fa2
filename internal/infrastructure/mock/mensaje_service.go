package mock

import (
	"context"
	"sort"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.MensajeService = (*MensajeService)(nil)

// MensajeService implementación mock del puerto de mensajes.
type MensajeService struct {
	store       *Store
	sanitizador ports.Sanitizador
}

// NewMensajeService construye el servicio. El sanitizador limpia el texto
// libre antes de persistirlo.
func NewMensajeService(store *Store, sanitizador ports.Sanitizador) *MensajeService {
	return &MensajeService{store: store, sanitizador: sanitizador}
}

// GetMensajesByChatIDOrdered devuelve los mensajes del chat en orden
// ascendente por fecha+hora. El sort es estable: los empates conservan el
// orden de inserción.
func (s *MensajeService) GetMensajesByChatIDOrdered(ctx context.Context, idChat int) ([]entity.Mensaje, error) {
	s.store.simularLatencia()
	mensajes := s.store.Mensajes.Find(func(m entity.Mensaje) bool {
		return m.IDChat == idChat
	})
	sort.SliceStable(mensajes, func(i, j int) bool {
		return mensajes[i].Momento().Before(mensajes[j].Momento())
	})
	return mensajes, nil
}

// GetUltimoMensaje devuelve el mensaje cronológicamente último, o nil si
// el chat está vacío.
func (s *MensajeService) GetUltimoMensaje(ctx context.Context, idChat int) (*entity.Mensaje, error) {
	ordenados, err := s.GetMensajesByChatIDOrdered(ctx, idChat)
	if err != nil || len(ordenados) == 0 {
		return nil, err
	}
	ultimo := ordenados[len(ordenados)-1]
	return &ultimo, nil
}

// Create persiste un mensaje con el texto ya sanitizado.
func (s *MensajeService) Create(ctx context.Context, m entity.Mensaje) (*entity.Mensaje, error) {
	s.store.simularLatencia()
	m.Texto = s.sanitizador.Sanitize(m.Texto)
	creado := s.store.Mensajes.Insert(m)
	return &creado, nil
}
