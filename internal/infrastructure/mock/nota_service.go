package mock

import (
	"context"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.NotaTrayectoriaService = (*NotaTrayectoriaService)(nil)

// NotaTrayectoriaService implementación mock del puerto de notas.
type NotaTrayectoriaService struct {
	store       *Store
	sanitizador ports.Sanitizador
}

// NewNotaTrayectoriaService construye el servicio.
func NewNotaTrayectoriaService(store *Store, sanitizador ports.Sanitizador) *NotaTrayectoriaService {
	return &NotaTrayectoriaService{store: store, sanitizador: sanitizador}
}

// ListByUsmya devuelve las notas del usmya.
func (s *NotaTrayectoriaService) ListByUsmya(ctx context.Context, idUsmya int) ([]entity.NotaTrayectoria, error) {
	s.store.simularLatencia()
	return s.store.NotasTrayectoria.Find(func(n entity.NotaTrayectoria) bool {
		return n.IDUsmya == idUsmya
	}), nil
}

// Create persiste la nota con título y observación sanitizados.
func (s *NotaTrayectoriaService) Create(ctx context.Context, n entity.NotaTrayectoria) (*entity.NotaTrayectoria, error) {
	s.store.simularLatencia()
	n.Titulo = s.sanitizador.Sanitize(n.Titulo)
	n.Observacion = s.sanitizador.Sanitize(n.Observacion)
	creada := s.store.NotasTrayectoria.Insert(n)
	return &creada, nil
}

// Delete elimina la nota e informa si existía.
func (s *NotaTrayectoriaService) Delete(ctx context.Context, id int) (bool, error) {
	s.store.simularLatencia()
	return s.store.NotasTrayectoria.Remove(id), nil
}
