package mock

import (
	"context"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.TagService = (*TagService)(nil)

// TagService implementación mock del puerto de etiquetas.
type TagService struct {
	store *Store
}

// NewTagService construye el servicio.
func NewTagService(store *Store) *TagService {
	return &TagService{store: store}
}

// List devuelve todas las etiquetas.
func (s *TagService) List(ctx context.Context) ([]entity.Tag, error) {
	s.store.simularLatencia()
	return s.store.Tags.Read(), nil
}

// GetByID devuelve la etiqueta o nil.
func (s *TagService) GetByID(ctx context.Context, id int) (*entity.Tag, error) {
	s.store.simularLatencia()
	return s.store.Tags.FindByID(id), nil
}

// Create da de alta una etiqueta.
func (s *TagService) Create(ctx context.Context, t entity.Tag) (*entity.Tag, error) {
	s.store.simularLatencia()
	creada := s.store.Tags.Insert(t)
	return &creada, nil
}

// Update aplica la mutación sobre la etiqueta, o nil si no existe.
func (s *TagService) Update(ctx context.Context, id int, cambio func(*entity.Tag)) (*entity.Tag, error) {
	s.store.simularLatencia()
	return s.store.Tags.Update(id, cambio), nil
}

// Delete elimina la etiqueta e informa si existía.
func (s *TagService) Delete(ctx context.Context, id int) (bool, error) {
	s.store.simularLatencia()
	return s.store.Tags.Remove(id), nil
}
