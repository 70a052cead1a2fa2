package mock

import (
	"context"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
	"github.com/comunidar/comunidad-api/internal/domain/filtro"
)

var _ ports.EspacioService = (*EspacioService)(nil)

// EspacioService implementación mock del puerto de espacios.
type EspacioService struct {
	store *Store
}

// NewEspacioService construye el servicio.
func NewEspacioService(store *Store) *EspacioService {
	return &EspacioService{store: store}
}

// List devuelve todos los espacios.
func (s *EspacioService) List(ctx context.Context) ([]entity.Espacio, error) {
	s.store.simularLatencia()
	return s.store.Espacios.Read(), nil
}

// GetByID devuelve el espacio o nil.
func (s *EspacioService) GetByID(ctx context.Context, id int) (*entity.Espacio, error) {
	s.store.simularLatencia()
	return s.store.Espacios.FindByID(id), nil
}

// Search filtra por nombre, barrio o encargado.
func (s *EspacioService) Search(ctx context.Context, termino string) ([]entity.Espacio, error) {
	s.store.simularLatencia()
	return s.store.Espacios.Find(func(e entity.Espacio) bool {
		return filtro.CoincideBusqueda(e.Nombre, termino) ||
			filtro.CoincideBusqueda(e.Barrio, termino) ||
			filtro.CoincideBusqueda(e.Encargado, termino)
	}), nil
}

// Create da de alta un espacio.
func (s *EspacioService) Create(ctx context.Context, e entity.Espacio) (*entity.Espacio, error) {
	s.store.simularLatencia()
	creado := s.store.Espacios.Insert(e)
	return &creado, nil
}

// Update aplica la mutación sobre el espacio, o nil si no existe.
func (s *EspacioService) Update(ctx context.Context, id int, cambio func(*entity.Espacio)) (*entity.Espacio, error) {
	s.store.simularLatencia()
	return s.store.Espacios.Update(id, cambio), nil
}

// Delete elimina el espacio. Sus usuarios y actividades no se eliminan en
// cascada; quedan consultables por id.
func (s *EspacioService) Delete(ctx context.Context, id int) (bool, error) {
	s.store.simularLatencia()
	return s.store.Espacios.Remove(id), nil
}
