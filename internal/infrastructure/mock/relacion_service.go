package mock

import (
	"context"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.RelacionService = (*RelacionService)(nil)

// RelacionService implementación mock de los vínculos referente-usmya y
// efector-usmya.
type RelacionService struct {
	store *Store
}

// NewRelacionService construye el servicio.
func NewRelacionService(store *Store) *RelacionService {
	return &RelacionService{store: store}
}

// CreateReferente vincula un referente con un usmya. Un vínculo repetido
// devuelve la fila existente sin duplicar.
func (s *RelacionService) CreateReferente(ctx context.Context, idReferente, idUsmya int) (*entity.ReferenteUsmya, error) {
	s.store.simularLatencia()
	if existente := s.store.ReferenteUsmya.First(func(r entity.ReferenteUsmya) bool {
		return r.IDReferente == idReferente && r.IDUsmya == idUsmya
	}); existente != nil {
		return existente, nil
	}
	creado := s.store.ReferenteUsmya.Insert(entity.ReferenteUsmya{IDReferente: idReferente, IDUsmya: idUsmya})
	return &creado, nil
}

// CreateEfector vincula un efector con un usmya.
func (s *RelacionService) CreateEfector(ctx context.Context, idEfector, idUsmya int) (*entity.EfectorUsmya, error) {
	s.store.simularLatencia()
	if existente := s.store.EfectorUsmya.First(func(r entity.EfectorUsmya) bool {
		return r.IDEfector == idEfector && r.IDUsmya == idUsmya
	}); existente != nil {
		return existente, nil
	}
	creado := s.store.EfectorUsmya.Insert(entity.EfectorUsmya{IDEfector: idEfector, IDUsmya: idUsmya})
	return &creado, nil
}

// ListUsmyasByReferente devuelve los ids de usmya vinculados al referente.
func (s *RelacionService) ListUsmyasByReferente(ctx context.Context, idReferente int) ([]int, error) {
	s.store.simularLatencia()
	ids := []int{}
	for _, r := range s.store.ReferenteUsmya.Find(func(r entity.ReferenteUsmya) bool {
		return r.IDReferente == idReferente
	}) {
		ids = append(ids, r.IDUsmya)
	}
	return ids, nil
}

// ListUsmyasByEfector devuelve los ids de usmya vinculados al efector.
func (s *RelacionService) ListUsmyasByEfector(ctx context.Context, idEfector int) ([]int, error) {
	s.store.simularLatencia()
	ids := []int{}
	for _, r := range s.store.EfectorUsmya.Find(func(r entity.EfectorUsmya) bool {
		return r.IDEfector == idEfector
	}) {
		ids = append(ids, r.IDUsmya)
	}
	return ids, nil
}

// ExisteReferente informa si el vínculo referente-usmya existe.
func (s *RelacionService) ExisteReferente(ctx context.Context, idReferente, idUsmya int) (bool, error) {
	s.store.simularLatencia()
	return s.store.ReferenteUsmya.First(func(r entity.ReferenteUsmya) bool {
		return r.IDReferente == idReferente && r.IDUsmya == idUsmya
	}) != nil, nil
}

// ExisteEfector informa si el vínculo efector-usmya existe.
func (s *RelacionService) ExisteEfector(ctx context.Context, idEfector, idUsmya int) (bool, error) {
	s.store.simularLatencia()
	return s.store.EfectorUsmya.First(func(r entity.EfectorUsmya) bool {
		return r.IDEfector == idEfector && r.IDUsmya == idUsmya
	}) != nil, nil
}
