package mock

import (
	"context"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.ActividadService = (*ActividadService)(nil)

// ActividadService implementación mock del puerto de actividades.
type ActividadService struct {
	store *Store
}

// NewActividadService construye el servicio.
func NewActividadService(store *Store) *ActividadService {
	return &ActividadService{store: store}
}

// GetByID devuelve la actividad o nil.
func (s *ActividadService) GetByID(ctx context.Context, id int) (*entity.Actividad, error) {
	s.store.simularLatencia()
	return s.store.Actividades.FindByID(id), nil
}

// ListByEspacio devuelve las actividades del espacio.
func (s *ActividadService) ListByEspacio(ctx context.Context, idEspacio int) ([]entity.Actividad, error) {
	s.store.simularLatencia()
	return s.store.Actividades.Find(func(a entity.Actividad) bool {
		return a.IDEspacio == idEspacio
	}), nil
}

// ListPendientes devuelve las actividades a la espera de aprobación.
func (s *ActividadService) ListPendientes(ctx context.Context) ([]entity.Actividad, error) {
	s.store.simularLatencia()
	return s.store.Actividades.Find(func(a entity.Actividad) bool {
		return a.Estado == entity.ActividadPendiente
	}), nil
}

// Create da de alta la actividad. Nace pendiente, salvo que el creador sea
// el agente del propio espacio: en ese caso queda aprobada de entrada.
func (s *ActividadService) Create(ctx context.Context, a entity.Actividad, idCreador int) (*entity.Actividad, error) {
	s.store.simularLatencia()
	a.Estado = entity.ActividadPendiente
	if creador := s.store.Usuarios.FindByID(idCreador); creador != nil {
		if creador.Rol == entity.RolAgente && creador.IDEspacio == a.IDEspacio {
			a.Estado = entity.ActividadAprobada
		}
	}
	creada := s.store.Actividades.Insert(a)
	return &creada, nil
}

// Update aplica la mutación sobre la actividad, o nil si no existe.
func (s *ActividadService) Update(ctx context.Context, id int, cambio func(*entity.Actividad)) (*entity.Actividad, error) {
	s.store.simularLatencia()
	return s.store.Actividades.Update(id, cambio), nil
}

// Aprobar marca la actividad como aprobada.
func (s *ActividadService) Aprobar(ctx context.Context, id int) (*entity.Actividad, error) {
	s.store.simularLatencia()
	return s.store.Actividades.Update(id, func(a *entity.Actividad) {
		a.Estado = entity.ActividadAprobada
	}), nil
}

// Rechazar marca la actividad como rechazada (rechazo blando, no borra).
func (s *ActividadService) Rechazar(ctx context.Context, id int) (*entity.Actividad, error) {
	s.store.simularLatencia()
	return s.store.Actividades.Update(id, func(a *entity.Actividad) {
		a.Estado = entity.ActividadRechazada
	}), nil
}

// Delete elimina la actividad. Las asistencias asociadas no se tocan.
func (s *ActividadService) Delete(ctx context.Context, id int) (bool, error) {
	s.store.simularLatencia()
	return s.store.Actividades.Remove(id), nil
}
