package mock

import (
	"context"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.AsistenciaService = (*AsistenciaService)(nil)

// AsistenciaService implementación mock del puerto de asistencias.
type AsistenciaService struct {
	store *Store
}

// NewAsistenciaService construye el servicio.
func NewAsistenciaService(store *Store) *AsistenciaService {
	return &AsistenciaService{store: store}
}

// ListByActividad devuelve las asistencias de la actividad.
func (s *AsistenciaService) ListByActividad(ctx context.Context, idActividad int) ([]entity.Asistencia, error) {
	s.store.simularLatencia()
	return s.store.Asistencias.Find(func(a entity.Asistencia) bool {
		return a.IDActividad == idActividad
	}), nil
}

// ListByUsuario devuelve las asistencias del usuario.
func (s *AsistenciaService) ListByUsuario(ctx context.Context, idUser int) ([]entity.Asistencia, error) {
	s.store.simularLatencia()
	return s.store.Asistencias.Find(func(a entity.Asistencia) bool {
		return a.IDUser == idUser
	}), nil
}

// RegistrarAsistenciasMasivo recorre los registros en orden de entrada con
// semántica de upsert por (idActividad, idUser): si la fila existe la
// actualiza, si no la crea con idActividad inyectado. Nunca reemplaza el
// conjunto completo.
func (s *AsistenciaService) RegistrarAsistenciasMasivo(ctx context.Context, idActividad int, registros []dto.RegistroAsistencia) ([]entity.Asistencia, error) {
	s.store.simularLatencia()
	resultado := make([]entity.Asistencia, 0, len(registros))
	for _, r := range registros {
		existente := s.store.Asistencias.First(func(a entity.Asistencia) bool {
			return a.IDActividad == idActividad && a.IDUser == r.IDUser
		})
		if existente != nil {
			actualizada := s.store.Asistencias.Update(existente.ID, func(a *entity.Asistencia) {
				a.Estado = r.Estado
				a.Observacion = r.Observacion
			})
			resultado = append(resultado, *actualizada)
			continue
		}
		creada := s.store.Asistencias.Insert(entity.Asistencia{
			IDActividad: idActividad,
			IDUser:      r.IDUser,
			Estado:      r.Estado,
			Observacion: r.Observacion,
		})
		resultado = append(resultado, creada)
	}
	return resultado, nil
}

// GetEstadisticasByActividad resume presentes y ausentes. Con total cero
// el porcentaje queda en 0, sin división por cero.
func (s *AsistenciaService) GetEstadisticasByActividad(ctx context.Context, idActividad int) (dto.EstadisticasAsistencia, error) {
	s.store.simularLatencia()
	filas := s.store.Asistencias.Find(func(a entity.Asistencia) bool {
		return a.IDActividad == idActividad
	})
	est := dto.EstadisticasAsistencia{Total: len(filas)}
	for _, f := range filas {
		switch f.Estado {
		case entity.AsistenciaPresente:
			est.Presentes++
		case entity.AsistenciaAusente:
			est.Ausentes++
		}
	}
	if est.Total > 0 {
		est.PorcentajeAsistencia = float64(est.Presentes) / float64(est.Total) * 100
	}
	return est, nil
}
