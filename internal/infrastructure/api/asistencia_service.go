package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.AsistenciaService = (*AsistenciaService)(nil)

// Forma wire de /assistance.
type assistanceDTO struct {
	ID          int    `json:"id"`
	ActivityID  int    `json:"activityId"`
	UserID      int    `json:"userId"`
	Status      string `json:"status"` // present | absent
	Observation string `json:"observation,omitempty"`
}

var estadoAsistenciaWire = map[string]string{
	entity.AsistenciaPresente: "present",
	entity.AsistenciaAusente:  "absent",
}

// AsistenciaService implementación del puerto de asistencias sobre
// /assistance.
type AsistenciaService struct {
	client *Client
}

// NewAsistenciaService construye el servicio.
func NewAsistenciaService(client *Client) *AsistenciaService {
	return &AsistenciaService{client: client}
}

// ListByActividad consulta /assistance?activityId=.
func (s *AsistenciaService) ListByActividad(ctx context.Context, idActividad int) ([]entity.Asistencia, error) {
	return s.listar(ctx, fmt.Sprintf("/assistance?activityId=%d", idActividad))
}

// ListByUsuario consulta /assistance?userId=.
func (s *AsistenciaService) ListByUsuario(ctx context.Context, idUser int) ([]entity.Asistencia, error) {
	return s.listar(ctx, fmt.Sprintf("/assistance?userId=%d", idUser))
}

// RegistrarAsistenciasMasivo publica el lote en /assistance/bulk. El
// backend aplica el upsert por (activityId, userId) en el orden recibido.
func (s *AsistenciaService) RegistrarAsistenciasMasivo(ctx context.Context, idActividad int, registros []dto.RegistroAsistencia) ([]entity.Asistencia, error) {
	filas := make([]assistanceDTO, 0, len(registros))
	for _, r := range registros {
		filas = append(filas, assistanceDTO{
			ActivityID:  idActividad,
			UserID:      r.IDUser,
			Status:      estadoAsistenciaWire[r.Estado],
			Observation: r.Observacion,
		})
	}
	datos, err := s.client.Do(ctx, http.MethodPost, "/assistance/bulk", filas)
	if err != nil {
		return nil, err
	}
	return asistenciasDesde(datos)
}

// GetEstadisticasByActividad computa el resumen sobre la lista: el
// contrato no expone un endpoint de estadísticas.
func (s *AsistenciaService) GetEstadisticasByActividad(ctx context.Context, idActividad int) (dto.EstadisticasAsistencia, error) {
	filas, err := s.ListByActividad(ctx, idActividad)
	if err != nil {
		return dto.EstadisticasAsistencia{}, err
	}
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

func (s *AsistenciaService) listar(ctx context.Context, ruta string) ([]entity.Asistencia, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, ruta, nil)
	if err != nil {
		return nil, err
	}
	return asistenciasDesde(datos)
}

func asistenciasDesde(datos []byte) ([]entity.Asistencia, error) {
	dtos, err := decodificarLista[assistanceDTO](datos)
	if err != nil {
		return nil, err
	}
	asistencias := make([]entity.Asistencia, 0, len(dtos))
	for _, d := range dtos {
		estado := d.Status
		for dominio, wire := range estadoAsistenciaWire {
			if wire == d.Status {
				estado = dominio
				break
			}
		}
		asistencias = append(asistencias, entity.Asistencia{
			ID:          d.ID,
			IDActividad: d.ActivityID,
			IDUser:      d.UserID,
			Estado:      estado,
			Observacion: d.Observation,
		})
	}
	return asistencias, nil
}
