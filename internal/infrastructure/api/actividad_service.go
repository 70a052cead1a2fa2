package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.ActividadService = (*ActividadService)(nil)

// ActividadService implementación del puerto de actividades sobre
// /activity.
type ActividadService struct {
	client *Client
}

// NewActividadService construye el servicio.
func NewActividadService(client *Client) *ActividadService {
	return &ActividadService{client: client}
}

// GetByID consulta /activity/{id}.
func (s *ActividadService) GetByID(ctx context.Context, id int) (*entity.Actividad, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, fmt.Sprintf("/activity/%d", id), nil)
	if err != nil {
		return nil, err
	}
	d := decodificarEntidad[dto.ActivityDTO](datos)
	if d == nil {
		return nil, nil
	}
	a := dto.FromActivityDTO(*d)
	if a.ID == 0 {
		a.ID = id
	}
	return &a, nil
}

// ListByEspacio consulta /activity?workspaceId=.
func (s *ActividadService) ListByEspacio(ctx context.Context, idEspacio int) ([]entity.Actividad, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, fmt.Sprintf("/activity?workspaceId=%d", idEspacio), nil)
	if err != nil {
		return nil, err
	}
	return actividadesDesde(datos)
}

// ListPendientes consulta /activity?status=Pending.
func (s *ActividadService) ListPendientes(ctx context.Context) ([]entity.Actividad, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, "/activity?status=Pending", nil)
	if err != nil {
		return nil, err
	}
	return actividadesDesde(datos)
}

// Create publica en /activity. La decisión pendiente/aprobada queda del
// lado del backend; idCreador viaja como header de contexto.
func (s *ActividadService) Create(ctx context.Context, a entity.Actividad, idCreador int) (*entity.Actividad, error) {
	datos, err := s.client.Do(ctx, http.MethodPost, fmt.Sprintf("/activity?createdBy=%d", idCreador), dto.ToActivityDTO(a))
	if err != nil {
		return nil, err
	}
	if d := decodificarEntidad[dto.ActivityDTO](datos); d != nil {
		creada := dto.FromActivityDTO(*d)
		return &creada, nil
	}
	return &a, nil
}

// Update lee, muta y manda el cuerpo completo a PUT /activity/{id}.
func (s *ActividadService) Update(ctx context.Context, id int, cambio func(*entity.Actividad)) (*entity.Actividad, error) {
	actual, err := s.GetByID(ctx, id)
	if err != nil || actual == nil {
		return nil, err
	}
	cambio(actual)
	datos, err := s.client.Do(ctx, http.MethodPut, fmt.Sprintf("/activity/%d", id), dto.ToActivityDTO(*actual))
	if err != nil {
		return nil, err
	}
	if d := decodificarEntidad[dto.ActivityDTO](datos); d != nil {
		actualizada := dto.FromActivityDTO(*d)
		return &actualizada, nil
	}
	return actual, nil
}

// Aprobar invoca /activity/{id}/approve.
func (s *ActividadService) Aprobar(ctx context.Context, id int) (*entity.Actividad, error) {
	return s.transicion(ctx, id, "approve")
}

// Rechazar invoca /activity/{id}/reject.
func (s *ActividadService) Rechazar(ctx context.Context, id int) (*entity.Actividad, error) {
	return s.transicion(ctx, id, "reject")
}

func (s *ActividadService) transicion(ctx context.Context, id int, accion string) (*entity.Actividad, error) {
	datos, err := s.client.Do(ctx, http.MethodPost, fmt.Sprintf("/activity/%d/%s", id, accion), nil)
	if err != nil {
		return nil, err
	}
	if d := decodificarEntidad[dto.ActivityDTO](datos); d != nil {
		a := dto.FromActivityDTO(*d)
		return &a, nil
	}
	return nil, nil
}

// Delete invoca DELETE /activity/{id}.
func (s *ActividadService) Delete(ctx context.Context, id int) (bool, error) {
	if _, err := s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/activity/%d", id), nil); err != nil {
		if errHTTP, ok := err.(*ErrorHTTP); ok && errHTTP.Status == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func actividadesDesde(datos []byte) ([]entity.Actividad, error) {
	dtos, err := decodificarLista[dto.ActivityDTO](datos)
	if err != nil {
		return nil, err
	}
	actividades := make([]entity.Actividad, 0, len(dtos))
	for _, d := range dtos {
		actividades = append(actividades, dto.FromActivityDTO(d))
	}
	return actividades, nil
}
