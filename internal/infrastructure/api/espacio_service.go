package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.EspacioService = (*EspacioService)(nil)

// EspacioService implementación del puerto de espacios sobre /workspace.
type EspacioService struct {
	client *Client
}

// NewEspacioService construye el servicio.
func NewEspacioService(client *Client) *EspacioService {
	return &EspacioService{client: client}
}

// List consulta /workspace.
func (s *EspacioService) List(ctx context.Context) ([]entity.Espacio, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, "/workspace", nil)
	if err != nil {
		return nil, err
	}
	return espaciosDesde(datos)
}

// GetByID consulta /workspace/{id}.
func (s *EspacioService) GetByID(ctx context.Context, id int) (*entity.Espacio, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, fmt.Sprintf("/workspace/%d", id), nil)
	if err != nil {
		return nil, err
	}
	d := decodificarEntidad[dto.WorkspaceDTO](datos)
	if d == nil {
		return nil, nil
	}
	e := dto.FromWorkspaceDTO(*d)
	if e.ID == 0 {
		e.ID = id
	}
	return &e, nil
}

// Search consulta /workspace?search=.
func (s *EspacioService) Search(ctx context.Context, termino string) ([]entity.Espacio, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, "/workspace?search="+url.QueryEscape(termino), nil)
	if err != nil {
		return nil, err
	}
	return espaciosDesde(datos)
}

// Create publica en /workspace.
func (s *EspacioService) Create(ctx context.Context, e entity.Espacio) (*entity.Espacio, error) {
	datos, err := s.client.Do(ctx, http.MethodPost, "/workspace", dto.ToWorkspaceDTO(e))
	if err != nil {
		return nil, err
	}
	if d := decodificarEntidad[dto.WorkspaceDTO](datos); d != nil {
		creado := dto.FromWorkspaceDTO(*d)
		return &creado, nil
	}
	return &e, nil
}

// Update lee el espacio, aplica la mutación local y manda el cuerpo
// parcial a PATCH /workspace/{id}.
func (s *EspacioService) Update(ctx context.Context, id int, cambio func(*entity.Espacio)) (*entity.Espacio, error) {
	actual, err := s.GetByID(ctx, id)
	if err != nil || actual == nil {
		return nil, err
	}
	cambio(actual)
	datos, err := s.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/workspace/%d", id), dto.ToWorkspaceUpdateDTO(*actual))
	if err != nil {
		return nil, err
	}
	if d := decodificarEntidad[dto.WorkspaceDTO](datos); d != nil {
		actualizado := dto.FromWorkspaceDTO(*d)
		return &actualizado, nil
	}
	return actual, nil
}

// Delete invoca DELETE /workspace/{id}.
func (s *EspacioService) Delete(ctx context.Context, id int) (bool, error) {
	if _, err := s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/workspace/%d", id), nil); err != nil {
		if errHTTP, ok := err.(*ErrorHTTP); ok && errHTTP.Status == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func espaciosDesde(datos []byte) ([]entity.Espacio, error) {
	dtos, err := decodificarLista[dto.WorkspaceDTO](datos)
	if err != nil {
		return nil, err
	}
	espacios := make([]entity.Espacio, 0, len(dtos))
	for _, d := range dtos {
		espacios = append(espacios, dto.FromWorkspaceDTO(d))
	}
	return espacios, nil
}
