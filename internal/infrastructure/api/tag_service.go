package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.TagService = (*TagService)(nil)

type tagDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// TagService implementación del puerto de etiquetas sobre /tag.
type TagService struct {
	client *Client
}

// NewTagService construye el servicio.
func NewTagService(client *Client) *TagService {
	return &TagService{client: client}
}

// List consulta /tag.
func (s *TagService) List(ctx context.Context) ([]entity.Tag, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, "/tag", nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decodificarLista[tagDTO](datos)
	if err != nil {
		return nil, err
	}
	tags := make([]entity.Tag, 0, len(dtos))
	for _, d := range dtos {
		tags = append(tags, tagDesde(d))
	}
	return tags, nil
}

// GetByID consulta /tag/{id}.
func (s *TagService) GetByID(ctx context.Context, id int) (*entity.Tag, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, fmt.Sprintf("/tag/%d", id), nil)
	if err != nil {
		return nil, err
	}
	d := decodificarEntidad[tagDTO](datos)
	if d == nil {
		return nil, nil
	}
	t := tagDesde(*d)
	return &t, nil
}

// Create publica en /tag.
func (s *TagService) Create(ctx context.Context, t entity.Tag) (*entity.Tag, error) {
	cuerpo := tagDTO{Name: t.Nombre, Description: t.Descripcion}
	datos, err := s.client.Do(ctx, http.MethodPost, "/tag", cuerpo)
	if err != nil {
		return nil, err
	}
	if d := decodificarEntidad[tagDTO](datos); d != nil {
		creado := tagDesde(*d)
		return &creado, nil
	}
	return &t, nil
}

// Update resuelve el estado actual, aplica la mutación y publica el
// resultado completo en PATCH /tag/{id}.
func (s *TagService) Update(ctx context.Context, id int, cambio func(*entity.Tag)) (*entity.Tag, error) {
	actual, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actual == nil {
		return nil, nil
	}
	cambio(actual)
	cuerpo := tagDTO{Name: actual.Nombre, Description: actual.Descripcion}
	datos, err := s.client.Do(ctx, http.MethodPatch, fmt.Sprintf("/tag/%d", id), cuerpo)
	if err != nil {
		return nil, err
	}
	if d := decodificarEntidad[tagDTO](datos); d != nil {
		actualizado := tagDesde(*d)
		return &actualizado, nil
	}
	return actual, nil
}

// Delete invoca DELETE /tag/{id}.
func (s *TagService) Delete(ctx context.Context, id int) (bool, error) {
	if _, err := s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/tag/%d", id), nil); err != nil {
		if errHTTP, ok := err.(*ErrorHTTP); ok && errHTTP.Status == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func tagDesde(d tagDTO) entity.Tag {
	return entity.Tag{ID: d.ID, Nombre: d.Name, Descripcion: d.Description}
}
