package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.NotaTrayectoriaService = (*NotaTrayectoriaService)(nil)

type trajectoryNoteDTO struct {
	ID          int    `json:"id"`
	UsmyaID     int    `json:"usmyaId"`
	AuthorID    int    `json:"authorId"`
	Title       string `json:"title"`
	Observation string `json:"observation"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// NotaTrayectoriaService implementación del puerto de notas sobre
// /trajectory-note.
type NotaTrayectoriaService struct {
	client      *Client
	sanitizador ports.Sanitizador
}

// NewNotaTrayectoriaService construye el servicio. El sanitizador se aplica
// al título y a la observación antes de publicar.
func NewNotaTrayectoriaService(client *Client, sanitizador ports.Sanitizador) *NotaTrayectoriaService {
	return &NotaTrayectoriaService{client: client, sanitizador: sanitizador}
}

// ListByUsmya consulta /trajectory-note?usmyaId=.
func (s *NotaTrayectoriaService) ListByUsmya(ctx context.Context, idUsmya int) ([]entity.NotaTrayectoria, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, fmt.Sprintf("/trajectory-note?usmyaId=%d", idUsmya), nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decodificarLista[trajectoryNoteDTO](datos)
	if err != nil {
		return nil, err
	}
	notas := make([]entity.NotaTrayectoria, 0, len(dtos))
	for _, d := range dtos {
		notas = append(notas, notaDesde(d))
	}
	return notas, nil
}

// Create publica la nota en /trajectory-note.
func (s *NotaTrayectoriaService) Create(ctx context.Context, n entity.NotaTrayectoria) (*entity.NotaTrayectoria, error) {
	if s.sanitizador != nil {
		n.Titulo = s.sanitizador.Sanitize(n.Titulo)
		n.Observacion = s.sanitizador.Sanitize(n.Observacion)
	}
	cuerpo := trajectoryNoteDTO{
		UsmyaID:     n.IDUsmya,
		AuthorID:    n.IDAutor,
		Title:       n.Titulo,
		Observation: n.Observacion,
		Date:        n.Fecha,
		Time:        n.Hora,
	}
	datos, err := s.client.Do(ctx, http.MethodPost, "/trajectory-note", cuerpo)
	if err != nil {
		return nil, err
	}
	if d := decodificarEntidad[trajectoryNoteDTO](datos); d != nil {
		creada := notaDesde(*d)
		return &creada, nil
	}
	return &n, nil
}

// Delete invoca DELETE /trajectory-note/{id}.
func (s *NotaTrayectoriaService) Delete(ctx context.Context, id int) (bool, error) {
	if _, err := s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/trajectory-note/%d", id), nil); err != nil {
		if errHTTP, ok := err.(*ErrorHTTP); ok && errHTTP.Status == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func notaDesde(d trajectoryNoteDTO) entity.NotaTrayectoria {
	return entity.NotaTrayectoria{
		ID:          d.ID,
		IDUsmya:     d.UsmyaID,
		IDAutor:     d.AuthorID,
		Titulo:      d.Title,
		Observacion: d.Observation,
		Fecha:       d.Date,
		Hora:        d.Time,
	}
}
