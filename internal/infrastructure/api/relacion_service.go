package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.RelacionService = (*RelacionService)(nil)

type referenteUsmyaDTO struct {
	ID          int `json:"id"`
	IDReferente int `json:"referenteId"`
	IDUsmya     int `json:"usmyaId"`
}

type efectorUsmyaDTO struct {
	ID        int `json:"id"`
	IDEfector int `json:"efectorId"`
	IDUsmya   int `json:"usmyaId"`
}

// RelacionService implementación del puerto de vínculos sobre
// /referente-usmya y /efector-usmya. El contrato actual sólo admite el
// alta; las consultas de vínculo devuelven domain.ErrNoSoportado.
type RelacionService struct {
	client *Client
}

// NewRelacionService construye el servicio.
func NewRelacionService(client *Client) *RelacionService {
	return &RelacionService{client: client}
}

// CreateReferente publica el vínculo en /referente-usmya.
func (s *RelacionService) CreateReferente(ctx context.Context, idReferente, idUsmya int) (*entity.ReferenteUsmya, error) {
	cuerpo := referenteUsmyaDTO{IDReferente: idReferente, IDUsmya: idUsmya}
	datos, err := s.client.Do(ctx, http.MethodPost, "/referente-usmya", cuerpo)
	if err != nil {
		return nil, err
	}
	rel := entity.ReferenteUsmya{IDReferente: idReferente, IDUsmya: idUsmya}
	if d := decodificarEntidad[referenteUsmyaDTO](datos); d != nil {
		rel.ID = d.ID
	}
	return &rel, nil
}

// CreateEfector publica el vínculo en /efector-usmya.
func (s *RelacionService) CreateEfector(ctx context.Context, idEfector, idUsmya int) (*entity.EfectorUsmya, error) {
	cuerpo := efectorUsmyaDTO{IDEfector: idEfector, IDUsmya: idUsmya}
	datos, err := s.client.Do(ctx, http.MethodPost, "/efector-usmya", cuerpo)
	if err != nil {
		return nil, err
	}
	rel := entity.EfectorUsmya{IDEfector: idEfector, IDUsmya: idUsmya}
	if d := decodificarEntidad[efectorUsmyaDTO](datos); d != nil {
		rel.ID = d.ID
	}
	return &rel, nil
}

// ListUsmyasByReferente no existe en el contrato actual del backend.
func (s *RelacionService) ListUsmyasByReferente(ctx context.Context, idReferente int) ([]int, error) {
	return nil, fmt.Errorf("vínculos de referente: %w", domain.ErrNoSoportado)
}

// ListUsmyasByEfector no existe en el contrato actual del backend.
func (s *RelacionService) ListUsmyasByEfector(ctx context.Context, idEfector int) ([]int, error) {
	return nil, fmt.Errorf("vínculos de efector: %w", domain.ErrNoSoportado)
}

// ExisteReferente no existe en el contrato actual del backend.
func (s *RelacionService) ExisteReferente(ctx context.Context, idReferente, idUsmya int) (bool, error) {
	return false, fmt.Errorf("vínculos de referente: %w", domain.ErrNoSoportado)
}

// ExisteEfector no existe en el contrato actual del backend.
func (s *RelacionService) ExisteEfector(ctx context.Context, idEfector, idUsmya int) (bool, error) {
	return false, fmt.Errorf("vínculos de efector: %w", domain.ErrNoSoportado)
}
