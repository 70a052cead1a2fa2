package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.UsuarioService = (*UsuarioService)(nil)

// UsuarioService implementación del puerto de usuarios sobre el backend
// real (/user).
type UsuarioService struct {
	client *Client
}

// NewUsuarioService construye el servicio.
func NewUsuarioService(client *Client) *UsuarioService {
	return &UsuarioService{client: client}
}

// GetByID consulta /user/{id}.
func (s *UsuarioService) GetByID(ctx context.Context, id int) (*entity.Usuario, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, fmt.Sprintf("/user/%d", id), nil)
	if err != nil {
		return nil, err
	}
	d := decodificarEntidad[dto.UserDTO](datos)
	if d == nil {
		return nil, nil
	}
	u := dto.FromUserDTO(*d)
	if u.ID == 0 {
		u.ID = id
	}
	return &u, nil
}

// List consulta /user.
func (s *UsuarioService) List(ctx context.Context) ([]entity.Usuario, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, "/user", nil)
	if err != nil {
		return nil, err
	}
	return usuariosDesde(datos)
}

// Search consulta /user?search=.
func (s *UsuarioService) Search(ctx context.Context, termino string) ([]entity.Usuario, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, "/user?search="+url.QueryEscape(termino), nil)
	if err != nil {
		return nil, err
	}
	return usuariosDesde(datos)
}

// Create publica en /user con la forma wire.
func (s *UsuarioService) Create(ctx context.Context, u entity.Usuario) (*entity.Usuario, error) {
	datos, err := s.client.Do(ctx, http.MethodPost, "/user", dto.ToUserDTO(u))
	if err != nil {
		return nil, err
	}
	if d := decodificarEntidad[dto.UserDTO](datos); d != nil {
		creado := dto.FromUserDTO(*d)
		return &creado, nil
	}
	return &u, nil
}

// Patch no existe en el contrato actual del backend.
func (s *UsuarioService) Patch(ctx context.Context, id int, cambio func(*entity.Usuario)) (*entity.Usuario, error) {
	return nil, fmt.Errorf("usuario patch: %w", domain.ErrNoSoportado)
}

// Delete invoca DELETE /user/{id}.
func (s *UsuarioService) Delete(ctx context.Context, id int) (bool, error) {
	if _, err := s.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/user/%d", id), nil); err != nil {
		if errHTTP, ok := err.(*ErrorHTTP); ok && errHTTP.Status == http.StatusNotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetUsersPendingApproval consulta /user?status=Pendiente.
func (s *UsuarioService) GetUsersPendingApproval(ctx context.Context) ([]entity.Usuario, error) {
	datos, err := s.client.Do(ctx, http.MethodGet, "/user?status=Pendiente", nil)
	if err != nil {
		return nil, err
	}
	return usuariosDesde(datos)
}

// PostVerified aprueba al usuario vía /user/{id}/verified.
func (s *UsuarioService) PostVerified(ctx context.Context, id int) (*entity.Usuario, error) {
	datos, err := s.client.Do(ctx, http.MethodPost, fmt.Sprintf("/user/%d/verified", id), nil)
	if err != nil {
		return nil, err
	}
	if d := decodificarEntidad[dto.UserDTO](datos); d != nil {
		u := dto.FromUserDTO(*d)
		return &u, nil
	}
	return nil, nil
}

// SearchAvailableUsmya requiere consultar los vínculos del referente, y el
// contrato actual no expone esa consulta. Falla explícito en vez de
// devolver un resultado sin la exclusión.
func (s *UsuarioService) SearchAvailableUsmya(ctx context.Context, termino string, idReferente int) ([]entity.Usuario, error) {
	return nil, fmt.Errorf("búsqueda de usmyas disponibles: %w", domain.ErrNoSoportado)
}

// SearchAvailableUsmyaForEfector: misma limitación de contrato que
// SearchAvailableUsmya.
func (s *UsuarioService) SearchAvailableUsmyaForEfector(ctx context.Context, termino string, idEfector int) ([]entity.Usuario, error) {
	return nil, fmt.Errorf("búsqueda de usmyas disponibles: %w", domain.ErrNoSoportado)
}

func usuariosDesde(datos []byte) ([]entity.Usuario, error) {
	dtos, err := decodificarLista[dto.UserDTO](datos)
	if err != nil {
		return nil, err
	}
	usuarios := make([]entity.Usuario, 0, len(dtos))
	for _, d := range dtos {
		usuarios = append(usuarios, dto.FromUserDTO(d))
	}
	return usuarios, nil
}
