package api

import (
	"context"
	"net/http"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain"
)

var _ ports.Autenticador = (*AuthService)(nil)

// AuthService autenticador del modo vivo: delega el login en el backend y
// reusa su token en las llamadas siguientes.
type AuthService struct {
	client *Client
}

// NewAuthService construye el autenticador.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// Login publica las credenciales en /auth/login. Un 401 del backend se
// traduce al sentinela de credenciales inválidas.
func (s *AuthService) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	datos, err := s.client.Do(ctx, http.MethodPost, "/auth/login", in)
	if err != nil {
		if errHTTP, ok := err.(*ErrorHTTP); ok && errHTTP.Status == http.StatusUnauthorized {
			return nil, domain.ErrCredencialesInvalidas
		}
		return nil, err
	}
	resp := decodificarEntidad[dto.LoginResponse](datos)
	if resp == nil || resp.Token == "" {
		return nil, domain.ErrCredencialesInvalidas
	}
	s.client.SetToken(resp.Token)
	return resp, nil
}
