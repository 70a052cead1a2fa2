package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.RegistroService = (*RegistroService)(nil)

// RegistroService implementación del puerto de altas sobre /register.
type RegistroService struct {
	client *Client
}

// NewRegistroService construye el servicio.
func NewRegistroService(client *Client) *RegistroService {
	return &RegistroService{client: client}
}

// PostUsmya publica el alta en /register/usmya.
func (s *RegistroService) PostUsmya(ctx context.Context, in dto.RegistroUsmyaRequest) (*entity.Usuario, error) {
	if err := validarAlta(in.Nombre, in.DNI); err != nil {
		return nil, err
	}
	return s.publicar(ctx, "/register/usmya", in)
}

// PostReferente publica el alta en /register/referente.
func (s *RegistroService) PostReferente(ctx context.Context, in dto.RegistroReferenteRequest) (*entity.Usuario, error) {
	if err := validarAlta(in.Nombre, in.DNI); err != nil {
		return nil, err
	}
	return s.publicar(ctx, "/register/referente", in)
}

// PostEfector publica el alta en /register/efector.
func (s *RegistroService) PostEfector(ctx context.Context, in dto.RegistroEfectorRequest) (*entity.Usuario, error) {
	if err := validarAlta(in.Nombre, in.DNI); err != nil {
		return nil, err
	}
	return s.publicar(ctx, "/register/efector", in)
}

func (s *RegistroService) publicar(ctx context.Context, ruta string, cuerpo any) (*entity.Usuario, error) {
	datos, err := s.client.Do(ctx, http.MethodPost, ruta, cuerpo)
	if err != nil {
		return nil, err
	}
	d := decodificarEntidad[dto.UserDTO](datos)
	if d == nil {
		return nil, nil
	}
	u := dto.FromUserDTO(*d)
	return &u, nil
}

// validarAlta replica la validación mínima del backend para fallar antes
// del viaje de red con entradas obviamente inválidas.
func validarAlta(nombre, dni string) error {
	if strings.TrimSpace(nombre) == "" || strings.TrimSpace(dni) == "" {
		return domain.ErrEntradaInvalida
	}
	return nil
}
