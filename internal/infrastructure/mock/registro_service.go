package mock

import (
	"context"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.RegistroService = (*RegistroService)(nil)

// RegistroService implementación mock de las altas con flujo de
// aprobación: todo usuario registrado nace pendiente.
type RegistroService struct {
	store *Store
}

// NewRegistroService construye el servicio.
func NewRegistroService(store *Store) *RegistroService {
	return &RegistroService{store: store}
}

// PostUsmya registra un usmya pendiente de aprobación.
func (s *RegistroService) PostUsmya(ctx context.Context, in dto.RegistroUsmyaRequest) (*entity.Usuario, error) {
	s.store.simularLatencia()
	if in.Nombre == "" || in.DNI == "" {
		return nil, domain.ErrEntradaInvalida
	}
	creado := s.store.Usuarios.Insert(entity.Usuario{
		Nombre:              in.Nombre,
		Apellido:            in.Apellido,
		DNI:                 in.DNI,
		FechaNacimiento:     in.FechaNacimiento,
		Telefono:            in.Telefono,
		DireccionResidencia: in.DireccionResidencia,
		Barrio:              in.Barrio,
		Alias:               in.Alias,
		GeneroAutopercibido: in.GeneroAutopercibido,
		ObraSocial:          in.ObraSocial,
		Rol:                 entity.RolUsmya,
		IsVerified:          entity.VerificacionPendiente,
		RequiereAprobacion:  true,
		CreadoPor:           in.CreadoPor,
	})
	return &creado, nil
}

// PostReferente registra un referente afectivo pendiente de aprobación.
func (s *RegistroService) PostReferente(ctx context.Context, in dto.RegistroReferenteRequest) (*entity.Usuario, error) {
	s.store.simularLatencia()
	if in.Nombre == "" || in.DNI == "" {
		return nil, domain.ErrEntradaInvalida
	}
	creado := s.store.Usuarios.Insert(entity.Usuario{
		Nombre:             in.Nombre,
		Apellido:           in.Apellido,
		DNI:                in.DNI,
		Telefono:           in.Telefono,
		Rol:                entity.RolReferente,
		IsVerified:         entity.VerificacionPendiente,
		RequiereAprobacion: true,
		RegistroConUsmya:   in.RegistroConUsmya,
		CreadoPor:          in.CreadoPor,
	})
	return &creado, nil
}

// PostEfector registra un efector de salud pendiente de aprobación.
func (s *RegistroService) PostEfector(ctx context.Context, in dto.RegistroEfectorRequest) (*entity.Usuario, error) {
	s.store.simularLatencia()
	if in.Nombre == "" || in.DNI == "" {
		return nil, domain.ErrEntradaInvalida
	}
	creado := s.store.Usuarios.Insert(entity.Usuario{
		Nombre:             in.Nombre,
		Apellido:           in.Apellido,
		DNI:                in.DNI,
		Telefono:           in.Telefono,
		Rol:                entity.RolEfector,
		EsEfector:          true,
		EsETratante:        in.EsETratante,
		IDEspacio:          in.IDEspacio,
		IsVerified:         entity.VerificacionPendiente,
		RequiereAprobacion: true,
		CreadoPor:          in.CreadoPor,
	})
	return &creado, nil
}
