package mock

import (
	"context"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
	"github.com/comunidar/comunidad-api/internal/domain/filtro"
)

var _ ports.UsuarioService = (*UsuarioService)(nil)

// UsuarioService implementación mock del puerto de usuarios.
type UsuarioService struct {
	store *Store
}

// NewUsuarioService construye el servicio sobre el store inyectado.
func NewUsuarioService(store *Store) *UsuarioService {
	return &UsuarioService{store: store}
}

// GetByID devuelve el usuario o nil si no existe.
func (s *UsuarioService) GetByID(ctx context.Context, id int) (*entity.Usuario, error) {
	s.store.simularLatencia()
	return s.store.Usuarios.FindByID(id), nil
}

// List devuelve todos los usuarios.
func (s *UsuarioService) List(ctx context.Context) ([]entity.Usuario, error) {
	s.store.simularLatencia()
	return s.store.Usuarios.Read(), nil
}

// Search filtra por nombre completo, dni o alias.
func (s *UsuarioService) Search(ctx context.Context, termino string) ([]entity.Usuario, error) {
	s.store.simularLatencia()
	return s.store.Usuarios.Find(func(u entity.Usuario) bool {
		return coincideUsuario(u, termino)
	}), nil
}

// Create da de alta un usuario.
func (s *UsuarioService) Create(ctx context.Context, u entity.Usuario) (*entity.Usuario, error) {
	s.store.simularLatencia()
	creado := s.store.Usuarios.Insert(u)
	return &creado, nil
}

// Patch aplica una mutación parcial. El rol es inmutable: un mutador que
// lo cambie recibe ErrRolInmutable y no persiste nada.
func (s *UsuarioService) Patch(ctx context.Context, id int, cambio func(*entity.Usuario)) (*entity.Usuario, error) {
	s.store.simularLatencia()
	actual := s.store.Usuarios.FindByID(id)
	if actual == nil {
		return nil, nil
	}
	prueba := *actual
	cambio(&prueba)
	if prueba.Rol != actual.Rol {
		return nil, domain.ErrRolInmutable
	}
	return s.store.Usuarios.Update(id, cambio), nil
}

// Delete elimina el usuario e informa si existía. No hay borrado en
// cascada: las filas que lo referencian quedan huérfanas.
func (s *UsuarioService) Delete(ctx context.Context, id int) (bool, error) {
	s.store.simularLatencia()
	return s.store.Usuarios.Remove(id), nil
}

// GetUsersPendingApproval devuelve los usuarios con verificación pendiente.
func (s *UsuarioService) GetUsersPendingApproval(ctx context.Context) ([]entity.Usuario, error) {
	s.store.simularLatencia()
	return s.store.Usuarios.Find(func(u entity.Usuario) bool {
		return u.EstaPendiente()
	}), nil
}

// PostVerified aprueba al usuario pendiente.
func (s *UsuarioService) PostVerified(ctx context.Context, id int) (*entity.Usuario, error) {
	s.store.simularLatencia()
	return s.store.Usuarios.Update(id, func(u *entity.Usuario) {
		u.IsVerified = entity.VerificacionAprobado
		u.RequiereAprobacion = false
	}), nil
}

// SearchAvailableUsmya devuelve los usmyas no vinculados todavía al
// referente, aplicando después el filtro de texto.
func (s *UsuarioService) SearchAvailableUsmya(ctx context.Context, termino string, idReferente int) ([]entity.Usuario, error) {
	s.store.simularLatencia()
	vinculados := map[int]bool{}
	for _, r := range s.store.ReferenteUsmya.Find(func(r entity.ReferenteUsmya) bool {
		return r.IDReferente == idReferente
	}) {
		vinculados[r.IDUsmya] = true
	}
	return s.usmyasDisponibles(termino, vinculados), nil
}

// SearchAvailableUsmyaForEfector es la variante sobre la relación
// efector-usmya.
func (s *UsuarioService) SearchAvailableUsmyaForEfector(ctx context.Context, termino string, idEfector int) ([]entity.Usuario, error) {
	s.store.simularLatencia()
	vinculados := map[int]bool{}
	for _, r := range s.store.EfectorUsmya.Find(func(r entity.EfectorUsmya) bool {
		return r.IDEfector == idEfector
	}) {
		vinculados[r.IDUsmya] = true
	}
	return s.usmyasDisponibles(termino, vinculados), nil
}

func (s *UsuarioService) usmyasDisponibles(termino string, excluidos map[int]bool) []entity.Usuario {
	return s.store.Usuarios.Find(func(u entity.Usuario) bool {
		return u.Rol == entity.RolUsmya && !excluidos[u.ID] && coincideUsuario(u, termino)
	})
}

func coincideUsuario(u entity.Usuario, termino string) bool {
	return filtro.CoincideBusqueda(u.NombreCompleto(), termino) ||
		filtro.CoincideBusqueda(u.DNI, termino) ||
		filtro.CoincideBusqueda(u.Alias, termino)
}
