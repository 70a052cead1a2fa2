package mock

import (
	"context"
	"strings"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

var _ ports.CredencialService = (*CredencialService)(nil)

// CredencialService implementación mock de la búsqueda de credenciales.
type CredencialService struct {
	store *Store
}

// NewCredencialService construye el servicio.
func NewCredencialService(store *Store) *CredencialService {
	return &CredencialService{store: store}
}

// GetByEmail devuelve la credencial o nil. El email compara sin distinguir
// mayúsculas.
func (s *CredencialService) GetByEmail(ctx context.Context, email string) (*entity.AuthUser, error) {
	s.store.simularLatencia()
	return s.store.AuthUsers.First(func(a entity.AuthUser) bool {
		return strings.EqualFold(a.Email, email)
	}), nil
}
