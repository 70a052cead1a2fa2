package usecase

import (
	"context"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

// NotificacionUseCase computa los badges de pendientes del panel de
// administración.
type NotificacionUseCase struct {
	usuarios ports.UsuarioService
}

// NewNotificacionUseCase construye el caso de uso.
func NewNotificacionUseCase(usuarios ports.UsuarioService) *NotificacionUseCase {
	return &NotificacionUseCase{usuarios: usuarios}
}

// ContadoresPendientes agrupa los usuarios pendientes de aprobación por
// rol. Agentes y efectores comparten balde; los roles restantes no suman
// a ningún balde pero sí al total.
func (uc *NotificacionUseCase) ContadoresPendientes(ctx context.Context) (dto.ContadoresPendientes, error) {
	pendientes, err := uc.usuarios.GetUsersPendingApproval(ctx)
	if err != nil {
		return dto.ContadoresPendientes{}, err
	}
	var c dto.ContadoresPendientes
	for _, u := range pendientes {
		switch u.Rol {
		case entity.RolAgente, entity.RolEfector:
			c.AgentesYEfectores++
		case entity.RolReferente:
			c.Referentes++
		case entity.RolUsmya:
			c.Usmyas++
		}
	}
	c.Total = len(pendientes)
	return c, nil
}
