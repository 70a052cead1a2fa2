package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/application/usecase"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
	"github.com/comunidar/comunidad-api/internal/infrastructure/mock"
	"github.com/comunidar/comunidad-api/internal/security"
)

func nuevaTrayectoriaUC(t *testing.T) (*usecase.TrayectoriaUseCase, *mock.Store) {
	t.Helper()
	store := mock.NewStore()
	store.Retardo = 0
	uc := usecase.NewTrayectoriaUseCase(
		mock.NewAsistenciaService(store),
		mock.NewActividadService(store),
		mock.NewNotaTrayectoriaService(store, security.NewSanitizador()),
	)
	return uc, store
}

// Lucas (5) tiene dos asistencias y una nota; la línea de tiempo los
// fusiona de más reciente a más antiguo usando fecha y hora de cada
// actividad.
func TestTimeline_FusionaYOrdena(t *testing.T) {
	uc, _ := nuevaTrayectoriaUC(t)

	eventos, err := uc.Timeline(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, eventos, 3)

	assert.Equal(t, dto.EventoAsistencia, eventos[0].Tipo)
	assert.Equal(t, "Taller de radio", eventos[0].Titulo)
	assert.Equal(t, "2025-11-05", eventos[0].Fecha)

	assert.Equal(t, dto.EventoAsistencia, eventos[1].Tipo)
	assert.Equal(t, "Fútbol mixto sub-16", eventos[1].Titulo)
	assert.Equal(t, entity.AsistenciaPresente, eventos[1].Detalle)

	assert.Equal(t, dto.EventoNota, eventos[2].Tipo)
	assert.Equal(t, "Primer acercamiento", eventos[2].Titulo)
	assert.Equal(t, 1, eventos[2].IDNota)
}

// Una actividad borrada deja el evento con el detalle mínimo y lo manda al
// final del orden (instante cero).
func TestTimeline_ActividadBorrada(t *testing.T) {
	uc, store := nuevaTrayectoriaUC(t)
	require.True(t, store.Actividades.Remove(1))

	eventos, err := uc.Timeline(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, eventos, 3)

	ultimo := eventos[len(eventos)-1]
	assert.Equal(t, dto.EventoAsistencia, ultimo.Tipo)
	assert.Equal(t, "Asistencia a actividad", ultimo.Titulo)
	assert.Equal(t, 1, ultimo.IDActividad)
	assert.Empty(t, ultimo.Fecha)
}

func TestTimeline_UsmyaSinEventos(t *testing.T) {
	uc, _ := nuevaTrayectoriaUC(t)

	eventos, err := uc.Timeline(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, eventos)
}

func TestContadoresPendientes_AgrupaPorRol(t *testing.T) {
	store := mock.NewStore()
	store.Retardo = 0
	uc := usecase.NewNotificacionUseCase(mock.NewUsuarioService(store))

	// Semilla: Brian (usmya) y Paula (referente) pendientes.
	c, err := uc.ContadoresPendientes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.ContadoresPendientes{Referentes: 1, Usmyas: 1, Total: 2}, c)

	// Agentes y efectores comparten balde.
	store.Usuarios.Insert(entity.Usuario{
		Nombre: "Nuevo", Rol: entity.RolAgente, IsVerified: entity.VerificacionPendiente,
	})
	store.Usuarios.Insert(entity.Usuario{
		Nombre: "Nueva", Rol: entity.RolEfector, IsVerified: entity.VerificacionPendiente,
	})

	c, err = uc.ContadoresPendientes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.ContadoresPendientes{AgentesYEfectores: 2, Referentes: 1, Usmyas: 1, Total: 4}, c)
}
