package mock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidar/comunidad-api/internal/domain/entity"
	"github.com/comunidar/comunidad-api/internal/infrastructure/mock"
)

// Una actividad nace pendiente, salvo que la cree el agente del propio
// espacio: ahí queda aprobada de entrada.
func TestActividadService_CreateEstadoInicial(t *testing.T) {
	svc := mock.NewActividadService(nuevoStore(t))
	ctx := context.Background()

	// Marta (2) es la agente del espacio 1.
	propia, err := svc.Create(ctx, entity.Actividad{
		Nombre: "Apoyo escolar", Fecha: "2025-11-10", IDEspacio: 1,
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.ActividadAprobada, propia.Estado)

	// La misma agente en otro espacio no aprueba sola.
	ajena, err := svc.Create(ctx, entity.Actividad{
		Nombre: "Juegoteca", Fecha: "2025-11-11", IDEspacio: 3,
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.ActividadPendiente, ajena.Estado)

	// Un referente tampoco, ni siquiera en su barrio.
	deReferente, err := svc.Create(ctx, entity.Actividad{
		Nombre: "Merienda", Fecha: "2025-11-12", IDEspacio: 1,
	}, 4)
	require.NoError(t, err)
	assert.Equal(t, entity.ActividadPendiente, deReferente.Estado)

	// El estado que venga en la entrada se ignora.
	forzada, err := svc.Create(ctx, entity.Actividad{
		Nombre: "Colada", Estado: entity.ActividadAprobada, IDEspacio: 2,
	}, 4)
	require.NoError(t, err)
	assert.Equal(t, entity.ActividadPendiente, forzada.Estado)
}

func TestActividadService_CicloDeAprobacion(t *testing.T) {
	svc := mock.NewActividadService(nuevoStore(t))
	ctx := context.Background()

	pendientes, err := svc.ListPendientes(ctx)
	require.NoError(t, err)
	require.Len(t, pendientes, 1)
	assert.Equal(t, 3, pendientes[0].ID)

	aprobada, err := svc.Aprobar(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.ActividadAprobada, aprobada.Estado)

	// El rechazo es blando: la actividad sigue existiendo.
	rechazada, err := svc.Rechazar(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, entity.ActividadRechazada, rechazada.Estado)

	sigue, err := svc.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, sigue)

	pendientes, err = svc.ListPendientes(ctx)
	require.NoError(t, err)
	assert.Empty(t, pendientes)
}

// Borrar una actividad no toca sus asistencias: quedan huérfanas a
// propósito.
func TestActividadService_DeleteNoArrastraAsistencias(t *testing.T) {
	store := nuevoStore(t)
	svc := mock.NewActividadService(store)

	borrada, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, borrada)
	assert.Equal(t, 3, store.Asistencias.Len())
}
