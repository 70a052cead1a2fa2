package mock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
	"github.com/comunidar/comunidad-api/internal/infrastructure/mock"
)

func TestAsistenciaService_ListPorActividadYUsuario(t *testing.T) {
	svc := mock.NewAsistenciaService(nuevoStore(t))
	ctx := context.Background()

	porActividad, err := svc.ListByActividad(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, porActividad, 2)

	porUsuario, err := svc.ListByUsuario(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, porUsuario, 2)

	vacia, err := svc.ListByActividad(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, vacia)
}

// El alta masiva hace upsert por (actividad, usuario) en el orden de
// entrada: actualiza filas existentes y crea las que faltan, sin tocar al
// resto del conjunto.
func TestAsistenciaService_RegistroMasivoEsUpsert(t *testing.T) {
	store := nuevoStore(t)
	svc := mock.NewAsistenciaService(store)
	ctx := context.Background()

	resultado, err := svc.RegistrarAsistenciasMasivo(ctx, 1, []dto.RegistroAsistencia{
		{IDUser: 5, Estado: entity.AsistenciaAusente, Observacion: "viajó"},
		{IDUser: 7, Estado: entity.AsistenciaPresente},
	})
	require.NoError(t, err)
	require.Len(t, resultado, 2)

	// La fila del usuario 5 existía: conserva su id y cambia de estado.
	assert.Equal(t, 1, resultado[0].ID)
	assert.Equal(t, entity.AsistenciaAusente, resultado[0].Estado)
	assert.Equal(t, "viajó", resultado[0].Observacion)

	// La del usuario 7 es nueva, con el idActividad inyectado.
	assert.Equal(t, 4, resultado[1].ID)
	assert.Equal(t, 1, resultado[1].IDActividad)
	assert.Equal(t, entity.AsistenciaPresente, resultado[1].Estado)

	// No se reemplazó el conjunto: la fila del usuario 6 sigue.
	todas, err := svc.ListByActividad(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, todas, 3)
}

func TestAsistenciaService_RegistroMasivoVacioNoMuta(t *testing.T) {
	store := nuevoStore(t)
	svc := mock.NewAsistenciaService(store)

	resultado, err := svc.RegistrarAsistenciasMasivo(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, resultado)
	assert.Equal(t, 3, store.Asistencias.Len())
}

func TestAsistenciaService_Estadisticas(t *testing.T) {
	svc := mock.NewAsistenciaService(nuevoStore(t))
	ctx := context.Background()

	est, err := svc.GetEstadisticasByActividad(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, est.Total)
	assert.Equal(t, 1, est.Presentes)
	assert.Equal(t, 1, est.Ausentes)
	assert.InDelta(t, 50.0, est.PorcentajeAsistencia, 0.001)
}

func TestAsistenciaService_EstadisticasSinFilas(t *testing.T) {
	svc := mock.NewAsistenciaService(nuevoStore(t))

	est, err := svc.GetEstadisticasByActividad(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, dto.EstadisticasAsistencia{}, est, "sin filas todo queda en cero")
}
