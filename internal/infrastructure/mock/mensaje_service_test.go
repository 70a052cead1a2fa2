package mock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidar/comunidad-api/internal/domain/entity"
	"github.com/comunidar/comunidad-api/internal/infrastructure/mock"
	"github.com/comunidar/comunidad-api/internal/security"
)

func nuevoMensajeService(t *testing.T) (*mock.MensajeService, *mock.Store) {
	t.Helper()
	store := nuevoStore(t)
	return mock.NewMensajeService(store, security.NewSanitizador()), store
}

func TestMensajeService_OrdenCronologico(t *testing.T) {
	svc, _ := nuevoMensajeService(t)
	ctx := context.Background()

	// Un mensaje anterior insertado después igual ordena primero.
	_, err := svc.Create(ctx, entity.Mensaje{
		IDChat: 1, IDEmisor: 5, Texto: "¿Entrenamos esta semana?",
		Fecha: "2025-10-30", Hora: "20:15",
	})
	require.NoError(t, err)

	ordenados, err := svc.GetMensajesByChatIDOrdered(ctx, 1)
	require.NoError(t, err)
	require.Len(t, ordenados, 3)
	assert.Equal(t, 4, ordenados[0].ID)
	assert.Equal(t, 1, ordenados[1].ID)
	assert.Equal(t, 2, ordenados[2].ID)
}

// Empates de fecha+hora conservan el orden de inserción.
func TestMensajeService_OrdenEstableEnEmpates(t *testing.T) {
	svc, _ := nuevoMensajeService(t)
	ctx := context.Background()

	primero, err := svc.Create(ctx, entity.Mensaje{
		IDChat: 2, IDEmisor: 6, Texto: "ok", Fecha: "2025-11-04", Hora: "11:10",
	})
	require.NoError(t, err)
	segundo, err := svc.Create(ctx, entity.Mensaje{
		IDChat: 2, IDEmisor: 3, Texto: "dale", Fecha: "2025-11-04", Hora: "11:10",
	})
	require.NoError(t, err)

	ordenados, err := svc.GetMensajesByChatIDOrdered(ctx, 2)
	require.NoError(t, err)
	require.Len(t, ordenados, 3)
	assert.Equal(t, 3, ordenados[0].ID)
	assert.Equal(t, primero.ID, ordenados[1].ID)
	assert.Equal(t, segundo.ID, ordenados[2].ID)
}

// Fecha u hora que no parsean ordenan antes que cualquier instante válido.
func TestMensajeService_FechaInvalidaOrdenaPrimero(t *testing.T) {
	svc, _ := nuevoMensajeService(t)
	ctx := context.Background()

	malformado, err := svc.Create(ctx, entity.Mensaje{
		IDChat: 1, IDEmisor: 4, Texto: "sin fecha", Fecha: "", Hora: "",
	})
	require.NoError(t, err)

	ordenados, err := svc.GetMensajesByChatIDOrdered(ctx, 1)
	require.NoError(t, err)
	require.NotEmpty(t, ordenados)
	assert.Equal(t, malformado.ID, ordenados[0].ID)
}

func TestMensajeService_UltimoMensaje(t *testing.T) {
	svc, _ := nuevoMensajeService(t)
	ctx := context.Background()

	ultimo, err := svc.GetUltimoMensaje(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, ultimo)
	assert.Equal(t, 2, ultimo.ID)

	vacio, err := svc.GetUltimoMensaje(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, vacio)
}

func TestMensajeService_CreateSanitizaElTexto(t *testing.T) {
	svc, store := nuevoMensajeService(t)

	creado, err := svc.Create(context.Background(), entity.Mensaje{
		IDChat: 1, IDEmisor: 4,
		Texto: "  hola <script>alert(1)</script><strong>nos vemos</strong> ",
		Fecha: "2025-11-05", Hora: "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "hola <strong>nos vemos</strong>", creado.Texto)

	persistido := store.Mensajes.FindByID(creado.ID)
	require.NotNil(t, persistido)
	assert.Equal(t, creado.Texto, persistido.Texto)
}
