package mock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
	"github.com/comunidar/comunidad-api/internal/infrastructure/mock"
)

func TestChatService_GetByUsmyaYTipo(t *testing.T) {
	svc := mock.NewChatService(nuevoStore(t))
	ctx := context.Background()

	chat, err := svc.GetByUsmyaYTipo(ctx, 5, entity.ChatGeneral)
	require.NoError(t, err)
	require.NotNil(t, chat)
	assert.Equal(t, 1, chat.ID)

	// El mismo usmya no tiene chat tratante todavía.
	ninguno, err := svc.GetByUsmyaYTipo(ctx, 5, entity.ChatTratante)
	require.NoError(t, err)
	assert.Nil(t, ninguno)
}

// Crear sobre un par (usmya, tipo) existente devuelve el chat existente en
// lugar de duplicarlo.
func TestChatService_CreateEsIdempotentePorPar(t *testing.T) {
	store := nuevoStore(t)
	svc := mock.NewChatService(store)
	ctx := context.Background()

	existente, err := svc.Create(ctx, 5, entity.ChatGeneral)
	require.NoError(t, err)
	assert.Equal(t, 1, existente.ID)
	assert.Equal(t, 2, store.Chats.Len())

	nuevo, err := svc.Create(ctx, 5, entity.ChatTratante)
	require.NoError(t, err)
	assert.Equal(t, 3, nuevo.ID)
	assert.Equal(t, 3, store.Chats.Len())
}

func TestChatService_ListByUsuario(t *testing.T) {
	svc := mock.NewChatService(nuevoStore(t))
	ctx := context.Background()

	deLucas, err := svc.ListByUsuario(ctx, 5)
	require.NoError(t, err)
	require.Len(t, deLucas, 1)
	assert.Equal(t, 1, deLucas[0].ID)

	sinChats, err := svc.ListByUsuario(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, sinChats)
}

func TestChatService_IntegranteDuplicado(t *testing.T) {
	svc := mock.NewChatService(nuevoStore(t))
	ctx := context.Background()

	// Rosa (4) ya integra el chat 1.
	_, err := svc.CreateIntegrante(ctx, 1, 4)
	assert.ErrorIs(t, err, domain.ErrMiembroDuplicado)

	creado, err := svc.CreateIntegrante(ctx, 1, 3)
	require.NoError(t, err)
	require.NotNil(t, creado)
	assert.Equal(t, 1, creado.IDChat)
	assert.Equal(t, 3, creado.IDUser)
}

func TestChatService_EsIntegrante(t *testing.T) {
	svc := mock.NewChatService(nuevoStore(t))
	ctx := context.Background()

	es, err := svc.EsIntegrante(ctx, 1, 5)
	require.NoError(t, err)
	assert.True(t, es)

	noEs, err := svc.EsIntegrante(ctx, 2, 5)
	require.NoError(t, err)
	assert.False(t, noEs)
}

func TestChatService_ListIntegrantes(t *testing.T) {
	svc := mock.NewChatService(nuevoStore(t))

	integrantes, err := svc.ListIntegrantes(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, integrantes, 2)
	assert.Equal(t, 3, integrantes[0].IDUser)
	assert.Equal(t, 6, integrantes[1].IDUser)
}
