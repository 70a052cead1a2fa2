package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidar/comunidad-api/internal/application/usecase"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
	"github.com/comunidar/comunidad-api/internal/infrastructure/mock"
	"github.com/comunidar/comunidad-api/internal/security"
)

func nuevoChatUC(t *testing.T) (*usecase.ChatUseCase, *mock.Store) {
	t.Helper()
	store := mock.NewStore()
	store.Retardo = 0
	uc := usecase.NewChatUseCase(
		mock.NewChatService(store),
		mock.NewMensajeService(store, security.NewSanitizador()),
	)
	return uc, store
}

// Abrir un chat existente siendo ya integrante no crea nada.
func TestAbrirChat_ExistenteSinCambios(t *testing.T) {
	uc, store := nuevoChatUC(t)

	chat, err := uc.AbrirChat(context.Background(), 5, entity.ChatGeneral, 4)
	require.NoError(t, err)
	require.NotNil(t, chat)
	assert.Equal(t, 1, chat.ID)
	assert.Equal(t, 2, store.Chats.Len())
	assert.Equal(t, 4, store.IntegrantesChat.Len())
}

// Abrir un chat inexistente lo crea y suma al solicitante como integrante.
func TestAbrirChat_CreaYAgregaIntegrante(t *testing.T) {
	uc, store := nuevoChatUC(t)
	ctx := context.Background()

	chat, err := uc.AbrirChat(ctx, 7, entity.ChatGeneral, 3)
	require.NoError(t, err)
	require.NotNil(t, chat)
	assert.Equal(t, 3, chat.ID)
	assert.Equal(t, 7, chat.IDUsmya)
	assert.Equal(t, 3, store.Chats.Len())

	membresia := store.IntegrantesChat.First(func(i entity.IntegranteChat) bool {
		return i.IDChat == chat.ID && i.IDUser == 3
	})
	assert.NotNil(t, membresia)

	// Reabrir es idempotente.
	otraVez, err := uc.AbrirChat(ctx, 7, entity.ChatGeneral, 3)
	require.NoError(t, err)
	assert.Equal(t, chat.ID, otraVez.ID)
	assert.Equal(t, 3, store.Chats.Len())
}

func TestEnviarMensaje_RequiereMembresia(t *testing.T) {
	uc, _ := nuevoChatUC(t)
	ctx := context.Background()

	// El admin (1) no integra el chat 1.
	_, err := uc.EnviarMensaje(ctx, entity.Mensaje{
		IDChat: 1, IDEmisor: 1, Texto: "hola", Fecha: "2025-11-06", Hora: "12:00",
	})
	assert.ErrorIs(t, err, domain.ErrNoIntegrante)

	enviado, err := uc.EnviarMensaje(ctx, entity.Mensaje{
		IDChat: 1, IDEmisor: 4, Texto: "nos vemos el lunes", Fecha: "2025-11-06", Hora: "12:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "nos vemos el lunes", enviado.Texto)
}

func TestConversacion_OrdenCronologico(t *testing.T) {
	uc, _ := nuevoChatUC(t)

	mensajes, err := uc.Conversacion(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, mensajes, 2)
	assert.Equal(t, 1, mensajes[0].ID)
	assert.Equal(t, 2, mensajes[1].ID)
}

func TestChatsDeUsuario_IncluyeUltimoMensaje(t *testing.T) {
	uc, store := nuevoChatUC(t)
	ctx := context.Background()

	bandeja, err := uc.ChatsDeUsuario(ctx, 4)
	require.NoError(t, err)
	require.Len(t, bandeja, 1)
	assert.Equal(t, 1, bandeja[0].Chat.ID)
	require.NotNil(t, bandeja[0].UltimoMensaje)
	assert.Equal(t, 2, bandeja[0].UltimoMensaje.ID)

	// Un chat sin mensajes aparece con último mensaje nil.
	store.Mensajes.Reemplazar(nil)
	bandeja, err = uc.ChatsDeUsuario(ctx, 4)
	require.NoError(t, err)
	require.Len(t, bandeja, 1)
	assert.Nil(t, bandeja[0].UltimoMensaje)
}
