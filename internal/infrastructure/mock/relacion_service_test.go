package mock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidar/comunidad-api/internal/infrastructure/mock"
	"github.com/comunidar/comunidad-api/internal/security"
)

func TestRelacionService_VinculoRepetidoNoDuplica(t *testing.T) {
	store := nuevoStore(t)
	svc := mock.NewRelacionService(store)
	ctx := context.Background()

	// Rosa (4) ya está vinculada con Lucas (5).
	existente, err := svc.CreateReferente(ctx, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, existente.ID)
	assert.Equal(t, 2, store.ReferenteUsmya.Len())

	nuevo, err := svc.CreateReferente(ctx, 4, 7)
	require.NoError(t, err)
	assert.Equal(t, 3, nuevo.ID)
	assert.Equal(t, 3, store.ReferenteUsmya.Len())
}

func TestRelacionService_ListUsmyas(t *testing.T) {
	svc := mock.NewRelacionService(nuevoStore(t))
	ctx := context.Background()

	deRosa, err := svc.ListUsmyasByReferente(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6}, deRosa)

	deHector, err := svc.ListUsmyasByEfector(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{6}, deHector)

	sinVinculos, err := svc.ListUsmyasByReferente(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, sinVinculos)
}

func TestRelacionService_Existe(t *testing.T) {
	svc := mock.NewRelacionService(nuevoStore(t))
	ctx := context.Background()

	hay, err := svc.ExisteEfector(ctx, 3, 6)
	require.NoError(t, err)
	assert.True(t, hay)

	noHay, err := svc.ExisteEfector(ctx, 3, 5)
	require.NoError(t, err)
	assert.False(t, noHay)
}

func TestNotaTrayectoriaService_CicloCompleto(t *testing.T) {
	store := nuevoStore(t)
	svc := mock.NewNotaTrayectoriaService(store, security.NewSanitizador())
	ctx := context.Background()

	notas, err := svc.ListByUsmya(ctx, 5)
	require.NoError(t, err)
	require.Len(t, notas, 1)
	assert.Equal(t, "Primer acercamiento", notas[0].Titulo)

	borrada, err := svc.Delete(ctx, notas[0].ID)
	require.NoError(t, err)
	assert.True(t, borrada)

	otraVez, err := svc.Delete(ctx, notas[0].ID)
	require.NoError(t, err)
	assert.False(t, otraVez)
}
