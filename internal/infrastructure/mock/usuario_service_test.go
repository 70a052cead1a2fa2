package mock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/domain"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
	"github.com/comunidar/comunidad-api/internal/infrastructure/mock"
)

func idsDe(usuarios []entity.Usuario) []int {
	ids := make([]int, 0, len(usuarios))
	for _, u := range usuarios {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestUsuarioService_GetByIDInexistenteEsNilNil(t *testing.T) {
	svc := mock.NewUsuarioService(nuevoStore(t))

	u, err := svc.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUsuarioService_SearchPorNombreDNIYAlias(t *testing.T) {
	svc := mock.NewUsuarioService(nuevoStore(t))
	ctx := context.Background()

	porAlias, err := svc.Search(ctx, "luca")
	require.NoError(t, err)
	assert.Equal(t, []int{5}, idsDe(porAlias))

	porDNI, err := svc.Search(ctx, "47333444")
	require.NoError(t, err)
	assert.Equal(t, []int{6}, idsDe(porDNI))

	porApellido, err := svc.Search(ctx, "medina")
	require.NoError(t, err)
	assert.Equal(t, []int{4}, idsDe(porApellido))

	todos, err := svc.Search(ctx, "")
	require.NoError(t, err)
	assert.Len(t, todos, 8, "término vacío devuelve todos")
}

func TestUsuarioService_PatchRolEsInmutable(t *testing.T) {
	store := nuevoStore(t)
	svc := mock.NewUsuarioService(store)
	ctx := context.Background()

	u, err := svc.Patch(ctx, 5, func(u *entity.Usuario) {
		u.Rol = entity.RolAdmin
		u.Barrio = "otro barrio"
	})
	require.ErrorIs(t, err, domain.ErrRolInmutable)
	assert.Nil(t, u)

	// El rechazo es atómico: tampoco persiste el resto del cambio.
	intacto := store.Usuarios.FindByID(5)
	require.NotNil(t, intacto)
	assert.Equal(t, entity.RolUsmya, intacto.Rol)
	assert.Equal(t, "El Retiro", intacto.Barrio)
}

func TestUsuarioService_PatchCampoPermitido(t *testing.T) {
	svc := mock.NewUsuarioService(nuevoStore(t))

	u, err := svc.Patch(context.Background(), 5, func(u *entity.Usuario) {
		u.Telefono = "2215559999"
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "2215559999", u.Telefono)
	assert.Equal(t, 5, u.ID)
}

// Patch con un campo slice no deja al store aliasado a la memoria del
// llamador: mutar el slice original después no reescribe lo guardado.
func TestUsuarioService_PatchConSliceNoComparteMemoria(t *testing.T) {
	svc := mock.NewUsuarioService(nuevoStore(t))
	ctx := context.Background()

	etiquetas := []int{2, 3}
	req := dto.PatchUsuarioRequest{Etiquetas: &etiquetas}
	u, err := svc.Patch(ctx, 5, req.Aplicar)
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, []int{2, 3}, u.Etiquetas)

	etiquetas[0] = 999

	releido, err := svc.GetByID(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, releido)
	assert.Equal(t, []int{2, 3}, releido.Etiquetas)
}

func TestUsuarioService_PatchInexistenteEsNilNil(t *testing.T) {
	svc := mock.NewUsuarioService(nuevoStore(t))

	u, err := svc.Patch(context.Background(), 999, func(u *entity.Usuario) {})
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUsuarioService_DeleteInformaExistencia(t *testing.T) {
	svc := mock.NewUsuarioService(nuevoStore(t))
	ctx := context.Background()

	borrado, err := svc.Delete(ctx, 5)
	require.NoError(t, err)
	assert.True(t, borrado)

	otraVez, err := svc.Delete(ctx, 5)
	require.NoError(t, err)
	assert.False(t, otraVez)
}

func TestUsuarioService_PendientesYAprobacion(t *testing.T) {
	store := nuevoStore(t)
	svc := mock.NewUsuarioService(store)
	ctx := context.Background()

	pendientes, err := svc.GetUsersPendingApproval(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, idsDe(pendientes))

	aprobado, err := svc.PostVerified(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, aprobado)
	assert.Equal(t, entity.VerificacionAprobado, aprobado.IsVerified)
	assert.False(t, aprobado.RequiereAprobacion)

	pendientes, err = svc.GetUsersPendingApproval(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{8}, idsDe(pendientes))
}

// Flujo completo: un alta por registro nace pendiente, aparece en la
// bandeja de aprobación y deja de estarlo al verificarse.
func TestRegistroYAprobacion_FlujoCompleto(t *testing.T) {
	store := nuevoStore(t)
	registro := mock.NewRegistroService(store)
	usuarios := mock.NewUsuarioService(store)
	ctx := context.Background()

	creado, err := registro.PostUsmya(ctx, dto.RegistroUsmyaRequest{
		Nombre: "Naiara", Apellido: "Gimenez", DNI: "49000111",
		FechaNacimiento: "2011-06-12", CreadoPor: 4,
	})
	require.NoError(t, err)
	require.NotNil(t, creado)
	assert.Equal(t, 9, creado.ID)
	assert.Equal(t, entity.RolUsmya, creado.Rol)
	assert.True(t, creado.EstaPendiente())

	pendientes, err := usuarios.GetUsersPendingApproval(ctx)
	require.NoError(t, err)
	assert.Contains(t, idsDe(pendientes), 9)

	_, err = usuarios.PostVerified(ctx, 9)
	require.NoError(t, err)

	pendientes, err = usuarios.GetUsersPendingApproval(ctx)
	require.NoError(t, err)
	assert.NotContains(t, idsDe(pendientes), 9)
}

func TestRegistroService_AltaSinNombreODNIFalla(t *testing.T) {
	registro := mock.NewRegistroService(nuevoStore(t))
	ctx := context.Background()

	_, err := registro.PostUsmya(ctx, dto.RegistroUsmyaRequest{DNI: "49000111"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = registro.PostReferente(ctx, dto.RegistroReferenteRequest{Nombre: "Ana"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = registro.PostEfector(ctx, dto.RegistroEfectorRequest{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// Disponibilidad de usmyas: el dataset vincula al referente 4 con los
// usmyas 5 y 6, y al efector 3 con el 6.
func TestUsuarioService_UsmyasDisponibles(t *testing.T) {
	svc := mock.NewUsuarioService(nuevoStore(t))
	ctx := context.Background()

	paraReferente, err := svc.SearchAvailableUsmya(ctx, "", 4)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, idsDe(paraReferente))

	paraEfector, err := svc.SearchAvailableUsmyaForEfector(ctx, "", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 7}, idsDe(paraEfector))

	// El término de búsqueda se aplica después de la exclusión.
	filtrado, err := svc.SearchAvailableUsmyaForEfector(ctx, "lucas", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{5}, idsDe(filtrado))

	// Un referente sin vínculos ve todos los usmyas.
	sinVinculos, err := svc.SearchAvailableUsmya(ctx, "", 2)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 7}, idsDe(sinVinculos))
}
