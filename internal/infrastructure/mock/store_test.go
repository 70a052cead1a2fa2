package mock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidar/comunidad-api/internal/domain/entity"
	"github.com/comunidar/comunidad-api/internal/infrastructure/mock"
)

func nuevoStore(t *testing.T) *mock.Store {
	t.Helper()
	s := mock.NewStore()
	s.Retardo = 0
	return s
}

// Las lecturas devuelven copias profundas: mutar lo devuelto no toca el
// estado interno del store.
func TestStore_LecturasDevuelvenCopias(t *testing.T) {
	s := nuevoStore(t)

	todos := s.Usuarios.Read()
	require.NotEmpty(t, todos)
	todos[0].Nombre = "mutado"

	releido := s.Usuarios.FindByID(todos[0].ID)
	require.NotNil(t, releido)
	assert.NotEqual(t, "mutado", releido.Nombre)

	// También en campos con slices internos.
	camila := s.Usuarios.FindByID(6)
	require.NotNil(t, camila)
	require.NotEmpty(t, camila.Etiquetas)
	camila.Etiquetas[0] = 999

	otraVez := s.Usuarios.FindByID(6)
	assert.NotContains(t, otraVez.Etiquetas, 999)
}

func TestColeccion_InsertAsignaSiguienteID(t *testing.T) {
	s := nuevoStore(t)

	creado := s.Tags.Insert(entity.Tag{Nombre: "recreación"})
	assert.Equal(t, 5, creado.ID)

	// El id del llamador se ignora: manda siempre max+1.
	otro := s.Tags.Insert(entity.Tag{ID: 1, Nombre: "cultura"})
	assert.Equal(t, 6, otro.ID)

	// Un hueco en el medio no se reutiliza.
	require.True(t, s.Tags.Remove(2))
	tercero := s.Tags.Insert(entity.Tag{Nombre: "empleo"})
	assert.Equal(t, 7, tercero.ID)
}

func TestColeccion_UpdateConservaID(t *testing.T) {
	s := nuevoStore(t)

	actualizado := s.Tags.Update(3, func(tag *entity.Tag) {
		tag.ID = 999
		tag.Descripcion = "situación habitacional y hábitat"
	})
	require.NotNil(t, actualizado)
	assert.Equal(t, 3, actualizado.ID)
	assert.Equal(t, "situación habitacional y hábitat", actualizado.Descripcion)

	assert.Nil(t, s.Tags.Update(999, func(tag *entity.Tag) {}))
}

// Un mutador que asigna un slice retenido por el llamador no deja al
// store compartiendo esa memoria: mutar el slice después no cambia lo
// almacenado.
func TestColeccion_UpdateNoComparteSlicesDelLlamador(t *testing.T) {
	s := nuevoStore(t)

	etiquetas := []int{1, 2}
	actualizado := s.Usuarios.Update(5, func(u *entity.Usuario) {
		u.Etiquetas = etiquetas
	})
	require.NotNil(t, actualizado)
	require.Equal(t, []int{1, 2}, actualizado.Etiquetas)

	etiquetas[0] = 999

	releido := s.Usuarios.FindByID(5)
	require.NotNil(t, releido)
	assert.Equal(t, []int{1, 2}, releido.Etiquetas)
}

func TestColeccion_FindByIDInexistente(t *testing.T) {
	s := nuevoStore(t)
	assert.Nil(t, s.Usuarios.FindByID(999))
}

func TestStore_ResetRestauraSemillas(t *testing.T) {
	s := nuevoStore(t)

	s.Usuarios.Insert(entity.Usuario{Nombre: "Temporal", Rol: entity.RolUsmya})
	require.True(t, s.Tags.Remove(1))
	s.Mensajes.Reemplazar(nil)

	s.Reset()

	assert.Equal(t, 8, s.Usuarios.Len())
	assert.Equal(t, 4, s.Tags.Len())
	assert.Equal(t, 3, s.Mensajes.Len())
	require.NotNil(t, s.Tags.FindByID(1))
	assert.Equal(t, "educación", s.Tags.FindByID(1).Nombre)
}

func TestStore_GetStateEsUnaFoto(t *testing.T) {
	s := nuevoStore(t)

	foto := s.GetState()
	require.Len(t, foto.Usuarios, 8)

	s.Usuarios.Insert(entity.Usuario{Nombre: "Nueva", Rol: entity.RolUsmya})
	assert.Len(t, foto.Usuarios, 8, "la foto no sigue mutaciones posteriores")
	assert.Len(t, s.GetState().Usuarios, 9)
}
