package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

func TestToUserDTO_AusenciasComoNull(t *testing.T) {
	d := dto.ToUserDTO(entity.Usuario{
		Nombre: "Lucas", Rol: entity.RolUsmya, IsVerified: entity.VerificacionAprobado,
	})

	b, err := json.Marshal(d)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(b, &wire))
	assert.Equal(t, "Lucas", wire["name"])
	assert.Nil(t, wire["lastname"], "el apellido ausente viaja como null")
	assert.Nil(t, wire["phoneNumber"])
	assert.Equal(t, "Usmya", wire["role"])
	assert.Equal(t, "Aprobado", wire["status"])
	assert.NotContains(t, wire, "workspaceId", "cero se omite")
}

func TestFromUserDTO_ReconstruyeDominio(t *testing.T) {
	idEspacio := 1
	u := dto.FromUserDTO(dto.UserDTO{
		UUID:        "42",
		Name:        dto.Texto("Marta"),
		Lastname:    dto.Texto("Benítez"),
		NationalID:  dto.Texto("27888999"),
		Address:     dto.Texto("Calle 7 n 1234, El Retiro"),
		Role:        "Agente",
		Status:      dto.Texto("Aprobado"),
		WorkspaceID: &idEspacio,
	})

	assert.Equal(t, 42, u.ID, "uuid numérico se mapea a id")
	assert.Equal(t, "42", u.UUID)
	assert.Equal(t, entity.RolAgente, u.Rol)
	assert.Equal(t, entity.VerificacionAprobado, u.IsVerified)
	assert.Equal(t, "Calle 7 n 1234", u.DireccionResidencia)
	assert.Equal(t, "El Retiro", u.Barrio)
	assert.Equal(t, 1, u.IDEspacio)
}

func TestFromUserDTO_FullNameComoRespaldo(t *testing.T) {
	u := dto.FromUserDTO(dto.UserDTO{
		UUID:     "7",
		FullName: dto.Texto("Brian Ojeda"),
		Role:     "Usmya",
	})
	assert.Equal(t, "Brian Ojeda", u.Nombre)
	assert.Empty(t, u.Apellido)

	// Con name presente, fullName se ignora.
	con := dto.FromUserDTO(dto.UserDTO{
		Name:     dto.Texto("Brian"),
		FullName: dto.Texto("otro nombre"),
		Role:     "Usmya",
	})
	assert.Equal(t, "Brian", con.Nombre)
}

func TestFromUserDTO_UUIDNoNumerico(t *testing.T) {
	u := dto.FromUserDTO(dto.UserDTO{UUID: "a3f1-uuid-real", Role: "Admin"})
	assert.Zero(t, u.ID)
	assert.Equal(t, "a3f1-uuid-real", u.UUID)
}

func TestWorkspaceDTO_NationalIDSiemprePresente(t *testing.T) {
	d := dto.ToWorkspaceDTO(entity.Espacio{Nombre: "Merendero Los Horneros", Tipo: entity.EspacioMerendero})
	require.NotNil(t, d.NationalID)
	assert.Equal(t, "0", *d.NationalID, "sin documento viaja el literal 0")

	conDNI := dto.ToWorkspaceDTO(entity.Espacio{Nombre: "Club", DNIEncargado: "18222333"})
	require.NotNil(t, conDNI.NationalID)
	assert.Equal(t, "18222333", *conDNI.NationalID)
}

func TestWorkspaceDTO_IdaYVuelta(t *testing.T) {
	original := entity.Espacio{
		Nombre: "Centro de Salud n 42", Telefono: "2214447002",
		Direccion: "Av. 90 n 1210", Barrio: "Villa Elvira",
		Tipo: entity.EspacioCentroSalud, Encargado: "Dra. Inés Gallo",
		DNIEncargado: "21444555", Horario: "Lunes a sábado 8 a 16",
		PoblacionVinculada: []string{"adolescencias"},
		ActividadPrincipal: "consultorio adolescente",
		TieneInternet:      true, TieneDispositivos: true,
	}
	vuelta := dto.FromWorkspaceDTO(dto.ToWorkspaceDTO(original))

	assert.Equal(t, original.Nombre, vuelta.Nombre)
	assert.Equal(t, original.Tipo, vuelta.Tipo)
	assert.Equal(t, original.Direccion, vuelta.Direccion)
	assert.Equal(t, original.Barrio, vuelta.Barrio)
	assert.Equal(t, original.PoblacionVinculada, vuelta.PoblacionVinculada)
	assert.True(t, vuelta.TieneInternet)
}
