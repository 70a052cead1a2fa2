package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comunidar/comunidad-api/internal/application/dto"
)

func TestSplitAddressParts(t *testing.T) {
	casos := []struct {
		nombre       string
		address      string
		neighborhood string
		direccion    string
		barrio       string
	}{
		{"sin coma todo es dirección", "Calle 7 n 1234", "", "Calle 7 n 1234", ""},
		{"última parte como barrio", "Calle 7 n 1234, El Retiro", "", "Calle 7 n 1234", "El Retiro"},
		{"barrio explícito gana", "Calle 7 n 1234, otra cosa", "El Retiro", "Calle 7 n 1234", "El Retiro"},
		{"barrio explícito sin coma", "Diagonal 74 n 560", "Villa Elvira", "Diagonal 74 n 560", "Villa Elvira"},
		{"espacios recortados", " Calle 44 n 2890 ,  El Retiro ", "", "Calle 44 n 2890", "El Retiro"},
		{"vacía", "", "", "", ""},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			direccion, barrio := dto.SplitAddressParts(c.address, c.neighborhood)
			assert.Equal(t, c.direccion, direccion)
			assert.Equal(t, c.barrio, barrio)
		})
	}
}

// Limitación conocida de la heurística: una coma dentro de la calle hace
// que el tramo final se lea como barrio. Se conserva, no se "arregla".
func TestSplitAddressParts_ComaAmbigua(t *testing.T) {
	direccion, barrio := dto.SplitAddressParts("Calle 3, depto 2, Villa Elvira", "")
	assert.Equal(t, "Calle 3, depto 2", direccion)
	assert.Equal(t, "Villa Elvira", barrio)

	// Y con un barrio explícito la cola de la calle se pierde igual.
	direccion, barrio = dto.SplitAddressParts("Calle 3, depto 2", "Villa Elvira")
	assert.Equal(t, "Calle 3", direccion)
	assert.Equal(t, "Villa Elvira", barrio)
}

func TestCanonicalizar_RolesYEstados(t *testing.T) {
	assert.Equal(t, "Admin", dto.CanonicalizarRol("admin"))
	assert.Equal(t, "Usmya", dto.CanonicalizarRol("USMYA"))
	assert.Equal(t, "", dto.CanonicalizarRol(""))

	// Un valor fuera del mapa pasa capitalizado tal cual viene.
	assert.Equal(t, "Voluntario", dto.CanonicalizarRol("voluntario"))

	assert.Equal(t, "Centro De Salud", dto.CanonicalizarTipoEspacio("centro de salud"))
	assert.Equal(t, "ONG", dto.CanonicalizarTipoEspacio("ong"))

	assert.Equal(t, "Pending", dto.CanonicalizarEstadoActividad("pendiente"))
	assert.Equal(t, "Approved", dto.CanonicalizarEstadoActividad("aprobada"))
	assert.Equal(t, "Rejected", dto.CanonicalizarEstadoActividad("rechazada"))
}
