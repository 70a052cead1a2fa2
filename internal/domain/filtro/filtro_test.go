package filtro_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/comunidar/comunidad-api/internal/domain/filtro"
)

// Semántica de coincidencia: término vacío coincide siempre; valor vacío
// nunca coincide con un término no vacío; la comparación ignora mayúsculas.
func TestCoincideBusqueda_Semantica(t *testing.T) {
	casos := []struct {
		nombre  string
		valor   string
		termino string
		espera  bool
	}{
		{"valor vacío contra término", "", "x", false},
		{"término vacío coincide siempre", "Hector", "", true},
		{"case-insensitive", "Hector", "hec", true},
		{"contención en el medio", "Hector", "ECT", true},
		{"sin coincidencia", "Hector", "z", false},
		{"ambos vacíos", "", "", true},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.espera, filtro.CoincideBusqueda(c.valor, c.termino))
		})
	}
}

func TestSoloFecha_TruncaEnUTC(t *testing.T) {
	enUTC := time.Date(2025, 11, 3, 16, 25, 0, 0, time.UTC)
	assert.Equal(t, "2025-11-03", filtro.SoloFecha(enUTC))

	// Comportamiento conocido: 23:30 en UTC-3 ya es el día siguiente en UTC.
	// Se documenta y conserva, no se "corrige".
	menosTres := time.FixedZone("-03", -3*60*60)
	tarde := time.Date(2025, 11, 3, 23, 30, 0, 0, menosTres)
	assert.Equal(t, "2025-11-04", filtro.SoloFecha(tarde))
}

func TestSoloFechaTexto_Formatos(t *testing.T) {
	assert.Equal(t, "2025-11-03", filtro.SoloFechaTexto("2025-11-03"))
	assert.Equal(t, "2025-11-03", filtro.SoloFechaTexto("2025-11-03T16:25"))
	assert.Equal(t, "2025-11-03", filtro.SoloFechaTexto("2025-11-03T16:25:00Z"))
	assert.Equal(t, "", filtro.SoloFechaTexto("no es una fecha"))
}
