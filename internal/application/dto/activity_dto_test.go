package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comunidar/comunidad-api/internal/application/dto"
	"github.com/comunidar/comunidad-api/internal/domain/entity"
)

func TestCombinarFechaHora(t *testing.T) {
	assert.Equal(t, "2025-11-03T16:00", dto.CombinarFechaHora("2025-11-03", "16:00"))
	assert.Equal(t, "2025-11-03T00:00", dto.CombinarFechaHora("2025-11-03", ""), "hora ausente defaultea a medianoche")
	assert.Equal(t, "", dto.CombinarFechaHora("", "16:00"), "sin fecha no hay timestamp")

	// Una fecha ya combinada pasa sin tocar, aun con una hora distinta.
	assert.Equal(t, "2025-11-03T16:00:00Z", dto.CombinarFechaHora("2025-11-03T16:00:00Z", "18:00"))
}

func TestSepararFechaHora(t *testing.T) {
	fecha, hora := dto.SepararFechaHora("2025-11-03T16:00")
	assert.Equal(t, "2025-11-03", fecha)
	assert.Equal(t, "16:00", hora)

	// Los segundos y la zona se descartan.
	fecha, hora = dto.SepararFechaHora("2025-11-03T16:00:00.000Z")
	assert.Equal(t, "2025-11-03", fecha)
	assert.Equal(t, "16:00", hora)

	fecha, hora = dto.SepararFechaHora("2025-11-03")
	assert.Equal(t, "2025-11-03", fecha)
	assert.Empty(t, hora)
}

func TestActivityDTO_IdaYVuelta(t *testing.T) {
	original := entity.Actividad{
		Nombre: "Taller de radio", Descripcion: "Producción con jóvenes",
		Fecha: "2025-11-05", HoraInicio: "17:30", HoraFin: "19:00",
		Responsable: "Marta Benítez", Lugar: "SUM del club",
		EsFija: false, Estado: entity.ActividadAprobada, IDEspacio: 1,
	}

	d := dto.ToActivityDTO(original)
	assert.Equal(t, "2025-11-05T17:30", d.AssignmentDate)
	assert.Equal(t, "Approved", d.Status)
	require.NotNil(t, d.AssigneeNationalID)
	assert.Equal(t, "0", *d.AssigneeNationalID, "documentos que el dominio no guarda viajan como 0")

	vuelta := dto.FromActivityDTO(d)
	assert.Equal(t, original.Nombre, vuelta.Nombre)
	assert.Equal(t, original.Fecha, vuelta.Fecha)
	assert.Equal(t, original.HoraInicio, vuelta.HoraInicio)
	assert.Equal(t, original.HoraFin, vuelta.HoraFin)
	assert.Equal(t, entity.ActividadAprobada, vuelta.Estado)
	assert.Equal(t, 1, vuelta.IDEspacio)
}

func TestFromActivityDTO_EstadosDelWire(t *testing.T) {
	assert.Equal(t, entity.ActividadPendiente,
		dto.FromActivityDTO(dto.ActivityDTO{Status: "Pending"}).Estado)
	assert.Equal(t, entity.ActividadRechazada,
		dto.FromActivityDTO(dto.ActivityDTO{Status: "Rejected"}).Estado)

	// Un estado desconocido baja a minúsculas.
	assert.Equal(t, "draft", dto.FromActivityDTO(dto.ActivityDTO{Status: "Draft"}).Estado)
}
