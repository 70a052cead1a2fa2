// Package filtro agrupa los helpers puros de búsqueda y normalización de
// fechas usados por los servicios para filtrar en memoria.
package filtro

import (
	"strings"
	"time"
)

// Formatos aceptados al interpretar fechas en texto.
var formatosFecha = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// CoincideBusqueda hace un test de contención case-insensitive. Un término
// vacío coincide con cualquier valor; un valor vacío nunca coincide con un
// término no vacío.
func CoincideBusqueda(valor, termino string) bool {
	return strings.Contains(strings.ToLower(valor), strings.ToLower(termino))
}

// SoloFecha trunca un instante al día calendario en UTC (AAAA-MM-DD).
//
// Ojo: el corte de día es en UTC, no en la zona local; instantes cercanos a
// medianoche pueden caer en el día anterior o siguiente para quien no está
// en UTC. Se conserva ese comportamiento por compatibilidad con los filtros
// de igualdad por fecha existentes.
func SoloFecha(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// SoloFechaTexto interpreta una fecha en texto y la trunca con SoloFecha.
// Si el texto no parsea con ningún formato conocido devuelve cadena vacía.
func SoloFechaTexto(s string) string {
	for _, f := range formatosFecha {
		if t, err := time.Parse(f, s); err == nil {
			return SoloFecha(t)
		}
	}
	return ""
}
