// Package security limpia el texto libre que ingresa al sistema (mensajes
// de chat, notas de trayectoria) antes de persistirlo.
package security

import (
	"strings"

	"github.com/comunidar/comunidad-api/internal/application/ports"
	"github.com/microcosm-cc/bluemonday"
)

var _ ports.Sanitizador = (*Sanitizador)(nil)

// Sanitizador aplica una política de lista blanca mínima sobre HTML. Los
// campos de texto de la aplicación son texto plano con algo de énfasis;
// cualquier script, iframe o atributo de evento se elimina.
type Sanitizador struct {
	policy *bluemonday.Policy
}

// NewSanitizador construye el sanitizador con la política de la app:
// solo strong, em y br sobreviven; el resto de etiquetas se descarta
// conservando su texto.
func NewSanitizador() *Sanitizador {
	p := bluemonday.NewPolicy()
	p.AllowElements("strong", "em", "br")
	return &Sanitizador{policy: p}
}

// Sanitize limpia el HTML y normaliza los espacios de los bordes. Es
// idempotente: sanitizar dos veces produce el mismo resultado.
func (s *Sanitizador) Sanitize(raw string) string {
	return strings.TrimSpace(s.policy.Sanitize(raw))
}
