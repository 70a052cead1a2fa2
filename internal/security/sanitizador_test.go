package security_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comunidar/comunidad-api/internal/security"
)

func TestSanitize_EliminaScriptsYAtributos(t *testing.T) {
	s := security.NewSanitizador()

	casos := []struct {
		nombre string
		in     string
		out    string
	}{
		{"texto plano pasa intacto", "hola, nos vemos el lunes", "hola, nos vemos el lunes"},
		{"script se elimina con su contenido", "hola <script>alert(1)</script>mundo", "hola mundo"},
		{"énfasis permitido sobrevive", "<strong>urgente</strong> y <em>leve</em>", "<strong>urgente</strong> y <em>leve</em>"},
		{"etiqueta no permitida conserva el texto", `<a href="https://evil">link</a>`, "link"},
		{"atributos de evento desaparecen", `<strong onclick="x()">ojo</strong>`, "<strong>ojo</strong>"},
		{"espacios de borde recortados", "  con margen \n", "con margen"},
		{"vacío queda vacío", "", ""},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.out, s.Sanitize(c.in))
		})
	}
}

func TestSanitize_EsIdempotente(t *testing.T) {
	s := security.NewSanitizador()

	entradas := []string{
		"hola <script>alert(1)</script><strong>mundo</strong>",
		"  texto con <iframe src=x></iframe> ruido  ",
		"plano",
	}
	for _, in := range entradas {
		una := s.Sanitize(in)
		assert.Equal(t, una, s.Sanitize(una))
	}
}
