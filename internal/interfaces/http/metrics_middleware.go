package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/comunidar/comunidad-api/internal/metrics"
)

// MetricsMiddleware registra método, ruta y status de cada petición. Usa
// la ruta registrada (con parámetros sin expandir) para acotar la
// cardinalidad de las labels.
func MetricsMiddleware(collector *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()
		ruta := c.Route().Path
		collector.RecordHTTPRequest(c.Method(), ruta, c.Response().StatusCode(), time.Since(inicio))
		return err
	}
}
