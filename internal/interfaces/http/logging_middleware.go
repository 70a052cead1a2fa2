package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/comunidar/comunidad-api/pkg/logger"
)

// LoggingMiddleware registra cada petición con método, ruta, status y
// duración. El user_id se agrega cuando el middleware de auth ya corrió.
func LoggingMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		ev := log.Info()
		status := c.Response().StatusCode()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		if id := GetUserID(c); id != 0 {
			ev = ev.Int("user_id", id)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(inicio)).
			Msg("request")
		return err
	}
}
