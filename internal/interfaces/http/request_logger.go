package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tallersoft/stockcaja/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, estado y latencia.
// Los errores de handler ya se tradujeron a respuesta; aquí solo se observa.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
		} else if status >= fiber.StatusBadRequest {
			evt = log.Warn()
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http")
		return err
	}
}
