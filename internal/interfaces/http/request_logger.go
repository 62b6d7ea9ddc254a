package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventaspro-admin-api/pkg/logger"
	"github.com/rs/zerolog"
)

// RequestLogger escribe una línea estructurada por petición: método, ruta, estado, latencia,
// request id y, si hay, el trabajador autenticado y el error interno.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// Deja que el ErrorHandler fije el estado antes de registrar.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		ev = ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP())
		if rid, ok := c.Locals("requestid").(string); ok {
			ev = ev.Str("request_id", rid)
		}
		if id := GetPersonID(c); id != 0 {
			ev = ev.Int64("person_id", id)
		}
		if err, ok := c.Locals(LocalError).(error); ok {
			ev = ev.Err(err)
		} else if chainErr != nil {
			ev = ev.Err(chainErr)
		}
		ev.Msg("http request")
		return nil
	}
}
