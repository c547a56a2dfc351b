package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/asset-tracker/internal/application/dto"
	"github.com/jhoicas/asset-tracker/pkg/logger"
)

const localsErrorKey = "request_error"

// RequestLogger registra método, ruta, estado y latencia de cada petición.
// Los errores devueltos por los handlers pasan por el ErrorHandler de la app antes de registrar,
// para que el estado logueado sea el que recibe el cliente.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
			c.Locals(localsErrorKey, chainErr)
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		if err, ok := c.Locals(localsErrorKey).(error); ok {
			ev = ev.Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición http")
		return nil
	}
}

// ErrorHandler responde los errores que llegan a Fiber (rutas inexistentes, cuerpo demasiado
// grande, panics recuperados) con el mismo formato que el resto de la API.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	body := dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		body.Message = fe.Message
		switch code {
		case fiber.StatusNotFound:
			body.Code = "NOT_FOUND"
		case fiber.StatusRequestEntityTooLarge:
			body.Code = "BODY_TOO_LARGE"
		case fiber.StatusMethodNotAllowed:
			body.Code = "METHOD_NOT_ALLOWED"
		default:
			if code < fiber.StatusInternalServerError {
				body.Code = "BAD_REQUEST"
			}
		}
	}
	return c.Status(code).JSON(body)
}
