package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

const defaultErrorContext = "An error occurred"

// ErrorNormalizer convierte errores internos en el sobre {success:false, error} con status 500.
// En producción el detalle se reemplaza por "Internal server error" para no filtrar información interna.
type ErrorNormalizer struct {
	log        *logger.Logger
	production bool
}

// NewErrorNormalizer construye el normalizador.
func NewErrorNormalizer(log *logger.Logger, production bool) *ErrorNormalizer {
	return &ErrorNormalizer{log: log, production: production}
}

// Respond registra el error con su contexto y responde 500.
func (n *ErrorNormalizer) Respond(c *fiber.Ctx, err error, context string) error {
	n.log.Error().
		Err(err).
		Str("context", context).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", GetRequestID(c)).
		Msg(context)

	detail := dto.MsgInternalServerError
	if !n.production && err != nil {
		detail = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(detail))
}

// clientErrors traduce errores de dominio a status y mensaje público. Lo que no aparece aquí es un 500.
// domain.ErrDuplicate no figura: el id lo genera la app, así que un duplicado es un fallo interno.
var clientErrors = []struct {
	err     error
	status  int
	message string
}{
	{domain.ErrNotFound, fiber.StatusNotFound, dto.MsgNotFound},
	{domain.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed, dto.MsgMethodNotAllowed},
	{domain.ErrInvalidBody, fiber.StatusBadRequest, dto.MsgInvalidBody},
	{domain.ErrMissingFields, fiber.StatusBadRequest, dto.MsgMissingFields},
	{domain.ErrInvalidPrice, fiber.StatusBadRequest, dto.MsgInvalidPrice},
	{domain.ErrNoToken, fiber.StatusUnauthorized, dto.MsgUnauthorized},
	{domain.ErrInvalidToken, fiber.StatusUnauthorized, dto.MsgUnauthorized},
	{domain.ErrRoleNotAllowed, fiber.StatusUnauthorized, dto.MsgUnauthorized},
}

// clientError devuelve status y mensaje si err es un error del cliente (4xx).
func clientError(err error) (int, string, bool) {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			return ce.status, ce.message, true
		}
	}
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		switch fe.Code {
		case fiber.StatusNotFound:
			return fe.Code, dto.MsgNotFound, true
		case fiber.StatusMethodNotAllowed:
			return fe.Code, dto.MsgMethodNotAllowed, true
		}
		return fe.Code, fe.Message, true
	}
	return 0, "", false
}

// Handle es el fiber.ErrorHandler de la app: captura todo error devuelto o panic recuperado.
// Los errores de dominio del cliente y los *fiber.Error 4xx conservan su status con el sobre uniforme.
func (n *ErrorNormalizer) Handle(c *fiber.Ctx, err error) error {
	if status, msg, ok := clientError(err); ok {
		n.log.Warn().
			Err(err).
			Int("status", status).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", GetRequestID(c)).
			Msg(msg)
		return c.Status(status).JSON(dto.Fail(msg))
	}
	return n.Respond(c, err, defaultErrorContext)
}

// NotFound responde 404 a cualquier ruta no registrada.
func NotFound(c *fiber.Ctx) error {
	return domain.ErrNotFound
}

// MethodNotAllowed responde 405 en rutas conocidas con método no soportado.
func MethodNotAllowed(c *fiber.Ctx) error {
	return domain.ErrMethodNotAllowed
}
