package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// LocalIdentity clave de Locals para la identidad verificada.
const LocalIdentity = "identity"

// tokenVerifier es el contrato mínimo que necesita el middleware. Lo implementa *auth.Verifier.
type tokenVerifier interface {
	Verify(ctx context.Context, authorization string) auth.Result
}

// RequireRole valida el Bearer token y el rol (lista blanca del verificador) y deja la identidad en c.Locals.
// Cualquier fallo devuelve el error de dominio, que el ErrorHandler traduce a 401 "Unauthorized";
// el motivo real solo va al log.
func RequireRole(verifier tokenVerifier, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := verifier.Verify(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if !res.OK() {
			log.Warn().
				Err(res.Cause).
				AnErr("auth_error", res.Err()).
				Str("failure", res.Failure.String()).
				Str("reason", res.Reason).
				Str("path", c.Path()).
				Str("request_id", GetRequestID(c)).
				Msg("petición no autorizada")
			return res.Err()
		}
		c.Locals(LocalIdentity, res.Identity)
		return c.Next()
	}
}

// GetIdentity devuelve la identidad del contexto (después de RequireRole).
func GetIdentity(c *fiber.Ctx) *entity.Identity {
	id, _ := c.Locals(LocalIdentity).(*entity.Identity)
	return id
}
