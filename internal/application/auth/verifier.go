package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/tienda-api/internal/application/ports"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Failure clasifica por qué no se autorizó una petición.
type Failure int

const (
	FailureNone Failure = iota
	FailureMissingToken
	FailureInvalidToken
	FailureRoleNotAllowed
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureMissingToken:
		return "missing_token"
	case FailureInvalidToken:
		return "invalid_token"
	case FailureRoleNotAllowed:
		return "role_not_allowed"
	default:
		return fmt.Sprintf("failure(%d)", int(f))
	}
}

// Result es el resultado de Verify: o bien Identity, o bien Failure con su Reason.
// Cause guarda el error técnico subyacente (red, base de datos) solo para logs.
type Result struct {
	Identity *entity.Identity
	Failure  Failure
	Reason   string
	Cause    error
}

// OK indica si la petición quedó autenticada y con rol permitido.
func (r Result) OK() bool {
	return r.Failure == FailureNone && r.Identity != nil
}

// Err traduce el fallo al error de dominio correspondiente (nil si OK).
func (r Result) Err() error {
	switch r.Failure {
	case FailureNone:
		if r.Identity == nil {
			return domain.ErrInvalidToken
		}
		return nil
	case FailureMissingToken:
		return domain.ErrNoToken
	case FailureRoleNotAllowed:
		return domain.ErrRoleNotAllowed
	default:
		return domain.ErrInvalidToken
	}
}

func fail(f Failure, reason string, cause error) Result {
	return Result{Failure: f, Reason: reason, Cause: cause}
}

// Verifier valida el Bearer token contra el proveedor de identidad y el rol contra la lista blanca.
// No cachea nada: cada petición consulta identidad y rol, así una revocación de rol aplica de inmediato.
type Verifier struct {
	identities ports.IdentityProvider
	roles      repository.RoleRepository
	allowed    map[string]struct{}
}

// NewVerifier construye el verificador con los roles permitidos (ej. admin, editor).
func NewVerifier(identities ports.IdentityProvider, roles repository.RoleRepository, allowedRoles []string) *Verifier {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}
	return &Verifier{identities: identities, roles: roles, allowed: allowed}
}

// Verify recibe el valor del header Authorization. Nunca devuelve error ni hace panic:
// todos los fallos se reportan en el Result.
func (v *Verifier) Verify(ctx context.Context, authorization string) Result {
	if strings.TrimSpace(authorization) == "" {
		return fail(FailureMissingToken, "No token provided", nil)
	}
	token, ok := bearerToken(authorization)
	if !ok {
		return fail(FailureInvalidToken, "Invalid token", nil)
	}

	identity, err := v.identities.GetUserByToken(ctx, token)
	if err != nil {
		reason := err.Error()
		if reason == "" {
			reason = "Invalid token"
		}
		return fail(FailureInvalidToken, reason, err)
	}
	if identity == nil || identity.ID == "" {
		return fail(FailureInvalidToken, "Invalid token", nil)
	}

	role, err := v.roles.GetRole(ctx, identity.ID)
	if err != nil {
		return fail(FailureRoleNotAllowed, "Unauthorized", err)
	}
	if _, ok := v.allowed[role]; !ok {
		return fail(FailureRoleNotAllowed, "Unauthorized", nil)
	}

	verified := *identity
	verified.Role = role
	return Result{Identity: &verified}
}

// bearerToken extrae <token> de "Bearer <token>".
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
