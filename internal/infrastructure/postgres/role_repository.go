package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo lee user_roles. Solo lectura: las asignaciones se gestionan fuera de este servicio.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador de lectura de roles.
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// ErrMultipleRoles indica más de una fila en user_roles para el mismo usuario.
var ErrMultipleRoles = errors.New("user_roles: más de un rol para el usuario")

// GetRole devuelve el rol del usuario o "" si no tiene fila en user_roles.
// Con más de una fila devuelve ErrMultipleRoles: elegir una sería arbitrario.
func (r *RoleRepo) GetRole(ctx context.Context, userID string) (string, error) {
	rows, err := r.q.Query(ctx, `SELECT role FROM user_roles WHERE user_id = $1 LIMIT 2`, userID)
	if err != nil {
		return "", fmt.Errorf("get user role: %w", err)
	}
	roles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", fmt.Errorf("get user role: %w", err)
	}
	switch len(roles) {
	case 0:
		return "", nil
	case 1:
		return roles[0], nil
	default:
		return "", ErrMultipleRoles
	}
}
