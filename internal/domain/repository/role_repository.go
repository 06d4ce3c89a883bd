package repository

import "context"

// RoleRepository lee la asignación de rol de un usuario (tabla user_roles).
// Devuelve "" sin error si el usuario no tiene rol asignado.
type RoleRepository interface {
	GetRole(ctx context.Context, userID string) (string, error)
}
