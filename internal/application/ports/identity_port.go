package ports

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// IdentityProvider define el puerto de salida hacia el proveedor de identidad externo.
// Cualquier adaptador (GoTrue por HTTP, verificación local del JWT, fake de tests) debe implementarlo.
// El contexto debe propagarse a la llamada de red para respetar la cancelación de la petición.
type IdentityProvider interface {
	// GetUserByToken resuelve el usuario dueño del access token.
	// Un error transporta el mensaje del proveedor; (nil, nil) significa token sin usuario.
	GetUserByToken(ctx context.Context, token string) (*entity.Identity, error)
}
