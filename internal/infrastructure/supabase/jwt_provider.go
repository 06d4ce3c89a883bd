package supabase

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/ports"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

var _ ports.IdentityProvider = (*JWTProvider)(nil)

// JWTProvider resuelve la identidad verificando la firma del access token con el JWT secret del proyecto,
// sin llamada de red. No detecta sesiones cerradas antes de la expiración del token.
type JWTProvider struct {
	secret string
}

// NewJWTProvider construye el proveedor local.
func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{secret: secret}
}

// GetUserByToken valida el token y devuelve la identidad de sus claims.
func (p *JWTProvider) GetUserByToken(_ context.Context, token string) (*entity.Identity, error) {
	claims, err := jwt.Parse(p.secret, token)
	if err != nil {
		return nil, err
	}
	return &entity.Identity{ID: claims.Subject, Email: claims.Email, Audience: jwt.AudienceAuthenticated}, nil
}
