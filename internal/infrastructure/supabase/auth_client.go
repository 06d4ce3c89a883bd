package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/ports"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

var _ ports.IdentityProvider = (*AuthClient)(nil)

const userPath = "/auth/v1/user"

// AuthClient adaptador de IdentityProvider sobre la API REST de Supabase Auth (GoTrue).
// Usa net/http de la librería estándar; no requiere el SDK.
type AuthClient struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewAuthClient construye el cliente. baseURL es la URL del proyecto (https://<ref>.supabase.co).
func NewAuthClient(baseURL, anonKey string) *AuthClient {
	return &AuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		anonKey: anonKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ProviderError es un rechazo explícito de GoTrue (token expirado, firma inválida, usuario borrado...).
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string { return e.Message }

type userResponse struct {
	ID    string `json:"id"`
	Aud   string `json:"aud"`
	Email string `json:"email"`
}

type errorResponse struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
}

func (e errorResponse) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

// GetUserByToken llama a GET /auth/v1/user con el token del usuario.
func (c *AuthClient) GetUserByToken(ctx context.Context, token string) (*entity.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+userPath, nil)
	if err != nil {
		return nil, fmt.Errorf("supabase: crear HTTP request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("supabase: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("supabase: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("supabase: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		msg := ""
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil {
			msg = errResp.text()
		}
		if msg == "" {
			msg = fmt.Sprintf("supabase auth HTTP %d", resp.StatusCode)
		}
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: msg}
	}

	var user userResponse
	if err := json.Unmarshal(rawBody, &user); err != nil {
		return nil, fmt.Errorf("supabase: deserializar usuario: %w", err)
	}
	if user.ID == "" {
		return nil, nil
	}
	return &entity.Identity{ID: user.ID, Email: user.Email, Audience: user.Aud}, nil
}
