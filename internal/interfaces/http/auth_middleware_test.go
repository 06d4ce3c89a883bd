package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// stubVerifier devuelve siempre el mismo resultado y recuerda el header recibido.
type stubVerifier struct {
	result   auth.Result
	received string
}

func (s *stubVerifier) Verify(_ context.Context, authorization string) auth.Result {
	s.received = authorization
	return s.result
}

// buildMiddlewareApp construye una aplicación Fiber mínima con:
//   - RequireRole para autenticar y autorizar
//   - Un handler dummy que devuelve la identidad si pasa el middleware
func buildMiddlewareApp(v *stubVerifier) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.NewErrorNormalizer(logger.Nop(), true).Handle})
	app.Get("/protected", apphttp.RequireRole(v, logger.Nop()), func(c *fiber.Ctx) error {
		id := apphttp.GetIdentity(c)
		return c.JSON(fiber.Map{"id": id.ID, "role": id.Role})
	})
	return app
}

func TestRequireRole_IdentidadVerificadaLlegaAlHandler(t *testing.T) {
	v := &stubVerifier{result: auth.Result{Identity: &entity.Identity{ID: "u-1", Role: entity.RoleAdmin}}}
	app := buildMiddlewareApp(v)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer abc")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer abc", v.received, "el header se pasa íntegro al verificador")
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "u-1", body["id"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

func TestRequireRole_CualquierFalloResponde401Uniforme(t *testing.T) {
	for _, res := range []auth.Result{
		{Failure: auth.FailureMissingToken, Reason: "No token provided"},
		{Failure: auth.FailureInvalidToken, Reason: "invalid JWT"},
		{Failure: auth.FailureRoleNotAllowed, Reason: "Unauthorized", Cause: errors.New("db caída")},
	} {
		t.Run(res.Failure.String(), func(t *testing.T) {
			app := buildMiddlewareApp(&stubVerifier{result: res})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Unauthorized", body["error"], "el motivo real no se expone al cliente")
		})
	}
}
