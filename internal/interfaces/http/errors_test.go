package http_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func errorApp(production bool, logs io.Writer, fail error) *fiber.App {
	log := logger.New(logger.Config{Env: "test", Level: "info", Out: logs})
	errs := apphttp.NewErrorNormalizer(log, production)
	app := fiber.New(fiber.Config{ErrorHandler: errs.Handle})
	app.Get("/falla", func(c *fiber.Ctx) error { return fail })
	app.Get("/contexto", func(c *fiber.Ctx) error {
		return errs.Respond(c, fail, "Error fetching products")
	})
	return app
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func TestErrorNormalizer_FiberErrorConservaStatus(t *testing.T) {
	cases := []struct {
		err  error
		code int
		body string
	}{
		{fiber.ErrNotFound, http.StatusNotFound, `{"success":false,"error":"Not found"}`},
		{fiber.ErrMethodNotAllowed, http.StatusMethodNotAllowed, `{"success":false,"error":"Method not allowed"}`},
		{fiber.NewError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"), http.StatusRequestEntityTooLarge,
			`{"success":false,"error":"Request Entity Too Large"}`},
	}
	for _, tc := range cases {
		app := errorApp(true, io.Discard, tc.err)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/falla", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, tc.code, resp.StatusCode)
		assert.JSONEq(t, tc.body, readBody(t, resp))
	}
}

func TestErrorNormalizer_RegistraContexto(t *testing.T) {
	var logs bytes.Buffer
	app := errorApp(false, &logs, errors.New("relation \"productos\" does not exist"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/contexto", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"error":"relation \"productos\" does not exist"}`, readBody(t, resp))
	assert.Contains(t, logs.String(), `"context":"Error fetching products"`)
	assert.Contains(t, logs.String(), `"level":"error"`)
}

func TestErrorNormalizer_ProduccionOcultaDetalle(t *testing.T) {
	app := errorApp(true, io.Discard, errors.New("password authentication failed for user postgres"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/falla", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error"}`, readBody(t, resp))
}

func TestErrorNormalizer_ErroresDeDominio(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "Not found"},
		{domain.ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method not allowed"},
		{fmt.Errorf("%w: unexpected EOF", domain.ErrInvalidBody), http.StatusBadRequest, "Invalid JSON body"},
		{domain.ErrMissingFields, http.StatusBadRequest, "Missing required fields"},
		{domain.ErrInvalidPrice, http.StatusBadRequest, "Invalid price"},
		{domain.ErrNoToken, http.StatusUnauthorized, "Unauthorized"},
		{domain.ErrRoleNotAllowed, http.StatusUnauthorized, "Unauthorized"},
		// el id lo genera la app: un duplicado es un fallo interno
		{domain.ErrDuplicate, http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		app := errorApp(true, io.Discard, tc.err)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/falla", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, tc.code, resp.StatusCode, tc.err.Error())
		assert.JSONEq(t, `{"success":false,"error":"`+tc.msg+`"}`, readBody(t, resp))
	}
}
