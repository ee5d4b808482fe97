package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Usuarios-api/internal/application/usecase"
	"github.com/jhoicas/Usuarios-api/internal/domain/repository"
	"github.com/jhoicas/Usuarios-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Usuarios-api/internal/interfaces/http"
)

const (
	testAppName   = "loginApp"
	testJWTSecret = "test-secret-key-for-unit-tests"
	usuariosURL   = "/api/usuarios"
)

func ptr[T any](v T) *T { return &v }

// buildTestApp arma la app Fiber con el router real sobre el almacén en memoria.
func buildTestApp(t *testing.T, jwtSecret string) *fiber.App {
	t.Helper()
	repo := memory.NewUsuariosRepository()
	return buildTestAppWithRepo(t, repo, memory.NewTxRunner(repo), jwtSecret, repo.Ping)
}

func buildTestAppWithRepo(t *testing.T, repo repository.UsuariosRepository, tx usecase.UsuariosTxRunner, jwtSecret string, health func(context.Context) error) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(apphttp.RequestID())
	apphttp.Router(app, apphttp.RouterDeps{
		UsuariosUC: usecase.NewUsuariosUseCase(repo, tx, nil),
		AppName:    testAppName,
		Pagination: apphttp.PaginationConfig{DefaultSize: 20, MaxSize: 2000},
		JWTSecret:  jwtSecret,
		Health:     health,
	})
	return app
}

// doRequest lanza la petición; body nil = sin cuerpo, []byte = tal cual, otro = JSON.
func doRequest(t *testing.T, app *fiber.App, method, target string, body any, headers map[string]string) *http.Response {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
