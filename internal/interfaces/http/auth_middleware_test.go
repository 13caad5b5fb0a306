package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopecaspro/gestor-api/internal/application/auth"
	"github.com/autopecaspro/gestor-api/internal/domain/entity"
	"github.com/autopecaspro/gestor-api/pkg/jwt"
)

const testSecret = "segredo-de-teste"

func newTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/", AuthMiddleware(testSecret))
	protected.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": GetUserID(c),
			"role":    GetRole(c),
		})
	})
	protected.Get("/finance", RequireCapability(auth.ActionManageFinance), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	app := newTestApp()
	resp := doRequest(t, app, "/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	app := newTestApp()
	resp := doRequest(t, app, "/me", "Token abc")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	app := newTestApp()
	resp := doRequest(t, app, "/me", "Bearer nao-e-um-token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	app := newTestApp()
	token, err := jwt.Generate("outro-segredo", 1, "ana", entity.RoleCaixa, "gestor-test", 60)
	require.NoError(t, err)

	resp := doRequest(t, app, "/me", "Bearer "+token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app := newTestApp()
	token, err := jwt.Generate(testSecret, 42, "carlos", entity.RoleGerente, "gestor-test", 60)
	require.NoError(t, err)

	resp := doRequest(t, app, "/me", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireCapabilityForbidden(t *testing.T) {
	app := newTestApp()
	token, err := jwt.Generate(testSecret, 7, "ana", entity.RoleCaixa, "gestor-test", 60)
	require.NoError(t, err)

	resp := doRequest(t, app, "/finance", "Bearer "+token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireCapabilityAllowed(t *testing.T) {
	app := newTestApp()
	token, err := jwt.Generate(testSecret, 7, "rita", entity.RoleFinanceiro, "gestor-test", 60)
	require.NoError(t, err)

	resp := doRequest(t, app, "/finance", "Bearer "+token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
