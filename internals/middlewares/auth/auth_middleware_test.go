package auth

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aptfee_backend/internals/features/users/auth/service"
	helper "aptfee_backend/internals/helpers"
	helperAuth "aptfee_backend/internals/helpers/auth"
)

type fakeVerifier map[string]*service.SessionClaims

func (f fakeVerifier) Verify(_ context.Context, token string, _ bool) (*service.SessionClaims, error) {
	if token == "expired" {
		return nil, helper.ErrTokenExpired
	}
	if cl, ok := f[token]; ok {
		return cl, nil
	}
	return nil, helper.ErrUnauthenticated
}

func newApp() *fiber.App {
	v := fakeVerifier{
		"admin-token":    {Scope: "ROLE_ADMIN", RegisteredClaims: jwt.RegisteredClaims{Subject: "admin@example.com", ID: "j1"}},
		"resident-token": {Scope: "ROLE_RESIDENT", RegisteredClaims: jwt.RegisteredClaims{Subject: "r@example.com", ID: "j2"}},
	}
	app := fiber.New()
	api := app.Group("/api", AuthMiddleware(v))
	api.Get("/me", func(c *fiber.Ctx) error { return c.SendString(helperAuth.GetSubject(c)) })
	api.Post("/buildings", Require("Only admin can access buildings.", helperAuth.CapManageProperty),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })
	api.Post("/payments/notification", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func do(t *testing.T, app *fiber.App, method, path, token string) (int, helper.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	var env helper.Envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp.StatusCode, env
}

func TestAuthMiddleware(t *testing.T) {
	app := newApp()

	status, env := do(t, app, "GET", "/api/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, helper.ErrUnauthenticated.Code, env.Code)

	status, env = do(t, app, "GET", "/api/me", "expired")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, helper.ErrTokenExpired.Code, env.Code)

	status, _ = do(t, app, "GET", "/api/me", "resident-token")
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, "POST", "/api/payments/notification", "")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRequireCapability(t *testing.T) {
	app := newApp()

	status, env := do(t, app, "POST", "/api/buildings", "resident-token")
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, helper.ErrUnauthorized.Code, env.Code)
	assert.Equal(t, "Only admin can access buildings.", env.Message)

	status, _ = do(t, app, "POST", "/api/buildings", "admin-token")
	assert.Equal(t, fiber.StatusCreated, status)
}
