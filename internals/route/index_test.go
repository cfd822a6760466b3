package routes

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aptfee_backend/internals/configs"
	database "aptfee_backend/internals/databases"
	authService "aptfee_backend/internals/features/users/auth/service"
	paymentService "aptfee_backend/internals/features/finance/payments/service"
	helper "aptfee_backend/internals/helpers"
	"aptfee_backend/internals/seeds/residents"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	_, err = residents.SeedAdmin(db, "admin@example.com", "Admin1234")
	require.NoError(t, err)

	tokens := authService.NewTokenService(db, configs.Config{
		JWTSignerKey:       "test-signer-key-that-is-long-enough-for-hs512-signing-0123456789",
		JWTIssuer:          "aptfee.test",
		JWTValidDuration:   time.Hour,
		JWTRefreshDuration: 10 * time.Hour,
	})

	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	SetupRoutes(app, Deps{
		DB:       db,
		Tokens:   tokens,
		Payments: paymentService.NewPaymentService(db, nil, ""),
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token, body string) (int, helper.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	var env helper.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()
	status, env := call(t, app, "POST", "/api/auth/token", "", `{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, fiber.StatusOK, status)
	return env.Result.(map[string]any)["token"].(string)
}

func TestRegisterLoginAndGuardedRoutes(t *testing.T) {
	app := newTestApp(t)

	status, _ := call(t, app, "POST", "/api/residents", "", `{"full_name":"Ana Resident","email":"ana@example.com","password":"Resident1"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, env := call(t, app, "GET", "/api/residents/me", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, helper.ErrUnauthenticated.Code, env.Code)

	resident := login(t, app, "ana@example.com", "Resident1")
	status, env = call(t, app, "GET", "/api/residents/me", resident, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ana@example.com", env.Result.(map[string]any)["email"])

	// residents may read the catalogue but not change it
	status, _ = call(t, app, "GET", "/api/buildings", resident, "")
	assert.Equal(t, fiber.StatusOK, status)
	status, env = call(t, app, "POST", "/api/buildings", resident, `{"name":"Tower Z"}`)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, helper.ErrUnauthorized.Code, env.Code)

	admin := login(t, app, "admin@example.com", "Admin1234")
	status, _ = call(t, app, "POST", "/api/buildings", admin, `{"name":"Tower Z"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	status, env = call(t, app, "GET", "/api/residents", admin, "")
	require.Equal(t, fiber.StatusOK, status)
	assert.EqualValues(t, 2, env.Pagination.Total)

	// a logged out token is rejected at the boundary
	status, _ = call(t, app, "POST", "/api/auth/logout", "", `{"token":"`+resident+`"}`)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = call(t, app, "GET", "/api/residents/me", resident, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestPaymentWebhookIsPublic(t *testing.T) {
	app := newTestApp(t)

	// no server key configured, so the signature cannot match; the point is that auth is skipped
	status, env := call(t, app, "POST", "/api/payments/notification", "", `{"order_id":"x","status_code":"200","gross_amount":"1.00","signature_key":"abc"}`)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "invalid signature", env.Message)
}
