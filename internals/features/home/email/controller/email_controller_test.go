package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aptfee_backend/internals/features/home/email/service"
	helper "aptfee_backend/internals/helpers"
)

type fakeMailer struct {
	sent []service.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg service.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func post(t *testing.T, app *fiber.App, path, body string) (int, helper.Envelope) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var env helper.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func newApp(m service.Mailer) *fiber.App {
	ctrl := NewEmailController(m)
	app := fiber.New()
	app.Post("/email/send", ctrl.SendText)
	app.Post("/email/send-html", ctrl.SendHTML)
	return app
}

func TestSendHTMLEmail(t *testing.T) {
	m := &fakeMailer{}
	app := newApp(m)

	status, _ := post(t, app, "/email/send-html", `{"to":["ana@example.com"],"subject":"Invoice","body":"<p>hi</p>"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, m.sent, 1)
	assert.True(t, m.sent[0].HTML)

	status, _ = post(t, app, "/email/send", `{"to":["ana@example.com"],"subject":"Invoice","body":"hi"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.False(t, m.sent[1].HTML)
}

func TestSendEmailRejectsBadAddress(t *testing.T) {
	m := &fakeMailer{}
	status, _ := post(t, newApp(m), "/email/send", `{"to":["not-an-email"],"subject":"x","body":"y"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Empty(t, m.sent)
}

func TestSendEmailFailures(t *testing.T) {
	status, env := post(t, newApp(nil), "/email/send", `{"to":["ana@example.com"],"subject":"x","body":"y"}`)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, helper.ErrFeatureDisabled.Code, env.Code)

	status, _ = post(t, newApp(&fakeMailer{err: errors.New("dial tcp: refused")}), "/email/send", `{"to":["ana@example.com"],"subject":"x","body":"y"}`)
	assert.Equal(t, fiber.StatusInternalServerError, status)
}
