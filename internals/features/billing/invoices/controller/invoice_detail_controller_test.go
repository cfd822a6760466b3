package controller

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "aptfee_backend/internals/databases"
	"aptfee_backend/internals/features/billing/invoices/service"
	serviceModel "aptfee_backend/internals/features/billing/services/model"
	subscriptionModel "aptfee_backend/internals/features/billing/subscriptions/model"
	apartmentModel "aptfee_backend/internals/features/property/apartments/model"
	buildingModel "aptfee_backend/internals/features/property/buildings/model"
	helper "aptfee_backend/internals/helpers"
	"aptfee_backend/internals/helpers/dbtime"
)

type fixture struct {
	app       *fiber.App
	apartment string
	service   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	b := &buildingModel.Building{Name: "Tower B"}
	require.NoError(t, db.Create(b).Error)
	a := &apartmentModel.Apartment{RoomNumber: "707", BuildingID: b.ID}
	require.NoError(t, db.Create(a).Error)
	s := &serviceModel.Service{Name: "Cleaning", UnitPrice: decimal.RequireFromString("100.00")}
	require.NoError(t, db.Create(s).Error)
	require.NoError(t, db.Create(&subscriptionModel.Subscription{
		ApartmentID:     a.ID,
		ServiceID:       s.ID,
		Frequency:       "monthly",
		NextBillingDate: dbtime.NewDate(2024, time.March, 1),
		Status:          "active",
	}).Error)

	ledger := service.NewLedgerService(db)
	inv := NewInvoiceController(ledger)
	det := NewInvoiceDetailController(ledger)

	app := fiber.New()
	app.Get("/invoices/:id", inv.Get)
	app.Get("/apartments/:id/invoices", inv.ListByApartment)
	app.Post("/invoice-details", det.Create)
	app.Put("/invoice-details/:id", det.Update)
	app.Delete("/invoice-details/:id", det.Delete)

	return fixture{app: app, apartment: a.ID.String(), service: s.ID.String()}
}

func send(t *testing.T, app *fiber.App, method, path, body string) (int, helper.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	var env helper.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestCreateDetailThenReadInvoice(t *testing.T) {
	f := newFixture(t)

	status, env := send(t, f.app, "POST", "/invoice-details",
		`{"apartment_id":"`+f.apartment+`","service_id":"`+f.service+`","quantity":2}`)
	require.Equal(t, fiber.StatusCreated, status)
	detail := env.Result.(map[string]any)
	assert.Equal(t, "200", detail["total"])
	invoiceID := detail["invoice_id"].(string)

	status, env = send(t, f.app, "GET", "/invoices/"+invoiceID, "")
	require.Equal(t, fiber.StatusOK, status)
	inv := env.Result.(map[string]any)
	assert.Equal(t, "200", inv["total_amount"])
	assert.Equal(t, "2024-03-01", inv["due_date"])
	assert.Equal(t, "pending", inv["status"])
	assert.Len(t, inv["details"], 1)

	status, env = send(t, f.app, "GET", "/apartments/"+f.apartment+"/invoices", "")
	require.Equal(t, fiber.StatusOK, status)
	require.NotNil(t, env.Pagination)
	assert.EqualValues(t, 1, env.Pagination.Total)
}

func TestCreateDetailValidation(t *testing.T) {
	f := newFixture(t)

	status, _ := send(t, f.app, "POST", "/invoice-details",
		`{"apartment_id":"`+f.apartment+`","service_id":"`+f.service+`","quantity":-3}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = send(t, f.app, "POST", "/invoice-details",
		`{"apartment_id":"`+f.apartment+`","service_id":"`+f.service+`","quantity":1000001}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env := send(t, f.app, "DELETE", "/invoice-details/not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, helper.ErrInvalidKey.Code, env.Code)
}

func TestUpdateDetailUnknownReturnsNotFound(t *testing.T) {
	f := newFixture(t)

	status, env := send(t, f.app, "PUT", "/invoice-details/7d5c1f9e-8a51-4c1b-9a35-2b1f0d6f0a11", `{"quantity":1}`)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, helper.ErrInvoiceDetailNotFound.Code, env.Code)
}
