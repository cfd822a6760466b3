package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	database "aptfee_backend/internals/databases"
	"aptfee_backend/internals/features/property/contracts/model"
	residentModel "aptfee_backend/internals/features/users/residents/model"
	helper "aptfee_backend/internals/helpers"
)

type memStore struct {
	objects map[string]string
	deleted []string
}

func (m *memStore) Upload(_ context.Context, dir string, fh *multipart.FileHeader) (string, string, error) {
	key := fmt.Sprintf("contracts/%s/%d_%s", dir, len(m.objects), fh.Filename)
	m.objects[key] = fh.Filename
	return key, "application/pdf", nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *memStore) PublicURL(key string) string { return "https://cdn.test/" + key }

func setup(t *testing.T, store *memStore) (*fiber.App, *gorm.DB, *model.Contract) {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	r := &residentModel.Resident{FullName: "Resident", Email: "r@example.com", Password: "x"}
	require.NoError(t, db.Create(r).Error)
	ct := &model.Contract{ResidentID: r.ID, Status: "active"}
	require.NoError(t, db.Create(ct).Error)

	var ctrl *ContractController
	if store != nil {
		ctrl = NewContractController(db, store)
	} else {
		ctrl = NewContractController(db, nil)
	}
	app := fiber.New()
	app.Post("/contracts", ctrl.Create)
	app.Post("/contracts/:id/document", ctrl.UploadDocument)
	return app, db, ct
}

func upload(t *testing.T, app *fiber.App, id, filename string) (int, helper.Envelope) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, _ = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/contracts/"+id+"/document", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	var env helper.Envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestUploadDocumentReplacesPrevious(t *testing.T) {
	store := &memStore{objects: map[string]string{}}
	app, db, ct := setup(t, store)

	status, _ := upload(t, app, ct.ID.String(), "lease.pdf")
	require.Equal(t, fiber.StatusOK, status)
	var first model.Contract
	require.NoError(t, db.First(&first, "id = ?", ct.ID).Error)
	assert.NotEmpty(t, first.DocumentPath)

	status, env := upload(t, app, ct.ID.String(), "lease-v2.pdf")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{first.DocumentPath}, store.deleted)

	result := env.Result.(map[string]any)
	assert.True(t, strings.HasPrefix(result["document_url"].(string), "https://cdn.test/contracts/"))
}

func TestUploadDocumentWithoutStorage(t *testing.T) {
	app, _, ct := setup(t, nil)
	status, env := upload(t, app, ct.ID.String(), "lease.pdf")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, helper.ErrFeatureDisabled.Code, env.Code)
}

func TestUploadDocumentRejectsUnknownType(t *testing.T) {
	app, _, ct := setup(t, &memStore{objects: map[string]string{}})
	status, env := upload(t, app, ct.ID.String(), "lease.exe")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, helper.ErrInvalidKey.Code, env.Code)
}

func TestCreateContractConflictsPerResident(t *testing.T) {
	app, _, ct := setup(t, nil)
	body := fmt.Sprintf(`{"resident_id":%q}`, ct.ResidentID)
	req := httptest.NewRequest("POST", "/contracts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}
