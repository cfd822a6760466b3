package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/property/contracts/dto"
	"aptfee_backend/internals/features/property/contracts/model"
	"aptfee_backend/internals/features/property/contracts/repository"
	residentRepo "aptfee_backend/internals/features/users/residents/repository"
	helper "aptfee_backend/internals/helpers"
	ossHelper "aptfee_backend/internals/helpers/oss"
)

type ContractController struct {
	DB    *gorm.DB
	Store ossHelper.DocumentStore // nil when object storage is not configured
}

func NewContractController(db *gorm.DB, store ossHelper.DocumentStore) *ContractController {
	return &ContractController{DB: db, Store: store}
}

func (ctrl *ContractController) toDTO(m *model.Contract) dto.ContractResponse {
	if ctrl.Store == nil {
		return dto.FromModel(m, nil)
	}
	return dto.FromModel(m, ctrl.Store.PublicURL)
}

// POST /api/contracts
func (ctrl *ContractController) Create(c *fiber.Ctx) error {
	var body dto.CreateContractRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	if _, err := residentRepo.FindByID(c.UserContext(), ctrl.DB, body.ResidentID); err != nil {
		return helper.JsonError(c, err)
	}
	m := body.ToModel()
	if err := repository.Create(c.UserContext(), ctrl.DB, m); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonCreated(c, "contract created", ctrl.toDTO(m))
}

// GET /api/contracts
func (ctrl *ContractController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := repository.List(c.UserContext(), ctrl.DB, p)
	if err != nil {
		return helper.JsonError(c, err)
	}
	out := make([]dto.ContractResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ctrl.toDTO(&rows[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPagination(total, p))
}

// GET /api/contracts/:id
func (ctrl *ContractController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	m, err := repository.FindByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "", ctrl.toDTO(m))
}

// PUT /api/contracts/:id
func (ctrl *ContractController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	var body dto.UpdateContractRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	m, err := repository.FindByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	body.Apply(m)
	if err := repository.Save(c.UserContext(), ctrl.DB, m); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonUpdated(c, "contract updated", ctrl.toDTO(m))
}

// DELETE /api/contracts/:id
func (ctrl *ContractController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	m, err := repository.FindByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	if err := repository.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		return helper.JsonError(c, err)
	}
	if ctrl.Store != nil && m.DocumentPath != "" {
		if err := ctrl.Store.Delete(c.UserContext(), m.DocumentPath); err != nil {
			log.Printf("[WARN] contract %s: delete document %s: %v", id, m.DocumentPath, err)
		}
	}
	return helper.JsonDeleted(c, "contract deleted", nil)
}

// POST /api/contracts/:id/document (multipart field "file")
// The previous document is removed after the new one is stored.
func (ctrl *ContractController) UploadDocument(c *fiber.Ctx) error {
	if ctrl.Store == nil {
		return helper.JsonError(c, helper.ErrFeatureDisabled.WithMessage("Document storage is not configured"))
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, helper.ErrInvalidKey.WithMessage("File not found"))
	}
	if constants.DetectFileTypeFromExt(fh.Filename) == constants.DocumentKindUnknown {
		return helper.JsonError(c, helper.ErrInvalidKey.WithMessage("Unsupported document type"))
	}
	m, err := repository.FindByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, err)
	}

	key, ct, err := ctrl.Store.Upload(c.UserContext(), m.ResidentID.String(), fh)
	if err != nil {
		return helper.JsonError(c, err)
	}
	old := m.DocumentPath
	m.DocumentPath, m.DocumentType = key, ct
	if err := repository.Save(c.UserContext(), ctrl.DB, m); err != nil {
		_ = ctrl.Store.Delete(c.UserContext(), key)
		return helper.JsonError(c, err)
	}
	if old != "" && old != key {
		if err := ctrl.Store.Delete(c.UserContext(), old); err != nil {
			log.Printf("[WARN] contract %s: delete old document %s: %v", id, old, err)
		}
	}
	return helper.JsonUpdated(c, "document uploaded", ctrl.toDTO(m))
}
