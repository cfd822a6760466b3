package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	authHelper "aptfee_backend/internals/features/users/auth/helper"
	"aptfee_backend/internals/features/users/residents/dto"
	"aptfee_backend/internals/features/users/residents/model"
	"aptfee_backend/internals/features/users/residents/repository"
	helper "aptfee_backend/internals/helpers"
	helperAuth "aptfee_backend/internals/helpers/auth"
)

type ResidentController struct {
	DB *gorm.DB
}

func NewResidentController(db *gorm.DB) *ResidentController {
	return &ResidentController{DB: db}
}

// POST /api/residents (public)
func (ctrl *ResidentController) Register(c *fiber.Ctx) error {
	var body dto.CreateResidentRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	body.Normalize()

	r := body.ToModel()
	hash, err := authHelper.HashPassword(body.Password)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return helper.JsonError(c, err)
	}
	r.Password = hash
	r.Role = constants.RoleResident

	if err := repository.Create(c.UserContext(), ctrl.DB, r); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonCreated(c, "resident registered", dto.FromModel(r))
}

// GET /api/residents/me
func (ctrl *ResidentController) Me(c *fiber.Ctx) error {
	r, err := repository.FindByEmail(c.UserContext(), ctrl.DB, helperAuth.GetSubject(c))
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromModel(r))
}

// GET /api/residents
func (ctrl *ResidentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := repository.List(c.UserContext(), ctrl.DB, p)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /api/residents/:id
func (ctrl *ResidentController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	r, err := repository.FindByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromModel(r))
}

// PUT /api/residents/:id
// A resident may update their own profile; role changes need CapManageResidents.
func (ctrl *ResidentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	var body dto.UpdateResidentRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}

	ctx := c.UserContext()
	r, err := repository.FindByID(ctx, ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, err)
	}

	isAdmin := helperAuth.GetCapabilities(c).Has(helperAuth.CapManageResidents)
	if !isAdmin && !strings.EqualFold(r.Email, helperAuth.GetSubject(c)) {
		return helper.JsonError(c, helper.ErrUnauthorized)
	}
	if body.Role != nil && !isAdmin {
		return helper.JsonError(c, helper.ErrUnauthorized.WithMessage("Only admins can change roles"))
	}

	if err := applyUpdate(r, &body); err != nil {
		return helper.JsonError(c, err)
	}
	if err := repository.Save(ctx, ctrl.DB, r); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonUpdated(c, "resident updated", dto.FromModel(r))
}

func applyUpdate(r *model.Resident, body *dto.UpdateResidentRequest) error {
	if body.FullName != nil {
		r.FullName = strings.TrimSpace(*body.FullName)
	}
	if body.Phone != nil {
		r.Phone = strings.TrimSpace(*body.Phone)
	}
	if body.Password != nil {
		hash, err := authHelper.HashPassword(*body.Password)
		if err != nil {
			return err
		}
		r.Password = hash
	}
	if body.Role != nil {
		r.Role = *body.Role
	}
	return nil
}

// DELETE /api/residents/:id
func (ctrl *ResidentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	if err := repository.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonDeleted(c, "resident deleted", nil)
}
