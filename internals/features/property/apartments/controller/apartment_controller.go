package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptfee_backend/internals/features/property/apartments/dto"
	"aptfee_backend/internals/features/property/apartments/model"
	"aptfee_backend/internals/features/property/apartments/repository"
	buildingRepo "aptfee_backend/internals/features/property/buildings/repository"
	residentRepo "aptfee_backend/internals/features/users/residents/repository"
	helper "aptfee_backend/internals/helpers"
)

type ApartmentController struct {
	DB *gorm.DB
}

func NewApartmentController(db *gorm.DB) *ApartmentController {
	return &ApartmentController{DB: db}
}

// checkRefs makes sure the building (required) and resident (optional) exist.
func (ctrl *ApartmentController) checkRefs(ctx context.Context, a *model.Apartment) error {
	if _, err := buildingRepo.FindByID(ctx, ctrl.DB, a.BuildingID); err != nil {
		return err
	}
	if a.ResidentID != nil {
		if _, err := residentRepo.FindByID(ctx, ctrl.DB, *a.ResidentID); err != nil {
			return err
		}
	}
	return nil
}

// POST /api/apartments
func (ctrl *ApartmentController) Create(c *fiber.Ctx) error {
	var body dto.CreateApartmentRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	a := body.ToModel()
	if err := ctrl.checkRefs(c.UserContext(), a); err != nil {
		return helper.JsonError(c, err)
	}
	if err := repository.Create(c.UserContext(), ctrl.DB, a); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonCreated(c, "apartment created", dto.FromModel(a))
}

// GET /api/apartments?building_id=&resident_id=
func (ctrl *ApartmentController) List(c *fiber.Ctx) error {
	var f repository.Filter
	if s := c.Query("building_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, helper.ErrInvalidKey.WithMessage("Invalid building_id"))
		}
		f.BuildingID = &id
	}
	if s := c.Query("resident_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, helper.ErrInvalidKey.WithMessage("Invalid resident_id"))
		}
		f.ResidentID = &id
	}
	return ctrl.list(c, f)
}

// GET /api/buildings/:id/apartments
func (ctrl *ApartmentController) ListByBuilding(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	if _, err := buildingRepo.FindByID(c.UserContext(), ctrl.DB, id); err != nil {
		return helper.JsonError(c, err)
	}
	return ctrl.list(c, repository.Filter{BuildingID: &id})
}

// GET /api/residents/:id/apartments
func (ctrl *ApartmentController) ListByResident(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	if _, err := residentRepo.FindByID(c.UserContext(), ctrl.DB, id); err != nil {
		return helper.JsonError(c, err)
	}
	return ctrl.list(c, repository.Filter{ResidentID: &id})
}

func (ctrl *ApartmentController) list(c *fiber.Ctx, f repository.Filter) error {
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := repository.List(c.UserContext(), ctrl.DB, f, p)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /api/apartments/:id
func (ctrl *ApartmentController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	a, err := repository.FindByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromModel(a))
}

// PUT /api/apartments/:id
func (ctrl *ApartmentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	var body dto.UpdateApartmentRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	a, err := repository.FindByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	body.Apply(a)
	if err := ctrl.checkRefs(c.UserContext(), a); err != nil {
		return helper.JsonError(c, err)
	}
	if err := repository.Save(c.UserContext(), ctrl.DB, a); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonUpdated(c, "apartment updated", dto.FromModel(a))
}

// DELETE /api/apartments/:id
func (ctrl *ApartmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	if err := repository.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonDeleted(c, "apartment deleted", nil)
}
