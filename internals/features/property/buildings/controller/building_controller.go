package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptfee_backend/internals/features/property/buildings/dto"
	"aptfee_backend/internals/features/property/buildings/repository"
	helper "aptfee_backend/internals/helpers"
)

type BuildingController struct {
	DB *gorm.DB
}

func NewBuildingController(db *gorm.DB) *BuildingController {
	return &BuildingController{DB: db}
}

// POST /api/buildings
func (ctrl *BuildingController) Create(c *fiber.Ctx) error {
	var body dto.CreateBuildingRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	b := body.ToModel()
	if err := repository.Create(c.UserContext(), ctrl.DB, b); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonCreated(c, "building created", dto.FromModel(b))
}

// GET /api/buildings
func (ctrl *BuildingController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := repository.List(c.UserContext(), ctrl.DB, p)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /api/buildings/:id
func (ctrl *BuildingController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	b, err := repository.FindByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromModel(b))
}

// PUT /api/buildings/:id
func (ctrl *BuildingController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	var body dto.UpdateBuildingRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	b, err := repository.FindByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	body.Apply(b)
	if err := repository.Save(c.UserContext(), ctrl.DB, b); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonUpdated(c, "building updated", dto.FromModel(b))
}

// DELETE /api/buildings/:id
func (ctrl *BuildingController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	if err := repository.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonDeleted(c, "building deleted", nil)
}
