package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptfee_backend/internals/features/billing/services/dto"
	"aptfee_backend/internals/features/billing/services/repository"
	helper "aptfee_backend/internals/helpers"
)

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{DB: db}
}

// POST /api/services
func (ctrl *ServiceController) Create(c *fiber.Ctx) error {
	var body dto.CreateServiceRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	if err := body.Check(); err != nil {
		return helper.JsonError(c, err)
	}
	taken, err := repository.ExistsByName(c.UserContext(), ctrl.DB, body.Name, uuid.Nil)
	if err != nil {
		return helper.JsonError(c, err)
	}
	if taken {
		return helper.JsonError(c, helper.ErrServiceExisted)
	}
	s := body.ToModel()
	if err := repository.Create(c.UserContext(), ctrl.DB, s); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonCreated(c, "service created", dto.FromModel(s))
}

// GET /api/services
func (ctrl *ServiceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := repository.List(c.UserContext(), ctrl.DB, p)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /api/services/:id
func (ctrl *ServiceController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	s, err := repository.FindByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromModel(s))
}

// PUT /api/services/:id
func (ctrl *ServiceController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	var body dto.UpdateServiceRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	if err := body.Check(); err != nil {
		return helper.JsonError(c, err)
	}
	s, err := repository.FindByID(c.UserContext(), ctrl.DB, id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	if body.Name != nil {
		taken, err := repository.ExistsByName(c.UserContext(), ctrl.DB, *body.Name, id)
		if err != nil {
			return helper.JsonError(c, err)
		}
		if taken {
			return helper.JsonError(c, helper.ErrServiceExisted)
		}
	}
	body.Apply(s)
	if err := repository.Save(c.UserContext(), ctrl.DB, s); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonUpdated(c, "service updated", dto.FromModel(s))
}

// DELETE /api/services/:id
func (ctrl *ServiceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	if err := repository.Delete(c.UserContext(), ctrl.DB, id); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonDeleted(c, "service deleted", nil)
}
