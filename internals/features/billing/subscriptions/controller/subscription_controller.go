package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"aptfee_backend/internals/features/billing/subscriptions/dto"
	"aptfee_backend/internals/features/billing/subscriptions/service"
	helper "aptfee_backend/internals/helpers"
)

type SubscriptionController struct {
	Svc *service.SubscriptionService
}

func NewSubscriptionController(svc *service.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{Svc: svc}
}

// POST /api/subscriptions
func (ctrl *SubscriptionController) Create(c *fiber.Ctx) error {
	var body dto.CreateSubscriptionRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	m, err := ctrl.Svc.Create(c.UserContext(), body)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonCreated(c, "subscription created", dto.FromModel(m))
}

// GET /api/subscriptions?apartment_id=
func (ctrl *SubscriptionController) List(c *fiber.Ctx) error {
	var apartmentID *uuid.UUID
	if s := c.Query("apartment_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, helper.ErrInvalidKey.WithMessage("Invalid apartment_id"))
		}
		apartmentID = &id
	}
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctrl.Svc.List(c.UserContext(), apartmentID, p)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /api/subscriptions/:id
func (ctrl *SubscriptionController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	m, err := ctrl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromModel(m))
}

// PUT /api/subscriptions/:id
func (ctrl *SubscriptionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	var body dto.UpdateSubscriptionRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	m, err := ctrl.Svc.Update(c.UserContext(), id, body)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonUpdated(c, "subscription updated", dto.FromModel(m))
}

// DELETE /api/subscriptions/:id
func (ctrl *SubscriptionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	if err := ctrl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonDeleted(c, "subscription deleted", nil)
}
