package controller

import (
	"github.com/gofiber/fiber/v2"

	"aptfee_backend/internals/features/home/notifications/dto"
	"aptfee_backend/internals/features/home/notifications/service"
	helper "aptfee_backend/internals/helpers"
	helperAuth "aptfee_backend/internals/helpers/auth"
)

type NotificationController struct {
	Svc *service.NotificationService
}

func NewNotificationController(svc *service.NotificationService) *NotificationController {
	return &NotificationController{Svc: svc}
}

// POST /api/notifications
func (ctrl *NotificationController) Create(c *fiber.Ctx) error {
	var body dto.CreateNotificationRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	n, err := ctrl.Svc.Create(c.UserContext(), body)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonCreated(c, "notification sent", dto.FromModel(n))
}

// GET /api/notifications
func (ctrl *NotificationController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctrl.Svc.List(c.UserContext(), p)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /api/notifications/:id
func (ctrl *NotificationController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	n, err := ctrl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromModel(n))
}

// GET /api/notifications/me
func (ctrl *NotificationController) Inbox(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctrl.Svc.Inbox(c.UserContext(), helperAuth.GetSubject(c), p)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "", dto.FromInbox(rows), helper.BuildPagination(total, p))
}

// POST /api/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	if err := ctrl.Svc.MarkRead(c.UserContext(), helperAuth.GetSubject(c), id); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonUpdated(c, "notification marked as read", nil)
}
