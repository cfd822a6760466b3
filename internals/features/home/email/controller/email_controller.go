package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"aptfee_backend/internals/features/home/email/dto"
	"aptfee_backend/internals/features/home/email/service"
	helper "aptfee_backend/internals/helpers"
)

type EmailController struct {
	Mailer service.Mailer
}

func NewEmailController(m service.Mailer) *EmailController {
	return &EmailController{Mailer: m}
}

// POST /api/email/send
func (ctrl *EmailController) SendText(c *fiber.Ctx) error {
	return ctrl.send(c, false)
}

// POST /api/email/send-html
func (ctrl *EmailController) SendHTML(c *fiber.Ctx) error {
	return ctrl.send(c, true)
}

func (ctrl *EmailController) send(c *fiber.Ctx, html bool) error {
	var body dto.SendEmailRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	if ctrl.Mailer == nil {
		return helper.JsonError(c, helper.ErrFeatureDisabled.WithMessage("Email is not configured"))
	}
	err := ctrl.Mailer.Send(c.UserContext(), service.Message{To: body.To, Subject: body.Subject, Body: body.Body, HTML: html})
	if errors.Is(err, service.ErrMailerNotConfigured) {
		return helper.JsonError(c, helper.ErrFeatureDisabled.WithMessage("Email is not configured"))
	}
	if err != nil {
		log.Printf("[ERROR] send email to %v: %v", body.To, err)
		return helper.JsonError(c, helper.ErrUncategorized.WithMessage("Failed to send email"))
	}
	return helper.JsonOK(c, "email sent", fiber.Map{"recipients": len(body.To)})
}
