package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"aptfee_backend/internals/features/finance/payments/dto"
	"aptfee_backend/internals/features/finance/payments/repository"
	"aptfee_backend/internals/features/finance/payments/service"
	helper "aptfee_backend/internals/helpers"
	helperAuth "aptfee_backend/internals/helpers/auth"
)

type PaymentController struct {
	Svc *service.PaymentService
}

func NewPaymentController(svc *service.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

// POST /api/payments
func (ctrl *PaymentController) Create(c *fiber.Ctx) error {
	var body dto.CreatePaymentRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	p, err := ctrl.Svc.CreatePayment(c.UserContext(), body)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonCreated(c, "payment created", dto.FromModel(p))
}

// GET /api/payments?invoice_id=&status=
func (ctrl *PaymentController) List(c *fiber.Ctx) error {
	var f repository.Filter
	if s := c.Query("invoice_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, helper.ErrInvalidKey.WithMessage("Invalid invoice_id"))
		}
		f.InvoiceID = &id
	}
	f.Status = strings.ToLower(strings.TrimSpace(c.Query("status")))

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctrl.Svc.List(c.UserContext(), f, p)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "", dto.FromModels(rows), helper.BuildPagination(total, p))
}

// GET /api/payments/:id
func (ctrl *PaymentController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	p, err := ctrl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromModel(p))
}

// POST /api/payments/checkout
// Residents may only pay invoices of an apartment they occupy.
func (ctrl *PaymentController) Checkout(c *fiber.Ctx) error {
	var body dto.CheckoutRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	owner := ""
	if !helperAuth.GetCapabilities(c).Has(helperAuth.CapManagePayments) {
		owner = helperAuth.GetSubject(c)
	}
	out, err := ctrl.Svc.Checkout(c.UserContext(), body.InvoiceID, owner)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonCreated(c, "checkout created", out)
}

// POST /api/payments/notification (public, signature checked)
func (ctrl *PaymentController) Notification(c *fiber.Ctx) error {
	var body dto.MidtransNotification
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, helper.ErrInvalidKey.WithMessage("Invalid payload"))
	}
	p, err := ctrl.Svc.HandleNotification(c.UserContext(), body, c.Body())
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "notification processed", fiber.Map{
		"payment_id":         p.ID,
		"payment_status":     p.Status,
		"transaction_status": body.TransactionStatus,
	})
}
