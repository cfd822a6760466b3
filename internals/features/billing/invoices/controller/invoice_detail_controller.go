package controller

import (
	"github.com/gofiber/fiber/v2"

	"aptfee_backend/internals/features/billing/invoices/dto"
	"aptfee_backend/internals/features/billing/invoices/service"
	helper "aptfee_backend/internals/helpers"
)

// InvoiceDetailController exposes line items. Writes go through the ledger so the
// invoice total and subscription schedule move with them.
type InvoiceDetailController struct {
	Ledger *service.LedgerService
}

func NewInvoiceDetailController(ledger *service.LedgerService) *InvoiceDetailController {
	return &InvoiceDetailController{Ledger: ledger}
}

// POST /api/invoice-details
func (ctrl *InvoiceDetailController) Create(c *fiber.Ctx) error {
	var body dto.CreateInvoiceDetailRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	d, err := ctrl.Ledger.AddLineItem(c.UserContext(), body.ApartmentID, body.ServiceID, body.Quantity)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonCreated(c, "invoice detail created", dto.FromDetail(d))
}

// GET /api/invoice-details
func (ctrl *InvoiceDetailController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctrl.Ledger.ListLineItems(c.UserContext(), p)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "", dto.FromDetails(rows), helper.BuildPagination(total, p))
}

// GET /api/invoices/:id/details
func (ctrl *InvoiceDetailController) ListByInvoice(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctrl.Ledger.ListLineItemsByInvoice(c.UserContext(), id, p)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "", dto.FromDetails(rows), helper.BuildPagination(total, p))
}

// GET /api/invoice-details/:id
func (ctrl *InvoiceDetailController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	d, err := ctrl.Ledger.GetLineItem(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromDetail(d))
}

// PUT /api/invoice-details/:id
func (ctrl *InvoiceDetailController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	var body dto.UpdateInvoiceDetailRequest
	if ok, err := helper.BindAndValidate(c, &body); !ok {
		return err
	}
	d, err := ctrl.Ledger.UpdateLineItem(c.UserContext(), id, body.Quantity, body.ServiceID)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonUpdated(c, "invoice detail updated", dto.FromDetail(d))
}

// DELETE /api/invoice-details/:id
func (ctrl *InvoiceDetailController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	if err := ctrl.Ledger.DeleteLineItem(c.UserContext(), id); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonDeleted(c, "invoice detail deleted", nil)
}
