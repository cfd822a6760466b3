package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"aptfee_backend/internals/features/billing/invoices/dto"
	"aptfee_backend/internals/features/billing/invoices/repository"
	"aptfee_backend/internals/features/billing/invoices/service"
	helper "aptfee_backend/internals/helpers"
)

type InvoiceController struct {
	Ledger *service.LedgerService
}

func NewInvoiceController(ledger *service.LedgerService) *InvoiceController {
	return &InvoiceController{Ledger: ledger}
}

// GET /api/invoices?apartment_id=&status=
func (ctrl *InvoiceController) List(c *fiber.Ctx) error {
	var f repository.InvoiceFilter
	if s := c.Query("apartment_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, helper.ErrInvalidKey.WithMessage("Invalid apartment_id"))
		}
		f.ApartmentID = &id
	}
	f.Status = strings.ToLower(strings.TrimSpace(c.Query("status")))

	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctrl.Ledger.ListInvoices(c.UserContext(), f, p)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "", dto.FromInvoices(rows), helper.BuildPagination(total, p))
}

// GET /api/apartments/:id/invoices
func (ctrl *InvoiceController) ListByApartment(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctrl.Ledger.ListInvoicesByApartment(c.UserContext(), id, p)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonList(c, "", dto.FromInvoices(rows), helper.BuildPagination(total, p))
}

// GET /api/invoices/:id
func (ctrl *InvoiceController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	inv, details, err := ctrl.Ledger.GetInvoice(c.UserContext(), id)
	if err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonOK(c, "", dto.FromInvoice(inv, details))
}

// DELETE /api/invoices/:id
func (ctrl *InvoiceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, err)
	}
	if err := ctrl.Ledger.DeleteInvoice(c.UserContext(), id); err != nil {
		return helper.JsonError(c, err)
	}
	return helper.JsonDeleted(c, "invoice deleted", nil)
}
