package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/billing/invoices/controller"
	"aptfee_backend/internals/features/billing/invoices/service"
	helperAuth "aptfee_backend/internals/helpers/auth"
	authMiddleware "aptfee_backend/internals/middlewares/auth"
)

func InvoiceRoutes(api fiber.Router, db *gorm.DB) {
	ledger := service.NewLedgerService(db)
	invoiceCtrl := controller.NewInvoiceController(ledger)
	detailCtrl := controller.NewInvoiceDetailController(ledger)

	read := authMiddleware.Require("", helperAuth.CapReadBilling)
	manage := authMiddleware.Require(constants.RoleErrorAdmin("invoices"), helperAuth.CapManageBilling)

	inv := api.Group("/invoices")
	inv.Get("/", read, invoiceCtrl.List)
	inv.Get("/:id", read, invoiceCtrl.Get)
	inv.Get("/:id/details", read, detailCtrl.ListByInvoice)
	inv.Delete("/:id", manage, invoiceCtrl.Delete)

	api.Get("/apartments/:id/invoices", read, invoiceCtrl.ListByApartment)

	det := api.Group("/invoice-details")
	det.Get("/", read, detailCtrl.List)
	det.Get("/:id", read, detailCtrl.Get)
	det.Post("/", manage, detailCtrl.Create)
	det.Put("/:id", manage, detailCtrl.Update)
	det.Delete("/:id", manage, detailCtrl.Delete)
}
