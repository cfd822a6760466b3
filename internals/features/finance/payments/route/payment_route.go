package route

import (
	"github.com/gofiber/fiber/v2"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/finance/payments/controller"
	"aptfee_backend/internals/features/finance/payments/service"
	helperAuth "aptfee_backend/internals/helpers/auth"
	authMiddleware "aptfee_backend/internals/middlewares/auth"
)

// PaymentRoutes mounts the authenticated payment endpoints.
func PaymentRoutes(api fiber.Router, svc *service.PaymentService) {
	ctrl := controller.NewPaymentController(svc)

	read := authMiddleware.Require("", helperAuth.CapManagePayments, helperAuth.CapReadBilling)
	manage := authMiddleware.Require(constants.RoleErrorAdmin("payments"), helperAuth.CapManagePayments)
	checkout := authMiddleware.Require("", helperAuth.CapCheckout)

	g := api.Group("/payments")
	g.Post("/checkout", checkout, ctrl.Checkout)
	g.Get("/", read, ctrl.List)
	g.Get("/:id", read, ctrl.Get)
	g.Post("/", manage, ctrl.Create)
}

// PaymentWebhookRoutes mounts the gateway callback, which carries no bearer token.
func PaymentWebhookRoutes(app fiber.Router, svc *service.PaymentService) {
	ctrl := controller.NewPaymentController(svc)
	app.Post("/api/payments/notification", ctrl.Notification)
}
