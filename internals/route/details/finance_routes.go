package details

import (
	"github.com/gofiber/fiber/v2"

	paymentRoute "aptfee_backend/internals/features/finance/payments/route"
	paymentService "aptfee_backend/internals/features/finance/payments/service"
)

// FinanceWebhookRoutes must be mounted on the app before the JWT guard.
func FinanceWebhookRoutes(app fiber.Router, payments *paymentService.PaymentService) {
	paymentRoute.PaymentWebhookRoutes(app, payments)
}

func FinanceRoutes(api fiber.Router, payments *paymentService.PaymentService) {
	paymentRoute.PaymentRoutes(api, payments)
}
