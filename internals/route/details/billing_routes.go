package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	invoiceRoute "aptfee_backend/internals/features/billing/invoices/route"
	serviceRoute "aptfee_backend/internals/features/billing/services/route"
	subscriptionRoute "aptfee_backend/internals/features/billing/subscriptions/route"
)

func BillingRoutes(api fiber.Router, db *gorm.DB) {
	serviceRoute.ServiceRoutes(api, db)
	subscriptionRoute.SubscriptionRoutes(api, db)
	invoiceRoute.InvoiceRoutes(api, db)
}
