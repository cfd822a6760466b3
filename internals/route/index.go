// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "aptfee_backend/internals/features/users/auth/service"
	paymentService "aptfee_backend/internals/features/finance/payments/service"
	emailService "aptfee_backend/internals/features/home/email/service"
	ossHelper "aptfee_backend/internals/helpers/oss"
	authMiddleware "aptfee_backend/internals/middlewares/auth"
	routeDetails "aptfee_backend/internals/route/details"
)

var startTime time.Time

// Deps are the long-lived services main wires once. Documents and Mailer may be nil.
type Deps struct {
	DB        *gorm.DB
	Tokens    *authService.TokenService
	Payments  *paymentService.PaymentService
	Documents ossHelper.DocumentStore
	Mailer    emailService.Mailer
}

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	BaseRoutes(app, d.DB)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up public routes...")
	routeDetails.FinanceWebhookRoutes(app, d.Payments)
	public := app.Group("/api")
	routeDetails.AuthPublicRoutes(public, d.DB, d.Tokens)

	// ===================== PRIVATE (JWT) =====================
	log.Println("[INFO] Setting up private group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(d.Tokens))

	log.Println("[INFO] Mounting user routes...")
	routeDetails.UserRoutes(api, d.DB)

	log.Println("[INFO] Mounting property routes...")
	routeDetails.PropertyRoutes(api, d.DB, d.Documents)

	log.Println("[INFO] Mounting billing routes...")
	routeDetails.BillingRoutes(api, d.DB)

	log.Println("[INFO] Mounting finance routes...")
	routeDetails.FinanceRoutes(api, d.Payments)

	log.Println("[INFO] Mounting home routes...")
	routeDetails.HomeRoutes(api, d.DB, d.Mailer)
}
