package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	emailRoute "aptfee_backend/internals/features/home/email/route"
	emailService "aptfee_backend/internals/features/home/email/service"
	notificationRoute "aptfee_backend/internals/features/home/notifications/route"
)

func HomeRoutes(api fiber.Router, db *gorm.DB, mailer emailService.Mailer) {
	notificationRoute.NotificationRoutes(api, db)
	emailRoute.EmailRoutes(api, mailer)
}
