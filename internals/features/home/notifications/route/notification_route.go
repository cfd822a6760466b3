package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/home/notifications/controller"
	"aptfee_backend/internals/features/home/notifications/service"
	helperAuth "aptfee_backend/internals/helpers/auth"
	authMiddleware "aptfee_backend/internals/middlewares/auth"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(service.NewNotificationService(db))

	self := authMiddleware.Require("", helperAuth.CapSelfService)
	manage := authMiddleware.Require(constants.RoleErrorAdmin("notifications"), helperAuth.CapManageNotifications)

	g := api.Group("/notifications")
	g.Get("/me", self, ctrl.Inbox)
	g.Post("/:id/read", self, ctrl.MarkRead)
	g.Get("/", manage, ctrl.List)
	g.Get("/:id", manage, ctrl.Get)
	g.Post("/", manage, ctrl.Create)
}
