package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/billing/subscriptions/controller"
	"aptfee_backend/internals/features/billing/subscriptions/service"
	helperAuth "aptfee_backend/internals/helpers/auth"
	authMiddleware "aptfee_backend/internals/middlewares/auth"
)

func SubscriptionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSubscriptionController(service.NewSubscriptionService(db))

	read := authMiddleware.Require("", helperAuth.CapReadBilling)
	manage := authMiddleware.Require(constants.RoleErrorAdmin("subscriptions"), helperAuth.CapManageBilling)

	g := api.Group("/subscriptions")
	g.Get("/", read, ctrl.List)
	g.Get("/:id", read, ctrl.Get)
	g.Post("/", manage, ctrl.Create)
	g.Put("/:id", manage, ctrl.Update)
	g.Delete("/:id", manage, ctrl.Delete)
}
