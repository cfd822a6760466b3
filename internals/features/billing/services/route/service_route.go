package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/billing/services/controller"
	helperAuth "aptfee_backend/internals/helpers/auth"
	authMiddleware "aptfee_backend/internals/middlewares/auth"
)

func ServiceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewServiceController(db)

	read := authMiddleware.Require("", helperAuth.CapReadCatalog)
	manage := authMiddleware.Require(constants.RoleErrorAdmin("services"), helperAuth.CapManageBilling)

	g := api.Group("/services")
	g.Get("/", read, ctrl.List)
	g.Get("/:id", read, ctrl.Get)
	g.Post("/", manage, ctrl.Create)
	g.Put("/:id", manage, ctrl.Update)
	g.Delete("/:id", manage, ctrl.Delete)
}
