package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/property/buildings/controller"
	helperAuth "aptfee_backend/internals/helpers/auth"
	authMiddleware "aptfee_backend/internals/middlewares/auth"
)

// Base: /api/buildings (behind AuthMiddleware)
func BuildingRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBuildingController(db)

	read := authMiddleware.Require("", helperAuth.CapReadCatalog)
	manage := authMiddleware.Require(constants.RoleErrorAdmin("buildings"), helperAuth.CapManageProperty)

	g := api.Group("/buildings")
	g.Get("/", read, ctrl.List)
	g.Get("/:id", read, ctrl.Get)
	g.Post("/", manage, ctrl.Create)
	g.Put("/:id", manage, ctrl.Update)
	g.Delete("/:id", manage, ctrl.Delete)
}
