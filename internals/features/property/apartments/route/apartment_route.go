package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/property/apartments/controller"
	helperAuth "aptfee_backend/internals/helpers/auth"
	authMiddleware "aptfee_backend/internals/middlewares/auth"
)

func ApartmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewApartmentController(db)

	read := authMiddleware.Require("", helperAuth.CapReadCatalog)
	manage := authMiddleware.Require(constants.RoleErrorAdmin("apartments"), helperAuth.CapManageProperty)

	g := api.Group("/apartments")
	g.Get("/", read, ctrl.List)
	g.Get("/:id", read, ctrl.Get)
	g.Post("/", manage, ctrl.Create)
	g.Put("/:id", manage, ctrl.Update)
	g.Delete("/:id", manage, ctrl.Delete)

	api.Get("/buildings/:id/apartments", read, ctrl.ListByBuilding)
	api.Get("/residents/:id/apartments", read, ctrl.ListByResident)
}
