package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/users/residents/controller"
	helperAuth "aptfee_backend/internals/helpers/auth"
	rateLimiter "aptfee_backend/internals/middlewares"
	authMiddleware "aptfee_backend/internals/middlewares/auth"
)

// ResidentPublicRoutes: registration needs no token. Base: /api
func ResidentPublicRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResidentController(db)
	app.Post("/residents", rateLimiter.RegisterRateLimiter(), ctrl.Register)
}

func ResidentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResidentController(db)

	self := authMiddleware.Require("", helperAuth.CapSelfService)
	manage := authMiddleware.Require(constants.RoleErrorAdmin("residents"), helperAuth.CapManageResidents)

	g := api.Group("/residents")
	g.Get("/me", self, ctrl.Me)
	g.Put("/:id", self, ctrl.Update)
	g.Get("/", manage, ctrl.List)
	g.Get("/:id", manage, ctrl.Get)
	g.Delete("/:id", manage, ctrl.Delete)
}
