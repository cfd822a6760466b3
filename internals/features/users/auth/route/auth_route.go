// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptfee_backend/internals/features/users/auth/controller"
	"aptfee_backend/internals/features/users/auth/service"
	rateLimiter "aptfee_backend/internals/middlewares"
)

// AuthRoutes mounts the public token endpoints. Base: /api/auth
func AuthRoutes(app fiber.Router, db *gorm.DB, tokens *service.TokenService) {
	authController := controller.NewAuthController(db, tokens)

	baseAuth := app.Group("/auth")
	baseAuth.Post("/token", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/introspect", authController.Introspect)
	baseAuth.Post("/logout", authController.Logout)
	baseAuth.Post("/refresh", authController.Refresh)
}
