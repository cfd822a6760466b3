package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "aptfee_backend/internals/features/users/auth/route"
	authService "aptfee_backend/internals/features/users/auth/service"
	residentRoute "aptfee_backend/internals/features/users/residents/route"
)

// AuthPublicRoutes: token endpoints and registration, mounted before the JWT guard.
func AuthPublicRoutes(api fiber.Router, db *gorm.DB, tokens *authService.TokenService) {
	authRoute.AuthRoutes(api, db, tokens)
	residentRoute.ResidentPublicRoutes(api, db)
}

func UserRoutes(api fiber.Router, db *gorm.DB) {
	residentRoute.ResidentRoutes(api, db)
}
