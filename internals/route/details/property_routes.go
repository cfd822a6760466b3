package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	apartmentRoute "aptfee_backend/internals/features/property/apartments/route"
	buildingRoute "aptfee_backend/internals/features/property/buildings/route"
	contractRoute "aptfee_backend/internals/features/property/contracts/route"
	ossHelper "aptfee_backend/internals/helpers/oss"
)

func PropertyRoutes(api fiber.Router, db *gorm.DB, documents ossHelper.DocumentStore) {
	buildingRoute.BuildingRoutes(api, db)
	apartmentRoute.ApartmentRoutes(api, db)
	contractRoute.ContractRoutes(api, db, documents)
}
