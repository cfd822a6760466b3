package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/property/contracts/controller"
	helperAuth "aptfee_backend/internals/helpers/auth"
	ossHelper "aptfee_backend/internals/helpers/oss"
	authMiddleware "aptfee_backend/internals/middlewares/auth"
)

func ContractRoutes(api fiber.Router, db *gorm.DB, store ossHelper.DocumentStore) {
	ctrl := controller.NewContractController(db, store)

	manage := authMiddleware.Require(constants.RoleErrorAdmin("contracts"), helperAuth.CapManageContracts)

	g := api.Group("/contracts", manage)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", ctrl.Create)
	g.Put("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
	g.Post("/:id/document", ctrl.UploadDocument)
}
