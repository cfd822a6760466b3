package route

import (
	"github.com/gofiber/fiber/v2"

	"aptfee_backend/internals/constants"
	"aptfee_backend/internals/features/home/email/controller"
	"aptfee_backend/internals/features/home/email/service"
	helperAuth "aptfee_backend/internals/helpers/auth"
	authMiddleware "aptfee_backend/internals/middlewares/auth"
)

func EmailRoutes(api fiber.Router, mailer service.Mailer) {
	ctrl := controller.NewEmailController(mailer)
	send := authMiddleware.Require(constants.RoleErrorAdmin("email"), helperAuth.CapSendEmail)

	g := api.Group("/email", send)
	g.Post("/send", ctrl.SendText)
	g.Post("/send-html", ctrl.SendHTML)
}
