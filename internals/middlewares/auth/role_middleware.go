package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "aptfee_backend/internals/helpers"
	helperAuth "aptfee_backend/internals/helpers/auth"
)

// Require lets the request through when the caller holds at least one of caps.
func Require(forbiddenMessage string, caps ...helperAuth.Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if helperAuth.GetSubject(c) == "" {
			return helper.JsonError(c, helper.ErrUnauthenticated)
		}
		set := helperAuth.GetCapabilities(c)
		for _, cp := range caps {
			if set.Has(cp) {
				return c.Next()
			}
		}
		if forbiddenMessage == "" {
			return helper.JsonError(c, helper.ErrUnauthorized)
		}
		return helper.JsonError(c, helper.ErrUnauthorized.WithMessage(forbiddenMessage))
	}
}
