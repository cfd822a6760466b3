// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"aptfee_backend/internals/features/users/auth/service"
	helper "aptfee_backend/internals/helpers"
	helperAuth "aptfee_backend/internals/helpers/auth"
)

// Verifier is the part of the token service the boundary needs.
type Verifier interface {
	Verify(ctx context.Context, token string, isRefreshCheck bool) (*service.SessionClaims, error)
}

// Public webhook paths that skip auth
var skipPaths = map[string]struct{}{
	"/api/payments/notification": {},
}

// AuthMiddleware requires "Authorization: Bearer <token>" and publishes the verified claims.
func AuthMiddleware(v Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := skipPaths[c.Path()]; ok {
			return c.Next()
		}

		token := helper.GetRawAccessToken(c)
		if token == "" {
			return helper.JsonError(c, helper.ErrUnauthenticated)
		}

		claims, err := v.Verify(c.UserContext(), token, false)
		if err != nil {
			log.Printf("[WARN] auth rejected %s %s: %v", c.Method(), c.Path(), err)
			return helper.JsonError(c, err)
		}

		helper.SetRawAccessToken(c, token)
		helperAuth.StoreClaims(c, claims.Subject, claims.ID, claims.Scope)
		return c.Next()
	}
}
