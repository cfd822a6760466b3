package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the auth middleware
const (
	LocSubject      = "subject" // resident email
	LocTokenID      = "jti"
	LocScope        = "scope"
	LocCapabilities = "capabilities"
)

// StoreClaims publishes the verified token identity to the request context.
func StoreClaims(c *fiber.Ctx, subject, jti, scope string) {
	c.Locals(LocSubject, subject)
	c.Locals(LocTokenID, jti)
	c.Locals(LocScope, scope)
	c.Locals(LocCapabilities, ParseScope(scope))
}

// GetSubject returns the email carried by the verified token, "" if the route is public.
func GetSubject(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocSubject).(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func GetTokenID(c *fiber.Ctx) string {
	v, _ := c.Locals(LocTokenID).(string)
	return v
}

// GetCapabilities returns the capability set for the current request; empty when unauthenticated.
func GetCapabilities(c *fiber.Ctx) CapabilitySet {
	if v, ok := c.Locals(LocCapabilities).(CapabilitySet); ok {
		return v
	}
	return CapabilitySet{}
}
