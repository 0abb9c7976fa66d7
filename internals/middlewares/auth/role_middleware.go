package auth

import (
	"github.com/gofiber/fiber/v2"

	"studyhall_backend/internals/constants"
)

func roleOf(c *fiber.Ctx) string {
	if v, ok := c.Locals(constants.LocRole).(string); ok {
		return v
	}
	return ""
}

// RequireAdmin gates library-admin routes. Owners pass too.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch roleOf(c) {
		case constants.RoleAdmin, constants.RoleOwner:
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, "admin access required")
	}
}

// RequireStudent gates QR-scan and self-service routes.
func RequireStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if roleOf(c) == constants.RoleStudent {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, "student access required")
	}
}

// RequireOwner gates platform-level routes (plans, cross-library billing).
func RequireOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if roleOf(c) == constants.RoleOwner {
			return c.Next()
		}
		return fiber.NewError(fiber.StatusForbidden, "owner access required")
	}
}
