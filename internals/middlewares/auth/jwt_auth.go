package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"studyhall_backend/internals/constants"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // use cookie access_token when no Bearer header
}

// AuthJWT verifies the access token and hydrates the locals the helpers and
// role middlewares read (user_id, student_id, library_id, role).
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret is required")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		if typ := strClaim(claims, "typ"); typ != "" && typ != "access" {
			return fiber.NewError(fiber.StatusUnauthorized, "Not an access token")
		}

		c.Locals("jwt_claims", claims)

		if v := strClaim(claims, "user_id"); v != "" {
			c.Locals(constants.LocUserID, v)
		} else if v := strClaim(claims, "sub"); v != "" {
			c.Locals(constants.LocUserID, v)
		}
		if v := strClaim(claims, "student_id"); v != "" {
			c.Locals(constants.LocStudentID, v)
		}
		if v := strClaim(claims, "library_id"); v != "" {
			c.Locals(constants.LocLibraryID, v)
		}
		if v := strClaim(claims, "role"); v != "" {
			c.Locals(constants.LocRole, v)
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
