package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"mindwork/internal/model"
	"mindwork/internal/service"
)

// PrincipalKey is the fiber.Ctx Locals key for the verified principal.
const PrincipalKey = "principal"

// RequireAuth extracts and verifies the bearer token, storing the
// principal in Locals for downstream handlers. Missing or invalid
// tokens get 401.
func RequireAuth(auth *service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing authorization header",
			})
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid authorization header",
			})
		}

		principal, err := auth.Verify(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals(PrincipalKey, principal)
		return c.Next()
	}
}

// RequireRole gates a route on the principal's role. A valid token with
// the wrong role gets 403, not 401.
func RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := c.Locals(PrincipalKey).(service.Principal)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthenticated",
			})
		}

		for _, role := range roles {
			if principal.Role == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "insufficient role",
		})
	}
}

// PrincipalFrom returns the verified principal set by RequireAuth.
func PrincipalFrom(c *fiber.Ctx) (service.Principal, bool) {
	principal, ok := c.Locals(PrincipalKey).(service.Principal)
	return principal, ok
}
