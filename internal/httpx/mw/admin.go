package mw

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AdminTokenParser validates an admin bearer token and returns its subject.
type AdminTokenParser func(token string) (string, error)

// RequireAdmin guards the key-management routes behind an admin bearer token.
func RequireAdmin(parse AdminTokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get("Authorization")
		if authz == "" || !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fiber.ErrUnauthorized
		}
		token := strings.TrimSpace(authz[len("Bearer "):])
		sub, err := parse(token)
		if err != nil || sub == "" {
			return fiber.ErrUnauthorized
		}
		c.Locals("admin", sub)
		return c.Next()
	}
}
