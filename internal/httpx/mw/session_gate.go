// Package mw contains HTTP middleware: the session gate, the admin guard and
// rate limiting.
package mw

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"digitflow/internal/config"
	"digitflow/internal/session"
	"digitflow/internal/verify"
)

// Checker re-validates a key+fingerprint pair without mutating state.
type Checker interface {
	Check(ctx context.Context, key, fingerprint string) (*verify.Result, error)
}

// LoginPath is where unauthenticated browsers are sent.
const LoginPath = "/login"

// gate pass-throughs: the login page itself, the JSON APIs (they carry their
// own errors), docs and liveness.
var openPrefixes = []string{LoginPath, "/api", "/swagger", "/health"}

func gateExempt(path string) bool {
	for _, p := range openPrefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// SessionGate redirects browsers without a live session to the login page.
// The cookie is never trusted on its own: every protected navigation re-checks
// the key and fingerprint against the store, so revocation is immediate.
func SessionGate(cfg *config.Config, checker Checker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if gateExempt(c.Path()) {
			return c.Next()
		}

		raw := c.Cookies(session.CookieName)
		if raw == "" {
			return c.Redirect(LoginPath, fiber.StatusFound)
		}

		claims, err := session.Parse(cfg, raw)
		if err != nil {
			session.ClearCookie(c)
			return c.Redirect(LoginPath, fiber.StatusFound)
		}

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		res, err := checker.Check(ctx, claims.AccessKey, claims.Fingerprint)
		if err != nil || !res.OK {
			session.ClearCookie(c)
			return c.Redirect(LoginPath, fiber.StatusFound)
		}

		c.Locals("session", claims)
		return c.Next()
	}
}
