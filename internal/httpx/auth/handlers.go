package auth

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"digitflow/internal/config"
	"digitflow/internal/httpx/kit"
	"digitflow/internal/mqx"
	"digitflow/internal/session"
	"digitflow/internal/verify"
)

// Verifier authenticates a key+fingerprint pair, binding on first use.
type Verifier interface {
	Verify(ctx context.Context, key, fingerprint string) (*verify.Result, error)
	Check(ctx context.Context, key, fingerprint string) (*verify.Result, error)
}

// VerifyHandler authenticates an access key for a device and opens a session.
//
//	@Summary      Verify access key
//	@Description  Authenticate a key+fingerprint pair, binding the device on first use
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.VerifyRequest  true  "credential pair"
//	@Success      200   {object}  auth.VerifyResponse
//	@Failure      400   {object}  map[string]interface{}
//	@Failure      401   {object}  map[string]interface{}
//	@Failure      403   {object}  map[string]interface{}
//	@Router       /api/v1/auth/verify [post]
func VerifyHandler(cfg *config.Config, svc Verifier, mq mqx.Publisher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req VerifyRequest
		if err := c.BodyParser(&req); err != nil || req.AccessKey == "" || req.DeviceFingerprint == "" {
			return kit.BadRequest("access_key and device_fingerprint required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		res, err := svc.Verify(ctx, req.AccessKey, req.DeviceFingerprint)
		if err != nil {
			return kit.InternalError("verification failed", err.Error())
		}
		if !res.OK {
			_ = mqx.PublishJSON(ctx, mq, mqx.VerifyDenied, fiber.Map{
				"access_key": req.AccessKey,
				"code":       res.Code,
				"reason":     res.Reason,
			})
			switch res.Code {
			case verify.DenyConflict, verify.DenyDeviceLimit:
				return kit.Forbidden(res.Reason)
			default:
				return kit.Unauthorized(res.Reason)
			}
		}

		token, err := session.Sign(cfg, req.AccessKey, req.DeviceFingerprint)
		if err != nil {
			return kit.InternalError("sign session failed", err.Error())
		}
		session.SetCookie(c, token, cfg.Session.TTLHours)

		out := VerifyResponse{Success: true, AccessKey: res.Key.Key}
		if res.Key.ExpiresAt != nil {
			s := res.Key.ExpiresAt.UTC().Format(time.RFC3339)
			out.ExpiresAt = &s
		}
		return kit.OK(c, out)
	}
}

// CheckHandler re-validates a pair without mutating any binding.
//
//	@Summary      Check access key
//	@Description  Re-validate a key+fingerprint pair without binding
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.VerifyRequest  true  "credential pair"
//	@Success      200   {object}  auth.CheckResponse
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/auth/check [post]
func CheckHandler(svc Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req VerifyRequest
		if err := c.BodyParser(&req); err != nil || req.AccessKey == "" || req.DeviceFingerprint == "" {
			return kit.BadRequest("access_key and device_fingerprint required", nil)
		}
		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()

		res, err := svc.Check(ctx, req.AccessKey, req.DeviceFingerprint)
		if err != nil {
			return kit.InternalError("check failed", err.Error())
		}
		if !res.OK {
			return kit.OK(c, CheckResponse{Authenticated: false, Reason: res.Reason})
		}
		return kit.OK(c, CheckResponse{Authenticated: true})
	}
}

// LogoutHandler clears the session cookie.
//
//	@Summary      Logout
//	@Description  Clear the session cookie
//	@Tags         auth
//	@Success      204
//	@Router       /api/v1/auth/logout [post]
func LogoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session.ClearCookie(c)
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// AdminLoginHandler exchanges the console password for a bearer token.
//
//	@Summary      Admin login
//	@Description  Exchange the console password for an admin bearer token
//	@Tags         auth
//	@Accept       json
//	@Produce      json
//	@Param        body  body   auth.AdminLoginRequest  true  "console password"
//	@Success      200   {object}  auth.AdminTokenResponse
//	@Failure      401   {object}  map[string]interface{}
//	@Router       /api/v1/admin/login [post]
func AdminLoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req AdminLoginRequest
		if err := c.BodyParser(&req); err != nil || req.Password == "" {
			return kit.BadRequest("password required", nil)
		}
		if cfg.Admin.PasswordHash == "" || !VerifyPassword(req.Password, cfg.Admin.PasswordHash) {
			return kit.Unauthorized("invalid password")
		}
		token, err := SignAdminToken(cfg)
		if err != nil {
			return kit.InternalError("sign token failed", err.Error())
		}
		return kit.OK(c, AdminTokenResponse{Token: token, TokenType: "Bearer", ExpiresIn: cfg.Admin.TokenMin * 60})
	}
}
