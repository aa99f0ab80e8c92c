// Package session issues and validates the browser session cookie.
//
// The cookie carries an HS256 token embedding the access key and the device
// fingerprint it was verified with. The token is not the credential: the gate
// re-checks the pair against the key store on every protected navigation, so
// revoking a key or unbinding a device takes effect immediately.
package session

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"digitflow/internal/config"
)

// CookieName is the session cookie set after a successful verification.
const CookieName = "dfp_session"

// Claims are the session token claims.
type Claims struct {
	AccessKey   string `json:"key"`
	Fingerprint string `json:"fp"`
	jwt.RegisteredClaims
}

var errInvalidToken = errors.New("invalid session token")

// Sign issues a session token for a verified key+fingerprint pair.
func Sign(cfg *config.Config, accessKey, fingerprint string) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		AccessKey:   accessKey,
		Fingerprint: fingerprint,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.Session.TTLHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Session.Secret))
}

// Parse validates a session token string and returns its claims.
func Parse(cfg *config.Config, tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return []byte(cfg.Session.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || claims.AccessKey == "" || claims.Fingerprint == "" {
		return nil, errInvalidToken
	}
	return claims, nil
}

// SetCookie sets the session cookie on the response.
func SetCookie(c *fiber.Ctx, token string, ttlHours int) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   c.Protocol() == "https",
		SameSite: "Lax",
		Path:     "/",
		MaxAge:   ttlHours * 60 * 60,
	})
}

// ClearCookie removes the session cookie.
func ClearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{Name: CookieName, Value: "", MaxAge: -1, Path: "/"})
}
