package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"digitflow/internal/config"
)

type adminClaims struct {
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

var errInvalidAdminToken = errors.New("invalid admin token")

// SignAdminToken issues a short-lived bearer token for the key console.
func SignAdminToken(cfg *config.Config) (string, error) {
	now := time.Now().UTC()
	claims := &adminClaims{
		Kind: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.Admin.TokenMin) * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Session.Secret))
}

// ParseAdminToken validates an admin bearer token and returns its subject.
func ParseAdminToken(cfg *config.Config, tokenStr string) (string, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	tok, err := parser.ParseWithClaims(tokenStr, &adminClaims{}, func(_ *jwt.Token) (interface{}, error) {
		return []byte(cfg.Session.Secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := tok.Claims.(*adminClaims)
	if !ok || !tok.Valid || claims.Kind != "admin" {
		return "", errInvalidAdminToken
	}
	return claims.Subject, nil
}
