package session

import (
	"testing"

	"digitflow/internal/config"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.Session.Secret = secret
	cfg.Session.TTLHours = 24
	return cfg
}

func TestSignParseRoundTrip(t *testing.T) {
	cfg := newTestConfig("test-secret")

	token, err := Sign(cfg, "DFP-2026-AAAAAA-1ABC", "fp-1")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := Parse(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.AccessKey != "DFP-2026-AAAAAA-1ABC" || claims.Fingerprint != "fp-1" {
		t.Fatalf("claims=%+v", claims)
	}
	if claims.ID == "" {
		t.Fatal("missing jti")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Sign(newTestConfig("secret-a"), "DFP-2026-AAAAAA-1ABC", "fp-1")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := Parse(newTestConfig("secret-b"), token); err == nil {
		t.Fatal("token verified under the wrong secret")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	cfg := newTestConfig("test-secret")
	for _, s := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := Parse(cfg, s); err == nil {
			t.Errorf("Parse(%q) succeeded", s)
		}
	}
}

func TestSignedTokenRequiresBothClaims(t *testing.T) {
	cfg := newTestConfig("test-secret")
	token, err := Sign(cfg, "", "")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := Parse(cfg, token); err == nil {
		t.Fatal("token with empty key and fingerprint accepted")
	}
}
