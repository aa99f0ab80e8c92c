package mw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"digitflow/internal/config"
	"digitflow/internal/httpx/kit/testutil"
	"digitflow/internal/session"
	"digitflow/internal/verify"
)

type fakeChecker struct {
	allow map[string]string // key -> fingerprint
	calls int
}

func (f *fakeChecker) Check(_ context.Context, key, fingerprint string) (*verify.Result, error) {
	f.calls++
	if fp, ok := f.allow[key]; ok && fp == fingerprint {
		return &verify.Result{OK: true}, nil
	}
	return &verify.Result{OK: false, Reason: "invalid or inactive access key"}, nil
}

func newGateApp(cfg *config.Config, checker Checker) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Use(SessionGate(cfg, checker))
		app.Get("/", func(c *fiber.Ctx) error { return c.SendString("home") })
		app.Get("/login", func(c *fiber.Ctx) error { return c.SendString("login") })
		app.Get("/api/v1/thing", func(c *fiber.Ctx) error { return c.SendString("api") })
		app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	})
}

func newGateConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.Secret = "test-secret"
	cfg.Session.TTLHours = 1
	return cfg
}

func get(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return res
}

func clearedSession(res *http.Response) bool {
	for _, c := range res.Cookies() {
		if c.Name == session.CookieName && c.Value == "" {
			return true
		}
	}
	return false
}

func TestGateRedirectsWithoutCookie(t *testing.T) {
	app := newGateApp(newGateConfig(), &fakeChecker{})

	res := get(t, app, "/", nil)
	if res.StatusCode != http.StatusFound {
		t.Fatalf("status=%d want 302", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != LoginPath {
		t.Fatalf("location=%q", loc)
	}
}

func TestGatePassThroughPaths(t *testing.T) {
	checker := &fakeChecker{}
	app := newGateApp(newGateConfig(), checker)

	for _, path := range []string{"/login", "/api/v1/thing", "/health"} {
		res := get(t, app, path, nil)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("%s status=%d want 200", path, res.StatusCode)
		}
	}
	if checker.calls != 0 {
		t.Fatalf("gate checked exempt paths %d times", checker.calls)
	}
}

func TestGateRejectsTamperedCookie(t *testing.T) {
	app := newGateApp(newGateConfig(), &fakeChecker{})

	res := get(t, app, "/", &http.Cookie{Name: session.CookieName, Value: "garbage"})
	if res.StatusCode != http.StatusFound {
		t.Fatalf("status=%d want 302", res.StatusCode)
	}
	if !clearedSession(res) {
		t.Fatal("bad cookie should be cleared")
	}
}

func TestGateChecksStoreEveryRequest(t *testing.T) {
	cfg := newGateConfig()
	checker := &fakeChecker{allow: map[string]string{"DFP-2026-AAAAAA-1ABC": "fp-1"}}
	app := newGateApp(cfg, checker)

	token, err := session.Sign(cfg, "DFP-2026-AAAAAA-1ABC", "fp-1")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	ck := &http.Cookie{Name: session.CookieName, Value: token}

	for i := 1; i <= 2; i++ {
		res := get(t, app, "/", ck)
		if res.StatusCode != http.StatusOK {
			t.Fatalf("status=%d want 200", res.StatusCode)
		}
		if checker.calls != i {
			t.Fatalf("calls=%d want %d, no caching allowed", checker.calls, i)
		}
	}

	// Revocation is immediate: the same cookie stops working once the store
	// says no.
	checker.allow = nil
	res := get(t, app, "/", ck)
	if res.StatusCode != http.StatusFound {
		t.Fatalf("status=%d want 302 after revocation", res.StatusCode)
	}
	if !clearedSession(res) {
		t.Fatal("revoked session cookie should be cleared")
	}
}
