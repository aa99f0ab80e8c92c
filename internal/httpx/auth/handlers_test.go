package auth

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/gofiber/fiber/v2"
	_ "modernc.org/sqlite"

	"digitflow/ent"
	"digitflow/internal/config"
	"digitflow/internal/httpx/kit/testutil"
	"digitflow/internal/session"
	"digitflow/internal/verify"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	_, _ = db.Exec("PRAGMA foreign_keys = ON")
	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() { _ = client.Close() })
	if err := client.Schema.Create(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Session.Secret = "test-secret"
	cfg.Session.TTLHours = 24
	cfg.Admin.TokenMin = 15
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cfg.Admin.PasswordHash = hash
	return cfg
}

func newTestApp(cfg *config.Config, client *ent.Client) *fiber.App {
	svc := verify.New(client)
	return testutil.NewApp(
		func(app *fiber.App) { app.Post("/auth/verify", VerifyHandler(cfg, svc, nil)) },
		func(app *fiber.App) { app.Post("/auth/check", CheckHandler(svc)) },
		func(app *fiber.App) { app.Post("/auth/logout", LogoutHandler()) },
		func(app *fiber.App) { app.Post("/admin/login", AdminLoginHandler(cfg)) },
	)
}

func seedKey(t *testing.T, client *ent.Client, key string) {
	t.Helper()
	_, err := client.AccessKey.Create().
		SetKey(key).
		SetExpiresAt(time.Now().UTC().AddDate(1, 0, 0)).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed key: %v", err)
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return res
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestVerifyMissingFields(t *testing.T) {
	app := newTestApp(newTestConfig(t), newTestClient(t))

	res := postJSON(t, app, "/auth/verify", VerifyRequest{AccessKey: "DFP-2026-AAAAAA-1ABC"})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d want 400", res.StatusCode)
	}
}

func TestVerifyUnknownKey(t *testing.T) {
	app := newTestApp(newTestConfig(t), newTestClient(t))

	res := postJSON(t, app, "/auth/verify", VerifyRequest{AccessKey: "DFP-2026-NOSUCH-1ABC", DeviceFingerprint: "fp-1"})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status=%d want 401", res.StatusCode)
	}
}

func TestVerifySetsSessionCookie(t *testing.T) {
	cfg := newTestConfig(t)
	client := newTestClient(t)
	seedKey(t, client, "DFP-2026-AAAAAA-1ABC")
	app := newTestApp(cfg, client)

	res := postJSON(t, app, "/auth/verify", VerifyRequest{AccessKey: "DFP-2026-AAAAAA-1ABC", DeviceFingerprint: "fp-1"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d want 200", res.StatusCode)
	}

	ck := sessionCookie(res)
	if ck == nil {
		t.Fatal("session cookie not set")
	}
	claims, err := session.Parse(cfg, ck.Value)
	if err != nil {
		t.Fatalf("parse cookie: %v", err)
	}
	if claims.AccessKey != "DFP-2026-AAAAAA-1ABC" || claims.Fingerprint != "fp-1" {
		t.Fatalf("claims=%+v", claims)
	}

	var body struct {
		Data VerifyResponse `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Data.Success || body.Data.AccessKey != "DFP-2026-AAAAAA-1ABC" {
		t.Fatalf("body=%+v", body.Data)
	}
	if body.Data.ExpiresAt == nil {
		t.Fatal("expires_at missing")
	}
}

func TestVerifySecondDeviceForbidden(t *testing.T) {
	cfg := newTestConfig(t)
	client := newTestClient(t)
	seedKey(t, client, "DFP-2026-AAAAAA-1ABC")
	app := newTestApp(cfg, client)

	if res := postJSON(t, app, "/auth/verify", VerifyRequest{AccessKey: "DFP-2026-AAAAAA-1ABC", DeviceFingerprint: "fp-1"}); res.StatusCode != http.StatusOK {
		t.Fatalf("first device status=%d", res.StatusCode)
	}
	res := postJSON(t, app, "/auth/verify", VerifyRequest{AccessKey: "DFP-2026-AAAAAA-1ABC", DeviceFingerprint: "fp-2"})
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("status=%d want 403", res.StatusCode)
	}
	if sessionCookie(res) != nil {
		t.Fatal("denied verification must not set a cookie")
	}
}

func TestCheckReportsWithoutBinding(t *testing.T) {
	cfg := newTestConfig(t)
	client := newTestClient(t)
	seedKey(t, client, "DFP-2026-AAAAAA-1ABC")
	app := newTestApp(cfg, client)

	res := postJSON(t, app, "/auth/check", VerifyRequest{AccessKey: "DFP-2026-AAAAAA-1ABC", DeviceFingerprint: "fp-1"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct {
		Data CheckResponse `json:"data"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)
	if body.Data.Authenticated {
		t.Fatal("check authenticated an unbound fingerprint")
	}
	if n, _ := client.BoundDevice.Query().Count(context.Background()); n != 0 {
		t.Fatal("check must not bind")
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp(newTestConfig(t), newTestClient(t))

	res := postJSON(t, app, "/auth/logout", nil)
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("status=%d want 204", res.StatusCode)
	}
	ck := sessionCookie(res)
	if ck == nil || ck.Value != "" {
		t.Fatalf("cookie not cleared: %+v", ck)
	}
}

func TestAdminLogin(t *testing.T) {
	cfg := newTestConfig(t)
	app := newTestApp(cfg, newTestClient(t))

	res := postJSON(t, app, "/admin/login", AdminLoginRequest{Password: "wrong"})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password status=%d", res.StatusCode)
	}

	res = postJSON(t, app, "/admin/login", AdminLoginRequest{Password: "hunter2"})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct {
		Data AdminTokenResponse `json:"data"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)
	if body.Data.Token == "" || body.Data.TokenType != "Bearer" {
		t.Fatalf("body=%+v", body.Data)
	}
	sub, err := ParseAdminToken(cfg, body.Data.Token)
	if err != nil || sub != "admin" {
		t.Fatalf("sub=%q err=%v", sub, err)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !VerifyPassword("s3cret", hash) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
	if VerifyPassword("s3cret", "not-a-hash") {
		t.Fatal("garbage hash accepted")
	}
}
