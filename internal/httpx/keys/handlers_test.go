package keys

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
	"digitflow/internal/httpx/kit/testutil"
	"digitflow/internal/keygen"
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

func newTestApp(client *ent.Client) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Get("/admin/keys", ListHandler(client))
		app.Post("/admin/keys", CreateHandler(client, nil))
		app.Patch("/admin/keys/:id", UpdateHandler(client, nil))
		app.Delete("/admin/keys/:id", DeleteHandler(client, nil))
		app.Get("/admin/keys/:id/devices", ListDevicesHandler(client))
		app.Delete("/admin/devices/:id", DeleteDeviceHandler(client))
	})
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return res
}

type keyPayload struct {
	ID          string  `json:"id"`
	Key         string  `json:"key"`
	IsActive    bool    `json:"is_active"`
	ExpiresAt   *string `json:"expires_at"`
	DeviceLimit int     `json:"device_limit"`
}

func TestCreateKeyDefaults(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(client)

	res := doJSON(t, app, http.MethodPost, "/admin/keys", nil)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d want 201", res.StatusCode)
	}
	var body struct {
		Data keyPayload `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !keygen.Valid(body.Data.Key) {
		t.Fatalf("generated key invalid: %s", body.Data.Key)
	}
	if !body.Data.IsActive || body.Data.DeviceLimit != 1 {
		t.Fatalf("defaults wrong: %+v", body.Data)
	}
	if body.Data.ExpiresAt == nil {
		t.Fatal("expiry missing")
	}
	exp, err := time.Parse(time.RFC3339, *body.Data.ExpiresAt)
	if err != nil {
		t.Fatalf("parse expiry: %v", err)
	}
	want := time.Now().UTC().AddDate(0, 12, 0)
	if d := exp.Sub(want); d < -time.Hour || d > time.Hour {
		t.Fatalf("expiry=%v, want about %v", exp, want)
	}
}

func TestCreateKeyOptions(t *testing.T) {
	client := newTestClient(t)
	app := newTestApp(client)

	res := doJSON(t, app, http.MethodPost, "/admin/keys", CreateRequest{ExpiryMonths: 3, DeviceLimit: 5})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct {
		Data keyPayload `json:"data"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)
	if body.Data.DeviceLimit != 5 {
		t.Fatalf("device_limit=%d want 5", body.Data.DeviceLimit)
	}

	res = doJSON(t, app, http.MethodPost, "/admin/keys", CreateRequest{NeverExpires: true})
	var body2 struct {
		Data keyPayload `json:"data"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body2)
	if body2.Data.ExpiresAt != nil {
		t.Fatalf("never_expires key has expiry %v", *body2.Data.ExpiresAt)
	}
}

func TestListKeysNewestFirst(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		_, err := client.AccessKey.Create().
			SetKey(fmt.Sprintf("DFP-2026-AAAAA%d-1ABC", i)).
			SetCreatedAt(base.Add(time.Duration(i) * time.Minute)).
			Save(ctx)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	app := newTestApp(client)

	res := doJSON(t, app, http.MethodGet, "/admin/keys?limit=2&with_total=true", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct {
		Data []keyPayload `json:"data"`
		Meta struct {
			Count   int  `json:"count"`
			HasMore bool `json:"has_more"`
			Total   *int `json:"total"`
		} `json:"meta"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 2 || body.Data[0].Key != "DFP-2026-AAAAA2-1ABC" {
		t.Fatalf("order wrong: %+v", body.Data)
	}
	if !body.Meta.HasMore || body.Meta.Total == nil || *body.Meta.Total != 3 {
		t.Fatalf("meta=%+v", body.Meta)
	}
}

func TestUpdateKeyActiveFlag(t *testing.T) {
	client := newTestClient(t)
	ak, err := client.AccessKey.Create().SetKey("DFP-2026-AAAAAA-1ABC").Save(context.Background())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	app := newTestApp(client)

	off := false
	res := doJSON(t, app, http.MethodPatch, "/admin/keys/"+ak.ID.String(), UpdateRequest{IsActive: &off})
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	got, _ := client.AccessKey.Get(context.Background(), ak.ID)
	if got.IsActive {
		t.Fatal("key still active")
	}

	res = doJSON(t, app, http.MethodPatch, "/admin/keys/"+ak.ID.String(), fiber.Map{})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing is_active status=%d", res.StatusCode)
	}

	res = doJSON(t, app, http.MethodPatch, "/admin/keys/not-a-uuid", UpdateRequest{IsActive: &off})
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad uuid status=%d", res.StatusCode)
	}
}

func TestDeleteKeyRemovesDevices(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	ak, _ := client.AccessKey.Create().SetKey("DFP-2026-AAAAAA-1ABC").SetDeviceCount(1).Save(ctx)
	_, err := client.BoundDevice.Create().SetFingerprint("fp-1").SetKey(ak).Save(ctx)
	if err != nil {
		t.Fatalf("seed device: %v", err)
	}
	app := newTestApp(client)

	res := doJSON(t, app, http.MethodDelete, "/admin/keys/"+ak.ID.String(), nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	if n, _ := client.AccessKey.Query().Count(ctx); n != 0 {
		t.Fatal("key not deleted")
	}
	if n, _ := client.BoundDevice.Query().Count(ctx); n != 0 {
		t.Fatal("devices not deleted")
	}

	res = doJSON(t, app, http.MethodDelete, "/admin/keys/"+ak.ID.String(), nil)
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status=%d", res.StatusCode)
	}
}

func TestDeviceListAndUnbind(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	ak, _ := client.AccessKey.Create().SetKey("DFP-2026-AAAAAA-1ABC").SetDeviceLimit(2).SetDeviceCount(2).Save(ctx)
	d1, _ := client.BoundDevice.Create().SetFingerprint("fp-1").SetKey(ak).Save(ctx)
	_, _ = client.BoundDevice.Create().SetFingerprint("fp-2").SetKey(ak).Save(ctx)
	app := newTestApp(client)

	res := doJSON(t, app, http.MethodGet, "/admin/keys/"+ak.ID.String()+"/devices", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct {
		Data []struct {
			Fingerprint string `json:"fingerprint"`
		} `json:"data"`
	}
	_ = json.NewDecoder(res.Body).Decode(&body)
	if len(body.Data) != 2 {
		t.Fatalf("devices=%d want 2", len(body.Data))
	}

	res = doJSON(t, app, http.MethodDelete, "/admin/devices/"+d1.ID.String(), nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("unbind status=%d", res.StatusCode)
	}
	got, _ := client.AccessKey.Get(ctx, ak.ID)
	if got.DeviceCount != 1 {
		t.Fatalf("device_count=%d want 1, slot must be freed", got.DeviceCount)
	}
	if n, _ := client.BoundDevice.Query().Count(ctx); n != 1 {
		t.Fatalf("devices=%d want 1", n)
	}
}
