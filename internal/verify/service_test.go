package verify

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite"

	"digitflow/ent"
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

func seedKey(t *testing.T, client *ent.Client, key string, limit int, expires *time.Time) *ent.AccessKey {
	t.Helper()
	cr := client.AccessKey.Create().SetKey(key).SetDeviceLimit(limit)
	if expires != nil {
		cr = cr.SetExpiresAt(*expires)
	}
	ak, err := cr.Save(context.Background())
	if err != nil {
		t.Fatalf("seed key: %v", err)
	}
	return ak
}

func TestVerifyUnknownKeyDenied(t *testing.T) {
	svc := New(newTestClient(t))

	res, err := svc.Verify(context.Background(), "DFP-2026-NOSUCH-1ABC", "fp-1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if res.OK || res.Code != DenyInvalid {
		t.Fatalf("got %+v, want invalid denial", res)
	}
	if res.Reason != "invalid or inactive access key" {
		t.Fatalf("reason=%q", res.Reason)
	}
}

func TestVerifyBindsFirstDevice(t *testing.T) {
	client := newTestClient(t)
	seedKey(t, client, "DFP-2026-AAAAAA-1ABC", 1, nil)
	svc := New(client)
	ctx := context.Background()

	res, err := svc.Verify(ctx, "DFP-2026-AAAAAA-1ABC", "fp-1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !res.OK {
		t.Fatalf("first use denied: %+v", res)
	}

	devices, err := client.BoundDevice.Query().All(ctx)
	if err != nil {
		t.Fatalf("query devices: %v", err)
	}
	if len(devices) != 1 || devices[0].Fingerprint != "fp-1" {
		t.Fatalf("devices=%+v", devices)
	}

	ak, _ := client.AccessKey.Query().First(ctx)
	if ak.DeviceCount != 1 {
		t.Fatalf("device_count=%d want 1", ak.DeviceCount)
	}
	if ak.LastUsedAt == nil {
		t.Fatal("last_used_at not set")
	}
}

func TestVerifySameDeviceAgain(t *testing.T) {
	client := newTestClient(t)
	seedKey(t, client, "DFP-2026-AAAAAA-1ABC", 1, nil)
	svc := New(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := svc.Verify(ctx, "DFP-2026-AAAAAA-1ABC", "fp-1")
		if err != nil {
			t.Fatalf("verify #%d: %v", i, err)
		}
		if !res.OK {
			t.Fatalf("verify #%d denied: %+v", i, res)
		}
	}

	n, _ := client.BoundDevice.Query().Count(ctx)
	if n != 1 {
		t.Fatalf("bound devices=%d want 1", n)
	}
	ak, _ := client.AccessKey.Query().First(ctx)
	if ak.DeviceCount != 1 {
		t.Fatalf("device_count=%d want 1", ak.DeviceCount)
	}
}

func TestVerifySecondDeviceConflict(t *testing.T) {
	client := newTestClient(t)
	seedKey(t, client, "DFP-2026-AAAAAA-1ABC", 1, nil)
	svc := New(client)
	ctx := context.Background()

	if res, _ := svc.Verify(ctx, "DFP-2026-AAAAAA-1ABC", "fp-1"); !res.OK {
		t.Fatalf("first use denied: %+v", res)
	}
	res, err := svc.Verify(ctx, "DFP-2026-AAAAAA-1ABC", "fp-2")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if res.OK || res.Code != DenyConflict {
		t.Fatalf("got %+v, want conflict denial", res)
	}
	if res.Reason != "this access key is already in use on another device" {
		t.Fatalf("reason=%q", res.Reason)
	}
}

func TestVerifyDeviceLimitCited(t *testing.T) {
	client := newTestClient(t)
	seedKey(t, client, "DFP-2026-AAAAAA-1ABC", 3, nil)
	svc := New(client)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		res, err := svc.Verify(ctx, "DFP-2026-AAAAAA-1ABC", fmt.Sprintf("fp-%d", i))
		if err != nil || !res.OK {
			t.Fatalf("device %d: res=%+v err=%v", i, res, err)
		}
	}

	res, err := svc.Verify(ctx, "DFP-2026-AAAAAA-1ABC", "fp-4")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if res.OK || res.Code != DenyDeviceLimit {
		t.Fatalf("got %+v, want device limit denial", res)
	}
	if res.Reason != "device limit reached (3 devices)" {
		t.Fatalf("reason=%q", res.Reason)
	}
}

func TestVerifyExpiredAlwaysDenied(t *testing.T) {
	client := newTestClient(t)
	past := time.Now().UTC().Add(-time.Hour)
	seedKey(t, client, "DFP-2026-AAAAAA-1ABC", 1, &past)
	svc := New(client)
	ctx := context.Background()

	// Even an already-bound device is refused once the key expires.
	_, err := client.AccessKey.Update().SetExpiresAt(time.Now().UTC().Add(time.Hour)).Save(ctx)
	if err != nil {
		t.Fatalf("extend: %v", err)
	}
	if res, _ := svc.Verify(ctx, "DFP-2026-AAAAAA-1ABC", "fp-1"); !res.OK {
		t.Fatalf("bind while valid denied: %+v", res)
	}
	if _, err := client.AccessKey.Update().SetExpiresAt(past).Save(ctx); err != nil {
		t.Fatalf("expire: %v", err)
	}

	res, err := svc.Verify(ctx, "DFP-2026-AAAAAA-1ABC", "fp-1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if res.OK || res.Code != DenyExpired {
		t.Fatalf("got %+v, want expired denial", res)
	}
	if res.Reason != "access key has expired" {
		t.Fatalf("reason=%q", res.Reason)
	}
}

func TestVerifyInactiveDenied(t *testing.T) {
	client := newTestClient(t)
	ak := seedKey(t, client, "DFP-2026-AAAAAA-1ABC", 1, nil)
	svc := New(client)
	ctx := context.Background()

	if _, err := client.AccessKey.UpdateOne(ak).SetIsActive(false).Save(ctx); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	res, err := svc.Verify(ctx, "DFP-2026-AAAAAA-1ABC", "fp-1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if res.OK || res.Code != DenyInvalid {
		t.Fatalf("got %+v, want invalid denial", res)
	}
}

func TestVerifyConcurrentFirstUseSingleWinner(t *testing.T) {
	client := newTestClient(t)
	seedKey(t, client, "DFP-2026-AAAAAA-1ABC", 1, nil)
	svc := New(client)

	const racers = 8
	var wg sync.WaitGroup
	allowed := make(chan string, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			fp := fmt.Sprintf("fp-%d", i)
			// sqlite may report transient lock contention; retry like a client would.
			for attempt := 0; attempt < 10; attempt++ {
				res, err := svc.Verify(context.Background(), "DFP-2026-AAAAAA-1ABC", fp)
				if err != nil {
					time.Sleep(10 * time.Millisecond)
					continue
				}
				if res.OK {
					allowed <- fp
				}
				return
			}
		}(i)
	}
	wg.Wait()
	close(allowed)

	var winners []string
	for fp := range allowed {
		winners = append(winners, fp)
	}
	if len(winners) != 1 {
		t.Fatalf("winners=%v want exactly one", winners)
	}
	n, _ := client.BoundDevice.Query().Count(context.Background())
	if n != 1 {
		t.Fatalf("bound devices=%d want 1", n)
	}
}

func TestCheckDoesNotBind(t *testing.T) {
	client := newTestClient(t)
	seedKey(t, client, "DFP-2026-AAAAAA-1ABC", 1, nil)
	svc := New(client)
	ctx := context.Background()

	res, err := svc.Check(ctx, "DFP-2026-AAAAAA-1ABC", "fp-1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if res.OK {
		t.Fatalf("check allowed an unbound fingerprint: %+v", res)
	}
	if n, _ := client.BoundDevice.Query().Count(ctx); n != 0 {
		t.Fatalf("check created a binding")
	}

	if res, _ := svc.Verify(ctx, "DFP-2026-AAAAAA-1ABC", "fp-1"); !res.OK {
		t.Fatalf("verify denied: %+v", res)
	}
	res, err = svc.Check(ctx, "DFP-2026-AAAAAA-1ABC", "fp-1")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !res.OK {
		t.Fatalf("check denied a bound fingerprint: %+v", res)
	}
}
