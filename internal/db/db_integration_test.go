//go:build integration
// +build integration

package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"digitflow/internal/config"
	"digitflow/internal/verify"
)

func Test_Open_With_PostgresContainer(t *testing.T) {
	ctx := context.Background()

	pg, err := postgres.RunContainer(ctx,
		postgres.WithDatabase("digitflow"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.WithSQLDriver("pgx"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatalf("get container host: %v", err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/digitflow?sslmode=disable", host, port.Port())

	cfg := &config.Config{}
	cfg.PG.URL = dsn
	cfg.PG.MaxOpenConns = 5
	cfg.PG.MaxIdleConns = 2

	c, closeFn, err := Open(cfg)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer closeFn()

	ctx2, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := c.Schema.Create(ctx2); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	// Full verify round trip against real PostgreSQL: seed, bind, conflict.
	_, err = c.AccessKey.Create().SetKey("DFP-2026-ITESTA-1ABC").Save(ctx2)
	if err != nil {
		t.Fatalf("seed key: %v", err)
	}
	svc := verify.New(c)

	res, err := svc.Verify(ctx2, "DFP-2026-ITESTA-1ABC", "fp-1")
	if err != nil || !res.OK {
		t.Fatalf("first use: res=%+v err=%v", res, err)
	}
	res, err = svc.Verify(ctx2, "DFP-2026-ITESTA-1ABC", "fp-2")
	if err != nil {
		t.Fatalf("second device: %v", err)
	}
	if res.OK || res.Code != verify.DenyConflict {
		t.Fatalf("second device got %+v, want conflict", res)
	}

	if n, err := c.BoundDevice.Query().Count(ctx2); err != nil || n != 1 {
		t.Fatalf("bound devices=%d err=%v", n, err)
	}

	// Pool resize should not disturb the open connection.
	UpdatePool(10, 4)
	if _, err := c.AccessKey.Query().Count(ctx2); err != nil {
		t.Fatalf("query after pool update: %v", err)
	}
}
