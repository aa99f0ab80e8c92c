package keygen

import (
	"strings"
	"testing"
	"time"
)

func TestNewFormat(t *testing.T) {
	k, err := New()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !Valid(k) {
		t.Fatalf("generated key fails validation: %s", k)
	}
	parts := strings.Split(k, "-")
	if len(parts) != 4 {
		t.Fatalf("want 4 segments, got %d: %s", len(parts), k)
	}
	if parts[0] != "DFP" {
		t.Fatalf("prefix=%s", parts[0])
	}
	year := time.Now().UTC().Format("2006")
	if parts[1] != year {
		t.Fatalf("year segment=%s want %s", parts[1], year)
	}
	if len(parts[2]) != 6 {
		t.Fatalf("random segment length=%d", len(parts[2]))
	}
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		k, err := New()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if seen[k] {
			t.Fatalf("duplicate key: %s", k)
		}
		seen[k] = true
	}
}

func TestValidRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"DFP",
		"dfp-2026-ABC123-XYZ",
		"DFP-2026-abc123-1ABC",
		"DFP-2026-AB12-1ABC",
		"KEY-2026-ABC123-1ABC",
		"DFP-2026-ABC123-",
	}
	for _, s := range bad {
		if Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
}
