package pkg

import (
	"testing"
	"time"
)

func TestSmartDurationFormat(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{500 * time.Nanosecond, "500ns"},
		{250 * time.Microsecond, "250μs"},
		{42 * time.Millisecond, "42ms"},
		{3 * time.Second, "3s"},
		{90 * time.Second, "1m30s"},
		{61 * time.Minute, "1h1m"},
		{25*time.Hour + 30*time.Minute, "1d1h"},
		{2 * time.Hour, "2h"},
	}
	for _, c := range cases {
		if got := SmartDurationFormat(c.in); got != c.want {
			t.Fatalf("SmartDurationFormat(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
