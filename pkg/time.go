// Package pkg holds small helpers shared across the service.
package pkg

import (
	"strconv"
	"strings"
	"time"
)

// unitsDesc lists format units from largest to smallest.
var unitsDesc = []struct {
	suffix string
	value  time.Duration
}{
	{"d", 24 * time.Hour},
	{"h", time.Hour},
	{"m", time.Minute},
	{"s", time.Second},
	{"ms", time.Millisecond},
	{"μs", time.Microsecond},
	{"ns", time.Nanosecond},
}

// SmartDurationFormat renders a duration compactly. Sub-second values get a
// single unit, longer ones at most the two largest units (e.g. "1m30s").
func SmartDurationFormat(d time.Duration) string {
	if d == 0 {
		return "0"
	}
	if d < time.Second {
		switch {
		case d >= time.Millisecond:
			return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
		case d >= time.Microsecond:
			return strconv.FormatInt(d.Microseconds(), 10) + "μs"
		default:
			return strconv.FormatInt(d.Nanoseconds(), 10) + "ns"
		}
	}

	var b strings.Builder
	remaining := d
	parts := 0
	for _, u := range unitsDesc {
		if remaining < u.value {
			continue
		}
		b.WriteString(strconv.FormatInt(int64(remaining/u.value), 10))
		b.WriteString(u.suffix)
		remaining %= u.value
		parts++
		if parts == 2 || remaining == 0 {
			break
		}
	}
	return b.String()
}
