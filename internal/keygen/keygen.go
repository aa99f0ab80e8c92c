// Package keygen generates human-shareable access key strings.
//
// Keys look like DFP-2026-4K9ZQ1-MB3F0T: fixed product prefix, issue year, a
// random base-36 segment and a base-36 millisecond timestamp. The key is a
// capability looked up server-side, never verified from its own content, so
// the random segment only has to resist guessing.
package keygen

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	prefix        = "DFP"
	randomLen     = 6
	base36Charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// New returns a fresh access key string for the current moment.
func New() (string, error) {
	return newAt(time.Now())
}

func newAt(now time.Time) (string, error) {
	seg, err := randomSegment(randomLen)
	if err != nil {
		return "", err
	}
	now = now.UTC()
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return fmt.Sprintf("%s-%d-%s-%s", prefix, now.Year(), seg, ts), nil
}

// randomSegment draws n base-36 characters from crypto/rand. Rejection
// sampling keeps the distribution uniform over the 36-character alphabet.
func randomSegment(n int) (string, error) {
	var b strings.Builder
	b.Grow(n)
	buf := make([]byte, 1)
	for b.Len() < n {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		// 252 is the largest multiple of 36 below 256.
		if buf[0] >= 252 {
			continue
		}
		b.WriteByte(base36Charset[int(buf[0])%36])
	}
	return b.String(), nil
}

// Valid reports whether s has the shape of a generated key. It does not
// authorize anything; the store lookup does.
func Valid(s string) bool {
	parts := strings.Split(s, "-")
	if len(parts) != 4 || parts[0] != prefix {
		return false
	}
	if year, err := strconv.Atoi(parts[1]); err != nil || year < 2020 {
		return false
	}
	if len(parts[2]) != randomLen || len(parts[3]) == 0 {
		return false
	}
	for _, part := range parts[2:] {
		for _, r := range part {
			if !strings.ContainsRune(base36Charset, r) {
				return false
			}
		}
	}
	return true
}
