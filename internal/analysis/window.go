// Package analysis derives patterns, statistics and heuristic predictions
// from a bounded trailing window of digit observations. Everything here is a
// pure function of a window snapshot; only Session and Tracker hold state.
package analysis

import "github.com/samber/lo"

const (
	// MinWindow and MaxWindow bound the configurable window length.
	MinWindow = 10
	MaxWindow = 500
	// DefaultWindow is used when no length is configured.
	DefaultWindow = 100
)

// Window is the bounded FIFO sequence of observed digits.
type Window struct {
	max    int
	digits []int
}

// NewWindow returns a window bounded at max, clamped to [MinWindow, MaxWindow].
func NewWindow(max int) *Window {
	if max == 0 {
		max = DefaultWindow
	}
	max = lo.Clamp(max, MinWindow, MaxWindow)
	return &Window{max: max, digits: make([]int, 0, max)}
}

// Push appends a digit, evicting the oldest observation once full.
func (w *Window) Push(d int) {
	if len(w.digits) == w.max {
		copy(w.digits, w.digits[1:])
		w.digits[len(w.digits)-1] = d
		return
	}
	w.digits = append(w.digits, d)
}

// Len returns the current number of observations.
func (w *Window) Len() int { return len(w.digits) }

// Max returns the configured bound.
func (w *Window) Max() int { return w.max }

// Snapshot returns a copy of the current observations, oldest first.
func (w *Window) Snapshot() []int {
	out := make([]int, len(w.digits))
	copy(out, w.digits)
	return out
}

// Reset drops all observations.
func (w *Window) Reset() {
	w.digits = w.digits[:0]
}

// CountDigits recomputes the 10-bucket frequency count by a full scan of the
// given window snapshot.
func CountDigits(history []int) []int {
	counts := make([]int, 10)
	for _, d := range history {
		if d >= 0 && d <= 9 {
			counts[d]++
		}
	}
	return counts
}
