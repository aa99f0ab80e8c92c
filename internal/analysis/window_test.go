package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindowEvictsOldest(t *testing.T) {
	w := NewWindow(MinWindow)
	for d := 0; d < MinWindow; d++ {
		w.Push(d % 10)
	}
	require.Equal(t, MinWindow, w.Len())

	w.Push(7)
	require.Equal(t, MinWindow, w.Len(), "push at capacity must not grow the window")
	snap := w.Snapshot()
	require.Equal(t, 1, snap[0], "oldest observation should be evicted")
	require.Equal(t, 7, snap[len(snap)-1])
}

func TestWindowClampsBounds(t *testing.T) {
	require.Equal(t, MinWindow, NewWindow(3).Max())
	require.Equal(t, MaxWindow, NewWindow(10000).Max())
	require.Equal(t, DefaultWindow, NewWindow(0).Max())
	require.Equal(t, 250, NewWindow(250).Max())
}

func TestWindowSnapshotIsCopy(t *testing.T) {
	w := NewWindow(MinWindow)
	w.Push(1)
	snap := w.Snapshot()
	snap[0] = 9
	require.Equal(t, 1, w.Snapshot()[0])
}

func TestCountDigits(t *testing.T) {
	counts := CountDigits([]int{1, 1, 2, 9, 9, 9})
	require.Equal(t, []int{0, 2, 1, 0, 0, 0, 0, 0, 0, 3}, counts)
}
