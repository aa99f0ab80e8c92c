package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAccuracyEmptyLog(t *testing.T) {
	require.Zero(t, NewTracker().Accuracy())
}

func TestAccuracyRecomputedOnRead(t *testing.T) {
	tr := NewTracker()
	now := time.Unix(0, 0).UTC()

	// 3 hits, 2 misses.
	tr.Record(Prediction{Digit: 4, Confidence: 50}, 4, now)
	tr.Record(Prediction{Digit: 4}, 4, now)
	tr.Record(Prediction{Digit: 4}, 4, now)
	tr.Record(Prediction{Digit: 4}, 7, now)
	tr.Record(Prediction{Digit: 4}, 9, now)

	require.InDelta(t, 60.0, tr.Accuracy(), 1e-9)

	tr.Record(Prediction{Digit: 1}, 1, now)
	require.InDelta(t, 4.0/6.0*100, tr.Accuracy(), 1e-9)
}

func TestTrackerDropsOldestPastFifty(t *testing.T) {
	tr := NewTracker()
	now := time.Unix(0, 0).UTC()

	// 50 misses, then 50 hits: the misses should all be evicted.
	for i := 0; i < 50; i++ {
		tr.Record(Prediction{Digit: 1}, 2, now)
	}
	for i := 0; i < 50; i++ {
		tr.Record(Prediction{Digit: 3}, 3, now)
	}

	records := tr.Records()
	require.Len(t, records, 50)
	require.InDelta(t, 100.0, tr.Accuracy(), 1e-9)
	require.True(t, records[0].Matched)
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.Record(Prediction{Digit: 1}, 1, time.Now())
	tr.Reset()
	require.Empty(t, tr.Records())
	require.Zero(t, tr.Accuracy())
}
