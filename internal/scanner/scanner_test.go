package scanner

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"digitflow/internal/feed"
)

// loopSource replays a fixed digit sequence per market until the sweep ends.
type loopSource struct {
	mu     sync.Mutex
	digits map[string][]int
}

func (f *loopSource) Subscribe(ctx context.Context, market string) (*feed.Stream, error) {
	f.mu.Lock()
	seq := f.digits[market]
	f.mu.Unlock()
	if seq == nil {
		return nil, fmt.Errorf("unknown market %s", market)
	}

	s := feed.NewStream(market, nil)
	go func() {
		defer s.Close()
		i := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Millisecond):
				d := seq[i%len(seq)]
				s.Publish(feed.Tick{Market: market, Quote: fmt.Sprintf("42.%d", d), Digit: d})
				i++
			}
		}
	}()
	return s, nil
}

func TestDetermineStrategyEvenDominant(t *testing.T) {
	// 16 even observations vs 4 odd, flat trend, perfect match rate.
	counts := []int{8, 2, 8, 2, 0, 0, 0, 0, 0, 0}
	trend := []int{0, 2, 0, 2, 0, 2, 0, 2, 0, 2, 0, 2, 0, 2, 0, 2, 0, 2, 0, 2}

	sig := DetermineStrategy("R_10", "Volatility 10 Index", counts, trend, 20, 0, 20, 0, 8)
	require.Equal(t, StrategyEven, sig.BestStrategy)
	// 80% even scaled by a 100% match rate would exceed the cap.
	require.InDelta(t, 95.0, sig.Confidence, 1e-9)
	require.Contains(t, sig.Reasoning, "Even digits: 80.0%")
	require.Contains(t, sig.Reasoning, "Accuracy: 100.0%")
}

func TestDetermineStrategyTrend(t *testing.T) {
	// Digits climb from 0s to 9s: second-half mean far above first-half mean.
	var trend []int
	counts := make([]int, 10)
	for i := 0; i < 10; i++ {
		trend = append(trend, 0)
		counts[0]++
	}
	for i := 0; i < 10; i++ {
		trend = append(trend, 9)
		counts[9]++
	}

	sig := DetermineStrategy("R_25", "Volatility 25 Index", counts, trend, 0, 20, 20, 0, 10)
	require.Equal(t, StrategyRise, sig.BestStrategy)
	// trend 50+9*10=140 with zero match rate, capped at 95.
	require.InDelta(t, 95.0, sig.Confidence, 1e-9)
	require.Contains(t, sig.Reasoning, "Rising trend")
}

func TestDetermineStrategyNoTicks(t *testing.T) {
	sig := DetermineStrategy("R_50", "Volatility 50 Index", make([]int, 10), nil, 0, 0, 0, 0, 0)
	// Both parities default to 50 and the trend is flat: confidence stays at 50
	// and the three-way tie resolves to the last candidate, a flat fall.
	require.InDelta(t, 50.0, sig.Confidence, 1e-9)
	require.Equal(t, StrategyFall, sig.BestStrategy)
	require.Zero(t, sig.TickCount)
}

func TestDetermineStrategyTieKeepsLater(t *testing.T) {
	// 10 even vs 10 odd with identical half means scores every candidate at 50.
	counts := []int{0, 10, 10, 0, 0, 0, 0, 0, 0, 0}
	trend := []int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1, 2}

	sig := DetermineStrategy("R_50", "Volatility 50 Index", counts, trend, 0, 0, 20, 1, 10)
	require.InDelta(t, 50.0, sig.Confidence, 1e-9)
	require.Equal(t, StrategyFall, sig.BestStrategy)
}

func TestDetermineStrategyCap(t *testing.T) {
	counts := []int{20, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	trend := make([]int, 20)
	sig := DetermineStrategy("R_75", "Volatility 75 Index", counts, trend, 20, 0, 20, 0, 20)
	require.LessOrEqual(t, sig.Confidence, 95.0)
}

func TestRunRanksSignalsByConfidence(t *testing.T) {
	src := &loopSource{digits: map[string][]int{
		"R_10": {2, 2, 2, 2},          // all even, always the mode: very confident
		"R_25": {1, 2, 3, 4, 5, 6, 7}, // mixed: weak signal
	}}
	markets := []feed.Market{
		{ID: "R_25", Name: "Volatility 25 Index"},
		{ID: "R_10", Name: "Volatility 10 Index"},
	}
	sc := New(src, markets, Options{Duration: 300 * time.Millisecond, ProgressEvery: 50 * time.Millisecond})

	var mu sync.Mutex
	var progress []float64
	signals, err := sc.Run(context.Background(), func(pct float64, live []MarketLive) {
		mu.Lock()
		progress = append(progress, pct)
		mu.Unlock()
		require.Len(t, live, 2)
	})
	require.NoError(t, err)

	require.Len(t, signals, 2)
	for i := 1; i < len(signals); i++ {
		require.GreaterOrEqual(t, signals[i-1].Confidence, signals[i].Confidence)
	}
	require.Equal(t, "R_10", signals[0].Market, "the uniform even market should rank first")
	require.NotEmpty(t, signals[0].ScannedAt)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, progress)
	for _, p := range progress {
		require.LessOrEqual(t, p, 100.0)
	}
	require.InDelta(t, 100.0, progress[len(progress)-1], 1e-9, "final callback reports completion")
}

func TestRunSkipsUnreachableMarkets(t *testing.T) {
	src := &loopSource{digits: map[string][]int{"R_10": {5, 5, 5}}}
	markets := []feed.Market{
		{ID: "R_10", Name: "Volatility 10 Index"},
		{ID: "NOPE", Name: "No Such Market"},
	}
	sc := New(src, markets, Options{Duration: 100 * time.Millisecond, ProgressEvery: 50 * time.Millisecond})

	signals, err := sc.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, signals, 2, "unreachable markets still produce a signal from zero data")

	var nope *Signal
	for i := range signals {
		if signals[i].Market == "NOPE" {
			nope = &signals[i]
		}
	}
	require.NotNil(t, nope)
	require.Zero(t, nope.TickCount)
}

func TestRegistrySingleFlight(t *testing.T) {
	src := &loopSource{digits: map[string][]int{"R_10": {1, 2}}}
	sc := New(src, []feed.Market{{ID: "R_10", Name: "Volatility 10 Index"}},
		Options{Duration: 200 * time.Millisecond, ProgressEvery: 50 * time.Millisecond})

	done := make(chan JobView, 1)
	reg := NewRegistry(sc, func(v JobView) { done <- v })

	id, err := reg.Start(context.Background())
	require.NoError(t, err)

	_, err = reg.Start(context.Background())
	require.ErrorIs(t, err, ErrScanInFlight)

	select {
	case v := <-done:
		require.Equal(t, id, v.ID)
		require.Equal(t, JobDone, v.Status)
		require.InDelta(t, 100.0, v.Progress, 1e-9)
		require.NotEmpty(t, v.Signals)
		require.NotNil(t, v.FinishedAt)
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not finish")
	}

	// A later poll sees the finished job too.
	view, err := reg.Get(id)
	require.NoError(t, err)
	require.Equal(t, JobDone, view.Status)

	latest, ok := reg.Latest()
	require.True(t, ok)
	require.Equal(t, id, latest.ID)

	_, err = reg.Get("missing")
	require.ErrorIs(t, err, ErrJobNotFound)
}
