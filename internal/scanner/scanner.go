package scanner

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"digitflow/internal/feed"
	"digitflow/internal/logx"
	"digitflow/pkg"
)

var logger = logx.GetScope("scanner")

// Strategy names a contract direction suggested by a sweep.
type Strategy string

const (
	StrategyEven Strategy = "even"
	StrategyOdd  Strategy = "odd"
	StrategyRise Strategy = "rise"
	StrategyFall Strategy = "fall"
)

// Signal is the per-market outcome of a completed sweep.
type Signal struct {
	Market        string   `json:"market"`
	MarketName    string   `json:"market_name"`
	BestStrategy  Strategy `json:"best_strategy"`
	Confidence    float64  `json:"confidence"`
	Reasoning     string   `json:"reasoning"`
	DigitCounts   []int    `json:"digit_counts"`
	Matches       int      `json:"matches"`
	Differs       int      `json:"differs"`
	TickCount     int      `json:"tick_count"`
	FrequentDigit int      `json:"frequent_digit"`
	FrequentCount int      `json:"frequent_count"`
	ScannedAt     string   `json:"scanned_at"`
}

// MarketLive is the in-flight view of one market mid-sweep, published with
// every progress update.
type MarketLive struct {
	Market        string `json:"market"`
	MarketName    string `json:"market_name"`
	CurrentQuote  string `json:"current_quote"`
	LastDigit     int    `json:"last_digit"`
	DigitCounts   []int  `json:"digit_counts"`
	TickCount     int    `json:"tick_count"`
	Matches       int    `json:"matches"`
	Differs       int    `json:"differs"`
	Connected     bool   `json:"connected"`
	FrequentDigit int    `json:"frequent_digit"`
	FrequentCount int    `json:"frequent_count"`
}

// ProgressFunc receives the sweep percentage and a snapshot of every market.
type ProgressFunc func(pct float64, live []MarketLive)

// Options configure a sweep.
type Options struct {
	Duration      time.Duration // default 60s
	ProgressEvery time.Duration // default 500ms
}

// Scanner runs timed sweeps across a watchlist of instruments.
type Scanner struct {
	src     feed.Source
	markets []feed.Market
	opts    Options
}

// New builds a scanner over the given watchlist.
func New(src feed.Source, markets []feed.Market, opts Options) *Scanner {
	if opts.Duration <= 0 {
		opts.Duration = 60 * time.Second
	}
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = 500 * time.Millisecond
	}
	return &Scanner{src: src, markets: markets, opts: opts}
}

// collector accumulates one market's observations during a sweep.
type collector struct {
	mu            sync.Mutex
	market        feed.Market
	counts        []int
	trend         []int
	quote         string
	lastDigit     int
	tickCount     int
	matches       int
	differs       int
	connected     bool
	frequentDigit int
	frequentCount int
}

func (c *collector) observe(t feed.Tick) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.quote = t.Quote
	c.lastDigit = t.Digit
	c.counts[t.Digit]++
	c.trend = append(c.trend, t.Digit)
	c.tickCount++

	max, at := 0, 0
	for d, n := range c.counts {
		if n > max {
			max, at = n, d
		}
	}
	c.frequentDigit, c.frequentCount = at, max

	// Each tick is judged against the mode digit as it stood after the tick
	// itself was counted.
	if t.Digit == c.frequentDigit {
		c.matches++
	} else {
		c.differs++
	}
}

func (c *collector) live() MarketLive {
	c.mu.Lock()
	defer c.mu.Unlock()
	return MarketLive{
		Market:        c.market.ID,
		MarketName:    c.market.Name,
		CurrentQuote:  c.quote,
		LastDigit:     c.lastDigit,
		DigitCounts:   append([]int(nil), c.counts...),
		TickCount:     c.tickCount,
		Matches:       c.matches,
		Differs:       c.differs,
		Connected:     c.connected,
		FrequentDigit: c.frequentDigit,
		FrequentCount: c.frequentCount,
	}
}

// Run sweeps every market for the configured duration, emitting progress on
// the way, and returns signals ranked by confidence.
func (s *Scanner) Run(ctx context.Context, onProgress ProgressFunc) ([]Signal, error) {
	started := time.Now()
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	collectors := make([]*collector, 0, len(s.markets))
	var wg sync.WaitGroup
	for _, m := range s.markets {
		c := &collector{market: m, counts: make([]int, 10), lastDigit: -1}
		collectors = append(collectors, c)

		stream, err := s.src.Subscribe(runCtx, m.ID)
		if err != nil {
			logger.Warn("market unreachable", zap.String("market", m.ID), zap.Error(err))
			continue
		}
		c.mu.Lock()
		c.connected = true
		c.mu.Unlock()

		wg.Add(1)
		go func(c *collector, stream *feed.Stream) {
			defer wg.Done()
			for t := range stream.Ticks() {
				c.observe(t)
			}
			c.mu.Lock()
			c.connected = !stream.Disconnected()
			c.mu.Unlock()
		}(c, stream)
	}

	ticker := time.NewTicker(s.opts.ProgressEvery)
	defer ticker.Stop()
	deadline := time.NewTimer(s.opts.Duration)
	defer deadline.Stop()

loop:
	for {
		select {
		case <-ticker.C:
			if onProgress != nil {
				elapsed := time.Since(started)
				pct := math.Min(float64(elapsed)/float64(s.opts.Duration)*100, 100)
				onProgress(pct, s.liveAll(collectors))
			}
		case <-deadline.C:
			break loop
		case <-ctx.Done():
			cancel()
			wg.Wait()
			return nil, ctx.Err()
		}
	}

	cancel()
	wg.Wait()

	scannedAt := time.Now().UTC().Format(time.RFC3339)
	signals := make([]Signal, 0, len(collectors))
	for _, c := range collectors {
		c.mu.Lock()
		sig := DetermineStrategy(
			c.market.ID, c.market.Name,
			append([]int(nil), c.counts...),
			append([]int(nil), c.trend...),
			c.matches, c.differs, c.tickCount,
			c.frequentDigit, c.frequentCount,
		)
		c.mu.Unlock()
		sig.ScannedAt = scannedAt
		signals = append(signals, sig)
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].Confidence > signals[j].Confidence
	})

	if onProgress != nil {
		onProgress(100, s.liveAll(collectors))
	}
	logger.Info("sweep finished",
		zap.Int("markets", len(signals)),
		zap.String("took", pkg.SmartDurationFormat(time.Since(started))))
	return signals, nil
}

func (s *Scanner) liveAll(collectors []*collector) []MarketLive {
	out := make([]MarketLive, 0, len(collectors))
	for _, c := range collectors {
		out = append(out, c.live())
	}
	return out
}

// DetermineStrategy scores the even, odd and trend strategies for one market
// and returns the strongest, scaling each by the mode-digit match rate and
// capping the result at 95.
func DetermineStrategy(marketID, marketName string, counts, trend []int, matches, differs, tickCount, frequentDigit, frequentCount int) Signal {
	evenCount, oddCount := 0, 0
	for d, n := range counts {
		if d%2 == 0 {
			evenCount += n
		} else {
			oddCount += n
		}
	}
	total := evenCount + oddCount

	evenPct, oddPct := 50.0, 50.0
	if total > 0 {
		evenPct = float64(evenCount) / float64(total) * 100
		oddPct = float64(oddCount) / float64(total) * 100
	}

	half := len(trend) / 2
	firstAvg := meanOr(trend[:half], 5)
	secondAvg := meanOr(trend[half:], 5)
	trendDiff := secondAvg - firstAvg
	trendPct := 50 + math.Abs(trendDiff)*10

	matchRate := 0.0
	if matches+differs > 0 {
		matchRate = float64(matches) / float64(matches+differs) * 100
	}
	scale := 1 + matchRate/200

	trendStrategy := lo.Ternary(trendDiff > 0, StrategyRise, StrategyFall)
	trendVerb := lo.Ternary(trendDiff > 0, "Rising", "Falling")

	candidates := []struct {
		kind       Strategy
		confidence float64
		reasoning  string
	}{
		{
			StrategyEven, evenPct * scale,
			fmt.Sprintf("Even digits: %.1f%% | Most appearing: %d (%dx) | Matches: %d | Differs: %d | Accuracy: %.1f%%",
				evenPct, frequentDigit, frequentCount, matches, differs, matchRate),
		},
		{
			StrategyOdd, oddPct * scale,
			fmt.Sprintf("Odd digits: %.1f%% | Most appearing: %d (%dx) | Matches: %d | Differs: %d | Accuracy: %.1f%%",
				oddPct, frequentDigit, frequentCount, matches, differs, matchRate),
		},
		{
			trendStrategy, trendPct * scale,
			fmt.Sprintf("%s trend: %.2f to %.2f | Most appearing: %d | Matches: %d | Differs: %d",
				trendVerb, firstAvg, secondAvg, frequentDigit, matches, differs),
		},
	}

	// Ties resolve to the later candidate.
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.confidence >= best.confidence {
			best = c
		}
	}

	return Signal{
		Market:        marketID,
		MarketName:    marketName,
		BestStrategy:  best.kind,
		Confidence:    math.Min(best.confidence, 95),
		Reasoning:     best.reasoning,
		DigitCounts:   counts,
		Matches:       matches,
		Differs:       differs,
		TickCount:     tickCount,
		FrequentDigit: frequentDigit,
		FrequentCount: frequentCount,
	}
}

func meanOr(xs []int, fallback float64) float64 {
	if len(xs) == 0 {
		return fallback
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}
