package analysis

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"digitflow/internal/feed"
	"digitflow/internal/logx"
)

var sessionLogger = logx.GetScope("analysis")

// ErrAlreadyRunning is returned by Start while a session is active.
var ErrAlreadyRunning = errors.New("analysis session already running")

// Options configure a Session.
type Options struct {
	MaxTicks          int           // window bound; clamped by NewWindow
	PredictEvery      time.Duration // prediction cadence; default 30s
	MinTicksToPredict int           // minimum window length; default 10
}

// Session owns one observation window, its derived views and the match log
// for a single instrument. All mutation happens on the session's own
// goroutine consuming the tick stream; readers take snapshots.
type Session struct {
	src  feed.Source
	opts Options

	mu           sync.RWMutex
	market       string
	window       *Window
	counts       []int
	patterns     *Patterns
	stats        *Statistics
	predictions  []Prediction
	active       *Prediction
	tracker      *Tracker
	latestQuote  string
	lastDigit    int
	running      bool
	disconnected bool
	cancel       context.CancelFunc
	stream       *feed.Stream
}

// View is a copyable snapshot of the session state for the HTTP layer.
type View struct {
	Market       string        `json:"market"`
	Running      bool          `json:"running"`
	Disconnected bool          `json:"disconnected"`
	LatestQuote  string        `json:"latest_quote,omitempty"`
	LastDigit    *int          `json:"last_digit,omitempty"`
	Window       []int         `json:"window"`
	DigitCounts  []int         `json:"digit_counts"`
	Patterns     *Patterns     `json:"patterns,omitempty"`
	Statistics   *Statistics   `json:"statistics,omitempty"`
	Predictions  []Prediction  `json:"predictions"`
	Active       *Prediction   `json:"active_prediction,omitempty"`
	MatchLog     []MatchRecord `json:"match_log"`
	Accuracy     float64       `json:"accuracy"`
}

// NewSession builds an idle session reading from the given source.
func NewSession(src feed.Source, opts Options) *Session {
	if opts.PredictEvery <= 0 {
		opts.PredictEvery = 30 * time.Second
	}
	if opts.MinTicksToPredict <= 0 {
		opts.MinTicksToPredict = 10
	}
	return &Session{
		src:       src,
		opts:      opts,
		window:    NewWindow(opts.MaxTicks),
		counts:    make([]int, 10),
		tracker:   NewTracker(),
		lastDigit: -1,
	}
}

// Start subscribes to the instrument and begins consuming ticks. A market
// change discards the previous window; Stop first if a session is running.
func (s *Session) Start(ctx context.Context, market string) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	if s.market != market {
		s.resetLocked()
		s.market = market
	}
	s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	stream, err := s.src.Subscribe(runCtx, market)
	if err != nil {
		cancel()
		return err
	}

	s.mu.Lock()
	s.running = true
	s.disconnected = false
	s.cancel = cancel
	s.stream = stream
	s.mu.Unlock()

	go s.run(stream)
	sessionLogger.Info("analysis started", zap.String("market", market))
	return nil
}

func (s *Session) run(stream *feed.Stream) {
	ticker := time.NewTicker(s.opts.PredictEvery)
	defer ticker.Stop()

	for {
		select {
		case t, ok := <-stream.Ticks():
			if !ok {
				s.mu.Lock()
				s.running = false
				s.disconnected = stream.Disconnected()
				s.mu.Unlock()
				if stream.Disconnected() {
					sessionLogger.Warn("analysis feed lost", zap.String("market", stream.Market))
				}
				return
			}
			s.onTick(t)
		case <-ticker.C:
			s.mu.Lock()
			s.predictLocked(time.Now().UTC())
			s.mu.Unlock()
		}
	}
}

// onTick applies one observation: settle the active prediction, push the
// digit, then recompute every derived view from the new snapshot.
func (s *Session) onTick(t feed.Tick) {
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		s.tracker.Record(*s.active, t.Digit, now)
	}

	s.window.Push(t.Digit)
	s.latestQuote = t.Quote
	s.lastDigit = t.Digit

	history := s.window.Snapshot()
	s.counts = CountDigits(history)
	s.patterns = AnalyzePatterns(history)
	s.stats = CalculateStatistics(history, s.counts)

	// First prediction fires as soon as enough data exists; afterwards the
	// cadence ticker refreshes it.
	if s.predictions == nil && s.window.Len() >= s.opts.MinTicksToPredict {
		s.predictLocked(now)
	}
}

func (s *Session) predictLocked(now time.Time) {
	if s.window.Len() < s.opts.MinTicksToPredict {
		return
	}
	history := s.window.Snapshot()
	preds := GeneratePredictions(history, s.counts, s.patterns, now)
	s.predictions = preds
	if len(preds) > 0 {
		top := preds[0]
		s.active = &top
	} else {
		s.active = nil
	}
}

// Stop closes the stream and any pending timer. Accumulated state is kept
// for inspection until Reset.
func (s *Session) Stop() {
	s.mu.Lock()
	cancel, stream := s.cancel, s.stream
	s.cancel, s.stream = nil, nil
	s.running = false
	s.mu.Unlock()

	if stream != nil {
		stream.Close()
	}
	if cancel != nil {
		cancel()
	}
}

// Reset destroys the window and all derived state. Only valid when stopped.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.window = NewWindow(s.opts.MaxTicks)
	s.counts = make([]int, 10)
	s.patterns = nil
	s.stats = nil
	s.predictions = nil
	s.active = nil
	s.tracker.Reset()
	s.latestQuote = ""
	s.lastDigit = -1
	s.disconnected = false
}

// Resize rebuilds the window with a new bound, discarding its contents.
// Returns ErrAlreadyRunning while ticks are flowing.
func (s *Session) Resize(maxTicks int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrAlreadyRunning
	}
	s.opts.MaxTicks = maxTicks
	s.resetLocked()
	return nil
}

// Running reports whether the session is consuming ticks.
func (s *Session) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Snapshot returns a copy of the full session state.
func (s *Session) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := View{
		Market:       s.market,
		Running:      s.running,
		Disconnected: s.disconnected,
		LatestQuote:  s.latestQuote,
		Window:       s.window.Snapshot(),
		DigitCounts:  append([]int(nil), s.counts...),
		Patterns:     s.patterns,
		Statistics:   s.stats,
		Predictions:  append([]Prediction(nil), s.predictions...),
		MatchLog:     s.tracker.Records(),
		Accuracy:     s.tracker.Accuracy(),
	}
	if s.lastDigit >= 0 {
		d := s.lastDigit
		v.LastDigit = &d
	}
	if s.active != nil {
		a := *s.active
		v.Active = &a
	}
	return v
}
