package analysis

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"digitflow/internal/feed"
)

type fakeSource struct {
	mu      sync.Mutex
	streams map[string]*feed.Stream
}

func newFakeSource() *fakeSource {
	return &fakeSource{streams: make(map[string]*feed.Stream)}
}

func (f *fakeSource) Subscribe(_ context.Context, market string) (*feed.Stream, error) {
	s := feed.NewStream(market, nil)
	f.mu.Lock()
	f.streams[market] = s
	f.mu.Unlock()
	return s, nil
}

func (f *fakeSource) stream(market string) *feed.Stream {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.streams[market]
}

func newTestSession(src feed.Source) *Session {
	return NewSession(src, Options{
		MaxTicks:          MinWindow,
		PredictEvery:      time.Hour, // only the immediate first prediction fires
		MinTicksToPredict: 10,
	})
}

func publishDigits(s *feed.Stream, market string, digits ...int) {
	for _, d := range digits {
		s.Publish(feed.Tick{Market: market, Quote: fmt.Sprintf("100.%d", d), Digit: d})
	}
}

func TestSessionFirstPredictionAtMinTicks(t *testing.T) {
	src := newFakeSource()
	sess := newTestSession(src)
	require.NoError(t, sess.Start(context.Background(), "R_10"))
	defer sess.Stop()

	publishDigits(src.stream("R_10"), "R_10", 1, 1, 1, 2, 3, 1, 2, 3, 1)
	require.Eventually(t, func() bool {
		return len(sess.Snapshot().Window) == 9
	}, time.Second, 10*time.Millisecond)
	require.Empty(t, sess.Snapshot().Predictions, "no prediction below the minimum window")

	publishDigits(src.stream("R_10"), "R_10", 2)
	require.Eventually(t, func() bool {
		return len(sess.Snapshot().Predictions) > 0
	}, time.Second, 10*time.Millisecond)

	v := sess.Snapshot()
	require.True(t, v.Running)
	require.NotNil(t, v.Active)
	require.Equal(t, v.Predictions[0].Digit, v.Active.Digit)
	require.NotNil(t, v.Patterns)
	require.NotNil(t, v.Statistics)
	require.Equal(t, "100.2", v.LatestQuote)
	require.NotNil(t, v.LastDigit)
	require.Equal(t, 2, *v.LastDigit)
}

func TestSessionRecordsMatchOutcomes(t *testing.T) {
	src := newFakeSource()
	sess := newTestSession(src)
	require.NoError(t, sess.Start(context.Background(), "R_10"))
	defer sess.Stop()

	// All ones: the first prediction will be digit 1 with full confidence.
	publishDigits(src.stream("R_10"), "R_10", 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	require.Eventually(t, func() bool {
		return sess.Snapshot().Active != nil
	}, time.Second, 10*time.Millisecond)

	publishDigits(src.stream("R_10"), "R_10", 1, 4)
	require.Eventually(t, func() bool {
		return len(sess.Snapshot().MatchLog) == 2
	}, time.Second, 10*time.Millisecond)

	log := sess.Snapshot().MatchLog
	require.True(t, log[0].Matched, "predicted 1, observed 1")
	require.Equal(t, 1, log[0].Predicted)
	require.Equal(t, 4, log[1].Actual)
	require.InDelta(t, 50.0, sess.Snapshot().Accuracy, 1e-9)
}

func TestSessionStartWhileRunning(t *testing.T) {
	src := newFakeSource()
	sess := newTestSession(src)
	require.NoError(t, sess.Start(context.Background(), "R_10"))
	defer sess.Stop()

	require.ErrorIs(t, sess.Start(context.Background(), "R_25"), ErrAlreadyRunning)
}

func TestSessionStopAndReset(t *testing.T) {
	src := newFakeSource()
	sess := newTestSession(src)
	require.NoError(t, sess.Start(context.Background(), "R_10"))

	publishDigits(src.stream("R_10"), "R_10", 5, 5, 5)
	require.Eventually(t, func() bool {
		return len(sess.Snapshot().Window) == 3
	}, time.Second, 10*time.Millisecond)

	sess.Stop()
	require.Eventually(t, func() bool {
		return !sess.Snapshot().Running
	}, time.Second, 10*time.Millisecond)
	require.Len(t, sess.Snapshot().Window, 3, "state survives stop for inspection")

	sess.Reset()
	v := sess.Snapshot()
	require.Empty(t, v.Window)
	require.Nil(t, v.Patterns)
	require.Empty(t, v.MatchLog)
}

func TestSessionFeedLossFlagsDisconnected(t *testing.T) {
	src := newFakeSource()
	sess := newTestSession(src)
	require.NoError(t, sess.Start(context.Background(), "R_10"))

	src.stream("R_10").Fail()
	require.Eventually(t, func() bool {
		v := sess.Snapshot()
		return !v.Running && v.Disconnected
	}, time.Second, 10*time.Millisecond)
}
