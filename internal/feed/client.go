// Package feed consumes the public JSON-over-websocket quote feed and turns
// each quote into a single digit observation: the last character of the
// quote's decimal string form. Price magnitude is discarded.
package feed

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"digitflow/internal/logx"
)

var feedLogger = logx.GetScope("feed")

// Tick is one observation extracted from a quote update.
type Tick struct {
	Market string
	Quote  string
	Digit  int
}

// Source produces tick streams for instruments. The websocket Client is the
// production implementation; tests inject fakes.
type Source interface {
	Subscribe(ctx context.Context, market string) (*Stream, error)
}

// Stream is a live per-instrument tick subscription. Ticks closes when the
// connection fails or the stream is closed; there is no automatic reconnect.
type Stream struct {
	Market string

	mu           sync.Mutex
	closed       bool
	ticks        chan Tick
	done         chan struct{}
	disconnected atomic.Bool
	onClose      func()
}

// NewStream builds a stream shell. The feed client attaches its connection
// teardown via onClose; fakes pass nil.
func NewStream(market string, onClose func()) *Stream {
	return &Stream{
		Market:  market,
		ticks:   make(chan Tick, 256),
		done:    make(chan struct{}),
		onClose: onClose,
	}
}

// Ticks returns the observation channel. It is closed on disconnect or Close.
func (s *Stream) Ticks() <-chan Tick { return s.ticks }

// Disconnected reports whether the underlying connection failed. A closed
// stream that was stopped by the caller is not considered disconnected.
func (s *Stream) Disconnected() bool { return s.disconnected.Load() }

// Publish delivers a tick to the consumer, dropping it if the buffer is full
// or the stream already closed.
func (s *Stream) Publish(t Tick) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ticks <- t:
	default:
		// slow consumer; drop
	}
}

// Fail marks the stream disconnected and closes it.
func (s *Stream) Fail() {
	s.disconnected.Store(true)
	s.Close()
}

// Close ends the stream and releases the underlying connection.
func (s *Stream) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.done)
	close(s.ticks)
	s.mu.Unlock()

	if s.onClose != nil {
		s.onClose()
	}
}

// Client is the gorilla/websocket feed source. One connection per subscribed
// instrument; a subscribe message naming the instrument is sent on connect.
type Client struct {
	url    string
	dialer websocket.Dialer
}

// NewClient returns a Client for the given feed endpoint.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		dialer: websocket.Dialer{
			HandshakeTimeout:  10 * time.Second,
			EnableCompression: true,
		},
	}
}

type subscribeMsg struct {
	Ticks string `json:"ticks"`
}

type feedMsg struct {
	Tick *struct {
		Quote  json.Number `json:"quote"`
		Symbol string      `json:"symbol"`
		Epoch  int64       `json:"epoch"`
	} `json:"tick"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Subscribe opens a connection for one instrument and starts its read loop.
// Read errors close the tick channel and flip the disconnected flag; the
// caller decides whether to resubscribe.
func (c *Client) Subscribe(ctx context.Context, market string) (*Stream, error) {
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return nil, err
	}
	if err := conn.WriteJSON(subscribeMsg{Ticks: market}); err != nil {
		_ = conn.Close()
		return nil, err
	}

	s := NewStream(market, func() { _ = conn.Close() })

	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.done:
		}
	}()

	go func() {
		for {
			var msg feedMsg
			if err := conn.ReadJSON(&msg); err != nil {
				select {
				case <-s.done:
					// caller-initiated stop, not a failure
				default:
					feedLogger.Warn("feed disconnected",
						zap.String("market", market), zap.Error(err))
					s.Fail()
				}
				return
			}
			if msg.Error != nil {
				feedLogger.Warn("feed error message",
					zap.String("market", market),
					zap.String("code", msg.Error.Code),
					zap.String("message", msg.Error.Message))
				continue
			}
			if msg.Tick == nil {
				continue
			}
			quote := msg.Tick.Quote.String()
			digit, ok := lastDigit(quote)
			if !ok {
				continue
			}
			s.Publish(Tick{Market: market, Quote: quote, Digit: digit})
		}
	}()

	return s, nil
}

// lastDigit takes the final character of the quote's string form as the
// observation unit.
func lastDigit(quote string) (int, bool) {
	if quote == "" {
		return 0, false
	}
	ch := quote[len(quote)-1]
	if ch < '0' || ch > '9' {
		return 0, false
	}
	return int(ch - '0'), true
}
