package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// fakeFeed upgrades connections, replies to the subscribe message with the
// configured quote frames, then runs handle for any custom teardown.
func fakeFeed(t *testing.T, quotes []string, handle func(conn *websocket.Conn)) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		var sub subscribeMsg
		if err := conn.ReadJSON(&sub); err != nil {
			t.Errorf("read subscribe: %v", err)
			return
		}
		if sub.Ticks == "" {
			t.Error("subscribe message missing instrument")
			return
		}
		for _, q := range quotes {
			frame := map[string]any{"tick": map[string]any{
				"quote":  json.Number(q),
				"symbol": sub.Ticks,
				"epoch":  time.Now().Unix(),
			}}
			if err := conn.WriteJSON(frame); err != nil {
				return
			}
		}
		if handle != nil {
			handle(conn)
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestSubscribeExtractsLastDigit(t *testing.T) {
	srv := fakeFeed(t, []string{"6329.47", "6329.50", "100"}, func(conn *websocket.Conn) {
		// keep the connection open until the client hangs up
		_, _, _ = conn.ReadMessage()
	})
	defer srv.Close()

	client := NewClient(wsURL(srv))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	stream, err := client.Subscribe(ctx, "R_10")
	require.NoError(t, err)
	defer stream.Close()

	var digits []int
	var quotes []string
	for i := 0; i < 3; i++ {
		select {
		case tk := <-stream.Ticks():
			require.Equal(t, "R_10", tk.Market)
			digits = append(digits, tk.Digit)
			quotes = append(quotes, tk.Quote)
		case <-time.After(2 * time.Second):
			t.Fatal("tick not delivered")
		}
	}
	require.Equal(t, []int{7, 0, 0}, digits)
	require.Equal(t, []string{"6329.47", "6329.50", "100"}, quotes)
	require.False(t, stream.Disconnected())
}

func TestSubscribeServerDropFlagsDisconnected(t *testing.T) {
	srv := fakeFeed(t, []string{"1.23"}, func(conn *websocket.Conn) {
		_ = conn.Close()
	})
	defer srv.Close()

	client := NewClient(wsURL(srv))
	stream, err := client.Subscribe(context.Background(), "R_10")
	require.NoError(t, err)

	// Drain until the read loop notices the drop and closes the channel.
	for range stream.Ticks() {
	}
	require.True(t, stream.Disconnected())
}

func TestCallerCloseIsNotDisconnect(t *testing.T) {
	srv := fakeFeed(t, nil, func(conn *websocket.Conn) {
		_, _, _ = conn.ReadMessage()
	})
	defer srv.Close()

	client := NewClient(wsURL(srv))
	stream, err := client.Subscribe(context.Background(), "R_10")
	require.NoError(t, err)

	stream.Close()
	for range stream.Ticks() {
	}
	require.False(t, stream.Disconnected())
}

func TestSubscribeDialError(t *testing.T) {
	client := NewClient("ws://127.0.0.1:1/ws")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := client.Subscribe(ctx, "R_10")
	require.Error(t, err)
}

func TestLastDigit(t *testing.T) {
	cases := []struct {
		quote string
		digit int
		ok    bool
	}{
		{"6329.47", 7, true},
		{"6329.40", 0, true},
		{"100", 0, true},
		{"9", 9, true},
		{"", 0, false},
		{"12.", 0, false},
	}
	for _, tc := range cases {
		d, ok := lastDigit(tc.quote)
		require.Equal(t, tc.ok, ok, tc.quote)
		if ok {
			require.Equal(t, tc.digit, d, tc.quote)
		}
	}
}
