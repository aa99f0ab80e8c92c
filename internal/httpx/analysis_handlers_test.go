package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"digitflow/internal/analysis"
	"digitflow/internal/feed"
	"digitflow/internal/httpx/kit/testutil"
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

func newAnalysisApp(sess *analysis.Session) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Post("/analysis/start", AnalysisStartHandler(sess))
		app.Post("/analysis/stop", AnalysisStopHandler(sess))
		app.Post("/analysis/reset", AnalysisResetHandler(sess))
		app.Get("/analysis/state", AnalysisStateHandler(sess))
	})
}

func analysisPost(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return res
}

func analysisState(t *testing.T, app *fiber.App) analysis.View {
	t.Helper()
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/analysis/state", nil))
	if err != nil {
		t.Fatalf("state request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("state status=%d", res.StatusCode)
	}
	var body struct {
		Data analysis.View `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return body.Data
}

func newHandlerSession(src feed.Source) *analysis.Session {
	return analysis.NewSession(src, analysis.Options{
		MaxTicks:          analysis.MinWindow,
		PredictEvery:      time.Hour,
		MinTicksToPredict: 10,
	})
}

func TestAnalysisStartValidation(t *testing.T) {
	sess := newHandlerSession(newFakeSource())
	app := newAnalysisApp(sess)

	if res := analysisPost(t, app, "/analysis/start", fiber.Map{}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing market status=%d", res.StatusCode)
	}
	if res := analysisPost(t, app, "/analysis/start", fiber.Map{"market": "R_10", "max_ticks": 5}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("tiny window status=%d", res.StatusCode)
	}
	if res := analysisPost(t, app, "/analysis/start", fiber.Map{"market": "R_10", "max_ticks": 9999}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("huge window status=%d", res.StatusCode)
	}
}

func TestAnalysisLifecycle(t *testing.T) {
	src := newFakeSource()
	sess := newHandlerSession(src)
	app := newAnalysisApp(sess)

	if res := analysisPost(t, app, "/analysis/start", fiber.Map{"market": "R_10"}); res.StatusCode != http.StatusOK {
		t.Fatalf("start status=%d", res.StatusCode)
	}
	if res := analysisPost(t, app, "/analysis/start", fiber.Map{"market": "R_25"}); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("double start status=%d", res.StatusCode)
	}
	// Cannot reset while ticks are flowing.
	if res := analysisPost(t, app, "/analysis/reset", nil); res.StatusCode != http.StatusBadRequest {
		t.Fatalf("reset while running status=%d", res.StatusCode)
	}

	for d := 0; d < 10; d++ {
		src.stream("R_10").Publish(feed.Tick{Market: "R_10", Quote: fmt.Sprintf("1.%d", d), Digit: d})
	}
	deadline := time.Now().Add(2 * time.Second)
	var state analysis.View
	for {
		state = analysisState(t, app)
		if len(state.Predictions) > 0 || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if len(state.Window) != 10 || len(state.Predictions) == 0 {
		t.Fatalf("window=%d predictions=%d", len(state.Window), len(state.Predictions))
	}
	if !state.Running || state.Market != "R_10" {
		t.Fatalf("state=%+v", state)
	}

	if res := analysisPost(t, app, "/analysis/stop", nil); res.StatusCode != http.StatusOK {
		t.Fatalf("stop status=%d", res.StatusCode)
	}
	if res := analysisPost(t, app, "/analysis/reset", nil); res.StatusCode != http.StatusOK {
		t.Fatalf("reset status=%d", res.StatusCode)
	}
	state = analysisState(t, app)
	if len(state.Window) != 0 || state.Running {
		t.Fatalf("state after reset=%+v", state)
	}
}
