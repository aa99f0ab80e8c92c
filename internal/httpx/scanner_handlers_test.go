package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"digitflow/internal/feed"
	"digitflow/internal/httpx/kit/testutil"
	"digitflow/internal/scanner"
)

// loopSource replays a fixed digit sequence per market until the sweep ends.
type loopSource struct {
	digits map[string][]int
}

func (l *loopSource) Subscribe(ctx context.Context, market string) (*feed.Stream, error) {
	s := feed.NewStream(market, nil)
	seq := l.digits[market]
	go func() {
		defer s.Close()
		i := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Millisecond):
				d := seq[i%len(seq)]
				s.Publish(feed.Tick{Market: market, Quote: "1.0", Digit: d})
				i++
			}
		}
	}()
	return s, nil
}

func newScannerApp(reg *scanner.Registry) *fiber.App {
	return testutil.NewApp(func(app *fiber.App) {
		app.Post("/scanner/scan", ScanStartHandler(reg))
		app.Get("/scanner/scan/:id", ScanStatusHandler(reg))
		app.Get("/scanner/latest", ScanLatestHandler(reg))
		app.Get("/search/signals", SearchSignalsHandler(nil))
	})
}

func scanStatus(t *testing.T, app *fiber.App, id string) (int, scanner.JobView) {
	t.Helper()
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/scanner/scan/"+id, nil))
	if err != nil {
		t.Fatalf("status request: %v", err)
	}
	var body struct {
		Data scanner.JobView `json:"data"`
	}
	if res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatalf("decode status: %v", err)
		}
	}
	return res.StatusCode, body.Data
}

func TestScanHandlersLifecycle(t *testing.T) {
	src := &loopSource{digits: map[string][]int{
		"R_10": {2, 2, 2, 2},
		"R_25": {1, 3, 5, 7},
	}}
	sc := scanner.New(src, []feed.Market{{ID: "R_10", Name: "Vol 10"}, {ID: "R_25", Name: "Vol 25"}},
		scanner.Options{Duration: 200 * time.Millisecond, ProgressEvery: 50 * time.Millisecond})
	reg := scanner.NewRegistry(sc, nil)
	app := newScannerApp(reg)

	res, err := app.Test(httptest.NewRequest(http.MethodPost, "/scanner/scan", nil))
	if err != nil {
		t.Fatalf("start request: %v", err)
	}
	if res.StatusCode != http.StatusAccepted {
		t.Fatalf("start status=%d", res.StatusCode)
	}
	var started struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&started); err != nil {
		t.Fatalf("decode start: %v", err)
	}
	if started.Data.ID == "" {
		t.Fatal("empty job id")
	}

	// A second sweep cannot start while one is running.
	res, err = app.Test(httptest.NewRequest(http.MethodPost, "/scanner/scan", nil))
	if err != nil {
		t.Fatalf("second start request: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("second start status=%d", res.StatusCode)
	}

	deadline := time.Now().Add(3 * time.Second)
	var view scanner.JobView
	for {
		code, v := scanStatus(t, app, started.Data.ID)
		if code != http.StatusOK {
			t.Fatalf("status code=%d", code)
		}
		view = v
		if view.Status == scanner.JobDone || time.Now().After(deadline) {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if view.Status != scanner.JobDone {
		t.Fatalf("job never finished: %+v", view)
	}
	if view.Progress != 100 || len(view.Signals) != 2 {
		t.Fatalf("progress=%v signals=%d", view.Progress, len(view.Signals))
	}

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/scanner/latest", nil))
	if err != nil {
		t.Fatalf("latest request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("latest status=%d", res.StatusCode)
	}
}

func TestScanStatusUnknownID(t *testing.T) {
	sc := scanner.New(&loopSource{digits: map[string][]int{}}, nil, scanner.Options{})
	app := newScannerApp(scanner.NewRegistry(sc, nil))

	code, _ := scanStatus(t, app, "nope")
	if code != http.StatusNotFound {
		t.Fatalf("unknown id status=%d", code)
	}
}

func TestSearchSignalsHandler(t *testing.T) {
	sc := scanner.New(&loopSource{digits: map[string][]int{}}, nil, scanner.Options{})
	app := newScannerApp(scanner.NewRegistry(sc, nil))

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/search/signals", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing q status=%d", res.StatusCode)
	}

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/search/signals?q=even", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("search status=%d", res.StatusCode)
	}
	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := body.Data["hits"]; !ok {
		t.Fatalf("missing hits: %v", body.Data)
	}
}
