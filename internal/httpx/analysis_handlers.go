package httpx

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"digitflow/internal/analysis"
	"digitflow/internal/httpx/kit"
)

type analysisStartRequest struct {
	Market   string `json:"market"`
	MaxTicks int    `json:"max_ticks"`
}

// AnalysisStartHandler begins consuming ticks for one instrument.
//
//	@Summary      Start analysis
//	@Description  Subscribe to an instrument and start the digit pipeline
//	@Tags         analysis
//	@Accept       json
//	@Produce      json
//	@Param        body  body   httpx.analysisStartRequest  true  "instrument"
//	@Success      200   {object}  map[string]string
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/analysis/start [post]
func AnalysisStartHandler(sess *analysis.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req analysisStartRequest
		if err := c.BodyParser(&req); err != nil || req.Market == "" {
			return kit.BadRequest("market required", nil)
		}
		if req.MaxTicks != 0 {
			if req.MaxTicks < analysis.MinWindow || req.MaxTicks > analysis.MaxWindow {
				return kit.BadRequest("max_ticks out of range", req.MaxTicks)
			}
			if err := sess.Resize(req.MaxTicks); err != nil {
				return kit.BadRequest(err.Error(), nil)
			}
		}
		// The session outlives the request, so it runs off the request context.
		if err := sess.Start(context.Background(), req.Market); err != nil {
			if errors.Is(err, analysis.ErrAlreadyRunning) {
				return kit.BadRequest(err.Error(), nil)
			}
			return kit.InternalError("subscribe failed", err.Error())
		}
		return kit.OK(c, fiber.Map{"status": "started", "market": req.Market})
	}
}

// AnalysisStopHandler stops the running session, keeping its state readable.
//
//	@Summary      Stop analysis
//	@Tags         analysis
//	@Produce      json
//	@Success      200  {object}  map[string]string
//	@Router       /api/v1/analysis/stop [post]
func AnalysisStopHandler(sess *analysis.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess.Stop()
		return kit.OK(c, fiber.Map{"status": "stopped"})
	}
}

// AnalysisResetHandler discards the window and all derived state.
//
//	@Summary      Reset analysis
//	@Tags         analysis
//	@Produce      json
//	@Success      200  {object}  map[string]string
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/analysis/reset [post]
func AnalysisResetHandler(sess *analysis.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sess.Running() {
			return kit.BadRequest("stop the session before resetting", nil)
		}
		sess.Reset()
		return kit.OK(c, fiber.Map{"status": "reset"})
	}
}

// AnalysisStateHandler returns the full session snapshot.
//
//	@Summary      Analysis state
//	@Description  Window, counts, patterns, statistics, predictions and match log
//	@Tags         analysis
//	@Produce      json
//	@Success      200  {object}  analysis.View
//	@Router       /api/v1/analysis/state [get]
func AnalysisStateHandler(sess *analysis.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return kit.OK(c, sess.Snapshot())
	}
}
