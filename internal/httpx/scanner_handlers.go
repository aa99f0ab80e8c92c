package httpx

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"digitflow/internal/esx"
	"digitflow/internal/httpx/kit"
	"digitflow/internal/scanner"
)

// ScanStartHandler kicks off a sweep over the watchlist.
//
//	@Summary      Start market scan
//	@Description  Sweep every watched instrument for one minute and rank strategies
//	@Tags         scanner
//	@Produce      json
//	@Success      202  {object}  map[string]string
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/scanner/scan [post]
func ScanStartHandler(reg *scanner.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// The sweep outlives the request, so it runs off the request context.
		id, err := reg.Start(context.Background())
		if err != nil {
			if errors.Is(err, scanner.ErrScanInFlight) {
				return kit.BadRequest(err.Error(), nil)
			}
			return kit.InternalError("start scan failed", err.Error())
		}
		return kit.Accepted(c, fiber.Map{"id": id})
	}
}

// ScanStatusHandler polls a sweep's progress and, once done, its signals.
//
//	@Summary      Scan status
//	@Tags         scanner
//	@Produce      json
//	@Param        id  path  string  true  "scan job id"
//	@Success      200  {object}  scanner.JobView
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/scanner/scan/{id} [get]
func ScanStatusHandler(reg *scanner.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := reg.Get(c.Params("id"))
		if err != nil {
			return kit.NotFound(err.Error())
		}
		return kit.OK(c, view)
	}
}

// ScanLatestHandler returns the most recent sweep, running or finished.
//
//	@Summary      Latest scan
//	@Tags         scanner
//	@Produce      json
//	@Success      200  {object}  scanner.JobView
//	@Failure      404  {object}  map[string]interface{}
//	@Router       /api/v1/scanner/latest [get]
func ScanLatestHandler(reg *scanner.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, ok := reg.Latest()
		if !ok {
			return kit.NotFound("no scans yet")
		}
		return kit.OK(c, view)
	}
}

// SearchSignalsHandler queries indexed sweep signals.
//
//	@Summary      Search signals
//	@Description  Full-text search over indexed sweep signals
//	@Tags         search
//	@Produce      json
//	@Param        q      query  string  true   "query text"
//	@Param        from   query  int     false  "offset"
//	@Param        size   query  int     false  "page size"
//	@Success      200  {object}  map[string]interface{}
//	@Failure      400  {object}  map[string]interface{}
//	@Router       /api/v1/search/signals [get]
func SearchSignalsHandler(es *esx.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := c.Query("q")
		if q == "" {
			return kit.BadRequest("q required", nil)
		}
		from := c.QueryInt("from", 0)
		size := c.QueryInt("size", 20)

		ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
		defer cancel()
		out, err := esx.SearchSignals(ctx, es, esx.DefaultSignalIndex, q, from, size)
		if err != nil {
			return kit.InternalError("search failed", err.Error())
		}
		return kit.OK(c, out)
	}
}
