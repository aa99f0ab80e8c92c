package httpx

import (
	"github.com/gofiber/fiber/v2"

	"digitflow/ent"
	"digitflow/internal/analysis"
	"digitflow/internal/config"
	"digitflow/internal/esx"
	"digitflow/internal/httpx/auth"
	"digitflow/internal/httpx/keys"
	"digitflow/internal/httpx/mw"
	"digitflow/internal/mqx"
	"digitflow/internal/redisx"
	"digitflow/internal/scanner"
	"digitflow/internal/verify"
)

// Providers carries the optional backing services handlers may use.
type Providers struct {
	MQ    mqx.Publisher
	ES    *esx.Client
	Redis *redisx.Client
}

// Register mounts every route. The session gate sits in front of everything
// except the login page, the APIs, docs and liveness.
func Register(app *fiber.App, cfg *config.Config, client *ent.Client, sess *analysis.Session, scans *scanner.Registry, p *Providers) {
	if p == nil {
		p = &Providers{}
	}
	svc := verify.New(client)

	app.Use(mw.SessionGate(cfg, svc))
	app.Get("/health", HealthHandler)

	v1 := app.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.Post("/verify",
		mw.RateLimitDefault(p.Redis, cfg.RateLimit.WindowSec, cfg.RateLimit.Max),
		auth.VerifyHandler(cfg, svc, p.MQ))
	authGroup.Post("/check", auth.CheckHandler(svc))
	authGroup.Post("/logout", auth.LogoutHandler())

	admin := v1.Group("/admin")
	admin.Post("/login", auth.AdminLoginHandler(cfg))

	guarded := admin.Group("", mw.RequireAdmin(func(token string) (string, error) {
		return auth.ParseAdminToken(cfg, token)
	}))
	guarded.Get("/keys", keys.ListHandler(client))
	guarded.Post("/keys", keys.CreateHandler(client, p.MQ))
	guarded.Patch("/keys/:id", keys.UpdateHandler(client, p.MQ))
	guarded.Delete("/keys/:id", keys.DeleteHandler(client, p.MQ))
	guarded.Get("/keys/:id/devices", keys.ListDevicesHandler(client))
	guarded.Delete("/devices/:id", keys.DeleteDeviceHandler(client))

	an := v1.Group("/analysis")
	an.Post("/start", AnalysisStartHandler(sess))
	an.Post("/stop", AnalysisStopHandler(sess))
	an.Post("/reset", AnalysisResetHandler(sess))
	an.Get("/state", AnalysisStateHandler(sess))

	sc := v1.Group("/scanner")
	sc.Post("/scan", ScanStartHandler(scans))
	sc.Get("/scan/:id", ScanStatusHandler(scans))
	sc.Get("/latest", ScanLatestHandler(scans))

	v1.Get("/search/signals", SearchSignalsHandler(p.ES))
}
