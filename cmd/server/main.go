// Package main is the entry point for the API server
//
//	@title			DigitFlow API
//	@version		1.0
//	@description	Access-key gated market digit analysis service
//
//	@contact.name	API Support
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in						header
//	@name					Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"digitflow/internal/analysis"
	"digitflow/internal/config"
	"digitflow/internal/db"
	"digitflow/internal/esx"
	"digitflow/internal/feed"
	"digitflow/internal/httpx"
	"digitflow/internal/httpx/kit"
	"digitflow/internal/logx"
	"digitflow/internal/mqx"
	"digitflow/internal/redisx"
	"digitflow/internal/scanner"
	"digitflow/internal/server"

	_ "digitflow/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Load config (env first; optional Apollo override)
	cfg, store, apClose, err := config.Load()
	if err != nil {
		panic(err)
	}
	if apClose != nil {
		defer apClose()
	}

	logx.Init(cfg.Log.Level, cfg.Log.Format)
	mainLogger := logx.GetScope("main")

	mainLogger.Info("config loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.Server.Addr),
		zap.String("log.level", cfg.Log.Level),
		zap.String("log.format", cfg.Log.Format),
	)

	// Open DB (Ent + pgx)
	client, closeDB, err := db.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Error("open db error", "err", err)
		panic(err)
	}
	defer closeDB()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Schema.Create(ctx); err != nil {
		mainLogger.Sugar().Error("auto migrate error", "err", err)
		panic(err)
	}

	// Optional deps: Redis, MQ, ES
	rdb, rclose, err := redisx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("redis init failed", "err", err)
	} else {
		defer rclose()
	}

	var publisher mqx.Publisher
	if cfg.MQ.URL != "" {
		if pub, err := mqx.NewRabbitPublisher(cfg.MQ.URL, "events"); err != nil {
			mainLogger.Sugar().Warn("mq init failed", "err", err)
		} else {
			publisher = pub
			defer pub.Close()
		}
	}

	esClient, esClose, err := esx.Open(cfg)
	if err != nil {
		mainLogger.Sugar().Warn("es init failed", "err", err)
	} else {
		defer esClose()
	}

	// Quote feed, analysis session and scanner
	source := feed.NewClient(cfg.Feed.URL)
	sess := analysis.NewSession(source, analysis.Options{
		MaxTicks:          cfg.Analysis.MaxTicks,
		PredictEvery:      time.Duration(cfg.Analysis.PredictEverySec) * time.Second,
		MinTicksToPredict: cfg.Analysis.MinTicksToPredict,
	})

	markets, err := feed.LoadMarkets(cfg.Feed.Watchlist)
	if err != nil {
		mainLogger.Sugar().Warn("watchlist load failed, using defaults", "err", err)
		markets = feed.DefaultMarkets()
	}
	sweeper := scanner.New(source, markets, scanner.Options{
		Duration:      time.Duration(cfg.Scan.DurationSec) * time.Second,
		ProgressEvery: time.Duration(cfg.Scan.ProgressMs) * time.Millisecond,
	})
	scans := scanner.NewRegistry(sweeper, func(job scanner.JobView) {
		bg, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, sig := range job.Signals {
			doc := esx.SignalDoc{
				JobID:        job.ID,
				Market:       sig.Market,
				MarketName:   sig.MarketName,
				BestStrategy: string(sig.BestStrategy),
				Confidence:   sig.Confidence,
				Reasoning:    sig.Reasoning,
				TickCount:    sig.TickCount,
				Matches:      sig.Matches,
				Differs:      sig.Differs,
				ScannedAt:    sig.ScannedAt,
			}
			if err := esx.IndexSignal(bg, esClient, esx.DefaultSignalIndex, doc); err != nil {
				mainLogger.Sugar().Warn("index signal failed", "err", err)
			}
		}
		_ = mqx.PublishJSON(bg, publisher, mqx.ScanFinished, fiber.Map{
			"id": job.ID, "signals": len(job.Signals),
		})
	})

	// Fiber app and routes
	app := fiber.New(fiber.Config{ErrorHandler: kit.ErrorHandler()})
	httpx.RegisterCommonMiddlewares(app)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)
	providers := &httpx.Providers{MQ: publisher, ES: esClient, Redis: rdb}
	httpx.Register(app, cfg, client, sess, scans, providers)

	// Watch for dynamic config changes (Apollo)
	store.AddValidator(func(newCfg *config.Config, changed map[string]bool) error {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			if newCfg.PG.MaxIdleConns > newCfg.PG.MaxOpenConns {
				return fmt.Errorf("PG_MAX_IDLE cannot exceed PG_MAX_OPEN")
			}
		}
		if changed["analysis.max_ticks"] {
			if newCfg.Analysis.MaxTicks < analysis.MinWindow || newCfg.Analysis.MaxTicks > analysis.MaxWindow {
				return fmt.Errorf("ANALYSIS_MAX_TICKS must be within %d..%d", analysis.MinWindow, analysis.MaxWindow)
			}
		}
		return nil
	})

	store.Watch(func(newCfg *config.Config, changed map[string]bool) {
		if changed["pg.max_open"] || changed["pg.max_idle"] {
			db.UpdatePool(newCfg.PG.MaxOpenConns, newCfg.PG.MaxIdleConns)
			mainLogger.Info("db pool updated",
				zap.Int("max_open", newCfg.PG.MaxOpenConns),
				zap.Int("max_idle", newCfg.PG.MaxIdleConns),
			)
		}
		if changed["server.addr"] {
			mainLogger.Warn("server.addr changed; restart required to take effect",
				zap.String("addr", newCfg.Server.Addr),
			)
		}
		if changed["feed.url"] {
			mainLogger.Warn("feed.url changed; running subscriptions keep the old endpoint until restarted")
		}
		if changed["analysis.max_ticks"] && !sess.Running() {
			if err := sess.Resize(newCfg.Analysis.MaxTicks); err == nil {
				mainLogger.Info("analysis window resized", zap.Int("max_ticks", newCfg.Analysis.MaxTicks))
			}
		}
		if changed["log.level"] || changed["log.format"] {
			logx.Init(newCfg.Log.Level, newCfg.Log.Format)
			mainLogger.Info("logger reconfigured",
				zap.String("level", newCfg.Log.Level),
				zap.String("format", newCfg.Log.Format),
			)
		}
	})

	// Graceful shutdown
	go func() {
		ln, err := server.GetListener(cfg.Server.Addr)
		if err != nil {
			mainLogger.Sugar().Errorf("listener error: %v", err)
			return
		}
		if err := app.Listener(ln); err != nil {
			mainLogger.Sugar().Infof("fiber exit: %v", err)
		}
	}()
	mainLogger.Sugar().Infof("server started on %s", cfg.Server.Addr)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	mainLogger.Sugar().Info("shutting down...")
	sess.Stop()
	_ = app.Shutdown()
}
