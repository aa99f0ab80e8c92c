package config

import (
	"os"
	"strconv"

	"github.com/samber/lo"

	"digitflow/internal/logx"
)

var configLogger = logx.GetScope("config")

// Config holds the application configuration
type Config struct {
	AppEnv string
	Server struct {
		Addr string
	}
	Log struct {
		Level  string // debug, info, warn, error
		Format string // text, json
	}
	PG struct {
		URL          string
		MaxOpenConns int
		MaxIdleConns int
	}
	Redis struct {
		Addr     string
		Password string
		DB       int
	}
	MQ struct {
		URL string // RabbitMQ URL
	}
	ES struct {
		Addrs    string // comma separated
		Username string
		Password string
	}
	Session struct {
		Secret   string // HS256 secret for the session cookie
		TTLHours int
	}
	Admin struct {
		PasswordHash string // argon2id encoded hash for the admin console
		TokenMin     int    // admin token lifetime in minutes
	}
	Feed struct {
		URL       string // websocket quote feed endpoint
		Watchlist string // optional YAML instrument list path
	}
	Analysis struct {
		MaxTicks          int // observation window bound, clamped to 10..500
		PredictEverySec   int
		MinTicksToPredict int
	}
	Scan struct {
		DurationSec int
		ProgressMs  int
	}
	RateLimit struct {
		WindowSec int
		Max       int
	}
	Apollo struct {
		Enable    bool
		AppID     string
		Cluster   string
		Namespace string
		Addrs     string
		AccessKey string
	}
}

// Load loads config from env, and if enabled, overrides with Apollo values.
// Returns config, store, optional apollo closer, and error.
func Load() (*Config, *Store, func(), error) {
	cfg := &Config{}

	// env defaults
	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.Server.Addr = getEnv("SERVER_ADDR", ":8080")
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "text")
	cfg.PG.URL = getEnv("POSTGRES_URL", "")
	cfg.PG.MaxOpenConns = getInt("PG_MAX_OPEN", 10)
	cfg.PG.MaxIdleConns = getInt("PG_MAX_IDLE", 5)

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	// RabbitMQ
	cfg.MQ.URL = getEnv("RABBITMQ_URL", "")

	// Elasticsearch
	cfg.ES.Addrs = getEnv("ES_ADDRS", "")
	cfg.ES.Username = getEnv("ES_USERNAME", "")
	cfg.ES.Password = getEnv("ES_PASSWORD", "")

	// Sessions and admin console
	cfg.Session.Secret = getEnv("SESSION_SECRET", "")
	cfg.Session.TTLHours = getInt("SESSION_TTL_HOURS", 24)
	cfg.Admin.PasswordHash = getEnv("ADMIN_PASSWORD_HASH", "")
	cfg.Admin.TokenMin = getInt("ADMIN_TOKEN_MIN", 60)

	// Quote feed
	cfg.Feed.URL = getEnv("FEED_URL", "wss://ws.binaryws.com/websockets/v3?app_id=69948")
	cfg.Feed.Watchlist = getEnv("FEED_WATCHLIST", "")

	// Analysis engine
	cfg.Analysis.MaxTicks = lo.Clamp(getInt("ANALYSIS_MAX_TICKS", 100), 10, 500)
	cfg.Analysis.PredictEverySec = getInt("ANALYSIS_PREDICT_SEC", 30)
	cfg.Analysis.MinTicksToPredict = getInt("ANALYSIS_MIN_TICKS", 10)

	// Market scanner
	cfg.Scan.DurationSec = getInt("SCAN_DURATION_SEC", 60)
	cfg.Scan.ProgressMs = getInt("SCAN_PROGRESS_MS", 500)

	// Verify endpoint rate limiting
	cfg.RateLimit.WindowSec = getInt("RATE_LIMIT_WINDOW_SEC", 60)
	cfg.RateLimit.Max = getInt("RATE_LIMIT_MAX", 30)

	cfg.Apollo.Enable = getBool("APOLLO_ENABLE", false)
	cfg.Apollo.AppID = getEnv("APOLLO_APP_ID", "")
	cfg.Apollo.Cluster = getEnv("APOLLO_CLUSTER", "default")
	cfg.Apollo.Namespace = getEnv("APOLLO_NAMESPACE", "application")
	cfg.Apollo.Addrs = getEnv("APOLLO_ADDRS", "")
	cfg.Apollo.AccessKey = getEnv("APOLLO_ACCESS_KEY", "")

	store := NewStore(cfg)

	if cfg.Apollo.Enable {
		closer, err := overrideFromApollo(cfg, store)
		if err != nil {
			configLogger.Sugar().Errorf("apollo override failed: %v", err)
			return cfg, store, closer, err
		}
		return cfg, store, closer, nil
	}

	return cfg, store, nil, nil
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	return lo.Ternary(v != "", v, def)
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
