package config

import (
	"strconv"

	agollo "github.com/apolloconfig/agollo/v4"
	"github.com/apolloconfig/agollo/v4/agcache"
	apconf "github.com/apolloconfig/agollo/v4/env/config"
	"github.com/apolloconfig/agollo/v4/storage"
)

// overrideFromApollo starts an Apollo client and overrides config values when
// present. Returns a closer to stop the Apollo client.
func overrideFromApollo(cfg *Config, store *Store) (func(), error) {
	if cfg.Apollo.Addrs == "" || cfg.Apollo.AppID == "" {
		configLogger.Sugar().Info("apollo: missing APOLLO_ADDRS or APOLLO_APP_ID; skip")
		return nil, nil
	}

	ns := cfg.Apollo.Namespace
	if ns == "" {
		ns = "application"
	}

	appCfg := &apconf.AppConfig{
		AppID:         cfg.Apollo.AppID,
		Cluster:       cfg.Apollo.Cluster,
		NamespaceName: ns,
		IP:            cfg.Apollo.Addrs,
		Secret:        cfg.Apollo.AccessKey,
	}

	client, err := agollo.StartWithConfig(func() (*apconf.AppConfig, error) { return appCfg, nil })
	if err != nil {
		return nil, err
	}

	// Initial override
	applyApolloOverrides(client, ns, cfg)
	_ = store.UpdateValidated(cfg, map[string]bool{"apollo.init": true})

	client.AddChangeListener(&apolloListener{ns: ns, client: client, store: store})

	// agollo v4 exposes no Stop; the closer is a placeholder.
	closer := func() {}
	return closer, nil
}

func getString(cache agcache.CacheInterface, key string, dst *string) {
	v, err := cache.Get(key)
	if err != nil {
		return
	}
	if s, _ := v.(string); s != "" {
		*dst = s
	}
}

func getIntValue(cache agcache.CacheInterface, key string, dst *int) {
	v, err := cache.Get(key)
	if err != nil {
		return
	}
	if s, _ := v.(string); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			*dst = n
		}
	}
}

func applyApolloOverrides(client agollo.Client, namespace string, cfg *Config) {
	cache := client.GetConfigCache(namespace)
	if cache == nil {
		return
	}
	getString(cache, "app.env", &cfg.AppEnv)
	getString(cache, "server.addr", &cfg.Server.Addr)
	getString(cache, "log.level", &cfg.Log.Level)
	getString(cache, "log.format", &cfg.Log.Format)
	getString(cache, "pg.url", &cfg.PG.URL)
	getIntValue(cache, "pg.max_open", &cfg.PG.MaxOpenConns)
	getIntValue(cache, "pg.max_idle", &cfg.PG.MaxIdleConns)
	getString(cache, "redis.addr", &cfg.Redis.Addr)
	getString(cache, "redis.password", &cfg.Redis.Password)
	getIntValue(cache, "redis.db", &cfg.Redis.DB)
	getString(cache, "mq.url", &cfg.MQ.URL)
	getString(cache, "es.addrs", &cfg.ES.Addrs)
	getString(cache, "es.username", &cfg.ES.Username)
	getString(cache, "es.password", &cfg.ES.Password)
	getString(cache, "feed.url", &cfg.Feed.URL)
	getIntValue(cache, "analysis.max_ticks", &cfg.Analysis.MaxTicks)
	getIntValue(cache, "analysis.predict_sec", &cfg.Analysis.PredictEverySec)
	getIntValue(cache, "scan.duration_sec", &cfg.Scan.DurationSec)
	getIntValue(cache, "ratelimit.window_sec", &cfg.RateLimit.WindowSec)
	getIntValue(cache, "ratelimit.max", &cfg.RateLimit.Max)
}

type apolloListener struct {
	ns     string
	client agollo.Client
	store  *Store
}

func (l *apolloListener) OnChange(e *storage.ChangeEvent) {
	configLogger.Sugar().Infof("apollo change: namespace=%s, changes=%d", e.Namespace, len(e.Changes))
	cur := l.store.Get()
	next := cloneConfig(cur)
	applyApolloOverrides(l.client, l.ns, next)
	changed := map[string]bool{}
	for k := range e.Changes {
		changed[k] = true
	}
	_ = l.store.UpdateValidated(next, changed)
}

func (l *apolloListener) OnNewestChange(e *storage.FullChangeEvent) {
	configLogger.Sugar().Debugf("apollo full change: namespace=%s", e.Namespace)
}
