package config

import (
	"errors"
	"testing"
)

// mapCache implements agcache.CacheInterface over a plain map.
type mapCache struct {
	data map[string]interface{}
}

func (m *mapCache) Set(key string, value interface{}, _ int) error {
	m.data[key] = value
	return nil
}
func (m *mapCache) EntryCount() int64 { return int64(len(m.data)) }
func (m *mapCache) Get(key string) (interface{}, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, errors.New("miss")
	}
	return v, nil
}
func (m *mapCache) Del(key string) bool {
	_, ok := m.data[key]
	delete(m.data, key)
	return ok
}
func (m *mapCache) Range(f func(key, value interface{}) bool) {
	for k, v := range m.data {
		if !f(k, v) {
			return
		}
	}
}
func (m *mapCache) Clear() { m.data = map[string]interface{}{} }

func TestCacheOverrides(t *testing.T) {
	cache := &mapCache{data: map[string]interface{}{
		"server.addr":   ":9090",
		"pg.max_open":   "25",
		"pg.max_idle":   "not-a-number",
		"redis.addr":    "",
		"feed.url":      "wss://example/feed",
		"ratelimit.max": "100",
	}}

	addr, feed, redis := ":8080", "wss://old", "localhost:6379"
	open, idle, max := 10, 5, 30

	getString(cache, "server.addr", &addr)
	getString(cache, "feed.url", &feed)
	getString(cache, "redis.addr", &redis)
	getString(cache, "missing.key", &feed)
	getIntValue(cache, "pg.max_open", &open)
	getIntValue(cache, "pg.max_idle", &idle)
	getIntValue(cache, "ratelimit.max", &max)
	getIntValue(cache, "missing.int", &open)

	if addr != ":9090" {
		t.Fatalf("addr = %q", addr)
	}
	if feed != "wss://example/feed" {
		t.Fatalf("feed = %q", feed)
	}
	// Empty and missing values leave the current setting alone.
	if redis != "localhost:6379" {
		t.Fatalf("redis = %q", redis)
	}
	if open != 25 {
		t.Fatalf("open = %d", open)
	}
	// Unparseable numbers leave the current setting alone.
	if idle != 5 {
		t.Fatalf("idle = %d", idle)
	}
	if max != 100 {
		t.Fatalf("max = %d", max)
	}
}
