// Package cache provides a small content cache for the public read
// endpoints, backed by Redis when configured and an in-process memory
// store otherwise.
package cache

import (
	"context"
	"log/slog"
	"time"
)

// Store is the interface implemented by cache backends. Values are opaque
// byte slices; callers handle serialization.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
	Close() error
}

// Cache keys for the public singleton payloads.
const (
	KeySiteConfig  = "site_config"
	KeyHero        = "hero"
	KeyAbout       = "about"
	KeyContactInfo = "contact_info"
)

// Config holds cache configuration.
type Config struct {
	// RedisURL enables the Redis backend when non-empty.
	RedisURL string
	// Prefix is prepended to every Redis key.
	Prefix string
	// DefaultTTL applies when Set is called with ttl <= 0.
	DefaultTTL time.Duration
}

// New creates a cache store from the configuration. If Redis is configured
// but unreachable, it falls back to the memory backend with a warning
// rather than failing startup.
func New(cfg Config) Store {
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = 5 * time.Minute
	}

	if cfg.RedisURL != "" {
		store, err := newRedisStore(cfg)
		if err == nil {
			slog.Info("content cache initialized", "backend", "redis")
			return store
		}
		slog.Warn("redis unavailable, using memory cache", "error", err)
	}

	slog.Info("content cache initialized", "backend", "memory")
	return newMemoryStore(cfg.DefaultTTL)
}
