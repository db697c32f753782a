package rediscache

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Redis cache.
type Option func(*Cache)

// WithKeyPrefix namespaces every cache key. Clear only touches keys under the
// prefix, so multiple applications can share one Redis database.
func WithKeyPrefix(prefix string) Option {
	return func(c *Cache) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithTTL expires entries after the given duration. Zero keeps entries
// forever, matching the in-process cache.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl >= 0 {
			c.ttl = ttl
		}
	}
}

// WithOpTimeout bounds each Redis round trip. The namestrip.Cache interface
// is synchronous, so slow Redis calls otherwise stall Strip callers.
func WithOpTimeout(timeout time.Duration) Option {
	return func(c *Cache) {
		if timeout > 0 {
			c.opTimeout = timeout
		}
	}
}

// WithScanBatchSize tunes the SCAN page size used by Clear.
func WithScanBatchSize(size int64) Option {
	return func(c *Cache) {
		if size > 0 {
			c.scanBatch = size
		}
	}
}

// WithLogger sets the logger for debug-level diagnostics of degraded
// operations. Defaults to a discard handler.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}
