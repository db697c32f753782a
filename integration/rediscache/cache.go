package rediscache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/namestrip"
)

// Client is the subset of Redis commands the cache uses. *redis.Client,
// *redis.ClusterClient and *redis.Ring all satisfy it.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Cache adapts a Redis client to the namestrip.Cache interface so strip
// results can be shared across processes. Redis failures degrade to cache
// misses: memoization is an optimization, correctness never depends on it.
type Cache struct {
	client    Client
	prefix    string
	ttl       time.Duration
	opTimeout time.Duration
	scanBatch int64
	logger    *slog.Logger
}

var _ namestrip.Cache = (*Cache)(nil)

// New creates a Redis-backed cache around an established client.
func New(client Client, opts ...Option) (*Cache, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	c := &Cache{
		client:    client,
		prefix:    defaultKeyPrefix,
		ttl:       0,
		opTimeout: defaultOpTimeout,
		scanBatch: defaultScanBatchSize,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Get returns the cached value for key. Any Redis error other than a plain
// miss is logged at debug level and reported as a miss.
func (c *Cache) Get(key string) (string, bool) {
	ctx, cancel := c.opCtx()
	defer cancel()

	v, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Debug("redis cache get failed", slog.String("key", key), slog.Any("error", err))
		}
		return "", false
	}
	return v, true
}

// Set stores value under key with the configured TTL (zero means no expiry,
// matching the in-process cache semantics).
func (c *Cache) Set(key, value string) {
	ctx, cancel := c.opCtx()
	defer cancel()

	if err := c.client.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		c.logger.Debug("redis cache set failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Clear deletes every key under the configured prefix, scanning in batches so
// large stores are drained without blocking Redis.
func (c *Cache) Clear() {
	ctx, cancel := c.opCtx()
	defer cancel()

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", c.scanBatch).Result()
		if err != nil {
			c.logger.Debug("redis cache scan failed", slog.Any("error", err))
			return
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				c.logger.Debug("redis cache delete failed", slog.Any("error", err))
				return
			}
		}

		if next == 0 {
			return
		}
		cursor = next
	}
}

func (c *Cache) opCtx() (context.Context, context.CancelFunc) {
	if c.opTimeout > 0 {
		return context.WithTimeout(context.Background(), c.opTimeout)
	}
	return context.WithCancel(context.Background())
}
