package rediscache_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namestrip"
	"github.com/dmitrymomot/namestrip/integration/rediscache"
)

// fakeClient emulates the handful of Redis commands the adapter issues.
type fakeClient struct {
	mu      sync.Mutex
	data    map[string]string
	failing bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: make(map[string]string)}
}

func (f *fakeClient) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failing {
		return redis.NewStringResult("", errors.New("connection refused"))
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failing {
		return redis.NewStatusResult("", errors.New("connection refused"))
	}
	f.data[key] = value.(string)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Scan(_ context.Context, _ uint64, match string, _ int64) *redis.ScanCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failing {
		return redis.NewScanCmdResult(nil, 0, errors.New("connection refused"))
	}
	prefix := strings.TrimSuffix(match, "*")
	var keys []string
	for k := range f.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return redis.NewScanCmdResult(keys, 0, nil)
}

func (f *fakeClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil client rejected", func(t *testing.T) {
		t.Parallel()

		_, err := rediscache.New(nil)
		require.ErrorIs(t, err, rediscache.ErrNilClient)
	})

	t.Run("roundtrip", func(t *testing.T) {
		t.Parallel()

		cache, err := rediscache.New(newFakeClient())
		require.NoError(t, err)

		_, ok := cache.Get("missing")
		assert.False(t, ok)

		cache.Set("k", "v")
		got, ok := cache.Get("k")
		require.True(t, ok)
		assert.Equal(t, "v", got)

		cache.Set("k", "")
		got, ok = cache.Get("k")
		require.True(t, ok)
		assert.Equal(t, "", got)
	})
}

func TestCache_KeyPrefix(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	client.data["other-app:key"] = "keep"

	cache, err := rediscache.New(client, rediscache.WithKeyPrefix("app:names:"))
	require.NoError(t, err)

	cache.Set("User|0", "User")
	assert.Contains(t, client.data, "app:names:User|0")

	cache.Clear()

	assert.NotContains(t, client.data, "app:names:User|0")
	assert.Contains(t, client.data, "other-app:key")
}

func TestCache_DegradesToMiss(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	client.failing = true

	cache, err := rediscache.New(client)
	require.NoError(t, err)

	// Failures never surface; the stripper just recomputes.
	s := namestrip.New(namestrip.WithCache(cache))
	got, err := s.Strip(`App\Entity\UserDto`, namestrip.TrimSuffix)
	require.NoError(t, err)
	assert.Equal(t, "User", got)

	cache.Clear() // must not panic either
}

func TestCache_WiredIntoStripper(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	cache, err := rediscache.New(client)
	require.NoError(t, err)

	s := namestrip.New(namestrip.WithCache(cache))

	got, err := s.Strip(`App\Entity\UserDto`, namestrip.TrimSuffix)
	require.NoError(t, err)
	assert.Equal(t, "User", got)
	assert.Len(t, client.data, 1)

	// A second stripper sharing the client sees the memoized result.
	shared := namestrip.New(namestrip.WithCache(cache))
	got, err = shared.Strip(`App\Entity\UserDto`, namestrip.TrimSuffix)
	require.NoError(t, err)
	assert.Equal(t, "User", got)

	s.ClearCache()
	assert.Empty(t, client.data)
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := rediscache.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, rediscache.DefaultConfig(), cfg)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("NAMESTRIP_REDIS_KEY_PREFIX", "svc:")
		t.Setenv("NAMESTRIP_REDIS_TTL", "1h")

		cfg, err := rediscache.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "svc:", cfg.KeyPrefix)
		assert.Equal(t, time.Hour, cfg.TTL)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		cache, err := rediscache.NewFromConfig(newFakeClient(), rediscache.DefaultConfig())
		require.NoError(t, err)
		require.NotNil(t, cache)
	})

	tests := []struct {
		name string
		cfg  rediscache.Config
	}{
		{"empty prefix", rediscache.Config{TTL: 0, OpTimeout: time.Second, ScanBatchSize: 10}},
		{"negative ttl", rediscache.Config{KeyPrefix: "x:", TTL: -time.Second, OpTimeout: time.Second, ScanBatchSize: 10}},
		{"zero timeout", rediscache.Config{KeyPrefix: "x:", ScanBatchSize: 10}},
		{"zero batch", rediscache.Config{KeyPrefix: "x:", OpTimeout: time.Second}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := rediscache.NewFromConfig(newFakeClient(), tt.cfg)
			require.ErrorIs(t, err, rediscache.ErrInvalidConfig)
		})
	}
}
