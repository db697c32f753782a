package rediscache

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	defaultKeyPrefix     = "namestrip:"
	defaultOpTimeout     = 2 * time.Second
	defaultScanBatchSize = 1000
)

// Config provides environment-based configuration for the Redis cache.
type Config struct {
	// KeyPrefix namespaces cache keys within the Redis database.
	KeyPrefix string `env:"NAMESTRIP_REDIS_KEY_PREFIX" envDefault:"namestrip:"`
	// TTL expires entries; zero keeps them for the lifetime of the database.
	TTL time.Duration `env:"NAMESTRIP_REDIS_TTL" envDefault:"0"`
	// OpTimeout bounds each Redis round trip.
	OpTimeout time.Duration `env:"NAMESTRIP_REDIS_OP_TIMEOUT" envDefault:"2s"`
	// ScanBatchSize is the SCAN page size used by Clear.
	ScanBatchSize int64 `env:"NAMESTRIP_REDIS_SCAN_BATCH_SIZE" envDefault:"1000"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		KeyPrefix:     defaultKeyPrefix,
		TTL:           0,
		OpTimeout:     defaultOpTimeout,
		ScanBatchSize: defaultScanBatchSize,
	}
}

// LoadConfig reads Config from environment variables.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// NewFromConfig builds a cache from cfg. Explicit options are applied on top
// of the configuration and win on conflict.
func NewFromConfig(client Client, cfg Config, opts ...Option) (*Cache, error) {
	if cfg.KeyPrefix == "" {
		return nil, fmt.Errorf("%w: empty key prefix", ErrInvalidConfig)
	}
	if cfg.TTL < 0 {
		return nil, fmt.Errorf("%w: negative TTL", ErrInvalidConfig)
	}
	if cfg.OpTimeout <= 0 {
		return nil, fmt.Errorf("%w: non-positive operation timeout", ErrInvalidConfig)
	}
	if cfg.ScanBatchSize <= 0 {
		return nil, fmt.Errorf("%w: non-positive scan batch size", ErrInvalidConfig)
	}

	base := []Option{
		WithKeyPrefix(cfg.KeyPrefix),
		WithTTL(cfg.TTL),
		WithOpTimeout(cfg.OpTimeout),
		WithScanBatchSize(cfg.ScanBatchSize),
	}

	return New(client, append(base, opts...)...)
}
