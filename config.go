package namestrip

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config provides environment-based configuration for a Stripper. Hosts that
// prefer explicit wiring can skip it entirely and use New with options.
type Config struct {
	// Delimiters lists the characters treated as qualified-name separators.
	Delimiters string `env:"NAMESTRIP_DELIMITERS" envDefault:"\\/."`
	// CacheEnabled toggles result memoization.
	CacheEnabled bool `env:"NAMESTRIP_CACHE_ENABLED" envDefault:"true"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Delimiters:   defaultDelimiters,
		CacheEnabled: true,
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

// NewFromConfig builds a Stripper from cfg. Explicit options are applied on
// top of the configuration and win on conflict.
func NewFromConfig(cfg Config, opts ...Option) (*Stripper, error) {
	if cfg.Delimiters == "" {
		return nil, fmt.Errorf("%w: empty delimiter set", ErrInvalidConfig)
	}

	base := []Option{WithDelimiters(cfg.Delimiters)}
	if !cfg.CacheEnabled {
		base = append(base, WithCache(nil))
	}

	return New(append(base, opts...)...), nil
}
