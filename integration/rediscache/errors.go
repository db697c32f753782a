package rediscache

import "errors"

var (
	// ErrNilClient is returned when New is given a nil Redis client.
	ErrNilClient = errors.New("nil redis client")

	// ErrInvalidConfig is returned for unusable cache configuration.
	ErrInvalidConfig = errors.New("invalid redis cache configuration")
)
