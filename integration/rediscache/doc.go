// Package rediscache backs the namestrip memoization store with Redis so
// strip results can be shared across processes and survive restarts.
//
// The adapter implements the namestrip.Cache interface over the go-redis
// client. It is deliberately forgiving: because memoization is only an
// optimization for a pure, deterministic operation, every Redis failure
// degrades to a cache miss and the pipeline recomputes the result. Callers
// never see Redis errors from Strip.
//
// # Usage
//
//	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//
//	cache, err := rediscache.New(rdb,
//		rediscache.WithKeyPrefix("myapp:names:"),
//		rediscache.WithTTL(24*time.Hour),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s := namestrip.New(namestrip.WithCache(cache))
//	out, err := s.Strip(`App\Entity\UserDto`, namestrip.TrimSuffix)
//
// # Configuration
//
// Environment-based configuration follows the usual pattern:
//
//	type Config struct {
//		KeyPrefix     string        `env:"NAMESTRIP_REDIS_KEY_PREFIX" envDefault:"namestrip:"`
//		TTL           time.Duration `env:"NAMESTRIP_REDIS_TTL" envDefault:"0"`
//		OpTimeout     time.Duration `env:"NAMESTRIP_REDIS_OP_TIMEOUT" envDefault:"2s"`
//		ScanBatchSize int64         `env:"NAMESTRIP_REDIS_SCAN_BATCH_SIZE" envDefault:"1000"`
//	}
//
//	cfg, err := rediscache.LoadConfig()
//	cache, err := rediscache.NewFromConfig(rdb, cfg)
//
// # Semantics
//
//   - Keys are namespaced under the configured prefix; Clear removes only
//     prefixed keys (batched SCAN + DEL), so one Redis database can serve
//     several applications.
//   - A zero TTL keeps entries forever, matching the unbounded in-process
//     MemoryCache; set a TTL when key cardinality is a concern.
//   - Every round trip is bounded by OpTimeout since the Cache interface is
//     synchronous and a slow Redis call would stall Strip callers.
//   - Degraded operations are logged at debug level through the injected
//     slog.Logger (discard by default).
package rediscache
