package kvstore

import (
	"context"
	"io"

	"github.com/KirkDiggler/op-character-creator/internal/errors"
	redisclient "github.com/KirkDiggler/op-character-creator/internal/redis"
)

// Backend names accepted by Open
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Backends lists every supported backend name
var Backends = []string{BackendMemory, BackendSQLite, BackendRedis}

// OpenConfig selects and configures a backend
type OpenConfig struct {
	Backend       string
	SQLitePath    string
	RedisAddr     string
	RedisPrefix   string
	RedisPassword string
	RedisDB       int
	RedisTLS      bool
}

// Validate ensures the selected backend has what it needs
func (c *OpenConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("Backend", c.Backend, Backends, vb)
	switch c.Backend {
	case BackendSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	case BackendRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
		if c.RedisDB < 0 {
			vb.Field("RedisDB", "must not be negative")
		}
	}

	return vb.Build()
}

// Open builds the configured store. The returned closer releases backend
// resources and is never nil.
func Open(ctx context.Context, cfg *OpenConfig) (Store, io.Closer, error) {
	if cfg == nil {
		return nil, nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "invalid store config")
	}

	switch cfg.Backend {
	case BackendSQLite:
		store, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case BackendRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
			DB:       cfg.RedisDB,
			Password: cfg.RedisPassword,
			UseTLS:   cfg.RedisTLS,
		})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create redis client")
		}
		store, err := NewRedisStore(&RedisConfig{Client: client, Prefix: cfg.RedisPrefix})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return store, client, nil
	default:
		return NewMemoryStore(), nopCloser{}, nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
