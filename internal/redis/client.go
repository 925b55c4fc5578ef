// Package redis wraps go-redis client construction so stores depend on a
// narrow, mockable Client type.
package redis

import (
	"crypto/tls"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	DB       int
	Password string
	UseTLS   bool
}

// NewClient creates a Redis client for a single instance.
// Redis connects lazily, so a bad endpoint surfaces on the first command.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:     endpoint,
		DB:       opts.DB,
		Password: opts.Password,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClient(redisOpts), nil
}
