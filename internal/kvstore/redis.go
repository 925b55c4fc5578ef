package kvstore

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/op-character-creator/internal/errors"
	redisclient "github.com/KirkDiggler/op-character-creator/internal/redis"
)

// RedisConfig holds the configuration for the Redis store
type RedisConfig struct {
	Client redisclient.Client
	// Prefix is prepended to every key, e.g. "op-character-creator:"
	Prefix string
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

// RedisStore keeps records as plain Redis strings without expiry
type RedisStore struct {
	client redisclient.Client
	prefix string
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(cfg *RedisConfig) (*RedisStore, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &RedisStore{
		client: cfg.Client,
		prefix: cfg.Prefix,
	}, nil
}

// Ensure RedisStore implements Store
var _ Store = (*RedisStore)(nil)

// Get returns the value stored under key
func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.InvalidArgument(errKeyEmpty)
	}

	value, err := r.client.Get(ctx, r.buildKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", errors.NotFoundf("no record stored under %s", key)
		}
		return "", errors.Wrapf(err, "failed to get %s from Redis", key)
	}

	return value, nil
}

// Set stores value under key with no TTL
func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}

	if err := r.client.Set(ctx, r.buildKey(key), value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to store %s in Redis", key)
	}
	return nil
}

// Delete removes key
func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}

	if err := r.client.Del(ctx, r.buildKey(key)).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete %s from Redis", key)
	}
	return nil
}

func (r *RedisStore) buildKey(key string) string {
	return r.prefix + key
}
