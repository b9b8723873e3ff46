// Package cache implements the token cache over Redis. Entries are
// revocation checkpoints for signed tokens; get/set/del map to the
// store's atomic per-key primitives.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/EhsanulSakib/wool-e-commerce-backend/config"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/service"
)

// ClientParams holds dependencies for the Redis client, injected by Fx.
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Redis client and registers its shutdown hook.
func NewClient(params ClientParams) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Connected to redis", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.Wrap(client.Close(), "failed to close redis client")
		},
	})

	return client, nil
}

// redisTokenCache implements service.TokenCache on a Redis client.
type redisTokenCache struct {
	client *redis.Client
}

// NewTokenCache is the constructor for redisTokenCache.
func NewTokenCache(client *redis.Client) service.TokenCache {
	return &redisTokenCache{client: client}
}

// Get returns the cached value or service.ErrCacheMiss.
func (c *redisTokenCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", service.ErrCacheMiss
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to get cache key")
	}

	return value, nil
}

// Set stores the value with the given time-to-live.
func (c *redisTokenCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return errors.Wrap(c.client.Set(ctx, key, value, ttl).Err(), "failed to set cache key")
}

// Del removes the keys. Missing keys are not an error.
func (c *redisTokenCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return errors.Wrap(c.client.Del(ctx, keys...).Err(), "failed to delete cache keys")
}
