package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staybook/internal/pkg/config"
	"staybook/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient connects and pings. A failed ping is returned so the caller can
// decide whether to start without a cache.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return client, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

type RedisCache struct {
	client redis.UniversalClient
}

func NewRedisCache(client redis.UniversalClient) *RedisCache {
	return &RedisCache{client: client}
}

var _ shared.Cache = (*RedisCache)(nil)

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := c.client.Get(ctx, key).Bytes()
	return v, translate(err)
}

func (c *RedisCache) GetField(ctx context.Context, key, field string) ([]byte, error) {
	v, err := c.client.HGet(ctx, key, field).Bytes()
	return v, translate(err)
}

func (c *RedisCache) Members(ctx context.Context, key string) ([]string, error) {
	v, err := c.client.SMembers(ctx, key).Result()
	return v, translate(err)
}

func (c *RedisCache) SetWithExpiry(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// GroupedWrite sends every op in one MULTI/EXEC round trip.
func (c *RedisCache) GroupedWrite(ctx context.Context, ops ...shared.CacheOp) error {
	if len(ops) == 0 {
		return nil
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, op := range ops {
			switch op.Kind {
			case shared.CacheOpSet:
				pipe.Set(ctx, op.Key, op.Value, op.TTL)
			case shared.CacheOpSetField:
				pipe.HSet(ctx, op.Key, op.Field, op.Value)
			case shared.CacheOpExpire:
				pipe.Expire(ctx, op.Key, op.TTL)
			case shared.CacheOpAddMember:
				pipe.SAdd(ctx, op.Key, op.Member)
			default:
				return fmt.Errorf("unknown cache op kind %d", op.Kind)
			}
		}
		return nil
	})
	return err
}

func translate(err error) error {
	if errors.Is(err, redis.Nil) {
		return shared.ErrCacheMiss
	}
	return err
}
