package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix — пространство ключей blocklist в Redis.
const DefaultPrefix = "blocklist:"

type redisBlocklist struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisBlocklist создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "blocklist:".
func NewRedisBlocklist(ctx context.Context, redisURL, prefix string) (Blocklist, error) {
	const op = "cache.NewRedisBlocklist"

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return newRedisBlocklist(rdb, prefix), nil
}

func newRedisBlocklist(rdb *redis.Client, prefix string) *redisBlocklist {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &redisBlocklist{rdb: rdb, prefix: prefix}
}

func (c *redisBlocklist) key(jti string) string { return c.prefix + jti }

// Revoke пишет пустое значение с TTL: Redis сам удалит ключ по истечении срока.
func (c *redisBlocklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	const op = "cache.redis.Revoke"

	if ttl <= 0 {
		return nil
	}

	if err := c.rdb.Set(ctx, c.key(jti), "", ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// IsRevoked проверяет наличие ключа. Просроченные ключи Redis не возвращает.
func (c *redisBlocklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	const op = "cache.redis.IsRevoked"

	n, err := c.rdb.Exists(ctx, c.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n > 0, nil
}

func (c *redisBlocklist) Close() error { return c.rdb.Close() }
