package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gestao_obras/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "obras:report:"
	scanBatch = 100
)

// RedisReportCache keeps computed reports as JSON values with a TTL.
type RedisReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IReportCache = (*RedisReportCache)(nil)

// NewRedis creates and validates a go-redis client connection.
func NewRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

func NewRedisReportCache(rdb *redis.Client, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{rdb: rdb, ttl: ttl}
}

func (c *RedisReportCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisReportCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

// Invalidate deletes every report key. SCAN is used so large keyspaces are
// never blocked by KEYS.
func (c *RedisReportCache) Invalidate(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, keyPrefix+"*", scanBatch).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache: scan: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache: invalidate: %w", err)
	}
	return nil
}

// NoopReportCache is used when no Redis is configured: every read misses.
type NoopReportCache struct{}

var _ interfaces.IReportCache = NoopReportCache{}

func (NoopReportCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (NoopReportCache) Set(context.Context, string, any) error         { return nil }
func (NoopReportCache) Invalidate(context.Context) error               { return nil }
