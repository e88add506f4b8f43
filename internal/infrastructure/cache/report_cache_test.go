package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopReportCache(t *testing.T) {
	var c NoopReportCache
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "dashboard:2025", map[string]int{"a": 1}))

	var dest map[string]int
	found, err := c.Get(ctx, "dashboard:2025", &dest)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Invalidate(ctx))
}

func TestNewRedis_InvalidURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
}

func TestRedisReportCache_UnreachableServerIsAnError(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()
	c := NewRedisReportCache(rdb, time.Minute)

	var dest map[string]int
	found, err := c.Get(context.Background(), "dashboard:2025", &dest)
	assert.Error(t, err)
	assert.False(t, found)
}
