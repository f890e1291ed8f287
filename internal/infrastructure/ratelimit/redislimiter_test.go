package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisLimiter_MinuteLimit(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client, Config{RequestsPerMinute: 5, RequestsPerHour: 100})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		dec, err := limiter.Evaluate(ctx, ClassDefault, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, dec.Allowed, "request %d should be admitted", i+1)
	}

	dec, err := limiter.Evaluate(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Equal(t, "Rate limit exceeded: 5 requests per minute", dec.Reason)
}

func TestRedisLimiter_IndependentClients(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client, Config{RequestsPerMinute: 2, RequestsPerHour: 100})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := limiter.Evaluate(ctx, ClassDefault, "1.2.3.4")
		require.NoError(t, err)
	}

	dec, err := limiter.Evaluate(ctx, ClassDefault, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
}

func TestRedisLimiter_Remaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client, Config{RequestsPerMinute: 10, RequestsPerHour: 100})
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := limiter.Evaluate(ctx, ClassDefault, "1.2.3.4")
		require.NoError(t, err)
	}

	quota, err := limiter.Remaining(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 6, quota.MinuteRemaining)
	assert.Equal(t, 96, quota.HourRemaining)
}

func TestRedisLimiter_SameInstantRequestsStayDistinct(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client, Config{RequestsPerMinute: 3, RequestsPerHour: 100})
	frozen := time.Now()
	limiter.now = func() time.Time { return frozen }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		dec, err := limiter.Evaluate(ctx, ClassDefault, "1.2.3.4")
		require.NoError(t, err)
		require.True(t, dec.Allowed)
		assert.Equal(t, i+1, dec.Limits.MinuteCount)
	}

	dec, err := limiter.Evaluate(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
}
