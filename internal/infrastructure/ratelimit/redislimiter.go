package ratelimit

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a sliding window limiter backed by Redis sorted sets,
// for deployments where multiple instances must share rate limit state.
// Each (key, window) pair is a ZSET of request timestamps scored by
// nanosecond; pruning is a ZRemRangeByScore and counting a ZCard.
type RedisLimiter struct {
	cfg    Config
	client *redis.Client
	now    func() time.Time
	seq    atomic.Uint64
}

// NewRedisLimiter creates a Redis-backed limiter with the given budgets.
func NewRedisLimiter(client *redis.Client, cfg Config) *RedisLimiter {
	return &RedisLimiter{
		cfg:    cfg,
		client: client,
		now:    time.Now,
	}
}

func (l *RedisLimiter) Evaluate(ctx context.Context, class Class, clientIP string) (*Decision, error) {
	key := Key(class, clientIP)
	minuteLimit, hourLimit := l.cfg.Limits(class)
	now := l.now()

	minuteCount, hourCount, err := l.pruneAndCount(ctx, key, now)
	if err != nil {
		return nil, err
	}

	if minuteCount >= minuteLimit {
		return &Decision{
			Allowed:    false,
			Reason:     fmt.Sprintf("Rate limit exceeded: %d requests per minute", minuteCount),
			RetryAfter: time.Minute,
			Limits: LimitsInfo{
				MinuteLimit: minuteLimit,
				HourLimit:   hourLimit,
				MinuteCount: minuteCount,
				HourCount:   hourCount,
			},
		}, nil
	}

	if hourCount >= hourLimit {
		return &Decision{
			Allowed:    false,
			Reason:     fmt.Sprintf("Rate limit exceeded: %d requests per hour", hourCount),
			RetryAfter: time.Hour,
			Limits: LimitsInfo{
				MinuteLimit: minuteLimit,
				HourLimit:   hourLimit,
				MinuteCount: minuteCount,
				HourCount:   hourCount,
			},
		}, nil
	}

	nowNano := now.UnixNano()
	// Sequence-suffixed member so requests landing on the same
	// nanosecond stay distinct ZSET entries instead of collapsing.
	member := fmt.Sprintf("%d-%d", nowNano, l.seq.Add(1))
	pipe := l.client.Pipeline()
	pipe.ZAdd(ctx, l.windowKey(key, time.Minute), redis.Z{Score: float64(nowNano), Member: member})
	pipe.ZAdd(ctx, l.windowKey(key, time.Hour), redis.Z{Score: float64(nowNano), Member: member})
	pipe.Expire(ctx, l.windowKey(key, time.Minute), 2*time.Minute)
	pipe.Expire(ctx, l.windowKey(key, time.Hour), time.Hour+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to record request: %w", err)
	}

	return &Decision{
		Allowed: true,
		Limits: LimitsInfo{
			MinuteLimit: minuteLimit,
			HourLimit:   hourLimit,
			MinuteCount: minuteCount + 1,
			HourCount:   hourCount + 1,
		},
	}, nil
}

func (l *RedisLimiter) Remaining(ctx context.Context, class Class, clientIP string) (*Quota, error) {
	key := Key(class, clientIP)
	minuteLimit, hourLimit := l.cfg.Limits(class)
	now := l.now()

	minuteCount, hourCount, err := l.pruneAndCount(ctx, key, now)
	if err != nil {
		return nil, err
	}

	return &Quota{
		MinuteLimit:     minuteLimit,
		HourLimit:       hourLimit,
		MinuteRemaining: maxInt(0, minuteLimit-minuteCount),
		HourRemaining:   maxInt(0, hourLimit-hourCount),
		MinuteReset:     int(60 - now.Unix()%60),
		HourReset:       int(3600 - now.Unix()%3600),
	}, nil
}

// pruneAndCount drops stale timestamps from both windows and returns the
// retained counts in a single pipeline round trip.
func (l *RedisLimiter) pruneAndCount(ctx context.Context, key string, now time.Time) (minuteCount, hourCount int, err error) {
	minuteKey := l.windowKey(key, time.Minute)
	hourKey := l.windowKey(key, time.Hour)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, minuteKey, "0", fmt.Sprintf("%d", now.Add(-time.Minute).UnixNano()))
	pipe.ZRemRangeByScore(ctx, hourKey, "0", fmt.Sprintf("%d", now.Add(-time.Hour).UnixNano()))
	minuteCard := pipe.ZCard(ctx, minuteKey)
	hourCard := pipe.ZCard(ctx, hourKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return int(minuteCard.Val()), int(hourCard.Val()), nil
}

func (l *RedisLimiter) windowKey(key string, window time.Duration) string {
	return fmt.Sprintf("ratelimit:%s:%s", key, window.String())
}
