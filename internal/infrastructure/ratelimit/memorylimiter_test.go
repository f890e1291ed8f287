package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		RequestsPerMinute:      5,
		RequestsPerHour:        100,
		GetRequestsPerMinute:   10,
		GetRequestsPerHour:     200,
		AuthRequestsPerMinute:  3,
		AuthRequestsPerHour:    30,
		AdminRequestsPerMinute: 4,
		AdminRequestsPerHour:   40,
	}
}

// fakeClock lets tests advance time without sleeping.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(cfg Config) (*MemoryLimiter, *fakeClock) {
	l := NewMemoryLimiter(cfg)
	clock := newFakeClock()
	l.now = clock.Now
	return l, clock
}

func TestEvaluate_AdmitsUpToMinuteLimit(t *testing.T) {
	l, _ := newTestLimiter(testConfig())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		dec, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, dec.Allowed, "request %d should be admitted", i+1)
		assert.Equal(t, i+1, dec.Limits.MinuteCount)
		assert.Equal(t, i+1, dec.Limits.HourCount)
	}

	dec, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Equal(t, "Rate limit exceeded: 5 requests per minute", dec.Reason)
	assert.Equal(t, time.Minute, dec.RetryAfter)
	assert.Equal(t, 5, dec.Limits.MinuteCount, "rejected request must not be counted")
}

func TestEvaluate_HourLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RequestsPerMinute = 1000
	cfg.RequestsPerHour = 3
	l, _ := newTestLimiter(cfg)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		dec, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, dec.Allowed)
	}

	dec, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Equal(t, "Rate limit exceeded: 3 requests per hour", dec.Reason)
	assert.Equal(t, time.Hour, dec.RetryAfter)
}

func TestEvaluate_MinuteReasonWinsWhenBothExceeded(t *testing.T) {
	cfg := Config{RequestsPerMinute: 1, RequestsPerHour: 1}
	l, _ := newTestLimiter(cfg)
	ctx := context.Background()

	dec, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	require.True(t, dec.Allowed)

	dec, err = l.Evaluate(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Contains(t, dec.Reason, "per minute")
}

func TestEvaluate_IndependentKeys(t *testing.T) {
	l, _ := newTestLimiter(testConfig())
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
		require.NoError(t, err)
	}

	// A different client is unaffected.
	dec, err := l.Evaluate(ctx, ClassDefault, "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
	assert.Equal(t, 1, dec.Limits.MinuteCount)

	// The same client on a different class is unaffected too.
	dec, err = l.Evaluate(ctx, ClassGet, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
	assert.Equal(t, 1, dec.Limits.MinuteCount)
}

func TestEvaluate_RejectionDoesNotConsumeHourQuota(t *testing.T) {
	l, _ := newTestLimiter(testConfig())
	ctx := context.Background()

	// Exhaust the minute budget, then hammer past it.
	for i := 0; i < 10; i++ {
		_, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
		require.NoError(t, err)
	}

	quota, err := l.Remaining(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	// Only the 5 admitted requests count against the hour window.
	assert.Equal(t, 95, quota.HourRemaining)
}

func TestEvaluate_PruningAdmitsAfterWindowPasses(t *testing.T) {
	cfg := testConfig()
	cfg.RequestsPerMinute = 2
	l, clock := newTestLimiter(cfg)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		dec, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
		require.NoError(t, err)
		require.True(t, dec.Allowed)
	}

	dec, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	require.False(t, dec.Allowed)

	clock.Advance(61 * time.Second)

	dec, err = l.Evaluate(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, dec.Allowed, "stale timestamps must not count after the window passes")
	assert.Equal(t, 1, dec.Limits.MinuteCount)
	assert.Equal(t, 3, dec.Limits.HourCount, "hour window still holds the earlier requests")
}

func TestEvaluate_RejectedCallsNeverRecorded(t *testing.T) {
	l, _ := newTestLimiter(testConfig())
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
		require.NoError(t, err)
	}

	key := Key(ClassDefault, "1.2.3.4")
	l.mu.Lock()
	recorded := len(l.ledgers[ClassDefault].minute[key])
	l.mu.Unlock()

	assert.Equal(t, 5, recorded)
}

func TestRemaining_ReadOnly(t *testing.T) {
	l, _ := newTestLimiter(testConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
		require.NoError(t, err)
	}

	quota, err := l.Remaining(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 2, quota.MinuteRemaining)
	assert.Equal(t, 97, quota.HourRemaining)
	assert.Equal(t, 5, quota.MinuteLimit)
	assert.Equal(t, 100, quota.HourLimit)

	// Calling Remaining repeatedly changes nothing.
	for i := 0; i < 5; i++ {
		_, err := l.Remaining(ctx, ClassDefault, "1.2.3.4")
		require.NoError(t, err)
	}

	dec, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
	assert.Equal(t, 4, dec.Limits.MinuteCount)
}

func TestRemaining_ResetSeconds(t *testing.T) {
	l, clock := newTestLimiter(testConfig())
	ctx := context.Background()

	// Fixed epoch: 1_700_000_000 mod 60 = 20, mod 3600 = 800.
	quota, err := l.Remaining(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 40, quota.MinuteReset)
	assert.Equal(t, 2800, quota.HourReset)

	clock.Advance(10 * time.Second)
	quota, err = l.Remaining(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 30, quota.MinuteReset)
}

func TestRemaining_NeverNegative(t *testing.T) {
	cfg := Config{RequestsPerMinute: 2, RequestsPerHour: 2}
	l, _ := newTestLimiter(cfg)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
		require.NoError(t, err)
	}

	quota, err := l.Remaining(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	assert.Equal(t, 0, quota.MinuteRemaining)
	assert.Equal(t, 0, quota.HourRemaining)
}

func TestSweep_DropsIdleKeys(t *testing.T) {
	l, clock := newTestLimiter(testConfig())
	ctx := context.Background()

	_, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
	require.NoError(t, err)
	_, err = l.Evaluate(ctx, ClassGet, "5.6.7.8")
	require.NoError(t, err)

	clock.Advance(time.Hour + time.Second)
	l.Sweep()

	l.mu.Lock()
	defer l.mu.Unlock()
	for class, ledger := range l.ledgers {
		assert.Empty(t, ledger.minute, "minute ledger for %s should be empty", class)
		assert.Empty(t, ledger.hour, "hour ledger for %s should be empty", class)
	}
}

func TestEvaluate_ConcurrentSameKeyHoldsLimit(t *testing.T) {
	cfg := Config{RequestsPerMinute: 50, RequestsPerHour: 1000}
	l := NewMemoryLimiter(cfg)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dec, err := l.Evaluate(ctx, ClassDefault, "1.2.3.4")
			if err != nil {
				return
			}
			if dec.Allowed {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, admitted, "at most the minute limit may be admitted under concurrency")
}

func TestConfig_LimitsPerClass(t *testing.T) {
	cfg := testConfig()

	perMinute, perHour := cfg.Limits(ClassAuth)
	assert.Equal(t, 3, perMinute)
	assert.Equal(t, 30, perHour)

	perMinute, perHour = cfg.Limits(ClassAdmin)
	assert.Equal(t, 4, perMinute)
	assert.Equal(t, 40, perHour)

	perMinute, perHour = cfg.Limits(ClassGet)
	assert.Equal(t, 10, perMinute)
	assert.Equal(t, 200, perHour)

	perMinute, perHour = cfg.Limits(ClassDefault)
	assert.Equal(t, 5, perMinute)
	assert.Equal(t, 100, perHour)
}
