package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// classLedger tracks request timestamps for one traffic class. Each window
// maps ledger key -> ascending timestamps (unix nanoseconds) of admitted
// requests still inside the window.
type classLedger struct {
	minute map[string][]int64
	hour   map[string][]int64
}

func newClassLedger() *classLedger {
	return &classLedger{
		minute: make(map[string][]int64),
		hour:   make(map[string][]int64),
	}
}

// MemoryLimiter is an in-memory sliding window limiter. State is
// process-local and resets on restart. All ledger access happens under a
// single mutex so the prune-check-append sequence is atomic; without it
// two concurrent requests from the same client could both observe a
// pre-limit count and both be admitted.
type MemoryLimiter struct {
	cfg     Config
	mu      sync.Mutex
	ledgers map[Class]*classLedger
	now     func() time.Time
}

// NewMemoryLimiter creates an in-memory limiter with the given budgets.
func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	ledgers := make(map[Class]*classLedger, 4)
	for _, class := range []Class{ClassAuth, ClassAdmin, ClassGet, ClassDefault} {
		ledgers[class] = newClassLedger()
	}
	return &MemoryLimiter{
		cfg:     cfg,
		ledgers: ledgers,
		now:     time.Now,
	}
}

// Evaluate admits or rejects a request for the given class and client.
// The minute window is checked before the hour window; a rejected request
// is never recorded and therefore never consumes quota.
func (l *MemoryLimiter) Evaluate(_ context.Context, class Class, clientIP string) (*Decision, error) {
	key := Key(class, clientIP)
	minuteLimit, hourLimit := l.cfg.Limits(class)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	ledger := l.ledgers[class]
	minute := pruneBefore(ledger.minute[key], now.Add(-time.Minute).UnixNano())
	hour := pruneBefore(ledger.hour[key], now.Add(-time.Hour).UnixNano())
	ledger.minute[key] = minute
	ledger.hour[key] = hour

	if len(minute) >= minuteLimit {
		return &Decision{
			Allowed:    false,
			Reason:     fmt.Sprintf("Rate limit exceeded: %d requests per minute", len(minute)),
			RetryAfter: time.Minute,
			Limits: LimitsInfo{
				MinuteLimit: minuteLimit,
				HourLimit:   hourLimit,
				MinuteCount: len(minute),
				HourCount:   len(hour),
			},
		}, nil
	}

	if len(hour) >= hourLimit {
		return &Decision{
			Allowed:    false,
			Reason:     fmt.Sprintf("Rate limit exceeded: %d requests per hour", len(hour)),
			RetryAfter: time.Hour,
			Limits: LimitsInfo{
				MinuteLimit: minuteLimit,
				HourLimit:   hourLimit,
				MinuteCount: len(minute),
				HourCount:   len(hour),
			},
		}, nil
	}

	ts := now.UnixNano()
	ledger.minute[key] = append(minute, ts)
	ledger.hour[key] = append(hour, ts)

	return &Decision{
		Allowed: true,
		Limits: LimitsInfo{
			MinuteLimit: minuteLimit,
			HourLimit:   hourLimit,
			MinuteCount: len(minute) + 1,
			HourCount:   len(hour) + 1,
		},
	}, nil
}

// Remaining reports the unused budget for the given class and client
// without recording a request.
func (l *MemoryLimiter) Remaining(_ context.Context, class Class, clientIP string) (*Quota, error) {
	key := Key(class, clientIP)
	minuteLimit, hourLimit := l.cfg.Limits(class)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	ledger := l.ledgers[class]
	minute := pruneBefore(ledger.minute[key], now.Add(-time.Minute).UnixNano())
	hour := pruneBefore(ledger.hour[key], now.Add(-time.Hour).UnixNano())
	ledger.minute[key] = minute
	ledger.hour[key] = hour

	return &Quota{
		MinuteLimit:     minuteLimit,
		HourLimit:       hourLimit,
		MinuteRemaining: maxInt(0, minuteLimit-len(minute)),
		HourRemaining:   maxInt(0, hourLimit-len(hour)),
		MinuteReset:     int(60 - now.Unix()%60),
		HourReset:       int(3600 - now.Unix()%3600),
	}, nil
}

// Sweep drops ledger keys whose windows have fully drained. Without it,
// the ledgers grow with every distinct (class, client) pair ever seen.
func (l *MemoryLimiter) Sweep() {
	now := l.now()
	minuteCutoff := now.Add(-time.Minute).UnixNano()
	hourCutoff := now.Add(-time.Hour).UnixNano()

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, ledger := range l.ledgers {
		for key, ts := range ledger.minute {
			if pruned := pruneBefore(ts, minuteCutoff); len(pruned) == 0 {
				delete(ledger.minute, key)
			} else {
				ledger.minute[key] = pruned
			}
		}
		for key, ts := range ledger.hour {
			if pruned := pruneBefore(ts, hourCutoff); len(pruned) == 0 {
				delete(ledger.hour, key)
			} else {
				ledger.hour[key] = pruned
			}
		}
	}
}

// StartSweeper runs Sweep on the given interval until the returned stop
// function is called.
func (l *MemoryLimiter) StartSweeper(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				l.Sweep()
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}

// pruneBefore drops leading timestamps at or before cutoff. Timestamps are
// appended in chronological order, so stale entries always sit at the head.
func pruneBefore(ts []int64, cutoff int64) []int64 {
	idx := 0
	for idx < len(ts) && ts[idx] <= cutoff {
		idx++
	}
	if idx == 0 {
		return ts
	}
	return append([]int64(nil), ts[idx:]...)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
