// Package ratelimit implements per-client sliding window rate limiting
// with independent budgets per traffic class. Requests are classified by
// path and method into one of four classes (auth, admin, get, default),
// each with its own per-minute and per-hour threshold. Two interchangeable
// stores exist: an in-memory timestamp ledger for single-instance
// deployments and a Redis sorted-set store for multi-instance ones.
package ratelimit

import (
	"context"
	"time"
)

// Config holds the per-class request budgets. It is built once at startup
// and never mutated afterward.
type Config struct {
	RequestsPerMinute int
	RequestsPerHour   int

	GetRequestsPerMinute int
	GetRequestsPerHour   int

	AuthRequestsPerMinute int
	AuthRequestsPerHour   int

	AdminRequestsPerMinute int
	AdminRequestsPerHour   int
}

// Limits returns the (per-minute, per-hour) thresholds for a traffic class.
func (c Config) Limits(class Class) (perMinute, perHour int) {
	switch class {
	case ClassAuth:
		return c.AuthRequestsPerMinute, c.AuthRequestsPerHour
	case ClassAdmin:
		return c.AdminRequestsPerMinute, c.AdminRequestsPerHour
	case ClassGet:
		return c.GetRequestsPerMinute, c.GetRequestsPerHour
	default:
		return c.RequestsPerMinute, c.RequestsPerHour
	}
}

// LimitsInfo reports the thresholds and observed counts for one evaluation.
// On rejection the counts exclude the rejected request (it is never
// recorded); on admission they include the just-admitted one.
type LimitsInfo struct {
	MinuteLimit int `json:"minute_limit"`
	HourLimit   int `json:"hour_limit"`
	MinuteCount int `json:"minute_count"`
	HourCount   int `json:"hour_count"`
}

// Decision is the outcome of a single rate limit evaluation.
type Decision struct {
	Allowed    bool
	Reason     string
	RetryAfter time.Duration
	Limits     LimitsInfo
}

// Quota reports remaining budget without consuming any. Reset values are
// seconds until the top of the next minute/hour boundary.
type Quota struct {
	MinuteLimit     int
	HourLimit       int
	MinuteRemaining int
	HourRemaining   int
	MinuteReset     int
	HourReset       int
}

// Limiter is the store-agnostic rate limiting contract. Evaluate mutates
// state (admitted requests are recorded); Remaining is read-only.
type Limiter interface {
	Evaluate(ctx context.Context, class Class, clientIP string) (*Decision, error)
	Remaining(ctx context.Context, class Class, clientIP string) (*Quota, error)
}
