package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/infrastructure/ratelimit"
	"github.com/camber-app/camber/internal/shared/constants"
	"github.com/camber-app/camber/internal/shared/logger"
)

// bypassPaths are never rate limited. The root path matches exactly;
// the rest match by prefix.
var bypassPaths = []string{"/health", "/docs", "/openapi.json", "/redoc"}

// RateLimitMiddleware classifies every inbound request, asks the limiter
// for an admit/reject decision, and shapes the 429 response or the
// X-RateLimit-* headers accordingly.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	enabled bool
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter, enabled bool, log logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		enabled: enabled,
		logger:  log,
	}
}

// Handle returns the Gin middleware enforcing the configured budgets.
func (m *RateLimitMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if !m.enabled || isBypassPath(path) {
			c.Next()
			return
		}

		class := ratelimit.Classify(path, c.Request.Method)
		clientIP := ratelimit.ClientAddr(c.Request)
		ctx := c.Request.Context()

		dec, err := m.limiter.Evaluate(ctx, class, clientIP)
		if err != nil {
			// A broken limiter backend must not take the API down.
			m.logger.Warnw("rate limiter unavailable, admitting request", "error", err, "path", path)
			c.Next()
			return
		}

		if !dec.Allowed {
			m.logger.Infow("request rejected by rate limiter",
				"class", string(class),
				"client_ip", clientIP,
				"path", path,
				"reason", dec.Reason)
			m.reject(c, dec)
			return
		}

		quota, err := m.limiter.Remaining(ctx, class, clientIP)
		if err == nil {
			c.Header(constants.HeaderRateLimitRemainingMinute, strconv.Itoa(quota.MinuteRemaining))
			c.Header(constants.HeaderRateLimitRemainingHour, strconv.Itoa(quota.HourRemaining))
			c.Header(constants.HeaderRateLimitResetMinute, strconv.Itoa(quota.MinuteReset))
			c.Header(constants.HeaderRateLimitResetHour, strconv.Itoa(quota.HourReset))
			c.Header(constants.HeaderRateLimitLimitMinute, strconv.Itoa(quota.MinuteLimit))
			c.Header(constants.HeaderRateLimitLimitHour, strconv.Itoa(quota.HourLimit))
		}

		c.Next()
	}
}

func (m *RateLimitMiddleware) reject(c *gin.Context, dec *ratelimit.Decision) {
	retryAfter := int(dec.RetryAfter.Seconds())

	c.Header(constants.HeaderRetryAfter, strconv.Itoa(retryAfter))
	c.Header(constants.HeaderRateLimitLimitMinute, strconv.Itoa(dec.Limits.MinuteLimit))
	c.Header(constants.HeaderRateLimitLimitHour, strconv.Itoa(dec.Limits.HourLimit))
	c.Header(constants.HeaderRateLimitRemainingMinute, "0")
	c.Header(constants.HeaderRateLimitRemainingHour,
		strconv.Itoa(maxRemaining(dec.Limits.HourLimit-dec.Limits.HourCount)))

	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"detail":      constants.ErrMsgTooManyRequests,
		"message":     dec.Reason,
		"retry_after": retryAfter,
		"limits":      dec.Limits,
	})
}

func isBypassPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, p := range bypassPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func maxRemaining(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
