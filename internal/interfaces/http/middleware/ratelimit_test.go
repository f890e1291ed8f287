package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camber-app/camber/internal/infrastructure/ratelimit"
	"github.com/camber-app/camber/internal/shared/logger"
)

func newRateLimitedRouter(cfg ratelimit.Config, enabled bool) (*gin.Engine, *ratelimit.MemoryLimiter) {
	gin.SetMode(gin.TestMode)

	limiter := ratelimit.NewMemoryLimiter(cfg)
	mw := NewRateLimitMiddleware(limiter, enabled, logger.NewLogger())

	engine := gin.New()
	engine.Use(mw.Handle())
	handler := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	engine.GET("/", handler)
	engine.GET("/health", handler)
	engine.GET("/docs", handler)
	engine.GET("/openapi.json", handler)
	engine.GET("/redoc", handler)
	engine.GET("/parts", handler)
	engine.POST("/api/cars", handler)

	return engine, limiter
}

func performRequest(engine *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "192.0.2.1:4444"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRateLimit_ConcreteScenario(t *testing.T) {
	cfg := ratelimit.Config{RequestsPerMinute: 2, RequestsPerHour: 100}
	engine, _ := newRateLimitedRouter(cfg, true)
	headers := map[string]string{"X-Forwarded-For": "1.2.3.4"}

	// Request 1: admitted, one left in the minute budget.
	w := performRequest(engine, "POST", "/api/cars", headers)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining-Minute"))
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit-Minute"))
	assert.Equal(t, "100", w.Header().Get("X-RateLimit-Limit-Hour"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset-Minute"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset-Hour"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining-Hour"))

	// Request 2: admitted, budget exhausted.
	w = performRequest(engine, "POST", "/api/cars", headers)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining-Minute"))

	// Request 3: rejected with the structured 429.
	w = performRequest(engine, "POST", "/api/cars", headers)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining-Minute"))

	var body struct {
		Detail     string `json:"detail"`
		Message    string `json:"message"`
		RetryAfter int    `json:"retry_after"`
		Limits     struct {
			MinuteLimit int `json:"minute_limit"`
			HourLimit   int `json:"hour_limit"`
			MinuteCount int `json:"minute_count"`
			HourCount   int `json:"hour_count"`
		} `json:"limits"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Too many requests", body.Detail)
	assert.Contains(t, body.Message, "2 requests per minute")
	assert.Equal(t, 60, body.RetryAfter)
	assert.Equal(t, 2, body.Limits.MinuteLimit)
	assert.Equal(t, 2, body.Limits.MinuteCount)
}

func TestRateLimit_BypassPaths(t *testing.T) {
	cfg := ratelimit.Config{RequestsPerMinute: 1, RequestsPerHour: 1}
	engine, _ := newRateLimitedRouter(cfg, true)

	for _, path := range []string{"/", "/health", "/docs", "/openapi.json", "/redoc"} {
		for i := 0; i < 3; i++ {
			w := performRequest(engine, "GET", path, nil)
			assert.Equal(t, http.StatusOK, w.Code, "bypass path %s must never be limited", path)
			assert.Empty(t, w.Header().Get("X-RateLimit-Remaining-Minute"),
				"bypass path %s must not carry rate limit headers", path)
			assert.Empty(t, w.Header().Get("X-RateLimit-Limit-Minute"))
		}
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := ratelimit.Config{RequestsPerMinute: 1, RequestsPerHour: 1}
	engine, _ := newRateLimitedRouter(cfg, false)

	for i := 0; i < 5; i++ {
		w := performRequest(engine, "GET", "/parts", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Remaining-Minute"))
	}
}

func TestRateLimit_ProxyIPPartitionsClients(t *testing.T) {
	cfg := ratelimit.Config{GetRequestsPerMinute: 1, GetRequestsPerHour: 100}
	engine, _ := newRateLimitedRouter(cfg, true)

	w := performRequest(engine, "GET", "/parts", map[string]string{
		"X-Forwarded-For": "203.0.113.5, 10.0.0.9",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Same forwarded client is now over budget even though the peer differs.
	w = performRequest(engine, "GET", "/parts", map[string]string{
		"X-Forwarded-For": "203.0.113.5",
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// A different forwarded client keeps its own budget.
	w = performRequest(engine, "GET", "/parts", map[string]string{
		"X-Forwarded-For": "198.51.100.7",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_HourRejection(t *testing.T) {
	cfg := ratelimit.Config{GetRequestsPerMinute: 100, GetRequestsPerHour: 2}
	engine, _ := newRateLimitedRouter(cfg, true)
	headers := map[string]string{"X-Forwarded-For": "1.2.3.4"}

	performRequest(engine, "GET", "/parts", headers)
	performRequest(engine, "GET", "/parts", headers)
	w := performRequest(engine, "GET", "/parts", headers)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))

	var body struct {
		Message    string `json:"message"`
		RetryAfter int    `json:"retry_after"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Message, "per hour")
	assert.Equal(t, 3600, body.RetryAfter)
}
