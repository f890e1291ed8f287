package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/camber-app/camber/internal/domain/subscription"
	"github.com/camber-app/camber/internal/infrastructure/config"
	"github.com/camber-app/camber/internal/infrastructure/migration"
	"github.com/camber-app/camber/internal/infrastructure/persistence/models"
	"github.com/camber-app/camber/internal/infrastructure/repository"
	sharedConfig "github.com/camber-app/camber/internal/shared/config"
	"github.com/camber-app/camber/internal/shared/logger"
)

func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migration.AutoMigrateModels()...))

	planRepo := repository.NewPlanRepository(db, logger.NewLogger())
	free, err := subscription.NewPlan("Free", "free", 0, 2, 3, 15)
	require.NoError(t, err)
	require.NoError(t, planRepo.Create(t.Context(), free))
	garage, err := subscription.NewPlan("Garage", "garage", 1900, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, planRepo.Create(t.Context(), garage))

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{
			Host: "127.0.0.1",
			Port: 0,
		},
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT: sharedConfig.JWTConfig{
				Secret:           "integration-test-secret",
				AccessExpMinutes: 15,
				RefreshExpDays:   7,
			},
		},
		RateLimit: sharedConfig.RateLimitConfig{
			Enabled:                true,
			Backend:                "memory",
			RequestsPerMinute:      1000,
			RequestsPerHour:        10000,
			GetRequestsPerMinute:   1000,
			GetRequestsPerHour:     10000,
			AuthRequestsPerMinute:  1000,
			AuthRequestsPerHour:    10000,
			AdminRequestsPerMinute: 1000,
			AdminRequestsPerHour:   10000,
		},
	}

	container, err := NewContainer(db, cfg, logger.NewLogger())
	require.NoError(t, err)
	container.SetupRoutes()
	t.Cleanup(func() {
		_ = container.Shutdown(t.Context())
	})

	return container.Engine(), db
}

func doRequest(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	body := parseBody(t, w)
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "data missing in body: %s", w.Body.String())
	return data
}

// registerAndLogin creates an account, force-activates it, and returns
// the access token. The first account registered on a fresh database
// gets the admin role.
func registerAndLogin(t *testing.T, engine *gin.Engine, db *gorm.DB, email, name string) string {
	w := doRequest(t, engine, http.MethodPost, "/auth/register", "", gin.H{
		"email":    email,
		"name":     name,
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	err := db.Model(&models.UserModel{}).Where("email = ?", email).
		Updates(map[string]interface{}{"status": "active", "email_verified": true}).Error
	require.NoError(t, err)

	w = doRequest(t, engine, http.MethodPost, "/auth/login", "", gin.H{
		"email":    email,
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	tokens := dataOf(t, w)["tokens"].(map[string]interface{})
	return tokens["access_token"].(string)
}

func TestHealthEndpoint(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Remaining-Minute"))
}

func TestRateLimitHeadersPresent(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doRequest(t, engine, http.MethodGet, "/api/parts", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining-Minute"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit-Hour"))
}

func TestAuthRequired(t *testing.T) {
	engine, _ := setupTestServer(t)

	w := doRequest(t, engine, http.MethodPost, "/api/cars", "", gin.H{
		"make": "Honda", "model": "Civic", "year": 2020,
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesForbiddenForRegularUsers(t *testing.T) {
	engine, db := setupTestServer(t)

	_ = registerAndLogin(t, engine, db, "admin@example.com", "Admin")
	userToken := registerAndLogin(t, engine, db, "driver@example.com", "Driver")

	w := doRequest(t, engine, http.MethodGet, "/admin/users", userToken, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBuildListFlow(t *testing.T) {
	engine, db := setupTestServer(t)

	adminToken := registerAndLogin(t, engine, db, "admin@example.com", "Admin")
	userToken := registerAndLogin(t, engine, db, "driver@example.com", "Driver")

	// Garage: add a car.
	w := doRequest(t, engine, http.MethodPost, "/api/cars", userToken, gin.H{
		"make": "Mazda", "model": "MX-5", "year": 2019, "trim": "Club",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	carID := uint(dataOf(t, w)["id"].(float64))

	// Catalog: add a part.
	w = doRequest(t, engine, http.MethodPost, "/api/parts", userToken, gin.H{
		"name": "Ohlins Road & Track", "brand": "Ohlins", "category": "suspension", "price_cents": 250000,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	partID := uint(dataOf(t, w)["id"].(float64))

	// Build list with markdown description.
	w = doRequest(t, engine, http.MethodPost, "/api/build-lists", userToken, gin.H{
		"car_id":      carID,
		"name":        "Track day build",
		"description": "# Plan\n\nCoilovers **first**.",
		"visibility":  "public",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	listData := dataOf(t, w)
	listID := uint(listData["id"].(float64))
	assert.Contains(t, listData["description_html"].(string), "<h1>")

	// Add the part to the list.
	w = doRequest(t, engine, http.MethodPost, fmt.Sprintf("/api/build-lists/%d/items", listID), userToken, gin.H{
		"part_id": partID,
		"note":    "DFV dampers",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate part in the same list is rejected.
	w = doRequest(t, engine, http.MethodPost, fmt.Sprintf("/api/build-lists/%d/items", listID), userToken, gin.H{
		"part_id": partID,
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())

	// Public fetch shows the item.
	w = doRequest(t, engine, http.MethodGet, fmt.Sprintf("/api/build-lists/%d", listID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := dataOf(t, w)["items"].([]interface{})
	assert.Len(t, items, 1)

	// Another regular user cannot edit it; an admin can.
	thirdToken := registerAndLogin(t, engine, db, "other@example.com", "Other")
	w = doRequest(t, engine, http.MethodPut, fmt.Sprintf("/api/build-lists/%d", listID), thirdToken, gin.H{
		"name": "hijacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	w = doRequest(t, engine, http.MethodPut, fmt.Sprintf("/api/build-lists/%d", listID), adminToken, gin.H{
		"name":        "Track day build",
		"description": "moderated",
		"visibility":  "public",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestVotingAndReportingFlow(t *testing.T) {
	engine, db := setupTestServer(t)

	adminToken := registerAndLogin(t, engine, db, "admin@example.com", "Admin")
	userToken := registerAndLogin(t, engine, db, "driver@example.com", "Driver")

	w := doRequest(t, engine, http.MethodPost, "/api/parts", userToken, gin.H{
		"name": "eBay turbo kit", "category": "engine",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	partID := uint(dataOf(t, w)["id"].(float64))

	// Upvote, then flip to downvote.
	w = doRequest(t, engine, http.MethodPost, "/api/moderation/votes", userToken, gin.H{
		"target_type": "part", "target_id": partID, "value": 1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, float64(1), dataOf(t, w)["value"])

	w = doRequest(t, engine, http.MethodPost, "/api/moderation/votes", userToken, gin.H{
		"target_type": "part", "target_id": partID, "value": -1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	voteData := dataOf(t, w)
	assert.Equal(t, float64(-1), voteData["value"])

	// Report it.
	w = doRequest(t, engine, http.MethodPost, "/api/moderation/reports", userToken, gin.H{
		"target_type": "part", "target_id": partID, "reason": "counterfeit listing",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	reportID := uint(dataOf(t, w)["id"].(float64))

	// Flagged content honors the min_reports override.
	w = doRequest(t, engine, http.MethodGet, "/admin/flagged?min_reports=1", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	flagged := parseBody(t, w)["data"].([]interface{})
	require.Len(t, flagged, 1)

	// Resolve the report.
	w = doRequest(t, engine, http.MethodPut, fmt.Sprintf("/admin/reports/%d", reportID), adminToken, gin.H{
		"action": "resolve",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "resolved", dataOf(t, w)["status"])

	// Resolving twice conflicts.
	w = doRequest(t, engine, http.MethodPut, fmt.Sprintf("/admin/reports/%d", reportID), adminToken, gin.H{
		"action": "dismiss",
	})
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestPlanLimitsEnforced(t *testing.T) {
	engine, db := setupTestServer(t)

	_ = registerAndLogin(t, engine, db, "admin@example.com", "Admin")
	userToken := registerAndLogin(t, engine, db, "driver@example.com", "Driver")

	// Free plan allows two cars.
	for i := 0; i < 2; i++ {
		w := doRequest(t, engine, http.MethodPost, "/api/cars", userToken, gin.H{
			"make": "Honda", "model": "Civic", "year": 2000 + i,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := doRequest(t, engine, http.MethodPost, "/api/cars", userToken, gin.H{
		"make": "Honda", "model": "S2000", "year": 2004,
	})
	assert.Equal(t, http.StatusForbidden, w.Code, w.Body.String())

	// Upgrading to the unlimited plan clears the ceiling.
	w = doRequest(t, engine, http.MethodPost, "/api/subscription", userToken, gin.H{
		"plan_slug": "garage",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, engine, http.MethodPost, "/api/cars", userToken, gin.H{
		"make": "Honda", "model": "S2000", "year": 2004,
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Subscription view reflects the paid plan.
	w = doRequest(t, engine, http.MethodGet, "/api/subscription", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	plan := dataOf(t, w)["plan"].(map[string]interface{})
	assert.Equal(t, "garage", plan["slug"])

	// Cancel falls back to the free tier.
	w = doRequest(t, engine, http.MethodDelete, "/api/subscription", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/subscription", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	plan = dataOf(t, w)["plan"].(map[string]interface{})
	assert.Equal(t, "free", plan["slug"])
}
