package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/camber-app/camber/internal/shared/constants"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"in range passes through", 3, 25, 3, 25},
		{"zero page falls back to the default", 0, 25, constants.DefaultPage, 25},
		{"negative page falls back to the default", -4, 25, constants.DefaultPage, 25},
		{"zero size falls back to the default", 3, 0, 3, constants.DefaultPageSize},
		{"negative size falls back to the default", 3, -10, 3, constants.DefaultPageSize},
		{"both invalid fall back together", 0, 0, constants.DefaultPage, constants.DefaultPageSize},
		{"oversized request is capped", 1, constants.MaxPageSize + 50, 1, constants.MaxPageSize},
		{"max size itself is allowed", 1, constants.MaxPageSize, 1, constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePagination(tt.page, tt.pageSize)

			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{"no params use the defaults", "", constants.DefaultPage, constants.DefaultPageSize},
		{"explicit page and size", "page=2&page_size=30", 2, 30},
		{"garbage page uses the default", "page=turbo&page_size=30", constants.DefaultPage, 30},
		{"oversized page_size is capped", "page=1&page_size=9999", 1, constants.MaxPageSize},
		{"zero page uses the default", "page=0&page_size=15", constants.DefaultPage, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/parts?"+tt.query, nil)

			got := ParsePagination(c)

			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestApplyPagination(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		pageSize  int
		wantStart int
		wantEnd   int
	}{
		{"first page of a full catalog", 48, 1, 20, 0, 20},
		{"second page of a full catalog", 48, 2, 20, 20, 40},
		{"final partial page", 48, 3, 20, 40, 48},
		{"page past the end clamps to empty", 48, 9, 20, 48, 48},
		{"empty catalog", 0, 1, 20, 0, 0},
		{"boundary page ends exactly at total", 40, 2, 20, 20, 40},
		{"single entry", 1, 1, 20, 0, 1},
		{"page size larger than the catalog", 7, 1, 20, 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ApplyPagination(tt.total, tt.page, tt.pageSize)

			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{"no rows still reports one page", 0, 20, 1},
		{"exact multiple", 60, 20, 3},
		{"remainder rounds up", 61, 20, 4},
		{"everything fits on one page", 12, 20, 1},
		{"zero size degrades to one page", 12, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}
