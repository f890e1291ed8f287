package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/shared/constants"
	"github.com/camber-app/camber/internal/shared/errors"
)

// ParseIDParam parses a numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "car", "build list").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}

	return uint(id), nil
}

// CurrentUserID returns the authenticated user's ID from the Gin context.
// It is only valid behind RequireAuth.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CurrentUserRole returns the authenticated user's role string, or "" when
// the request is anonymous.
func CurrentUserRole(c *gin.Context) string {
	return c.GetString(constants.ContextKeyUserRole)
}
