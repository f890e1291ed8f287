package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/interfaces/http/handlers"
	"github.com/camber-app/camber/internal/interfaces/http/middleware"
)

// SetupModerationRoutes configures voting and reporting for
// authenticated users.
func SetupModerationRoutes(engine *gin.Engine, modHandler *handlers.ModerationHandler, authMW *middleware.AuthMiddleware) {
	mod := engine.Group("/api/moderation")
	mod.Use(authMW.RequireAuth())
	{
		mod.POST("/votes", modHandler.CastVote)
		mod.POST("/reports", modHandler.ReportContent)
	}
}
