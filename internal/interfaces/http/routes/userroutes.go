package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/interfaces/http/handlers"
	"github.com/camber-app/camber/internal/interfaces/http/middleware"
)

// SetupUserRoutes configures the authenticated profile routes.
func SetupUserRoutes(engine *gin.Engine, userHandler *handlers.UserHandler, authMW *middleware.AuthMiddleware) {
	users := engine.Group("/api/users")
	users.Use(authMW.RequireAuth())
	{
		users.GET("/me", userHandler.GetProfile)
		users.PUT("/me", userHandler.UpdateProfile)
	}
}
