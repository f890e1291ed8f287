// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/interfaces/http/handlers"
)

// SetupAuthRoutes configures registration, login, token refresh, and
// email verification routes. All of them are anonymous; the rate
// limiter classifies them into the stricter auth budget.
func SetupAuthRoutes(engine *gin.Engine, authHandler *handlers.AuthHandler) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
		auth.POST("/verify-email", authHandler.VerifyEmail)
		auth.GET("/verify-email", authHandler.VerifyEmail)
	}
}
