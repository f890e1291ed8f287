package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/interfaces/http/handlers"
	"github.com/camber-app/camber/internal/interfaces/http/middleware"
)

// SetupSubscriptionRoutes configures plan browsing and the current
// user's subscription lifecycle.
func SetupSubscriptionRoutes(engine *gin.Engine, subHandler *handlers.SubscriptionHandler, authMW *middleware.AuthMiddleware) {
	engine.GET("/api/plans", subHandler.ListPlans)

	sub := engine.Group("/api/subscription")
	sub.Use(authMW.RequireAuth())
	{
		sub.GET("", subHandler.GetMySubscription)
		sub.POST("", subHandler.Subscribe)
		sub.DELETE("", subHandler.CancelSubscription)
	}
}
