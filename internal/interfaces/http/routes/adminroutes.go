package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/interfaces/http/handlers"
	"github.com/camber-app/camber/internal/interfaces/http/middleware"
)

// AdminRouteConfig contains the handlers mounted under /admin.
type AdminRouteConfig struct {
	UserHandler         *handlers.UserHandler
	PartHandler         *handlers.PartHandler
	ModerationHandler   *handlers.ModerationHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// SetupAdminRoutes configures the admin surface: user management,
// part deletion, report triage, and plan management.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		admin.GET("/users", cfg.UserHandler.ListUsers)
		admin.GET("/users/:id", cfg.UserHandler.GetUser)
		admin.PUT("/users/:id/status", cfg.UserHandler.UpdateUserStatus)
		admin.PUT("/users/:id/role", cfg.UserHandler.UpdateUserRole)
		admin.DELETE("/users/:id", cfg.UserHandler.DeleteUser)

		admin.DELETE("/parts/:id", cfg.PartHandler.DeletePart)

		admin.GET("/reports", cfg.ModerationHandler.ListReports)
		admin.PUT("/reports/:id", cfg.ModerationHandler.ResolveReport)
		admin.GET("/flagged", cfg.ModerationHandler.FlaggedContent)

		admin.POST("/plans", cfg.SubscriptionHandler.CreatePlan)
		admin.PUT("/plans/:id", cfg.SubscriptionHandler.UpdatePlan)
	}
}
