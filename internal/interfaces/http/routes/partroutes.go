package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/interfaces/http/handlers"
	"github.com/camber-app/camber/internal/interfaces/http/middleware"
)

// SetupPartRoutes configures the part catalog routes. Any authenticated
// user may add or edit parts they created; deletion is admin only.
func SetupPartRoutes(engine *gin.Engine, partHandler *handlers.PartHandler, authMW *middleware.AuthMiddleware) {
	parts := engine.Group("/api/parts")
	{
		parts.GET("", partHandler.ListParts)
		parts.GET("/:id", partHandler.GetPart)

		authed := parts.Group("")
		authed.Use(authMW.RequireAuth())
		{
			authed.POST("", partHandler.CreatePart)
			authed.PUT("/:id", partHandler.UpdatePart)
		}
	}
}
