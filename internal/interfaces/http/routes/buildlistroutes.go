package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/interfaces/http/handlers"
	"github.com/camber-app/camber/internal/interfaces/http/middleware"
)

// SetupBuildListRoutes configures build list routes. Listing and single
// lookups are public (unlisted lists stay reachable by direct ID but are
// excluded from listings); OptionalAuth lets owners see their own
// unlisted lists in listings.
func SetupBuildListRoutes(engine *gin.Engine, listHandler *handlers.BuildListHandler, authMW *middleware.AuthMiddleware) {
	lists := engine.Group("/api/build-lists")
	{
		lists.GET("", authMW.OptionalAuth(), listHandler.ListBuildLists)
		lists.GET("/:id", listHandler.GetBuildList)

		authed := lists.Group("")
		authed.Use(authMW.RequireAuth())
		{
			authed.POST("", listHandler.CreateBuildList)
			authed.PUT("/:id", listHandler.UpdateBuildList)
			authed.DELETE("/:id", listHandler.DeleteBuildList)
			authed.POST("/:id/items", listHandler.AddItem)
			authed.DELETE("/:id/items/:item_id", listHandler.RemoveItem)
		}
	}
}
