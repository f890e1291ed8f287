package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/interfaces/http/handlers"
	"github.com/camber-app/camber/internal/interfaces/http/middleware"
)

// SetupCarRoutes configures car catalog routes. Reads are public;
// writes require authentication and ownership is enforced in the
// use cases.
func SetupCarRoutes(engine *gin.Engine, carHandler *handlers.CarHandler, authMW *middleware.AuthMiddleware) {
	cars := engine.Group("/api/cars")
	{
		cars.GET("", carHandler.ListCars)
		cars.GET("/:id", carHandler.GetCar)

		authed := cars.Group("")
		authed.Use(authMW.RequireAuth())
		{
			authed.POST("", carHandler.CreateCar)
			authed.PUT("/:id", carHandler.UpdateCar)
			authed.DELETE("/:id", carHandler.DeleteCar)
		}
	}
}
