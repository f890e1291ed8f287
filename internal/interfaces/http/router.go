package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/camber-app/camber/internal/interfaces/http/middleware"
	"github.com/camber-app/camber/internal/interfaces/http/routes"
)

// SetupRoutes installs the global middleware chain and mounts every
// route group on the engine.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.RequestLogger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(c.rateLimitMiddleware.Handle())

	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(c.engine, c.hdlrs.auth)
	routes.SetupUserRoutes(c.engine, c.hdlrs.user, c.authMiddleware)
	routes.SetupCarRoutes(c.engine, c.hdlrs.car, c.authMiddleware)
	routes.SetupBuildListRoutes(c.engine, c.hdlrs.buildList, c.authMiddleware)
	routes.SetupPartRoutes(c.engine, c.hdlrs.part, c.authMiddleware)
	routes.SetupModerationRoutes(c.engine, c.hdlrs.moderation, c.authMiddleware)
	routes.SetupSubscriptionRoutes(c.engine, c.hdlrs.subscription, c.authMiddleware)
	routes.SetupAdminRoutes(c.engine, &routes.AdminRouteConfig{
		UserHandler:         c.hdlrs.user,
		PartHandler:         c.hdlrs.part,
		ModerationHandler:   c.hdlrs.moderation,
		SubscriptionHandler: c.hdlrs.subscription,
		AuthMiddleware:      c.authMiddleware,
	})
}

// Run starts the HTTP server on the given address.
func (c *Container) Run(addr string) error {
	return c.engine.Run(addr)
}
