package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/camber-app/camber/internal/infrastructure/auth"
	"github.com/camber-app/camber/internal/infrastructure/config"
	"github.com/camber-app/camber/internal/infrastructure/email"
	"github.com/camber-app/camber/internal/infrastructure/ratelimit"
	"github.com/camber-app/camber/internal/interfaces/http/middleware"
	"github.com/camber-app/camber/internal/shared/logger"
)

// Container wires infrastructure, repositories, use cases, and handlers
// together and owns their lifecycles.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	jwtSvc   *auth.JWTService
	emailSvc *email.SMTPEmailService

	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	stopSweeper         func()
}

// NewContainer builds the full dependency graph. It returns an error only
// when the configured rate limit backend is unknown.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.jwtSvc = auth.NewJWTService(
		c.cfg.Auth.JWT.Secret,
		c.cfg.Auth.JWT.AccessExpMinutes,
		c.cfg.Auth.JWT.RefreshExpDays,
	)

	c.emailSvc = email.NewSMTPEmailService(email.SMTPConfig{
		Host:        c.cfg.Email.SMTPHost,
		Port:        c.cfg.Email.SMTPPort,
		Username:    c.cfg.Email.SMTPUser,
		Password:    c.cfg.Email.SMTPPassword,
		FromAddress: c.cfg.Email.FromAddress,
		FromName:    c.cfg.Email.FromName,
		BaseURL:     c.cfg.Server.BaseURL,
	})

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)

	limiter, err := c.buildLimiter()
	if err != nil {
		return err
	}
	c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(limiter, c.cfg.RateLimit.Enabled, c.log)

	return nil
}

// buildLimiter selects the rate limit store. The in-memory ledger serves
// single-instance deployments; Redis shares budgets across instances.
func (c *Container) buildLimiter() (ratelimit.Limiter, error) {
	rlCfg := ratelimit.Config{
		RequestsPerMinute:      c.cfg.RateLimit.RequestsPerMinute,
		RequestsPerHour:        c.cfg.RateLimit.RequestsPerHour,
		GetRequestsPerMinute:   c.cfg.RateLimit.GetRequestsPerMinute,
		GetRequestsPerHour:     c.cfg.RateLimit.GetRequestsPerHour,
		AuthRequestsPerMinute:  c.cfg.RateLimit.AuthRequestsPerMinute,
		AuthRequestsPerHour:    c.cfg.RateLimit.AuthRequestsPerHour,
		AdminRequestsPerMinute: c.cfg.RateLimit.AdminRequestsPerMinute,
		AdminRequestsPerHour:   c.cfg.RateLimit.AdminRequestsPerHour,
	}

	switch c.cfg.RateLimit.Backend {
	case "", "memory":
		limiter := ratelimit.NewMemoryLimiter(rlCfg)
		c.stopSweeper = limiter.StartSweeper(time.Minute)
		return limiter, nil
	case "redis":
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		return ratelimit.NewRedisLimiter(c.redis, rlCfg), nil
	default:
		return nil, fmt.Errorf("unknown rate limit backend %q", c.cfg.RateLimit.Backend)
	}
}

// Engine returns the Gin engine.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown stops background workers and closes shared clients.
func (c *Container) Shutdown(ctx context.Context) error {
	if c.stopSweeper != nil {
		c.stopSweeper()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	return nil
}
