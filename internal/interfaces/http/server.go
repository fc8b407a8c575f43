// internal/interfaces/http/server.go
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-client/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-client/internal/interfaces/http/routes"
	"github.com/your-org/storefront-client/internal/store"
)

// HealthChecker is an optional dependency reported by /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Options are the optional collaborators of the gateway
type Options struct {
	// Limiter enables per-client rate limiting when set.
	Limiter middleware.Limiter
	// Redis is pinged by /health when set.
	Redis HealthChecker
	// Cookies exposes the upstream session cookies to the session view.
	Cookies handlers.CookieSource
}

// Server is the view gateway: it serves JSON view models derived from the
// Store to a thin UI.
type Server struct {
	config     *config.Config
	gin        *gin.Engine
	httpServer *http.Server
	store      *store.Store
	logger     *logrus.Logger
	opts       Options
	startedAt  time.Time
}

// NewServer creates a new gateway instance with its routes in place
func NewServer(cfg *config.Config, st *store.Store, logger *logrus.Logger, opts Options) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config:    cfg,
		gin:       gin.New(),
		store:     st,
		logger:    logger,
		opts:      opts,
		startedAt: time.Now(),
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Handler returns the gateway's HTTP handler
func (s *Server) Handler() http.Handler {
	return s.gin
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.logger.WithFields(logrus.Fields{
		"port":     s.config.Server.Port,
		"upstream": s.config.API.BaseURL,
	}).Info("View gateway starting")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("Shutting down view gateway")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("View gateway stopped gracefully")
	return nil
}

// setupMiddleware configures all middleware for the server
func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.Logger(s.logger))
	s.gin.Use(middleware.CORS(s.config))
	s.gin.Use(middleware.SecurityHeaders())
	s.gin.Use(middleware.RateLimit(s.config, s.opts.Limiter, s.logger))
	s.gin.Use(middleware.RequestSizeLimit(1 << 20))
}

// setupRoutes configures all routes for the server
func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)

	deps := routes.Dependencies{
		Config:  s.config,
		Store:   s.store,
		Logger:  s.logger,
		Cookies: s.opts.Cookies,
	}

	routes.SetupViewRoutes(s.gin.Group("/views"), deps)
	routes.SetupEventRoutes(s.gin, deps)
}

// healthCheck handles health check requests. The gateway is healthy while
// it can serve views; a resolving session is reported but not a failure.
func (s *Server) healthCheck(c *gin.Context) {
	snap := s.store.Snapshot()

	body := gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
		"uptime":      time.Since(s.startedAt).Round(time.Second).String(),
		"session":     gin.H{"resolving": snap.Session.Resolving, "gate": snap.Gate},
		"catalog": gin.H{
			"categories": len(snap.Categories),
			"menuItems":  len(snap.MenuItems),
		},
	}

	if s.opts.Redis != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := s.opts.Redis.Health(ctx); err != nil {
			body["status"] = "degraded"
			body["redis"] = "unreachable"
		} else {
			body["redis"] = "ok"
		}
	}

	c.JSON(http.StatusOK, body)
}
