package server

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"

	"grocery/internal/infrastructure/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Routes is implemented by every aggregate handler.
type Routes interface {
	Register(group *gin.RouterGroup)
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Server struct {
	mu         sync.Mutex
	router     *gin.Engine
	httpServer *http.Server
	checks     map[string]HealthCheck
	logger     *zap.Logger
}

// NewServer mounts each Routes under /api/v1/<resource>.
func NewServer(resources map[string]Routes, gatherer prometheus.Gatherer, checks map[string]HealthCheck, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", zap.Error(err))
	}
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(gin.Recovery())

	server := &Server{
		logger: logger,
		router: r,
		checks: checks,
	}
	server.setupRoutes(resources, gatherer)
	return server
}

func (s *Server) setupRoutes(resources map[string]Routes, gatherer prometheus.Gatherer) {
	api := s.router.Group("/api/v1")
	for name, routes := range resources {
		routes.Register(api.Group("/" + name))
	}

	s.router.GET("/healthz", s.health)
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	failed := make([]string, 0)
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			failed = append(failed, name)
		}
	}
	if len(failed) > 0 {
		sort.Strings(failed)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "failed": failed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Handler exposes the router for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(addr string) error {
	httpServer := &http.Server{Addr: addr, Handler: s.router, ReadHeaderTimeout: 10 * time.Second, WriteTimeout: 10 * time.Second}
	s.mu.Lock()
	s.httpServer = httpServer
	s.mu.Unlock()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")
	s.mu.Lock()
	httpServer := s.httpServer
	s.mu.Unlock()
	if httpServer == nil {
		return nil
	}
	return httpServer.Shutdown(ctx)
}
