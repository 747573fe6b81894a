package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/internal/countries"
	"github.com/selivandex/worldmap-intel/internal/health"
	"github.com/selivandex/worldmap-intel/pkg/logger"
)

// Deps are the services the HTTP API exposes
type Deps struct {
	Intelligence IntelligenceService
	Directory    countries.Directory
	Usage        UsageReporter
	Probes       *health.Probes
}

// NewRouter builds the gin engine with all routes
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog())

	deps.Probes.RegisterRoutes(r)

	h := &handlers{
		intel:     deps.Intelligence,
		directory: deps.Directory,
		usage:     deps.Usage,
	}

	v1 := r.Group("/api/v1")
	v1.GET("/intelligence/:code", h.getIntelligence)
	v1.GET("/countries", h.listCountries)
	v1.GET("/countries/search", h.searchCountries)
	v1.GET("/ai/usage", h.aiUsage)

	return r
}

// Server wraps http.Server around the router
type Server struct {
	server *http.Server
}

// NewServer creates API server on port
func NewServer(port string, handler http.Handler) *Server {
	return &Server{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			// intelligence builds can take as long as the slowest upstream
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// Start blocks serving requests until Stop is called
func (s *Server) Start() error {
	logger.Info("API server starting", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully drains in-flight requests
func (s *Server) Stop(ctx context.Context) error {
	logger.Info("stopping API server...")
	return s.server.Shutdown(ctx)
}
