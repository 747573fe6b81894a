package health

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/pkg/logger"
)

const checkTimeout = 2 * time.Second

// CheckFunc reports whether a dependency is usable
type CheckFunc func(ctx context.Context) error

type check struct {
	fn       CheckFunc
	critical bool
}

// Probes serves K8s liveness and readiness endpoints
type Probes struct {
	mu        sync.RWMutex
	checks    map[string]check
	ready     bool
	startTime time.Time
}

// HealthStatus represents liveness
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ReadinessStatus represents readiness
type ReadinessStatus struct {
	Ready     bool              `json:"ready"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// NewProbes creates probes, not ready until SetReady(true)
func NewProbes() *Probes {
	return &Probes{
		checks:    make(map[string]check),
		startTime: time.Now(),
	}
}

// Register adds a dependency check. A failing critical check makes the
// service not ready; a non-critical one is only reported.
func (p *Probes) Register(name string, fn CheckFunc, critical bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.checks[name] = check{fn: fn, critical: critical}
}

// SetReady marks startup as complete (or the service as draining)
func (p *Probes) SetReady(ready bool) {
	p.mu.Lock()
	p.ready = ready
	p.mu.Unlock()

	if ready {
		logger.Info("service marked as READY")
	} else {
		logger.Warn("service marked as NOT READY")
	}
}

// RegisterRoutes mounts /health, /healthz, /ready and /readyz
func (p *Probes) RegisterRoutes(r gin.IRoutes) {
	r.GET("/health", p.handleHealth)
	r.GET("/healthz", p.handleHealth)
	r.GET("/ready", p.handleReadiness)
	r.GET("/readyz", p.handleReadiness)
}

// handleHealth is the liveness probe: 200 while the process runs,
// with dependency detail on ?verbose=true
func (p *Probes) handleHealth(c *gin.Context) {
	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(p.startTime).Round(time.Second).String(),
	}

	if c.Query("verbose") == "true" {
		status.Checks, _ = p.run(c.Request.Context())
	}

	c.JSON(http.StatusOK, status)
}

// handleReadiness returns 200 only after startup and while critical checks pass
func (p *Probes) handleReadiness(c *gin.Context) {
	p.mu.RLock()
	ready := p.ready
	p.mu.RUnlock()

	checks, healthy := p.run(c.Request.Context())

	status := ReadinessStatus{
		Ready:     ready && healthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	}

	code := http.StatusOK
	if !status.Ready {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

func (p *Probes) run(ctx context.Context) (map[string]string, bool) {
	p.mu.RLock()
	names := make([]string, 0, len(p.checks))
	for name := range p.checks {
		names = append(names, name)
	}
	checks := make(map[string]check, len(p.checks))
	for k, v := range p.checks {
		checks[k] = v
	}
	p.mu.RUnlock()
	sort.Strings(names)

	results := make(map[string]string, len(names))
	healthy := true
	for _, name := range names {
		cctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := checks[name].fn(cctx)
		cancel()

		if err != nil {
			results[name] = "unhealthy: " + err.Error()
			if checks[name].critical {
				healthy = false
			}
			logger.Debug("health check failed", zap.String("check", name), zap.Error(err))
			continue
		}
		results[name] = "healthy"
	}

	return results, healthy
}
