package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/pkg/logger"
)

// Worker is one unit of recurring background work
type Worker interface {
	Name() string
	// Run executes one iteration
	Run(ctx context.Context) error
}

// PeriodicWorker runs a Worker immediately and then on every interval tick
// until its context is cancelled
type PeriodicWorker struct {
	worker   Worker
	interval time.Duration
	done     chan struct{}
	once     sync.Once

	mu       sync.Mutex
	runs     int
	failures int // consecutive
}

// NewPeriodicWorker creates new periodic worker
func NewPeriodicWorker(worker Worker, interval time.Duration) *PeriodicWorker {
	return &PeriodicWorker{
		worker:   worker,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start launches the worker goroutine. Calling it more than once is a no-op.
func (pw *PeriodicWorker) Start(ctx context.Context) {
	pw.once.Do(func() {
		go pw.loop(ctx)
	})
}

// Wait blocks until the worker exits or timeout elapses.
// Reports whether the worker exited.
func (pw *PeriodicWorker) Wait(timeout time.Duration) bool {
	select {
	case <-pw.done:
		return true
	default:
	}

	select {
	case <-pw.done:
		return true
	case <-time.After(timeout):
		logger.Warn("worker stop timeout", zap.String("worker", pw.worker.Name()))
		return false
	}
}

// Stats returns completed iterations and current consecutive failures
func (pw *PeriodicWorker) Stats() (runs, failures int) {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	return pw.runs, pw.failures
}

func (pw *PeriodicWorker) loop(ctx context.Context) {
	defer close(pw.done)

	name := pw.worker.Name()
	logger.Info("worker started",
		zap.String("worker", name),
		zap.Duration("interval", pw.interval),
	)

	pw.iterate(ctx)

	ticker := time.NewTicker(pw.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("worker stopped", zap.String("worker", name))
			return
		case <-ticker.C:
			pw.iterate(ctx)
		}
	}
}

// iterate runs one iteration; errors and panics are logged and the worker keeps going
func (pw *PeriodicWorker) iterate(ctx context.Context) {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		return pw.worker.Run(ctx)
	}()

	pw.mu.Lock()
	pw.runs++
	if err != nil {
		pw.failures++
	} else {
		pw.failures = 0
	}
	failures := pw.failures
	pw.mu.Unlock()

	if err != nil && ctx.Err() == nil {
		logger.Error("worker iteration failed",
			zap.String("worker", pw.worker.Name()),
			zap.Int("consecutive_failures", failures),
			zap.Error(err),
		)
	}
}

// Group starts and stops a set of periodic workers together
type Group struct {
	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	workers []*PeriodicWorker
}

// NewGroup creates a group whose workers stop when ctx is cancelled or Stop is called
func NewGroup(ctx context.Context) *Group {
	ctx, cancel := context.WithCancel(ctx)
	return &Group{ctx: ctx, cancel: cancel}
}

// Add registers worker; it starts with the next Start call
func (g *Group) Add(w Worker, interval time.Duration) *PeriodicWorker {
	g.mu.Lock()
	defer g.mu.Unlock()

	pw := NewPeriodicWorker(w, interval)
	g.workers = append(g.workers, pw)
	return pw
}

// Start launches every registered worker
func (g *Group) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, pw := range g.workers {
		pw.Start(g.ctx)
	}
	logger.Info("worker group started", zap.Int("workers", len(g.workers)))
}

// Stop cancels all workers and waits for them, sharing one timeout
func (g *Group) Stop(timeout time.Duration) {
	g.cancel()

	g.mu.Lock()
	defer g.mu.Unlock()

	deadline := time.Now().Add(timeout)
	stopped := 0
	for _, pw := range g.workers {
		if pw.Wait(time.Until(deadline)) {
			stopped++
		}
	}

	logger.Info("worker group stopped",
		zap.Int("stopped", stopped),
		zap.Int("workers", len(g.workers)),
	)
}
