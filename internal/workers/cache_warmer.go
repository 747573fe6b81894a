package workers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/pkg/logger"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

// IntelligenceService is the part of the orchestrator the warmer drives
type IntelligenceService interface {
	GetIntelligence(ctx context.Context, code string) (*models.IntelligenceResponse, error)
}

// CacheWarmer keeps intelligence for showcase countries in cache so the
// first visitor of the map doesn't pay for the upstream fan-out
type CacheWarmer struct {
	intel     IntelligenceService
	countries []string
}

// NewCacheWarmer creates new cache warmer for country codes
func NewCacheWarmer(intel IntelligenceService, countries []string) *CacheWarmer {
	codes := make([]string, 0, len(countries))
	for _, c := range countries {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			codes = append(codes, c)
		}
	}
	return &CacheWarmer{intel: intel, countries: codes}
}

func (w *CacheWarmer) Name() string {
	return "cache_warmer"
}

// Run requests every configured country once, sequentially
func (w *CacheWarmer) Run(ctx context.Context) error {
	start := time.Now()
	var errs []error
	degraded := 0

	for _, code := range w.countries {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		resp, err := w.intel.GetIntelligence(ctx, code)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", code, err))
			continue
		}
		if !resp.Complete() {
			degraded++
		}
	}

	logger.Info("cache warm-up complete",
		zap.Int("countries", len(w.countries)),
		zap.Int("failed", len(errs)),
		zap.Int("degraded", degraded),
		zap.Duration("took", time.Since(start)),
	)

	return errors.Join(errs...)
}
