package analysis

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/internal/adapters/ai"
	"github.com/selivandex/worldmap-intel/internal/budget"
	"github.com/selivandex/worldmap-intel/pkg/logger"
	"github.com/selivandex/worldmap-intel/pkg/metrics"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

// Reasons recorded for each tier decision
const (
	ReasonBudgetExhausted    = "budget_exhausted"
	ReasonPremiumUnavailable = "premium_unavailable"
	ReasonAllowlist          = "allowlist"
	ReasonBiasFeature        = "bias_feature"
	ReasonSampled            = "sampled"
	ReasonNotSampled         = "not_sampled"
)

// Sampler returns a uniform value in [0, 1)
type Sampler func() float64

// DispatcherConfig holds tier selection policy
type DispatcherConfig struct {
	PremiumCountries    []string
	BiasAnalysisPremium bool
	SampleRate          float64
	CostPerCall         decimal.Decimal
}

// Dispatcher picks basic or premium analysis per text and keeps premium
// spend inside the budget ledger
type Dispatcher struct {
	basic     *BasicAnalyzer
	premium   ai.Provider
	ledger    *budget.Ledger
	cfg       DispatcherConfig
	allowlist map[string]struct{}
	sampler   Sampler
	recorder  metrics.Recorder
}

// DispatcherOption customizes a Dispatcher
type DispatcherOption func(*Dispatcher)

// WithSampler replaces the random sampler
func WithSampler(s Sampler) DispatcherOption {
	return func(d *Dispatcher) { d.sampler = s }
}

// WithRecorder sends one AnalysisDispatchMetric per call to r
func WithRecorder(r metrics.Recorder) DispatcherOption {
	return func(d *Dispatcher) { d.recorder = metrics.OrNop(r) }
}

// NewDispatcher creates dispatcher. premium may be nil, in which case every
// call is served by the basic analyzer.
func NewDispatcher(premium ai.Provider, ledger *budget.Ledger, cfg DispatcherConfig, opts ...DispatcherOption) *Dispatcher {
	allowlist := make(map[string]struct{}, len(cfg.PremiumCountries))
	for _, code := range cfg.PremiumCountries {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			allowlist[code] = struct{}{}
		}
	}

	d := &Dispatcher{
		basic:     NewBasicAnalyzer(),
		premium:   premium,
		ledger:    ledger,
		cfg:       cfg,
		allowlist: allowlist,
		sampler:   rand.Float64,
		recorder:  metrics.Nop{},
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Analyze returns an analysis of text. It never fails: any premium problem
// degrades to the basic tier for this call.
func (d *Dispatcher) Analyze(ctx context.Context, text, source, countryCode string) models.AnalysisResult {
	start := time.Now()
	code := strings.ToUpper(countryCode)

	usePremium, reason := d.decide(code)
	if !usePremium {
		d.record(code, models.TierBasic, reason, false, decimal.Zero, start)
		return d.basic.Analyze(text, source)
	}

	result, err := d.premium.Analyze(ctx, ai.Request{
		Text:        text,
		Source:      source,
		CountryCode: code,
		BiasFocus:   d.cfg.BiasAnalysisPremium,
	})
	if err != nil || result == nil {
		logger.Warn("premium analysis failed, falling back to basic",
			zap.String("provider", d.premium.GetName()),
			zap.String("country", code),
			zap.String("reason", reason),
			zap.Error(err),
		)
		d.record(code, models.TierBasic, reason, true, decimal.Zero, start)
		return d.basic.Analyze(text, source)
	}

	if err := d.ledger.Charge(d.cfg.CostPerCall); err != nil {
		logger.Error("failed to charge budget ledger", zap.Error(err))
	}

	d.record(code, models.TierPremium, reason, false, d.cfg.CostPerCall, start)
	return *result
}

// decide evaluates the tier policy in order; first match wins
func (d *Dispatcher) decide(code string) (bool, string) {
	if !d.ledger.Remaining().IsPositive() {
		return false, ReasonBudgetExhausted
	}
	if d.premium == nil || !d.premium.IsEnabled() {
		return false, ReasonPremiumUnavailable
	}
	if _, ok := d.allowlist[code]; ok {
		return true, ReasonAllowlist
	}
	if d.cfg.BiasAnalysisPremium {
		return true, ReasonBiasFeature
	}
	if d.sampler() < d.cfg.SampleRate {
		return true, ReasonSampled
	}
	return false, ReasonNotSampled
}

func (d *Dispatcher) record(code string, tier models.Tier, reason string, fallback bool, cost decimal.Decimal, start time.Time) {
	provider := ""
	if d.premium != nil {
		provider = d.premium.GetName()
	}

	_ = d.recorder.Add(&metrics.AnalysisDispatchMetric{
		Timestamp:   start.UTC(),
		CountryCode: code,
		Tier:        string(tier),
		Reason:      reason,
		Provider:    provider,
		Fallback:    fallback,
		CostUSD:     cost.InexactFloat64(),
		LatencyMs:   time.Since(start).Milliseconds(),
	})
}

// UsageStats describes the premium budget and what analysis services exist
type UsageStats struct {
	MonthlyBudget       decimal.Decimal `json:"monthly_budget"`
	BudgetRemaining     decimal.Decimal `json:"budget_remaining"`
	Spent               decimal.Decimal `json:"spent"`
	PremiumCalls        int             `json:"premium_calls"`
	PeriodStart         time.Time       `json:"period_start"`
	PremiumCountries    []string        `json:"premium_countries"`
	BiasAnalysisPremium bool            `json:"bias_analysis_premium"`
	SampleRate          float64         `json:"sample_rate"`
	Services            map[string]bool `json:"services_available"`
	PremiumProvider     string          `json:"premium_provider,omitempty"`
}

// Usage reports the current ledger state and tier policy
func (d *Dispatcher) Usage() UsageStats {
	state := d.ledger.State()

	countries := make([]string, 0, len(d.allowlist))
	for _, code := range d.cfg.PremiumCountries {
		if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
			countries = append(countries, code)
		}
	}

	premium := d.premium != nil && d.premium.IsEnabled()
	stats := UsageStats{
		MonthlyBudget:       state.Limit,
		BudgetRemaining:     state.Remaining,
		Spent:               state.Spent,
		PremiumCalls:        state.Calls,
		PeriodStart:         state.PeriodStart,
		PremiumCountries:    countries,
		BiasAnalysisPremium: d.cfg.BiasAnalysisPremium,
		SampleRate:          d.cfg.SampleRate,
		Services: map[string]bool{
			string(models.TierBasic):   true,
			string(models.TierPremium): premium,
		},
	}
	if premium {
		stats.PremiumProvider = d.premium.GetName()
	}

	return stats
}
