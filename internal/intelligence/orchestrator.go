package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/selivandex/worldmap-intel/internal/cache"
	"github.com/selivandex/worldmap-intel/internal/countries"
	"github.com/selivandex/worldmap-intel/pkg/logger"
	"github.com/selivandex/worldmap-intel/pkg/metrics"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

// NewsSource fetches relevant articles for a country
type NewsSource interface {
	Fetch(ctx context.Context, subject models.CountrySubject) models.FetchResult[models.NewsBundle]
}

// EconomicSource fetches macro indicators for a country
type EconomicSource interface {
	Fetch(ctx context.Context, subject models.CountrySubject) models.FetchResult[*models.EconomicIndicatorSet]
}

// CurrencySource fetches the exchange rate snapshot for a country
type CurrencySource interface {
	Fetch(ctx context.Context, subject models.CountrySubject) models.FetchResult[*models.CurrencySnapshot]
}

// Analyzer produces an analysis for one article body
type Analyzer interface {
	Analyze(ctx context.Context, text, source, countryCode string) models.AnalysisResult
}

// Sources groups the three category connectors
type Sources struct {
	News     NewsSource
	Economic EconomicSource
	Currency CurrencySource
}

// TTLs are cache lifetimes per entry kind
type TTLs struct {
	News      time.Duration
	Economic  time.Duration
	Currency  time.Duration
	Composite time.Duration
	// Degraded applies to composite entries with a missing category
	Degraded time.Duration
}

// Orchestrator assembles IntelligenceResponse values from cache and connectors
type Orchestrator struct {
	directory countries.Directory
	store     *cache.Store
	sources   Sources
	analyzer  Analyzer
	ttl       TTLs
	recorder  metrics.Recorder
	flights   singleflight.Group
	now       func() time.Time
}

// NewOrchestrator creates orchestrator. recorder may be nil.
func NewOrchestrator(
	directory countries.Directory,
	store *cache.Store,
	sources Sources,
	analyzer Analyzer,
	ttl TTLs,
	recorder metrics.Recorder,
) *Orchestrator {
	return &Orchestrator{
		directory: directory,
		store:     store,
		sources:   sources,
		analyzer:  analyzer,
		ttl:       ttl,
		recorder:  metrics.OrNop(recorder),
		now:       time.Now,
	}
}

// GetIntelligence returns the aggregated view of the country identified by code.
// The only error besides ctx cancellation is *NotFoundError; category failures
// show up as DataAvailability=false and an entry in Messages.
// The returned value may be shared with concurrent callers and must not be modified.
func (o *Orchestrator) GetIntelligence(ctx context.Context, code string) (*models.IntelligenceResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	subject, ok := o.directory.Lookup(code)
	if !ok {
		return nil, o.notFound(code)
	}

	if cached, ok := o.cachedComposite(ctx, code); ok {
		logger.Debug("intelligence served from cache", zap.String("country", code))
		return cached, nil
	}

	// Build on a context detached from the caller so an abandoned request
	// still completes and fills the cache for the next one.
	flight := o.flights.DoChan(code, func() (any, error) {
		buildCtx := context.WithoutCancel(ctx)
		if cached, ok := o.cachedComposite(buildCtx, code); ok {
			return cached, nil
		}
		return o.build(buildCtx, subject), nil
	})

	select {
	case res := <-flight:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.IntelligenceResponse), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (o *Orchestrator) cachedComposite(ctx context.Context, code string) (*models.IntelligenceResponse, bool) {
	var resp models.IntelligenceResponse
	if !o.store.Get(ctx, cache.CompositeKey(code), &resp) {
		return nil, false
	}
	return &resp, true
}

func (o *Orchestrator) notFound(code string) *NotFoundError {
	err := &NotFoundError{Code: code}
	if code == "" {
		return err
	}

	for _, s := range o.directory.Search(code) {
		if len(err.Suggestions) == maxSuggestions {
			break
		}
		err.Suggestions = append(err.Suggestions, Suggestion{Code: s.Code, Name: s.Name})
	}
	return err
}

// build fetches all categories concurrently and writes the composite entry
// once every category has resolved
func (o *Orchestrator) build(ctx context.Context, subject models.CountrySubject) *models.IntelligenceResponse {
	start := o.now()

	var (
		articles   []models.AnalyzedArticle
		indicators *models.EconomicIndicatorSet
		snapshot   *models.CurrencySnapshot
		messages   = make([]string, len(models.Categories))
	)

	var g errgroup.Group
	g.Go(func() error {
		articles, messages[0] = o.loadNews(ctx, subject)
		return nil
	})
	g.Go(func() error {
		indicators, messages[1] = o.loadEconomic(ctx, subject)
		return nil
	})
	g.Go(func() error {
		snapshot, messages[2] = o.loadCurrency(ctx, subject)
		return nil
	})
	_ = g.Wait()

	if articles == nil {
		articles = []models.AnalyzedArticle{}
	}

	resp := &models.IntelligenceResponse{
		Country:            subject.Name,
		CountryCode:        subject.Code,
		Articles:           articles,
		TotalArticles:      len(articles),
		EconomicIndicators: indicators,
		CountryInfo:        subject.Info(),
		Currency:           snapshot,
		DataAvailability: map[models.Category]bool{
			models.CategoryNews:     len(articles) > 0,
			models.CategoryEconomic: indicators.Len() > 0,
			models.CategoryCurrency: snapshot != nil,
		},
		LastUpdated: o.now().UTC(),
	}

	for _, msg := range messages {
		if msg != "" {
			resp.Messages = append(resp.Messages, msg)
		}
	}

	ttl := o.ttl.Composite
	if !resp.Complete() {
		ttl = o.ttl.Degraded
	}
	o.store.Set(ctx, cache.CompositeKey(subject.Code), resp, ttl)

	logger.Info("intelligence assembled",
		zap.String("country", subject.Code),
		zap.Int("articles", resp.TotalArticles),
		zap.Bool("complete", resp.Complete()),
		zap.Duration("took", o.now().Sub(start)),
	)

	return resp
}

func (o *Orchestrator) loadNews(ctx context.Context, subject models.CountrySubject) ([]models.AnalyzedArticle, string) {
	key := cache.CategoryKey(models.CategoryNews, subject.Code)
	start := o.now()

	var articles []models.AnalyzedArticle
	if o.store.Get(ctx, key, &articles) {
		o.recordFetch(subject.Code, models.CategoryNews, start, true, true, "", len(articles))
		return articles, emptyNewsMessage(articles)
	}

	res := o.sources.News.Fetch(ctx, subject)
	if !res.IsOk() {
		o.recordFetch(subject.Code, models.CategoryNews, start, false, false, res.Kind, 0)
		logFailure(subject.Code, models.CategoryNews, res.Kind, res.Detail)
		return nil, fmt.Sprintf("News unavailable: %s", res.Detail)
	}

	articles = make([]models.AnalyzedArticle, 0, len(res.Payload.Items))
	for _, item := range res.Payload.Items {
		articles = append(articles, models.AnalyzedArticle{
			NewsItem: item,
			Analysis: o.analyzer.Analyze(ctx, item.Body(), item.Source, subject.Code),
		})
	}

	o.recordFetch(subject.Code, models.CategoryNews, start, false, true, "", len(articles))
	if len(articles) > 0 {
		o.store.Set(ctx, key, articles, o.ttl.News)
	}

	return articles, emptyNewsMessage(articles)
}

func (o *Orchestrator) loadEconomic(ctx context.Context, subject models.CountrySubject) (*models.EconomicIndicatorSet, string) {
	key := cache.CategoryKey(models.CategoryEconomic, subject.Code)
	start := o.now()

	var set models.EconomicIndicatorSet
	if o.store.Get(ctx, key, &set) {
		o.recordFetch(subject.Code, models.CategoryEconomic, start, true, true, "", set.Len())
		return &set, ""
	}

	res := o.sources.Economic.Fetch(ctx, subject)
	if !res.IsOk() || res.Payload.Len() == 0 {
		o.recordFetch(subject.Code, models.CategoryEconomic, start, false, false, res.Kind, 0)
		logFailure(subject.Code, models.CategoryEconomic, res.Kind, res.Detail)
		return nil, fmt.Sprintf("Economic indicators unavailable: %s", failureDetail(res.Detail))
	}

	o.recordFetch(subject.Code, models.CategoryEconomic, start, false, true, "", res.Payload.Len())
	o.store.Set(ctx, key, res.Payload, o.ttl.Economic)

	return res.Payload, ""
}

func (o *Orchestrator) loadCurrency(ctx context.Context, subject models.CountrySubject) (*models.CurrencySnapshot, string) {
	key := cache.CategoryKey(models.CategoryCurrency, subject.Code)
	start := o.now()

	var snapshot models.CurrencySnapshot
	if o.store.Get(ctx, key, &snapshot) {
		o.recordFetch(subject.Code, models.CategoryCurrency, start, true, true, "", len(snapshot.Rates))
		return &snapshot, ""
	}

	res := o.sources.Currency.Fetch(ctx, subject)
	if !res.IsOk() || res.Payload == nil {
		o.recordFetch(subject.Code, models.CategoryCurrency, start, false, false, res.Kind, 0)
		logFailure(subject.Code, models.CategoryCurrency, res.Kind, res.Detail)
		return nil, fmt.Sprintf("Currency data unavailable: %s", failureDetail(res.Detail))
	}

	o.recordFetch(subject.Code, models.CategoryCurrency, start, false, true, "", len(res.Payload.Rates))
	o.store.Set(ctx, key, res.Payload, o.ttl.Currency)

	return res.Payload, ""
}

func (o *Orchestrator) recordFetch(code string, category models.Category, start time.Time, hit, success bool, kind models.ErrorKind, items int) {
	_ = o.recorder.Add(&metrics.UpstreamFetchMetric{
		Timestamp:   start.UTC(),
		CountryCode: code,
		Category:    string(category),
		CacheHit:    hit,
		Success:     success,
		ErrorKind:   string(kind),
		Items:       items,
		LatencyMs:   o.now().Sub(start).Milliseconds(),
	})
}

func emptyNewsMessage(articles []models.AnalyzedArticle) string {
	if len(articles) == 0 {
		return "No recent news found"
	}
	return ""
}

func failureDetail(detail string) string {
	if detail == "" {
		return "no data returned"
	}
	return detail
}

func logFailure(code string, category models.Category, kind models.ErrorKind, detail string) {
	logger.Warn("category fetch failed",
		zap.String("country", code),
		zap.String("category", string(category)),
		zap.String("kind", string(kind)),
		zap.String("detail", detail),
	)
}
