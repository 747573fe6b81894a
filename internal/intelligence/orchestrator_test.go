package intelligence

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selivandex/worldmap-intel/internal/analysis"
	"github.com/selivandex/worldmap-intel/internal/budget"
	"github.com/selivandex/worldmap-intel/internal/cache"
	"github.com/selivandex/worldmap-intel/internal/countries"
	"github.com/selivandex/worldmap-intel/pkg/metrics"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

type fakeNews struct {
	calls atomic.Int32
	gate  chan struct{}
	fail  bool
	items []models.NewsItem
}

func (f *fakeNews) Fetch(ctx context.Context, subject models.CountrySubject) models.FetchResult[models.NewsBundle] {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	if f.fail {
		return models.Failed[models.NewsBundle](models.ErrorUpstreamHTTP, "newsapi returned 503")
	}
	return models.Ok(models.NewsBundle{Query: subject.Name, Items: f.items}, time.Now())
}

type fakeEconomic struct {
	calls atomic.Int32
	fail  bool
}

func (f *fakeEconomic) Fetch(context.Context, models.CountrySubject) models.FetchResult[*models.EconomicIndicatorSet] {
	f.calls.Add(1)
	if f.fail {
		return models.Failed[*models.EconomicIndicatorSet](models.ErrorUpstreamTimeout, "world bank timed out")
	}
	return models.Ok(&models.EconomicIndicatorSet{
		Indicators: map[string]models.EconomicIndicator{
			"gdp": {Name: "gdp", Code: "NY.GDP.MKTP.CD", Value: 2.78e12, Year: 2022},
		},
	}, time.Now())
}

type fakeCurrency struct {
	calls atomic.Int32
	gate  chan struct{}
	fail  bool
}

func (f *fakeCurrency) Fetch(_ context.Context, subject models.CountrySubject) models.FetchResult[*models.CurrencySnapshot] {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	if f.fail {
		return models.Failed[*models.CurrencySnapshot](models.ErrorUpstreamMalformed, "rates missing")
	}
	return models.Ok(&models.CurrencySnapshot{
		Base:    subject.CurrencyCode,
		USDRate: decimal.NewNullDecimal(decimal.RequireFromString("1.08")),
		Rates:   map[string]decimal.Decimal{"USD": decimal.RequireFromString("1.08")},
	}, time.Now())
}

type fetchRecorder struct {
	mu   sync.Mutex
	rows []*metrics.UpstreamFetchMetric
}

func (r *fetchRecorder) Add(m metrics.Metric) error {
	if f, ok := m.(*metrics.UpstreamFetchMetric); ok {
		r.mu.Lock()
		r.rows = append(r.rows, f)
		r.mu.Unlock()
	}
	return nil
}

func franceArticles() []models.NewsItem {
	body := strings.Repeat("France reported strong growth in exports and a great tourist season. ", 3)
	return []models.NewsItem{
		{Title: "France exports rise", Source: "Reuters", URL: "https://example.com/a", Content: body},
		{Title: "French tourism booms", Source: "BBC", URL: "https://example.com/b", Description: body},
	}
}

type fixture struct {
	backend  *cache.MemoryBackend
	news     *fakeNews
	economic *fakeEconomic
	currency *fakeCurrency
	recorder *fetchRecorder
	orch     *Orchestrator
	clock    *time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	f := &fixture{
		news:     &fakeNews{items: franceArticles()},
		economic: &fakeEconomic{},
		currency: &fakeCurrency{},
		recorder: &fetchRecorder{},
		clock:    &now,
	}
	f.backend = cache.NewMemoryBackendWithClock(func() time.Time { return *f.clock })

	dispatcher := analysis.NewDispatcher(nil, budget.NewLedger(decimal.NewFromInt(50)), analysis.DispatcherConfig{})
	f.orch = NewOrchestrator(
		countries.Builtin(),
		cache.NewStore(f.backend),
		Sources{News: f.news, Economic: f.economic, Currency: f.currency},
		dispatcher,
		TTLs{
			News:      45 * time.Minute,
			Economic:  12 * time.Hour,
			Currency:  time.Hour,
			Composite: 30 * time.Minute,
			Degraded:  5 * time.Minute,
		},
		f.recorder,
	)
	return f
}

func (f *fixture) advance(d time.Duration) {
	*f.clock = f.clock.Add(d)
}

func (f *fixture) compositeCached(code string) bool {
	_, found, _ := f.backend.Get(context.Background(), cache.CompositeKey(code))
	return found
}

func TestGetIntelligence_France(t *testing.T) {
	f := newFixture(t)

	resp, err := f.orch.GetIntelligence(context.Background(), "fra")
	require.NoError(t, err)

	assert.Equal(t, "France", resp.Country)
	assert.Equal(t, "FRA", resp.CountryCode)
	assert.Equal(t, "EUR", resp.CountryInfo.Currency)
	assert.Equal(t, [2]float64{2.2137, 46.2276}, resp.CountryInfo.Coordinates)

	assert.Equal(t, map[models.Category]bool{
		models.CategoryNews:     true,
		models.CategoryEconomic: true,
		models.CategoryCurrency: true,
	}, resp.DataAvailability)
	assert.Empty(t, resp.Messages)

	require.Len(t, resp.Articles, 2)
	assert.Equal(t, 2, resp.TotalArticles)
	for _, a := range resp.Articles {
		assert.Equal(t, models.TierBasic, a.Analysis.Tier)
		assert.NotEmpty(t, a.Analysis.Summary.Short)
	}
	assert.Equal(t, models.SentimentPositive, resp.Articles[0].Analysis.Sentiment.Label)
	assert.Equal(t, 2022, resp.EconomicIndicators.Indicators["gdp"].Year)
	assert.Equal(t, "EUR", resp.Currency.Base)

	assert.True(t, f.compositeCached("FRA"))
}

func TestGetIntelligence_UnknownCode(t *testing.T) {
	f := newFixture(t)

	_, err := f.orch.GetIntelligence(context.Background(), "ZZZ")

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "ZZZ", nf.Code)
	assert.Empty(t, nf.Suggestions)
	assert.Zero(t, f.news.calls.Load())
}

func TestGetIntelligence_UnknownCodeSuggestions(t *testing.T) {
	f := newFixture(t)

	_, err := f.orch.GetIntelligence(context.Background(), "franc")

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Len(t, nf.Suggestions, 1)
	assert.Equal(t, Suggestion{Code: "FRA", Name: "France"}, nf.Suggestions[0])
	assert.Contains(t, err.Error(), "France (FRA)")

	_, err = f.orch.GetIntelligence(context.Background(), "an")
	require.ErrorAs(t, err, &nf)
	assert.Len(t, nf.Suggestions, maxSuggestions)
}

func TestGetIntelligence_CompositeCacheHit(t *testing.T) {
	f := newFixture(t)

	first, err := f.orch.GetIntelligence(context.Background(), "FRA")
	require.NoError(t, err)
	second, err := f.orch.GetIntelligence(context.Background(), "FRA")
	require.NoError(t, err)

	assert.Equal(t, int32(1), f.news.calls.Load())
	assert.Equal(t, int32(1), f.economic.calls.Load())
	assert.Equal(t, int32(1), f.currency.calls.Load())
	assert.Equal(t, first.TotalArticles, second.TotalArticles)
	assert.Equal(t, first.DataAvailability, second.DataAvailability)
}

func TestGetIntelligence_CategoryFailureIsolated(t *testing.T) {
	f := newFixture(t)
	f.currency.fail = true

	resp, err := f.orch.GetIntelligence(context.Background(), "FRA")
	require.NoError(t, err)

	assert.True(t, resp.DataAvailability[models.CategoryNews])
	assert.True(t, resp.DataAvailability[models.CategoryEconomic])
	assert.False(t, resp.DataAvailability[models.CategoryCurrency])
	assert.Nil(t, resp.Currency)
	require.Len(t, resp.Messages, 1)
	assert.Contains(t, resp.Messages[0], "Currency data unavailable")

	// degraded composite expires sooner; healthy categories stay cached
	f.advance(6 * time.Minute)
	f.currency.fail = false

	resp, err = f.orch.GetIntelligence(context.Background(), "FRA")
	require.NoError(t, err)
	assert.True(t, resp.Complete())
	assert.Equal(t, int32(1), f.news.calls.Load())
	assert.Equal(t, int32(1), f.economic.calls.Load())
	assert.Equal(t, int32(2), f.currency.calls.Load())
}

func TestGetIntelligence_AllCategoriesFail(t *testing.T) {
	f := newFixture(t)
	f.news.fail = true
	f.economic.fail = true
	f.currency.fail = true

	resp, err := f.orch.GetIntelligence(context.Background(), "DEU")
	require.NoError(t, err)

	assert.False(t, resp.DataAvailability[models.CategoryNews])
	assert.False(t, resp.DataAvailability[models.CategoryEconomic])
	assert.False(t, resp.DataAvailability[models.CategoryCurrency])
	assert.NotNil(t, resp.Articles)
	assert.Len(t, resp.Messages, 3)
	assert.Equal(t, "Germany", resp.Country)
}

func TestGetIntelligence_NoNewsMessage(t *testing.T) {
	f := newFixture(t)
	f.news.items = nil

	resp, err := f.orch.GetIntelligence(context.Background(), "FRA")
	require.NoError(t, err)

	assert.False(t, resp.DataAvailability[models.CategoryNews])
	assert.Equal(t, []string{"No recent news found"}, resp.Messages)
}

func TestGetIntelligence_CompositeWrittenOnlyAfterAllCategories(t *testing.T) {
	f := newFixture(t)
	f.currency.gate = make(chan struct{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := f.orch.GetIntelligence(context.Background(), "FRA")
		assert.NoError(t, err)
	}()

	// news and economic finish while currency is still blocked
	require.Eventually(t, func() bool {
		_, found, _ := f.backend.Get(context.Background(), cache.CategoryKey(models.CategoryEconomic, "FRA"))
		return found && f.currency.calls.Load() == 1
	}, time.Second, 5*time.Millisecond)

	assert.False(t, f.compositeCached("FRA"))

	close(f.currency.gate)
	<-done

	assert.True(t, f.compositeCached("FRA"))
}

func TestGetIntelligence_ConcurrentMissesShareOneBuild(t *testing.T) {
	f := newFixture(t)
	f.news.gate = make(chan struct{})

	var wg sync.WaitGroup
	results := make([]*models.IntelligenceResponse, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := f.orch.GetIntelligence(context.Background(), "fra")
			assert.NoError(t, err)
			results[i] = resp
		}(i)
	}

	require.Eventually(t, func() bool { return f.news.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(f.news.gate)
	wg.Wait()

	assert.Equal(t, int32(1), f.news.calls.Load())
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, 2, r.TotalArticles)
	}
}

func TestGetIntelligence_CallerCancelStillFillsCache(t *testing.T) {
	f := newFixture(t)
	f.news.gate = make(chan struct{})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := f.orch.GetIntelligence(ctx, "FRA")
		errCh <- err
	}()

	require.Eventually(t, func() bool { return f.news.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.True(t, errors.Is(<-errCh, context.Canceled))

	close(f.news.gate)
	assert.Eventually(t, func() bool { return f.compositeCached("FRA") }, time.Second, 5*time.Millisecond)
}

func TestGetIntelligence_RecordsFetchMetrics(t *testing.T) {
	f := newFixture(t)
	f.economic.fail = true

	_, err := f.orch.GetIntelligence(context.Background(), "FRA")
	require.NoError(t, err)

	f.recorder.mu.Lock()
	defer f.recorder.mu.Unlock()
	require.Len(t, f.recorder.rows, 3)

	byCategory := map[string]*metrics.UpstreamFetchMetric{}
	for _, r := range f.recorder.rows {
		byCategory[r.Category] = r
	}
	assert.True(t, byCategory["news"].Success)
	assert.Equal(t, 2, byCategory["news"].Items)
	assert.False(t, byCategory["economic"].Success)
	assert.Equal(t, string(models.ErrorUpstreamTimeout), byCategory["economic"].ErrorKind)
}
