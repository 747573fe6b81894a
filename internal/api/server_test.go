package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selivandex/worldmap-intel/internal/analysis"
	"github.com/selivandex/worldmap-intel/internal/budget"
	"github.com/selivandex/worldmap-intel/internal/countries"
	"github.com/selivandex/worldmap-intel/internal/health"
	"github.com/selivandex/worldmap-intel/internal/intelligence"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

type fakeIntel struct {
	err  error
	code string
}

func (f *fakeIntel) GetIntelligence(_ context.Context, code string) (*models.IntelligenceResponse, error) {
	f.code = code
	if f.err != nil {
		return nil, f.err
	}
	return &models.IntelligenceResponse{
		Country:     "France",
		CountryCode: "FRA",
		Articles:    []models.AnalyzedArticle{},
		DataAvailability: map[models.Category]bool{
			models.CategoryNews:     false,
			models.CategoryEconomic: true,
			models.CategoryCurrency: true,
		},
		Messages:    []string{"No recent news found"},
		LastUpdated: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

func newTestRouter(intel IntelligenceService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	dispatcher := analysis.NewDispatcher(nil, budget.NewLedger(decimal.NewFromInt(50)), analysis.DispatcherConfig{
		PremiumCountries: []string{"USA"},
		SampleRate:       0.1,
		CostPerCall:      decimal.RequireFromString("0.002"),
	})

	return NewRouter(Deps{
		Intelligence: intel,
		Directory:    countries.Builtin(),
		Usage:        dispatcher,
		Probes:       health.NewProbes(),
	})
}

func do(r http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetIntelligence_OK(t *testing.T) {
	intel := &fakeIntel{}
	w := do(newTestRouter(intel), "/api/v1/intelligence/fra")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fra", intel.code)

	body := decode(t, w)
	assert.Equal(t, "FRA", body["country_code"])
	assert.Equal(t, map[string]any{"news": false, "economic": true, "currency": true}, body["data_availability"])
	assert.Equal(t, []any{"No recent news found"}, body["messages"])
}

func TestGetIntelligence_NotFound(t *testing.T) {
	intel := &fakeIntel{err: &intelligence.NotFoundError{Code: "ZZZ"}}
	w := do(newTestRouter(intel), "/api/v1/intelligence/ZZZ")

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.Equal(t, `country "ZZZ" not found`, body["error"])
	assert.Equal(t, []any{}, body["suggestions"])

	intel.err = &intelligence.NotFoundError{Code: "FRANC", Suggestions: []intelligence.Suggestion{{Code: "FRA", Name: "France"}}}
	body = decode(t, do(newTestRouter(intel), "/api/v1/intelligence/franc"))
	assert.Equal(t, []any{map[string]any{"code": "FRA", "name": "France"}}, body["suggestions"])
}

func TestGetIntelligence_InternalError(t *testing.T) {
	w := do(newTestRouter(&fakeIntel{err: errors.New("boom")}), "/api/v1/intelligence/FRA")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = do(newTestRouter(&fakeIntel{err: context.DeadlineExceeded}), "/api/v1/intelligence/FRA")
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestCountries(t *testing.T) {
	r := newTestRouter(&fakeIntel{})

	w := do(r, "/api/v1/countries")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(countries.Builtin().Len()), body["total"])

	w = do(r, "/api/v1/countries/search?q=germ")
	require.Equal(t, http.StatusOK, w.Code)
	body = decode(t, w)
	require.Equal(t, float64(1), body["total"])
	first := body["results"].([]any)[0].(map[string]any)
	assert.Equal(t, "DEU", first["code"])

	assert.Equal(t, http.StatusBadRequest, do(r, "/api/v1/countries/search").Code)
}

func TestAIUsage(t *testing.T) {
	w := do(newTestRouter(&fakeIntel{}), "/api/v1/ai/usage")
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "50", body["monthly_budget"])
	assert.Equal(t, []any{"USA"}, body["premium_countries"])
	assert.Equal(t, map[string]any{"basic": true, "premium": false}, body["services_available"])
}

func TestRequestID(t *testing.T) {
	r := newTestRouter(&fakeIntel{})

	w := do(r, "/health")
	assert.Len(t, w.Header().Get(requestIDHeader), 36)

	w = do(r, "/health", requestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}
