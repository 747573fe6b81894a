package economic

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selivandex/worldmap-intel/internal/adapters/upstream"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

var france = models.CountrySubject{Code: "FRA", Name: "France", WorldBankCode: "FR", CurrencyCode: "EUR"}

const gdpPage = `[
  {"page":1,"pages":1,"per_page":6,"total":4},
  [
    {"indicator":{"id":"NY.GDP.MKTP.CD"},"date":"2023","value":null},
    {"indicator":{"id":"NY.GDP.MKTP.CD"},"date":"2022","value":2779092235055.72},
    {"indicator":{"id":"NY.GDP.MKTP.CD"},"date":"2021","value":2957879759263.52},
    {"indicator":{"id":"NY.GDP.MKTP.CD"},"date":"2015","value":1.0}
  ]
]`

const profilePage = `[
  {"page":1,"pages":1,"per_page":"50","total":1},
  [{"id":"FRA","iso2Code":"FR","name":"France","capitalCity":"Paris",
    "region":{"id":"ECS","value":"Europe & Central Asia"},
    "incomeLevel":{"id":"HIC","value":"High income"},
    "lendingType":{"id":"LNX","value":"Not classified"}}]
]`

const emptyPage = `[{"page":1,"pages":0,"per_page":6,"total":0}, null]`

const errorPage = `[{"message":[{"id":"120","key":"Invalid value","value":"The provided parameter value is not valid"}]}]`

func newTestConnector(t *testing.T, handler http.HandlerFunc) *WorldBankConnector {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewWorldBankConnector(srv.URL, 5, upstream.NewClient(time.Second))
	c.now = func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }
	return c
}

func TestWorldBank_PicksLatestNonNull(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/country/FR":
			w.Write([]byte(profilePage))
		case strings.HasSuffix(r.URL.Path, "/NY.GDP.MKTP.CD"):
			assert.Equal(t, "2019:2024", r.URL.Query().Get("date"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			w.Write([]byte(gdpPage))
		default:
			w.Write([]byte(emptyPage))
		}
	})

	res := c.Fetch(context.Background(), france)

	require.True(t, res.IsOk())
	set := res.Payload
	require.Equal(t, 1, set.Len())
	gdp := set.Indicators["GDP"]
	assert.Equal(t, 2022, gdp.Year)
	assert.InDelta(t, 2779092235055.72, gdp.Value, 0.01)
	assert.Equal(t, "NY.GDP.MKTP.CD", gdp.Code)
	assert.Empty(t, set.Failed)

	require.NotNil(t, set.Profile)
	assert.Equal(t, "Paris", set.Profile.Capital)
	assert.Equal(t, "High income", set.Profile.IncomeLevel)
}

func TestWorldBank_IndicatorsIndependent(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/NY.GDP.MKTP.CD"):
			w.Write([]byte(gdpPage))
		case strings.HasSuffix(r.URL.Path, "/FP.CPI.TOTL.ZG"):
			http.Error(w, "boom", http.StatusInternalServerError)
		case strings.HasSuffix(r.URL.Path, "/SP.POP.TOTL"):
			w.Write([]byte(errorPage))
		default:
			w.Write([]byte(emptyPage))
		}
	})

	res := c.Fetch(context.Background(), france)

	require.True(t, res.IsOk())
	assert.Contains(t, res.Payload.Indicators, "GDP")
	assert.Contains(t, res.Payload.Failed, "INFLATION")
	assert.Contains(t, res.Payload.Failed, "POPULATION")
	assert.NotContains(t, res.Payload.Failed, "UNEMPLOYMENT")
}

func TestWorldBank_AllIndicatorsFail(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	})

	res := c.Fetch(context.Background(), france)

	assert.False(t, res.IsOk())
	assert.Equal(t, models.ErrorUpstreamHTTP, res.Kind)
}

func TestWorldBank_NoDataIsEmptyNotFailed(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(emptyPage))
	})

	res := c.Fetch(context.Background(), france)

	require.True(t, res.IsOk())
	assert.Equal(t, 0, res.Payload.Len())
	assert.Nil(t, res.Payload.Profile)
}

func TestWorldBank_UnsupportedSubject(t *testing.T) {
	c := NewWorldBankConnector("http://unused", 5, upstream.NewClient(time.Second))

	res := c.Fetch(context.Background(), models.CountrySubject{Code: "ATA", Name: "Antarctica"})

	assert.False(t, res.IsOk())
	assert.Equal(t, models.ErrorUnsupportedSubject, res.Kind)
}
