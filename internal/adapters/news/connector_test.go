package news

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selivandex/worldmap-intel/internal/adapters/upstream"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

type stubProvider struct {
	name    string
	enabled bool
	results map[string][]models.NewsItem
	errs    map[string]error
	calls   []string
}

func (s *stubProvider) GetName() string { return s.name }
func (s *stubProvider) IsEnabled() bool { return s.enabled }

func (s *stubProvider) Search(_ context.Context, q SearchQuery) ([]models.NewsItem, error) {
	s.calls = append(s.calls, q.Term)
	if err, ok := s.errs[q.Term]; ok {
		return nil, err
	}
	return s.results[q.Term], nil
}

var france = models.CountrySubject{
	Code:          "FRA",
	Name:          "France",
	CurrencyCode:  "EUR",
	WorldBankCode: "FR",
	Aliases:       []string{"French", "Paris"},
}

func longBody(prefix string) string {
	return prefix + " " + strings.Repeat("Lorem ipsum dolor sit amet. ", 6)
}

func article(title, url, description, content string) models.NewsItem {
	return models.NewsItem{Title: title, URL: url, Description: description, Content: content, Source: "Reuters"}
}

func newTestConnector(providers ...Provider) *Connector {
	return NewConnector(providers, ConnectorConfig{TargetCount: 3, MinLength: 100, PageSize: 10})
}

func TestConnector_RelevanceFilter(t *testing.T) {
	provider := &stubProvider{name: "p", enabled: true, results: map[string][]models.NewsItem{
		"France": {
			article("France unveils budget", "u1", "Paris announces", longBody("budget")),
			article("Markets rally", "u2", "Global stocks up", longBody("France is mentioned only in the body")),
			article("French wine exports", "u3", "short", "too short"),
			article("Tour de France", "u4", "cycling", "[Removed]"),
			article("France election", "u5", "vote", longBody("election")),
		},
	}}

	res := newTestConnector(provider).Fetch(context.Background(), france)

	require.True(t, res.IsOk())
	urls := make([]string, 0)
	for _, item := range res.Payload.Items {
		urls = append(urls, item.URL)
	}
	assert.Equal(t, []string{"u1", "u5"}, urls)
	assert.Equal(t, []string{"France", "French", "Paris"}, provider.calls, "alias retries when short of target")
}

func TestConnector_StopsAtTarget(t *testing.T) {
	provider := &stubProvider{name: "p", enabled: true, results: map[string][]models.NewsItem{
		"France": {
			article("France a", "a", "", longBody("a")),
			article("France b", "b", "", longBody("b")),
			article("France c", "c", "", longBody("c")),
			article("France d", "d", "", longBody("d")),
		},
	}}

	res := newTestConnector(provider).Fetch(context.Background(), france)

	require.True(t, res.IsOk())
	assert.Len(t, res.Payload.Items, 3)
	assert.Equal(t, []string{"France"}, provider.calls)
	assert.Equal(t, "France", res.Payload.Query)
}

func TestConnector_AliasMatchesAndDedupes(t *testing.T) {
	shared := article("French strike spreads", "dup", "", longBody("strike"))
	provider := &stubProvider{name: "p", enabled: true, results: map[string][]models.NewsItem{
		"France": {shared},
		"French": {shared, article("French farmers protest", "f2", "", longBody("farmers"))},
		"Paris":  {article("Paris olympics legacy", "p1", "", longBody("olympics"))},
	}}

	res := newTestConnector(provider).Fetch(context.Background(), france)

	require.True(t, res.IsOk())
	require.Len(t, res.Payload.Items, 3)
	assert.Equal(t, "dup", res.Payload.Items[0].URL)
	assert.Equal(t, "f2", res.Payload.Items[1].URL)
	assert.Equal(t, "p1", res.Payload.Items[2].URL)
}

func TestConnector_FallbackProvider(t *testing.T) {
	primary := &stubProvider{name: "newsapi", enabled: true, errs: map[string]error{
		"France": &upstream.Error{Kind: models.ErrorUpstreamHTTP, Status: 429},
	}}
	fallback := &stubProvider{name: "rss", enabled: true, results: map[string][]models.NewsItem{
		"France": {article("France heatwave", "r1", "", longBody("heat"))},
	}}

	res := newTestConnector(primary, fallback).Fetch(context.Background(), france)

	require.True(t, res.IsOk())
	require.Len(t, res.Payload.Items, 1)
	assert.Equal(t, "r1", res.Payload.Items[0].URL)
	assert.Equal(t, []string{"France"}, primary.calls, "aliases skipped once primary query fails")
}

func TestConnector_AllProvidersFail(t *testing.T) {
	timeout := &upstream.Error{Kind: models.ErrorUpstreamTimeout, Detail: "slow", Err: context.DeadlineExceeded}
	primary := &stubProvider{name: "newsapi", enabled: true, errs: map[string]error{"France": timeout}}
	disabled := &stubProvider{name: "rss", enabled: false}

	res := newTestConnector(primary, disabled).Fetch(context.Background(), france)

	assert.False(t, res.IsOk())
	assert.Equal(t, models.ErrorUpstreamTimeout, res.Kind)
	assert.Empty(t, disabled.calls)
}

func TestConnector_AliasErrorKeepsCollected(t *testing.T) {
	provider := &stubProvider{name: "p", enabled: true,
		results: map[string][]models.NewsItem{"France": {article("France GDP", "g", "", longBody("gdp"))}},
		errs:    map[string]error{"French": errors.New("boom")},
	}

	res := newTestConnector(provider).Fetch(context.Background(), france)

	require.True(t, res.IsOk())
	assert.Len(t, res.Payload.Items, 1)
	assert.Equal(t, []string{"France", "French", "Paris"}, provider.calls)
}

func TestConnector_NoProviders(t *testing.T) {
	res := newTestConnector().Fetch(context.Background(), france)
	assert.False(t, res.IsOk())
}

func TestConnector_LookbackPassedToProvider(t *testing.T) {
	var got SearchQuery
	provider := &recordingProvider{fn: func(q SearchQuery) { got = q }}
	c := NewConnector([]Provider{provider}, ConnectorConfig{Lookback: 7 * 24 * time.Hour})
	fixed := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	c.Fetch(context.Background(), france)

	assert.Equal(t, fixed.Add(-7*24*time.Hour), got.From)
	assert.Equal(t, 3, got.Limit)
}

type recordingProvider struct {
	fn func(SearchQuery)
}

func (r *recordingProvider) GetName() string { return "rec" }
func (r *recordingProvider) IsEnabled() bool { return true }
func (r *recordingProvider) Search(_ context.Context, q SearchQuery) ([]models.NewsItem, error) {
	r.fn(q)
	return nil, nil
}
