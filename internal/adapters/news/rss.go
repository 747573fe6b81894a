package news

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/internal/adapters/upstream"
	"github.com/selivandex/worldmap-intel/pkg/logger"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

const rssCacheTTL = 5 * time.Minute

// RSSProvider reads a general world-news feed and matches items against the
// query term. The parsed feed is kept in memory briefly so alias retries do
// not refetch it.
type RSSProvider struct {
	feedURL string
	source  string
	enabled bool
	parser  *gofeed.Parser

	mu        sync.Mutex
	cached    []models.NewsItem
	fetchedAt time.Time
	now       func() time.Time
}

// NewRSSProvider creates new RSS provider
func NewRSSProvider(feedURL string, enabled bool, httpClient *http.Client) *RSSProvider {
	parser := gofeed.NewParser()
	parser.Client = httpClient

	source := "RSS"
	if u, err := url.Parse(feedURL); err == nil && u.Host != "" {
		source = u.Host
		if strings.Contains(source, "bbc") {
			source = "BBC News"
		}
	}

	return &RSSProvider{
		feedURL: feedURL,
		source:  source,
		enabled: enabled && feedURL != "",
		parser:  parser,
		now:     time.Now,
	}
}

func (r *RSSProvider) GetName() string {
	return "rss"
}

func (r *RSSProvider) IsEnabled() bool {
	return r.enabled
}

func (r *RSSProvider) Search(ctx context.Context, query SearchQuery) ([]models.NewsItem, error) {
	items, err := r.feed(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(query.Term)
	matched := make([]models.NewsItem, 0)
	for _, item := range items {
		if !query.From.IsZero() && !item.PublishedAt.IsZero() && item.PublishedAt.Before(query.From) {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(item.Title+" "+item.Description), term) {
			continue
		}
		matched = append(matched, item)
		if query.Limit > 0 && len(matched) >= query.Limit {
			break
		}
	}

	return matched, nil
}

func (r *RSSProvider) feed(ctx context.Context) ([]models.NewsItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil && r.now().Sub(r.fetchedAt) < rssCacheTTL {
		return r.cached, nil
	}

	feed, err := r.parser.ParseURLWithContext(r.feedURL, ctx)
	if err != nil {
		return nil, classifyFeedError(err)
	}

	items := make([]models.NewsItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		items = append(items, models.NewsItem{
			PublishedAt: publishedAt,
			Title:       item.Title,
			Source:      r.source,
			URL:         item.Link,
			Description: item.Description,
			Content:     item.Content,
		})
	}

	logger.Debug("fetched RSS feed",
		zap.String("url", r.feedURL),
		zap.Int("count", len(items)),
	)

	r.cached = items
	r.fetchedAt = r.now()
	return items, nil
}

func classifyFeedError(err error) error {
	var httpErr gofeed.HTTPError
	if errors.As(err, &httpErr) {
		return &upstream.Error{Kind: models.ErrorUpstreamHTTP, Status: httpErr.StatusCode, Detail: httpErr.Status, Err: err}
	}

	kind, _ := upstream.Classify(err)
	if kind == models.ErrorUpstreamTimeout {
		return &upstream.Error{Kind: kind, Detail: "feed request timed out", Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &upstream.Error{Kind: models.ErrorUpstreamHTTP, Detail: "feed request failed", Err: err}
	}

	return &upstream.Error{Kind: models.ErrorUpstreamMalformed, Detail: "failed to parse feed", Err: err}
}
