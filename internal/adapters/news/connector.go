package news

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/internal/adapters/upstream"
	"github.com/selivandex/worldmap-intel/pkg/logger"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

// placeholderBody is what NewsAPI returns in place of withheld article text
const placeholderBody = "[Removed]"

// ConnectorConfig tunes relevance filtering
type ConnectorConfig struct {
	TargetCount int           // qualifying items wanted
	MinLength   int           // minimum body length in characters
	PageSize    int           // items requested per provider search
	Lookback    time.Duration // oldest publication accepted
}

// Connector fetches country-relevant news from providers in priority order.
// The first provider is searched with the country name and then each alias
// until enough relevant items are collected; later providers only run when
// earlier ones fail or come up short.
type Connector struct {
	providers []Provider
	cfg       ConnectorConfig
	now       func() time.Time
}

// NewConnector creates new news connector
func NewConnector(providers []Provider, cfg ConnectorConfig) *Connector {
	if cfg.TargetCount <= 0 {
		cfg.TargetCount = 3
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = 100
	}
	if cfg.PageSize < cfg.TargetCount {
		cfg.PageSize = cfg.TargetCount
	}

	return &Connector{
		providers: providers,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Fetch returns up to TargetCount relevant items for the subject
func (c *Connector) Fetch(ctx context.Context, subject models.CountrySubject) models.FetchResult[models.NewsBundle] {
	if subject.Name == "" {
		return models.Failed[models.NewsBundle](models.ErrorUnsupportedSubject, "no name for "+subject.Code)
	}

	names := subject.Names()
	var from time.Time
	if c.cfg.Lookback > 0 {
		from = c.now().Add(-c.cfg.Lookback)
	}

	collected := make([]models.NewsItem, 0, c.cfg.TargetCount)
	seen := make(map[string]struct{})
	usedTerms := make([]string, 0, len(names))
	var lastErr error
	succeeded := false

	for _, provider := range c.providers {
		if !provider.IsEnabled() {
			continue
		}

		for i, term := range names {
			if len(collected) >= c.cfg.TargetCount {
				break
			}

			items, err := provider.Search(ctx, SearchQuery{Term: term, From: from, Limit: c.cfg.PageSize})
			if err != nil {
				logger.Warn("news search failed",
					zap.String("provider", provider.GetName()),
					zap.String("country", subject.Code),
					zap.String("term", term),
					zap.Error(err),
				)
				lastErr = err
				if i == 0 {
					// primary query failed, fall through to the next provider
					break
				}
				continue
			}

			succeeded = true
			usedTerms = append(usedTerms, term)

			for _, item := range items {
				if len(collected) >= c.cfg.TargetCount {
					break
				}
				if !c.qualifies(item, names) {
					continue
				}
				key := dedupeKey(item)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				collected = append(collected, item)
			}
		}

		if len(collected) >= c.cfg.TargetCount {
			break
		}
	}

	if !succeeded {
		if lastErr == nil {
			return models.Failed[models.NewsBundle](models.ErrorUpstreamHTTP, "no news provider enabled")
		}
		return upstream.FailedResult[models.NewsBundle](lastErr)
	}

	logger.Debug("news connector collected items",
		zap.String("country", subject.Code),
		zap.Int("count", len(collected)),
		zap.Strings("terms", usedTerms),
	)

	return models.Ok(models.NewsBundle{
		Query: strings.Join(usedTerms, ", "),
		Items: collected,
	}, c.now())
}

// qualifies reports whether item has a real body of sufficient length and
// mentions the subject in its title or description
func (c *Connector) qualifies(item models.NewsItem, names []string) bool {
	if strings.TrimSpace(item.Title) == placeholderBody {
		return false
	}

	body := strings.TrimSpace(item.Content)
	if body == "" || body == placeholderBody {
		body = strings.TrimSpace(item.Description)
	}
	if body == "" || body == placeholderBody {
		return false
	}
	if utf8.RuneCountInString(body) < c.cfg.MinLength {
		return false
	}

	return mentions(item.Title+"\n"+item.Description, names)
}

func mentions(text string, names []string) bool {
	lower := strings.ToLower(text)
	for _, name := range names {
		if name == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(name)) {
			return true
		}
	}
	return false
}

func dedupeKey(item models.NewsItem) string {
	if item.URL != "" {
		return item.URL
	}
	return strings.ToLower(strings.TrimSpace(item.Title))
}
