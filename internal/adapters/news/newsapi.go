package news

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/internal/adapters/upstream"
	"github.com/selivandex/worldmap-intel/pkg/logger"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

// NewsAPIProvider searches newsapi.org /everything
type NewsAPIProvider struct {
	apiKey  string
	baseURL string
	client  *upstream.Client
}

// NewNewsAPIProvider creates new NewsAPI provider
func NewNewsAPIProvider(apiKey, baseURL string, client *upstream.Client) *NewsAPIProvider {
	return &NewsAPIProvider{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
	}
}

func (n *NewsAPIProvider) GetName() string {
	return "newsapi"
}

func (n *NewsAPIProvider) IsEnabled() bool {
	return n.apiKey != ""
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		URL         string    `json:"url"`
		PublishedAt time.Time `json:"publishedAt"`
		Content     string    `json:"content"`
	} `json:"articles"`
}

func (n *NewsAPIProvider) Search(ctx context.Context, query SearchQuery) ([]models.NewsItem, error) {
	params := url.Values{
		"q":        {query.Term},
		"language": {"en"},
		"sortBy":   {"publishedAt"},
		"pageSize": {strconv.Itoa(query.Limit)},
		"apiKey":   {n.apiKey},
	}
	if !query.From.IsZero() {
		params.Set("from", query.From.UTC().Format("2006-01-02"))
	}

	var result newsAPIResponse
	if err := n.client.GetJSON(ctx, n.baseURL+"/everything", params, &result); err != nil {
		return nil, err
	}

	if result.Status != "ok" {
		return nil, upstream.Malformed("newsapi status %q: %s %s", result.Status, result.Code, result.Message)
	}

	items := make([]models.NewsItem, 0, len(result.Articles))
	for _, article := range result.Articles {
		items = append(items, models.NewsItem{
			PublishedAt: article.PublishedAt,
			Title:       article.Title,
			Source:      article.Source.Name,
			URL:         article.URL,
			Description: article.Description,
			Content:     article.Content,
		})
	}

	logger.Debug("fetched NewsAPI articles",
		zap.String("term", query.Term),
		zap.Int("count", len(items)),
	)

	return items, nil
}
