package news

import (
	"context"
	"time"

	"github.com/selivandex/worldmap-intel/pkg/models"
)

// SearchQuery describes one provider search
type SearchQuery struct {
	Term  string
	From  time.Time
	Limit int
}

// Provider represents news source provider interface
type Provider interface {
	// GetName returns provider name
	GetName() string

	// Search returns candidate articles for the query term, newest first
	Search(ctx context.Context, query SearchQuery) ([]models.NewsItem, error)

	// IsEnabled returns whether provider is enabled
	IsEnabled() bool
}
