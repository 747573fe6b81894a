package models

import (
	"strings"
	"time"
)

// NewsItem represents single news article returned by a news provider
type NewsItem struct {
	PublishedAt time.Time `json:"published_at"`
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Content     string    `json:"content,omitempty"`
}

// Body returns the article text used for analysis, skipping the
// "[Removed]" placeholder some providers send instead of content
func (n NewsItem) Body() string {
	if c := strings.TrimSpace(n.Content); c != "" && c != "[Removed]" {
		return n.Content
	}
	return n.Description
}

// NewsBundle is the payload of the news connector
type NewsBundle struct {
	Query string     `json:"query"`
	Items []NewsItem `json:"items"`
}

// AnalyzedArticle is a news item with its analysis attached
type AnalyzedArticle struct {
	NewsItem
	Analysis AnalysisResult `json:"ai_analysis"`
}
