package models

import "time"

// Category is one of the independently fetched data categories
type Category string

const (
	CategoryNews     Category = "news"
	CategoryEconomic Category = "economic"
	CategoryCurrency Category = "currency"
)

// Categories lists every category in response order
var Categories = []Category{CategoryNews, CategoryEconomic, CategoryCurrency}

// IntelligenceResponse is the aggregated per-country view
type IntelligenceResponse struct {
	Country            string                `json:"country"`
	CountryCode        string                `json:"country_code"`
	Articles           []AnalyzedArticle     `json:"articles"`
	TotalArticles      int                   `json:"total_articles"`
	EconomicIndicators *EconomicIndicatorSet `json:"economic_indicators"`
	CountryInfo        CountryInfo           `json:"country_info"`
	Currency           *CurrencySnapshot     `json:"currency_data"`
	DataAvailability   map[Category]bool     `json:"data_availability"`
	Messages           []string              `json:"messages,omitempty"`
	LastUpdated        time.Time             `json:"last_updated"`
}

// Complete reports whether every category is populated
func (r *IntelligenceResponse) Complete() bool {
	for _, c := range Categories {
		if !r.DataAvailability[c] {
			return false
		}
	}
	return true
}
