package models

import "github.com/shopspring/decimal"

// CurrencySnapshot holds exchange rates for a country's currency
type CurrencySnapshot struct {
	Base        string                     `json:"base_currency"`
	USDRate     decimal.NullDecimal        `json:"usd_rate"`
	EURRate     decimal.NullDecimal        `json:"eur_rate"`
	LastUpdated string                     `json:"last_updated"`
	Rates       map[string]decimal.Decimal `json:"rates"`
}
