package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetState is a point-in-time view of premium analysis spend
type BudgetState struct {
	Spent       decimal.Decimal `json:"spent"`
	Limit       decimal.Decimal `json:"limit"`
	Remaining   decimal.Decimal `json:"remaining"`
	PeriodStart time.Time       `json:"period_start"`
	Calls       int             `json:"premium_calls"`
}
