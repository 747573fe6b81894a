package currency

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/internal/adapters/upstream"
	"github.com/selivandex/worldmap-intel/pkg/logger"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

// TrackedCurrencies are copied into every snapshot when the upstream has them
var TrackedCurrencies = []string{"USD", "EUR", "GBP", "JPY", "CNY"}

// ExchangeRateConnector fetches latest rates from exchangerate-api.com
type ExchangeRateConnector struct {
	baseURL string
	client  *upstream.Client
	now     func() time.Time
}

// NewExchangeRateConnector creates new exchange rate connector
func NewExchangeRateConnector(baseURL string, client *upstream.Client) *ExchangeRateConnector {
	return &ExchangeRateConnector{
		baseURL: baseURL,
		client:  client,
		now:     time.Now,
	}
}

type latestResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Fetch returns the rates of the subject's currency against tracked currencies
func (e *ExchangeRateConnector) Fetch(ctx context.Context, subject models.CountrySubject) models.FetchResult[*models.CurrencySnapshot] {
	code := strings.ToUpper(strings.TrimSpace(subject.CurrencyCode))
	if code == "" {
		return models.Failed[*models.CurrencySnapshot](models.ErrorUnsupportedSubject, "no currency for "+subject.Code)
	}

	var result latestResponse
	endpoint := fmt.Sprintf("%s/latest/%s", e.baseURL, url.PathEscape(code))
	if err := e.client.GetJSON(ctx, endpoint, nil, &result); err != nil {
		logger.Warn("exchange rate fetch failed",
			zap.String("country", subject.Code),
			zap.String("currency", code),
			zap.Error(err),
		)
		return upstream.FailedResult[*models.CurrencySnapshot](err)
	}

	if len(result.Rates) == 0 {
		return models.Failed[*models.CurrencySnapshot](models.ErrorUpstreamMalformed, "rates missing for "+code)
	}

	snapshot := &models.CurrencySnapshot{
		Base:        code,
		LastUpdated: result.Date,
		Rates:       make(map[string]decimal.Decimal, len(TrackedCurrencies)),
	}
	for _, cur := range TrackedCurrencies {
		if rate, ok := result.Rates[cur]; ok {
			snapshot.Rates[cur] = rate
		}
	}
	if rate, ok := result.Rates["USD"]; ok {
		snapshot.USDRate = decimal.NewNullDecimal(rate)
	}
	if rate, ok := result.Rates["EUR"]; ok {
		snapshot.EURRate = decimal.NewNullDecimal(rate)
	}

	return models.Ok(snapshot, e.now())
}
