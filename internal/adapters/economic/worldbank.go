package economic

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/worldmap-intel/internal/adapters/upstream"
	"github.com/selivandex/worldmap-intel/pkg/logger"
	"github.com/selivandex/worldmap-intel/pkg/models"
)

// Indicator is a World Bank indicator tracked per country
type Indicator struct {
	Name string
	Code string
}

// DefaultIndicators are fetched for every country
var DefaultIndicators = []Indicator{
	{Name: "GDP", Code: "NY.GDP.MKTP.CD"},
	{Name: "GDP_PER_CAPITA", Code: "NY.GDP.PCAP.CD"},
	{Name: "INFLATION", Code: "FP.CPI.TOTL.ZG"},
	{Name: "UNEMPLOYMENT", Code: "SL.UEM.TOTL.ZS"},
	{Name: "POPULATION", Code: "SP.POP.TOTL"},
	{Name: "INTERNET_USERS", Code: "IT.NET.USER.ZS"},
	{Name: "LIFE_EXPECTANCY", Code: "SP.DYN.LE00.IN"},
	{Name: "TRADE_BALANCE", Code: "NE.RSB.GNFS.CD"},
}

// WorldBankConnector fetches economic indicators from the World Bank v2 API
type WorldBankConnector struct {
	baseURL       string
	lookbackYears int
	indicators    []Indicator
	client        *upstream.Client
	now           func() time.Time
}

// NewWorldBankConnector creates new World Bank connector
func NewWorldBankConnector(baseURL string, lookbackYears int, client *upstream.Client) *WorldBankConnector {
	if lookbackYears < 1 {
		lookbackYears = 5
	}
	return &WorldBankConnector{
		baseURL:       baseURL,
		lookbackYears: lookbackYears,
		indicators:    DefaultIndicators,
		client:        client,
		now:           time.Now,
	}
}

type indicatorOutcome struct {
	indicator Indicator
	value     *models.EconomicIndicator
	err       error
}

// Fetch retrieves every indicator concurrently. A failing indicator does not
// affect the others; the result is Failed only when all of them errored.
func (w *WorldBankConnector) Fetch(ctx context.Context, subject models.CountrySubject) models.FetchResult[*models.EconomicIndicatorSet] {
	if subject.WorldBankCode == "" {
		return models.Failed[*models.EconomicIndicatorSet](models.ErrorUnsupportedSubject, "no World Bank code for "+subject.Code)
	}

	outcomes := make(chan indicatorOutcome, len(w.indicators))
	for _, ind := range w.indicators {
		go func(ind Indicator) {
			value, err := w.fetchIndicator(ctx, subject.WorldBankCode, ind)
			outcomes <- indicatorOutcome{indicator: ind, value: value, err: err}
		}(ind)
	}

	profileCh := make(chan *models.CountryProfile, 1)
	go func() {
		profile, err := w.fetchProfile(ctx, subject.WorldBankCode)
		if err != nil {
			logger.Debug("world bank profile unavailable",
				zap.String("country", subject.Code),
				zap.Error(err),
			)
		}
		profileCh <- profile
	}()

	set := &models.EconomicIndicatorSet{
		Indicators: make(map[string]models.EconomicIndicator),
	}
	var lastErr error
	errCount := 0

	for range w.indicators {
		out := <-outcomes
		if out.err != nil {
			errCount++
			lastErr = out.err
			if set.Failed == nil {
				set.Failed = make(map[string]string)
			}
			_, detail := upstream.Classify(out.err)
			set.Failed[out.indicator.Name] = detail

			logger.Warn("world bank indicator fetch failed",
				zap.String("country", subject.Code),
				zap.String("indicator", out.indicator.Code),
				zap.Error(out.err),
			)
			continue
		}
		if out.value != nil {
			set.Indicators[out.indicator.Name] = *out.value
		}
	}

	set.Profile = <-profileCh

	if errCount == len(w.indicators) {
		return upstream.FailedResult[*models.EconomicIndicatorSet](lastErr)
	}

	return models.Ok(set, w.now())
}

type observation struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// fetchIndicator returns the most recent non-null observation inside the
// lookback window, or nil when the window has no data
func (w *WorldBankConnector) fetchIndicator(ctx context.Context, wbCode string, ind Indicator) (*models.EconomicIndicator, error) {
	endYear := w.now().Year()
	startYear := endYear - w.lookbackYears

	params := url.Values{
		"format":   {"json"},
		"date":     {fmt.Sprintf("%d:%d", startYear, endYear)},
		"per_page": {strconv.Itoa(w.lookbackYears + 1)},
	}
	endpoint := fmt.Sprintf("%s/country/%s/indicator/%s", w.baseURL, url.PathEscape(wbCode), url.PathEscape(ind.Code))

	var raw []json.RawMessage
	if err := w.client.GetJSON(ctx, endpoint, params, &raw); err != nil {
		return nil, err
	}

	observations, err := decodePage[observation](raw)
	if err != nil {
		return nil, err
	}

	var best *models.EconomicIndicator
	for _, obs := range observations {
		if obs.Value == nil {
			continue
		}
		year, err := strconv.Atoi(obs.Date)
		if err != nil || year < startYear || year > endYear {
			continue
		}
		if best == nil || year > best.Year {
			best = &models.EconomicIndicator{
				Name:  ind.Name,
				Code:  ind.Code,
				Value: *obs.Value,
				Year:  year,
			}
		}
	}

	return best, nil
}

type countryRecord struct {
	CapitalCity string `json:"capitalCity"`
	Region      struct {
		Value string `json:"value"`
	} `json:"region"`
	IncomeLevel struct {
		Value string `json:"value"`
	} `json:"incomeLevel"`
	LendingType struct {
		Value string `json:"value"`
	} `json:"lendingType"`
}

func (w *WorldBankConnector) fetchProfile(ctx context.Context, wbCode string) (*models.CountryProfile, error) {
	var raw []json.RawMessage
	endpoint := fmt.Sprintf("%s/country/%s", w.baseURL, url.PathEscape(wbCode))
	if err := w.client.GetJSON(ctx, endpoint, url.Values{"format": {"json"}}, &raw); err != nil {
		return nil, err
	}

	records, err := decodePage[countryRecord](raw)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	r := records[0]
	return &models.CountryProfile{
		Capital:     r.CapitalCity,
		Region:      r.Region.Value,
		IncomeLevel: r.IncomeLevel.Value,
		LendingType: r.LendingType.Value,
	}, nil
}

type apiMessage struct {
	Message []struct {
		ID    string `json:"id"`
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"message"`
}

// decodePage unpacks the World Bank [metadata, rows] envelope.
// Error payloads arrive with status 200 as a single-element message array.
func decodePage[T any](raw []json.RawMessage) ([]T, error) {
	if len(raw) == 0 {
		return nil, upstream.Malformed("empty world bank response")
	}

	if len(raw) == 1 {
		var msg apiMessage
		if err := json.Unmarshal(raw[0], &msg); err == nil && len(msg.Message) > 0 {
			m := msg.Message[0]
			return nil, upstream.Malformed("world bank error %s: %s %s", m.ID, m.Key, m.Value)
		}
		return nil, upstream.Malformed("world bank response missing data page")
	}

	var rows []T
	if string(raw[1]) == "null" {
		return rows, nil
	}
	if err := json.Unmarshal(raw[1], &rows); err != nil {
		return nil, upstream.Malformed("failed to decode world bank rows: %v", err)
	}
	return rows, nil
}
