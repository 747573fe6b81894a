package models

// EconomicIndicator is the latest non-null observation of one indicator
type EconomicIndicator struct {
	Name  string  `json:"name"`
	Code  string  `json:"code"`
	Value float64 `json:"value"`
	Year  int     `json:"year"`
}

// CountryProfile is World Bank reference metadata for a country
type CountryProfile struct {
	Capital     string `json:"capital,omitempty"`
	Region      string `json:"region,omitempty"`
	IncomeLevel string `json:"income_level,omitempty"`
	LendingType string `json:"lending_type,omitempty"`
}

// EconomicIndicatorSet is the payload of the economic connector
type EconomicIndicatorSet struct {
	Indicators map[string]EconomicIndicator `json:"indicators"`
	Profile    *CountryProfile              `json:"profile,omitempty"`
	// Failed maps indicator name to failure detail for indicators whose fetch errored
	Failed map[string]string `json:"failed,omitempty"`
}

// Len returns number of populated indicators
func (s *EconomicIndicatorSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Indicators)
}
