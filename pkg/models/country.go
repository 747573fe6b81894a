package models

// CountrySubject is a country the aggregator can report on
type CountrySubject struct {
	Code          string   `json:"code" db:"code"` // ISO 3166-1 alpha-3
	Name          string   `json:"name" db:"name"`
	CurrencyCode  string   `json:"currency" db:"currency_code"`
	WorldBankCode string   `json:"wb_code" db:"world_bank_code"` // alpha-2 code used by World Bank
	Latitude      float64  `json:"latitude" db:"latitude"`
	Longitude     float64  `json:"longitude" db:"longitude"`
	Aliases       []string `json:"aliases,omitempty" db:"-"`
}

// Names returns the subject name followed by its aliases
func (c CountrySubject) Names() []string {
	names := make([]string, 0, len(c.Aliases)+1)
	names = append(names, c.Name)
	return append(names, c.Aliases...)
}

// CountryInfo is the reference block embedded into intelligence responses
type CountryInfo struct {
	Name        string     `json:"name"`
	Code        string     `json:"code"`
	Currency    string     `json:"currency"`
	Coordinates [2]float64 `json:"coordinates"` // [longitude, latitude]
}

// Info returns the response-facing reference block
func (c CountrySubject) Info() CountryInfo {
	return CountryInfo{
		Name:        c.Name,
		Code:        c.Code,
		Currency:    c.CurrencyCode,
		Coordinates: [2]float64{c.Longitude, c.Latitude},
	}
}
