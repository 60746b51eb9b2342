package models

// SupportedCountry is the ISO 3166-1 alpha-2 code of a country the demo can
// onboard connected accounts in.
type SupportedCountry string

// Enumeration of supported countries
const (
	US SupportedCountry = "US"
	BE SupportedCountry = "BE"
	DE SupportedCountry = "DE"
	ES SupportedCountry = "ES"
	FI SupportedCountry = "FI"
	FR SupportedCountry = "FR"
	LU SupportedCountry = "LU"
	NL SupportedCountry = "NL"
	PT SupportedCountry = "PT"
)

// SupportedCountries lists every supported country exactly once
var SupportedCountries = []SupportedCountry{US, BE, DE, ES, FI, FR, LU, NL, PT}

// FakeAddress is a city/postal-code pair that passes Stripe test-mode
// verification for its country
type FakeAddress struct {
	City       string
	PostalCode string
}

// CountryConfig holds the static per-country settlement currency and default
// fake address
type CountryConfig struct {
	Currency    string
	FakeAddress FakeAddress
}

// CountryConfigMap maps every supported country to its config. The map is a
// total function over SupportedCountries and must never miss a lookup.
var CountryConfigMap = map[SupportedCountry]CountryConfig{
	US: {Currency: "usd", FakeAddress: FakeAddress{City: "New York", PostalCode: "10001"}},
	BE: {Currency: "eur", FakeAddress: FakeAddress{City: "Brussel", PostalCode: "1000"}},
	DE: {Currency: "eur", FakeAddress: FakeAddress{City: "Berlin", PostalCode: "10115"}},
	ES: {Currency: "eur", FakeAddress: FakeAddress{City: "Madrid", PostalCode: "28001"}},
	FI: {Currency: "eur", FakeAddress: FakeAddress{City: "Helsinki", PostalCode: "00100"}},
	FR: {Currency: "eur", FakeAddress: FakeAddress{City: "Paris", PostalCode: "75001"}},
	LU: {Currency: "eur", FakeAddress: FakeAddress{City: "Luxemburg", PostalCode: "1111"}},
	NL: {Currency: "eur", FakeAddress: FakeAddress{City: "Amsterdam", PostalCode: "1008 DG"}},
	PT: {Currency: "eur", FakeAddress: FakeAddress{City: "Lisbon", PostalCode: "1000"}},
}

// IsSupportedCountry reports whether code names a supported country
func IsSupportedCountry(code string) bool {
	_, ok := CountryConfigMap[SupportedCountry(code)]
	return ok
}
