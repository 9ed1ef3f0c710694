package domain

import "strings"

// Locale is a supported display language
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleFrench  Locale = "fr"
	LocaleGerman  Locale = "de"
)

// SupportedLocales lists locales in preference order; the first one is the fallback
var SupportedLocales = []Locale{LocaleEnglish, LocaleFrench, LocaleGerman}

// Currency is a display currency. Prices are stored in one canonical unit and never converted.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

var currencySymbols = map[Currency]string{
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyGBP: "£",
}

// ParseCurrency returns the currency for a case-insensitive code
func ParseCurrency(raw string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := currencySymbols[c]
	return c, ok
}

// Symbol returns the display symbol, "$" for unknown currencies
func (c Currency) Symbol() string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return "$"
}

// Preferences is the per-session display state shared by every view
type Preferences struct {
	Locale   Locale   `json:"locale"`
	Currency Currency `json:"currency"`
}
