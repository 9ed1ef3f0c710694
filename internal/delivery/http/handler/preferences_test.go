package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pesokrava/storefront/internal/domain"
)

func TestPreferencesHandler_GetDefaults(t *testing.T) {
	f := newFixture(t)

	w := serve(f.preferences.Get, http.MethodGet, "/api/v1/session/preferences", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	prefs := decodeData[domain.Preferences](t, w)
	assert.Equal(t, domain.Preferences{Locale: domain.LocaleEnglish, Currency: domain.CurrencyUSD}, prefs)
}

func TestPreferencesHandler_Update(t *testing.T) {
	f := newFixture(t)

	w := serve(f.preferences.Update, http.MethodPut, "/api/v1/session/preferences",
		UpdatePreferencesRequest{Locale: "Deutsch", Currency: "EUR"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.Preferences{Locale: domain.LocaleGerman, Currency: domain.CurrencyEUR}, decodeData[domain.Preferences](t, w))

	w = serve(f.preferences.Get, http.MethodGet, "/api/v1/session/preferences", nil, nil)
	assert.Equal(t, domain.Preferences{Locale: domain.LocaleGerman, Currency: domain.CurrencyEUR}, decodeData[domain.Preferences](t, w))
}

func TestPreferencesHandler_Update_PartialKeepsOtherField(t *testing.T) {
	f := newFixture(t)
	serve(f.preferences.Update, http.MethodPut, "/api/v1/session/preferences", UpdatePreferencesRequest{Currency: "GBP"}, nil)

	w := serve(f.preferences.Update, http.MethodPut, "/api/v1/session/preferences", UpdatePreferencesRequest{Locale: "fr-CH"}, nil)

	assert.Equal(t, domain.Preferences{Locale: domain.LocaleFrench, Currency: domain.CurrencyGBP}, decodeData[domain.Preferences](t, w))
}

func TestPreferencesHandler_Update_Errors(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{"invalid json", "invalid json"},
		{"unsupported currency", UpdatePreferencesRequest{Currency: "JPY"}},
		{"malformed currency", UpdatePreferencesRequest{Currency: "DOLLARS"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			w := serve(f.preferences.Update, http.MethodPut, "/api/v1/session/preferences", tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
