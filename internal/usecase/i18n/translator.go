package i18n

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
)

// FallbackLocale is used when a message has no entry for the requested locale
const FallbackLocale = domain.LocaleEnglish

// languageNames maps the storefront's language picker labels onto locales
var languageNames = map[string]domain.Locale{
	"english":  domain.LocaleEnglish,
	"français": domain.LocaleFrench,
	"francais": domain.LocaleFrench,
	"deutsch":  domain.LocaleGerman,
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
	language.German,
})

// ParseLocale resolves an ISO tag ("de", "fr-CH", "en-GB") or a picker label ("Deutsch")
// to a supported locale. Anything unrecognized resolves to English.
func ParseLocale(raw string) domain.Locale {
	value := strings.TrimSpace(raw)
	if value == "" {
		return FallbackLocale
	}

	if l, ok := languageNames[strings.ToLower(value)]; ok {
		return l
	}

	tag, err := language.Parse(value)
	if err != nil {
		return FallbackLocale
	}

	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return FallbackLocale
	}
	return domain.SupportedLocales[idx]
}

// IsSupported reports whether l is one of the storefront locales
func IsSupported(l domain.Locale) bool {
	for _, s := range domain.SupportedLocales {
		if s == l {
			return true
		}
	}
	return false
}

// Translator looks up storefront strings. The table is static and safe for concurrent use.
type Translator struct {
	logger *logger.Logger
}

// NewTranslator creates a translator over the built-in message table
func NewTranslator(log *logger.Logger) *Translator {
	return &Translator{logger: log}
}

// Translate returns the message for key in locale.
// A locale without an entry falls back to English; an unknown key is returned unchanged.
func (t *Translator) Translate(key string, locale domain.Locale) string {
	entry, ok := messages[key]
	if !ok {
		t.logger.WithFields(map[string]interface{}{
			"key":    key,
			"locale": locale,
		}).Warn("Translation missing for key")
		return key
	}

	if value, ok := entry[locale]; ok {
		return value
	}
	return entry[FallbackLocale]
}

// Has reports whether key exists in the table
func (t *Translator) Has(key string) bool {
	_, ok := messages[key]
	return ok
}

// Bundle returns every message resolved for locale
func (t *Translator) Bundle(locale domain.Locale) map[string]string {
	keys := t.Keys()
	bundle := make(map[string]string, len(keys))
	for _, key := range keys {
		bundle[key] = t.Translate(key, locale)
	}
	return bundle
}

// Keys returns all message keys in sorted order
func (t *Translator) Keys() []string {
	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// FormatPrice renders amount with the currency symbol and two decimals. No conversion is applied.
func FormatPrice(amount decimal.Decimal, currency domain.Currency) string {
	return currency.Symbol() + amount.StringFixed(2)
}
