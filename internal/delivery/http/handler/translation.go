package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Pesokrava/storefront/internal/delivery/http/response"
	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
	"github.com/Pesokrava/storefront/internal/usecase/i18n"
	"github.com/Pesokrava/storefront/internal/usecase/session"
	"github.com/Pesokrava/storefront/internal/worker"
)

// TranslationHandler serves storefront strings and the announcement bar
type TranslationHandler struct {
	translator *i18n.Translator
	rotator    *worker.Rotator
	preferencesReader
}

// NewTranslationHandler creates a new translation handler
func NewTranslationHandler(
	translator *i18n.Translator,
	rotator *worker.Rotator,
	prefs *session.Service,
	log *logger.Logger,
) *TranslationHandler {
	return &TranslationHandler{
		translator:        translator,
		rotator:           rotator,
		preferencesReader: preferencesReader{prefs: prefs, logger: log},
	}
}

// BundleResponse holds every message for one locale
type BundleResponse struct {
	Locale   domain.Locale     `json:"locale"`
	Messages map[string]string `json:"messages"`
}

// MessageResponse is a single translated message
type MessageResponse struct {
	Key    string        `json:"key"`
	Locale domain.Locale `json:"locale"`
	Value  string        `json:"value"`
	Found  bool          `json:"found"`
}

// AnnouncementResponse is the message currently shown in the announcement bar
type AnnouncementResponse struct {
	Index   int           `json:"index"`
	Total   int           `json:"total"`
	Key     string        `json:"key"`
	Locale  domain.Locale `json:"locale"`
	Message string        `json:"message"`
}

// Bundle handles GET /api/v1/translations
// @Summary Get all messages for a locale
// @Description Locale defaults to the session preference. Missing entries fall back to English.
// @Tags Translations
// @Produce json
// @Param locale query string false "Locale (en, fr, de or a language name)"
// @Param X-Session-ID header string false "Browsing session ID"
// @Success 200 {object} map[string]interface{} "Message bundle"
// @Router /translations [get]
func (h *TranslationHandler) Bundle(w http.ResponseWriter, r *http.Request) {
	locale := h.preferences(r).Locale

	response.Success(w, BundleResponse{
		Locale:   locale,
		Messages: h.translator.Bundle(locale),
	})
}

// Get handles GET /api/v1/translations/:key
// @Summary Translate one key
// @Description Unknown keys are returned unchanged with found=false
// @Tags Translations
// @Produce json
// @Param key path string true "Message key"
// @Param locale query string false "Locale (en, fr, de or a language name)"
// @Param X-Session-ID header string false "Browsing session ID"
// @Success 200 {object} map[string]interface{} "Translated message"
// @Router /translations/{key} [get]
func (h *TranslationHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	locale := h.preferences(r).Locale

	response.Success(w, MessageResponse{
		Key:    key,
		Locale: locale,
		Value:  h.translator.Translate(key, locale),
		Found:  h.translator.Has(key),
	})
}

// CurrentAnnouncement handles GET /api/v1/announcements/current
// @Summary Get the current announcement
// @Description The announcement bar rotates on a fixed interval
// @Tags Translations
// @Produce json
// @Param locale query string false "Locale (en, fr, de or a language name)"
// @Param X-Session-ID header string false "Browsing session ID"
// @Success 200 {object} map[string]interface{} "Current announcement"
// @Router /announcements/current [get]
func (h *TranslationHandler) CurrentAnnouncement(w http.ResponseWriter, r *http.Request) {
	locale := h.preferences(r).Locale
	index := h.rotator.Current()
	key := i18n.AnnouncementKeys[index%len(i18n.AnnouncementKeys)]

	response.Success(w, AnnouncementResponse{
		Index:   index,
		Total:   len(i18n.AnnouncementKeys),
		Key:     key,
		Locale:  locale,
		Message: h.translator.Translate(key, locale),
	})
}
