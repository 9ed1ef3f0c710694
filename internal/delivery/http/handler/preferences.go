package handler

import (
	"errors"
	"net/http"

	"github.com/Pesokrava/storefront/internal/delivery/http/middleware"
	"github.com/Pesokrava/storefront/internal/delivery/http/request"
	"github.com/Pesokrava/storefront/internal/delivery/http/response"
	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
	"github.com/Pesokrava/storefront/internal/pkg/validator"
	"github.com/Pesokrava/storefront/internal/usecase/session"
)

// PreferencesHandler handles HTTP requests for session display preferences
type PreferencesHandler struct {
	prefs  *session.Service
	logger *logger.Logger
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(prefs *session.Service, log *logger.Logger) *PreferencesHandler {
	return &PreferencesHandler{
		prefs:  prefs,
		logger: log,
	}
}

// UpdatePreferencesRequest represents the request body for changing preferences.
// Empty fields are left unchanged.
type UpdatePreferencesRequest struct {
	Locale   string `json:"locale" validate:"omitempty,max=35"`
	Currency string `json:"currency" validate:"omitempty,currency"`
}

// Get handles GET /api/v1/session/preferences
// @Summary Get display preferences
// @Tags Session
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID"
// @Success 200 {object} map[string]interface{} "Preferences"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session/preferences [get]
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.prefs.Get(r.Context(), middleware.SessionID(r.Context()))
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, prefs)
}

// Update handles PUT /api/v1/session/preferences
// @Summary Change display preferences
// @Description Locale accepts ISO tags or language names and falls back to English. Currency must be USD, EUR or GBP.
// @Tags Session
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID"
// @Param preferences body UpdatePreferencesRequest true "Preference changes"
// @Success 200 {object} map[string]interface{} "Updated preferences"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /session/preferences [put]
func (h *PreferencesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdatePreferencesRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validator.Get().Struct(req); err != nil {
		response.Error(w, http.StatusBadRequest, validator.Message(err))
		return
	}

	prefs, err := h.prefs.Update(r.Context(), middleware.SessionID(r.Context()), session.Update{
		Locale:   req.Locale,
		Currency: req.Currency,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	response.Success(w, prefs)
}

// handleError handles service layer errors and returns appropriate HTTP responses
func (h *PreferencesHandler) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		response.Error(w, http.StatusBadRequest, "Unsupported currency")
	default:
		h.logger.Error("Internal error in preferences handler", err)
		response.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}
