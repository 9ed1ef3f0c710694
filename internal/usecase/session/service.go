package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
	"github.com/Pesokrava/storefront/internal/usecase/i18n"
)

// Update is a partial change to preferences; empty fields are left as they are
type Update struct {
	Locale   string `json:"locale"`
	Currency string `json:"currency"`
}

// Service stores display preferences per browsing session
type Service struct {
	store    domain.KeyValueStore
	defaults domain.Preferences
	ttl      time.Duration
	logger   *logger.Logger
}

// NewService creates a new preferences service
func NewService(store domain.KeyValueStore, defaults domain.Preferences, ttl time.Duration, log *logger.Logger) *Service {
	return &Service{
		store:    store,
		defaults: defaults,
		ttl:      ttl,
		logger:   log,
	}
}

// Defaults returns the preferences of a session that never changed them
func (s *Service) Defaults() domain.Preferences {
	return s.defaults
}

func prefsKey(sessionID string) string {
	return "prefs:" + sessionID
}

// Get returns the session's preferences, or the configured defaults when none are stored
func (s *Service) Get(ctx context.Context, sessionID string) (domain.Preferences, error) {
	data, err := s.store.Get(ctx, prefsKey(sessionID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return s.defaults, nil
		}
		s.logger.Error("Failed to load preferences", err)
		return domain.Preferences{}, err
	}

	prefs := s.defaults
	if err := json.Unmarshal(data, &prefs); err != nil {
		s.logger.WithFields(map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Discarding unreadable preferences")
		return s.defaults, nil
	}

	return s.sanitize(prefs), nil
}

// Update applies a change. Locales go through ParseLocale; unknown currencies are rejected.
func (s *Service) Update(ctx context.Context, sessionID string, update Update) (domain.Preferences, error) {
	prefs, err := s.Get(ctx, sessionID)
	if err != nil {
		return domain.Preferences{}, err
	}

	if update.Locale != "" {
		prefs.Locale = i18n.ParseLocale(update.Locale)
	}
	if update.Currency != "" {
		currency, ok := domain.ParseCurrency(update.Currency)
		if !ok {
			return domain.Preferences{}, fmt.Errorf("unsupported currency %q: %w", update.Currency, domain.ErrInvalidInput)
		}
		prefs.Currency = currency
	}

	data, err := json.Marshal(prefs)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := s.store.Set(ctx, prefsKey(sessionID), data, s.ttl); err != nil {
		s.logger.Error("Failed to save preferences", err)
		return domain.Preferences{}, err
	}

	s.logger.WithFields(map[string]interface{}{
		"session_id": sessionID,
		"locale":     prefs.Locale,
		"currency":   prefs.Currency,
	}).Debug("Preferences updated")

	return prefs, nil
}

func (s *Service) sanitize(p domain.Preferences) domain.Preferences {
	if !i18n.IsSupported(p.Locale) {
		p.Locale = s.defaults.Locale
	}
	if _, ok := domain.ParseCurrency(string(p.Currency)); !ok {
		p.Currency = s.defaults.Currency
	}
	return p
}
