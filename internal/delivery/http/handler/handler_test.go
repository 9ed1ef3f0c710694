package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/Pesokrava/storefront/internal/delivery/http/middleware"
	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
	"github.com/Pesokrava/storefront/internal/repository/memory"
	"github.com/Pesokrava/storefront/internal/usecase/cart"
	"github.com/Pesokrava/storefront/internal/usecase/catalog"
	"github.com/Pesokrava/storefront/internal/usecase/i18n"
	"github.com/Pesokrava/storefront/internal/usecase/session"
	"github.com/Pesokrava/storefront/internal/worker"
)

const testSession = "6f1c2f8e-3b5d-4a57-9a57-0f3c6f0d9b21"

type fixture struct {
	store        *memory.Store
	prefs        *session.Service
	products     *ProductHandler
	carts        *CartHandler
	preferences  *PreferencesHandler
	translations *TranslationHandler
	rotator      *worker.Rotator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logger.New("test")
	store := memory.NewStore()
	repo := memory.NewSeedProductRepository()
	translator := i18n.NewTranslator(log)

	prefs := session.NewService(store, domain.Preferences{Locale: domain.LocaleEnglish, Currency: domain.CurrencyUSD}, time.Hour, log)
	carts := cart.NewService(store, repo, nil, time.Hour, log)
	rotator := worker.NewRotator(len(i18n.AnnouncementKeys), time.Hour, log)

	return &fixture{
		store:        store,
		prefs:        prefs,
		products:     NewProductHandler(catalog.NewService(repo, 500, log), carts, prefs, translator, log),
		carts:        NewCartHandler(carts, prefs, translator, log),
		preferences:  NewPreferencesHandler(prefs, log),
		translations: NewTranslationHandler(translator, rotator, prefs, log),
		rotator:      rotator,
	}
}

// serve runs h as the test session, with chi URL params when given
func serve(h http.HandlerFunc, method, target string, body any, params map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	ctx := middleware.WithSessionID(req.Context(), testSession)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}

	w := httptest.NewRecorder()
	h(w, req.WithContext(ctx))
	return w
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var env envelope[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success)
	return env.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func productIDs(views []ProductView) []int {
	ids := make([]int, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	return ids
}
