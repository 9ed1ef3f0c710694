package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Pesokrava/storefront/internal/config"
	"github.com/Pesokrava/storefront/internal/delivery/http/handler"
	"github.com/Pesokrava/storefront/internal/delivery/http/middleware"
	"github.com/Pesokrava/storefront/internal/delivery/http/response"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
)

const requestTimeout = 30 * time.Second

// Handlers groups the API handlers mounted by the router
type Handlers struct {
	Products     *handler.ProductHandler
	Carts        *handler.CartHandler
	Preferences  *handler.PreferencesHandler
	Translations *handler.TranslationHandler
}

// Router holds HTTP handlers and router configuration
type Router struct {
	handlers Handlers
	limiter  *middleware.RateLimiter
	logger   *logger.Logger
	cfg      *config.Config
}

// NewRouter creates a new HTTP router. limiter may be nil to disable rate limiting.
func NewRouter(handlers Handlers, limiter *middleware.RateLimiter, cfg *config.Config, log *logger.Logger) *Router {
	return &Router{
		handlers: handlers,
		limiter:  limiter,
		logger:   log,
		cfg:      cfg,
	}
}

// Setup configures and returns the HTTP router
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.SessionHeader},
		ExposedHeaders:   []string{middleware.SessionHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthCheck)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		if rt.limiter != nil {
			r.Use(rt.limiter.Handler)
		}
		r.Use(middleware.Session())

		r.Route("/products", func(r chi.Router) {
			r.Get("/", rt.handlers.Products.List)
			r.Get("/filters", rt.handlers.Products.Filters)
			r.Get("/{id}", rt.handlers.Products.GetByID)
			r.Post("/{id}/cart", rt.handlers.Products.AddToCart)
		})
		r.Get("/search", rt.handlers.Products.Search)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", rt.handlers.Carts.Get)
			r.Delete("/", rt.handlers.Carts.Clear)
			r.Post("/items", rt.handlers.Carts.AddItem)
			r.Put("/items/{id}", rt.handlers.Carts.UpdateQuantity)
			r.Delete("/items/{id}", rt.handlers.Carts.Remove)
		})

		r.Get("/session/preferences", rt.handlers.Preferences.Get)
		r.Put("/session/preferences", rt.handlers.Preferences.Update)

		r.Get("/translations", rt.handlers.Translations.Bundle)
		r.Get("/translations/{key}", rt.handlers.Translations.Get)
		r.Get("/announcements/current", rt.handlers.Translations.CurrentAnnouncement)
	})

	return r
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
