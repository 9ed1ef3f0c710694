package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Pesokrava/storefront/internal/config"
	"github.com/Pesokrava/storefront/internal/delivery/events"
	httpDelivery "github.com/Pesokrava/storefront/internal/delivery/http"
	"github.com/Pesokrava/storefront/internal/delivery/http/handler"
	"github.com/Pesokrava/storefront/internal/delivery/http/middleware"
	"github.com/Pesokrava/storefront/internal/domain"
	"github.com/Pesokrava/storefront/internal/pkg/cache"
	"github.com/Pesokrava/storefront/internal/pkg/database"
	"github.com/Pesokrava/storefront/internal/pkg/logger"
	cacheRepo "github.com/Pesokrava/storefront/internal/repository/cache"
	"github.com/Pesokrava/storefront/internal/repository/memory"
	"github.com/Pesokrava/storefront/internal/repository/postgres"
	"github.com/Pesokrava/storefront/internal/usecase/cart"
	"github.com/Pesokrava/storefront/internal/usecase/catalog"
	"github.com/Pesokrava/storefront/internal/usecase/i18n"
	"github.com/Pesokrava/storefront/internal/usecase/session"
	"github.com/Pesokrava/storefront/internal/worker"

	_ "github.com/Pesokrava/storefront/docs"
)

// @title Storefront API
// @version 1.0
// @description Catalog browsing, search, session carts and translations for the storefront.

// @contact.name API Support
// @contact.url http://github.com/Pesokrava/storefront

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @tag.name Products
// @tag.description Catalog filtering, sorting, search and detail view

// @tag.name Cart
// @tag.description Session cart

// @tag.name Session
// @tag.description Display preferences

// @tag.name Translations
// @tag.description Storefront strings and announcements

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env, logger.WithLevel(cfg.LogLevel), logger.WithService("api"))
	appLogger.Info("Starting Storefront API...")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var productRepo domain.ProductRepository
	switch cfg.Catalog.Source {
	case "postgres":
		appLogger.Info("Connecting to PostgreSQL...")
		db, err := database.WaitForDB(ctx, cfg, appLogger, 10, 2*time.Second)
		if err != nil {
			appLogger.Fatal("Failed to connect to database", err)
		}
		defer db.Close()

		if err := database.RunMigrations(ctx, db, cfg.Database.MigrationsDir); err != nil {
			appLogger.Fatal("Failed to run migrations", err)
		}
		appLogger.Info("Connected to PostgreSQL successfully")

		productRepo = postgres.NewProductRepository(db)
	default:
		productRepo = memory.NewSeedProductRepository()
	}

	var store domain.KeyValueStore
	switch cfg.Cache.Store {
	case "redis":
		appLogger.Info("Connecting to Redis...")
		redisClient, err := cache.WaitForRedis(ctx, cfg, appLogger, 10, 2*time.Second)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", err)
		}
		defer redisClient.Close()
		appLogger.Info("Connected to Redis successfully")

		store = cacheRepo.NewRedisStore(redisClient, "storefront:")
	default:
		store = memory.NewStore()
	}

	var publisher cart.EventPublisher
	if cfg.NATS.Enabled {
		appLogger.Info("Connecting to NATS...")
		natsPublisher, err := events.NewPublisher(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to create NATS publisher", err)
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	defaults := domain.Preferences{Locale: i18n.ParseLocale(cfg.I18n.DefaultLocale)}
	if currency, ok := domain.ParseCurrency(cfg.I18n.DefaultCurrency); ok {
		defaults.Currency = currency
	} else {
		appLogger.Warnf("Unsupported DEFAULT_CURRENCY %q, using USD", cfg.I18n.DefaultCurrency)
		defaults.Currency = domain.CurrencyUSD
	}

	translator := i18n.NewTranslator(appLogger)
	catalogService := catalog.NewService(productRepo, cfg.Catalog.MaxPrice, appLogger)
	cartService := cart.NewService(store, productRepo, publisher, cfg.Cache.CartTTL, appLogger)
	prefsService := session.NewService(store, defaults, cfg.Cache.PrefsTTL, appLogger)
	rotator := worker.NewRotator(len(i18n.AnnouncementKeys), cfg.Announcements.Interval, appLogger)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	router := httpDelivery.NewRouter(httpDelivery.Handlers{
		Products:     handler.NewProductHandler(catalogService, cartService, prefsService, translator, appLogger),
		Carts:        handler.NewCartHandler(cartService, prefsService, translator, appLogger),
		Preferences:  handler.NewPreferencesHandler(prefsService, appLogger),
		Translations: handler.NewTranslationHandler(translator, rotator, prefsService, appLogger),
	}, limiter, cfg, appLogger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return rotator.Run(gctx)
	})

	g.Go(func() error {
		return limiter.Cleanup(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		appLogger.Fatal("Server stopped with error", err)
	}

	appLogger.Info("Server stopped gracefully")
}
