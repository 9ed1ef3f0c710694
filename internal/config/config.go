package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env           string
	LogLevel      string
	Server        ServerConfig
	Database      DatabaseConfig
	Redis         RedisConfig
	NATS          NATSConfig
	Cache         CacheConfig
	Catalog       CatalogConfig
	I18n          I18nConfig
	Announcements AnnouncementConfig
	Worker        WorkerConfig
	RateLimit     RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// DatabaseConfig holds PostgreSQL configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	MigrationsDir   string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// NATSConfig holds NATS configuration
type NATSConfig struct {
	URL string
	// Enabled turns cart event publishing on in the API
	Enabled bool
}

// CacheConfig holds the key-value store used for carts and preferences
type CacheConfig struct {
	// Store is either "redis" or "memory"
	Store    string
	CartTTL  time.Duration
	PrefsTTL time.Duration
}

// CatalogConfig selects where products are loaded from
type CatalogConfig struct {
	// Source is either "memory" (built-in seed) or "postgres"
	Source   string
	MaxPrice float64
}

// I18nConfig holds the defaults applied to new sessions
type I18nConfig struct {
	DefaultLocale   string
	DefaultCurrency string
}

// AnnouncementConfig controls the announcement carousel
type AnnouncementConfig struct {
	Interval time.Duration
}

// WorkerConfig holds cart snapshot worker settings
type WorkerConfig struct {
	SnapshotDebounce time.Duration
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// Load reads configuration from environment variables and returns a Config struct
func Load() (*Config, error) {
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_READ_TIMEOUT", "10s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "30s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8080")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "storefront")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("MIGRATIONS_DIR", "migrations")

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("NATS_URL", "nats://localhost:4222")
	viper.SetDefault("EVENTS_ENABLED", true)

	viper.SetDefault("KV_STORE", "redis")

	viper.SetDefault("CART_TTL", "720h")
	viper.SetDefault("PREFS_TTL", "720h")

	viper.SetDefault("CATALOG_SOURCE", "memory")
	viper.SetDefault("CATALOG_MAX_PRICE", 500)

	viper.SetDefault("DEFAULT_LOCALE", "en")
	viper.SetDefault("DEFAULT_CURRENCY", "USD")

	viper.SetDefault("ANNOUNCEMENT_INTERVAL", "5s")
	viper.SetDefault("SNAPSHOT_DEBOUNCE", "1s")

	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)

	readTimeout, err := time.ParseDuration(viper.GetString("SERVER_READ_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(viper.GetString("SERVER_WRITE_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_WRITE_TIMEOUT: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(viper.GetString("SERVER_SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_SHUTDOWN_TIMEOUT: %w", err)
	}

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	cartTTL, err := time.ParseDuration(viper.GetString("CART_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid CART_TTL: %w", err)
	}

	prefsTTL, err := time.ParseDuration(viper.GetString("PREFS_TTL"))
	if err != nil {
		return nil, fmt.Errorf("invalid PREFS_TTL: %w", err)
	}

	announcementInterval, err := time.ParseDuration(viper.GetString("ANNOUNCEMENT_INTERVAL"))
	if err != nil {
		return nil, fmt.Errorf("invalid ANNOUNCEMENT_INTERVAL: %w", err)
	}

	snapshotDebounce, err := time.ParseDuration(viper.GetString("SNAPSHOT_DEBOUNCE"))
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_DEBOUNCE: %w", err)
	}

	source := strings.ToLower(viper.GetString("CATALOG_SOURCE"))
	if source != "memory" && source != "postgres" {
		return nil, fmt.Errorf("invalid CATALOG_SOURCE %q: expected memory or postgres", source)
	}

	store := strings.ToLower(viper.GetString("KV_STORE"))
	if store != "redis" && store != "memory" {
		return nil, fmt.Errorf("invalid KV_STORE %q: expected redis or memory", store)
	}

	allowedOriginsStr := viper.GetString("CORS_ALLOWED_ORIGINS")
	allowedOrigins := strings.Split(allowedOriginsStr, ",")
	for i := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(allowedOrigins[i])
	}

	config := &Config{
		Env:      viper.GetString("ENV"),
		LogLevel: viper.GetString("LOG_LEVEL"),
		Server: ServerConfig{
			Port:            viper.GetString("SERVER_PORT"),
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
			AllowedOrigins:  allowedOrigins,
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetString("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
			MigrationsDir:   viper.GetString("MIGRATIONS_DIR"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		NATS: NATSConfig{
			URL:     viper.GetString("NATS_URL"),
			Enabled: viper.GetBool("EVENTS_ENABLED"),
		},
		Cache: CacheConfig{
			Store:    store,
			CartTTL:  cartTTL,
			PrefsTTL: prefsTTL,
		},
		Catalog: CatalogConfig{
			Source:   source,
			MaxPrice: viper.GetFloat64("CATALOG_MAX_PRICE"),
		},
		I18n: I18nConfig{
			DefaultLocale:   viper.GetString("DEFAULT_LOCALE"),
			DefaultCurrency: strings.ToUpper(viper.GetString("DEFAULT_CURRENCY")),
		},
		Announcements: AnnouncementConfig{
			Interval: announcementInterval,
		},
		Worker: WorkerConfig{
			SnapshotDebounce: snapshotDebounce,
		},
		RateLimit: RateLimitConfig{
			RPS:   viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst: viper.GetInt("RATE_LIMIT_BURST"),
		},
	}

	return config, nil
}

// GetDSN returns the PostgreSQL connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
