// Package config provides configuration management for the menu service.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds the complete application configuration.
type Config struct {
	Server     ServerConfig
	Cache      CacheConfig
	Generation GenerationConfig
	Database   DatabaseConfig
	Redis      RedisConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port      string
	RateLimit int
	// GenerateRateLimit is the per-client budget for menu generation within
	// RateWindow.
	GenerateRateLimit int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	LogLevel          string
	PrettyLogs        bool
}

// CacheConfig holds cache configuration.
type CacheConfig struct {
	Size           int
	TTL            time.Duration
	CatalogTTL     time.Duration
	IdempotencyTTL time.Duration
}

// GenerationConfig controls how candidate dishes are ranked.
type GenerationConfig struct {
	// Ranking is "fridge" (default) or "shuffle".
	Ranking string
	// Seed fixes the shuffle source when non-zero.
	Seed int64
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	// SeedCatalog inserts the default dishes when the catalog is empty.
	SeedCatalog bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// RedisConfig holds the optional Redis connection used for idempotency keys.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// Load creates a Config from environment variables. A .env file in the
// working directory is read first when present; real environment variables
// take precedence over it.
func Load() Config {
	loadDotEnv(".env")

	return Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			RateLimit:         getEnvInt("RATE_LIMIT", 100),
			GenerateRateLimit: getEnvInt("GENERATE_RATE_LIMIT", 20),
			RateWindow:        getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:       parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:       getEnv("SWAGGER_USER", ""),
			SwaggerPass:       getEnv("SWAGGER_PASS", ""),
			LogLevel:          getEnv("LOG_LEVEL", "info"),
			PrettyLogs:        getEnvBool("LOG_PRETTY", false),
		},
		Cache: CacheConfig{
			Size:           getEnvInt("CACHE_SIZE", 1000),
			TTL:            getEnvDuration("CACHE_TTL", 5*time.Minute),
			CatalogTTL:     getEnvDuration("CATALOG_CACHE_TTL", 30*time.Second),
			IdempotencyTTL: getEnvDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		},
		Generation: GenerationConfig{
			Ranking: strings.ToLower(getEnv("GENERATION_RANKING", "fridge")),
			Seed:    getEnvInt64("GENERATION_SEED", 0),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "menu_service"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			SeedCatalog:                    getEnvBool("SEED_CATALOG", true),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
	}
}

func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("path", path).Msg("Failed to load env file")
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
