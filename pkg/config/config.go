// Package config loads the application configuration from environment
// variables, with optional .env support for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string

	// Server
	Port         string
	GinMode      string
	EnforceHTTPS bool

	// Store
	DatabasePath   string // sqlite file, used when DatabaseURL is empty
	DatabaseURL    string // postgres connection string
	MigrationsPath string

	// Sessions
	JWTSecret     string
	TokenTTL      time.Duration
	TokenCacheTTL time.Duration
	RedisURL      string // optional token-cache backend

	// Telemetry
	OTLPEndpoint string
	MetricsPort  string

	// Hardening
	RateLimitEnabled bool
	CORSOrigin       string
}

// Load reads configuration from the environment. A .env file is honored when
// present and silently skipped otherwise.
func Load() *Config {
	godotenv.Load()

	return &Config{
		ServiceName:    getEnv("SERVICE_NAME", "react-todo-app"),
		ServiceVersion: getEnv("SERVICE_VERSION", "1.0.0"),
		Environment:    getEnv("APP_ENV", "development"),

		Port:         getEnv("PORT", "3002"),
		GinMode:      getEnv("GIN_MODE", ""),
		EnforceHTTPS: getEnvBool("ENFORCE_HTTPS", false),

		DatabasePath:   getEnv("DATABASE_PATH", "database.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "db/migrations"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTL:      getEnvDuration("TOKEN_TTL", 3*time.Hour),
		TokenCacheTTL: getEnvDuration("TOKEN_CACHE_TTL", time.Minute),
		RedisURL:      getEnv("REDIS_URL", ""),

		OTLPEndpoint: getEnv("OTLP_ENDPOINT", "localhost:4317"),
		MetricsPort:  getEnv("METRICS_PORT", "9091"),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		CORSOrigin:       getEnv("CORS_ORIGIN", "*"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)

	if value == "" {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)

	if err != nil {
		return fallback
	}

	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)

	if value == "" {
		return fallback
	}

	parsed, err := time.ParseDuration(value)

	if err != nil {
		return fallback
	}

	return parsed
}
