package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds slotforge's runtime configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// Storage
	SQLitePath string // path to the optional problem-repository database

	// Engine defaults, overridable per CLI invocation
	DefaultIterations uint32
	DefaultSeed       uint64 // 0 means "use a non-deterministic seed"

	// Circuit breaker tunables for the problem repository
	BreakerMaxRequests      uint32
	BreakerInterval         time.Duration
	BreakerTimeout          time.Duration
	BreakerFailureThreshold uint32
}

// Load loads configuration from environment variables, prefixed SLOTFORGE_.
// A .env file in the working directory is loaded first if present; its
// absence is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("SLOTFORGE_APP_ENV", "development"),
		LogLevel:  getEnv("SLOTFORGE_LOG_LEVEL", "info"),
		LogFormat: getEnv("SLOTFORGE_LOG_FORMAT", "text"),

		SQLitePath: getEnv("SLOTFORGE_SQLITE_PATH", getDefaultSQLitePath()),

		DefaultIterations: uint32(getIntEnv("SLOTFORGE_ITERATIONS", 500)),
		DefaultSeed:       uint64(getIntEnv("SLOTFORGE_SEED", 0)),

		BreakerMaxRequests:      uint32(getIntEnv("SLOTFORGE_BREAKER_MAX_REQUESTS", 3)),
		BreakerInterval:         getDurationEnv("SLOTFORGE_BREAKER_INTERVAL", 10*time.Second),
		BreakerTimeout:          getDurationEnv("SLOTFORGE_BREAKER_TIMEOUT", 30*time.Second),
		BreakerFailureThreshold: uint32(getIntEnv("SLOTFORGE_BREAKER_FAILURE_THRESHOLD", 5)),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getDefaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".slotforge/problems.db"
	}
	return home + "/.slotforge/problems.db"
}
