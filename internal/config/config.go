package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Default rate limits per variant.
const (
	ProductionRateLimitMax  = 12
	DevelopmentRateLimitMax = 30
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "production" or "development"

	// Server
	ServerAddr   string
	MaxBodyBytes int

	// Rate limiting
	RateLimitMax           int
	RateLimitWindow        time.Duration
	RateLimitSweepInterval time.Duration // in-memory limiter only

	// CORS
	CORSOrigins string // Comma-separated allowed origins; empty disables CORS

	// Optional backends
	RedisURL    string // Shared rate-limit store
	DatabaseURL string // Intent analytics

	// Observability
	MetricsEnabled bool
	LogLevel       string
}

// Load reads the production configuration from environment variables.
func Load() *Config {
	cfg := load("production", ProductionRateLimitMax, "")
	cfg.ServerAddr = getEnv("SERVER_ADDR", ":3000")
	return cfg
}

// LoadDev reads the configuration of the standalone development server, which
// listens on API_PORT, allows a larger burst and answers cross-origin calls.
func LoadDev() *Config {
	cfg := load("development", DevelopmentRateLimitMax, "*")
	cfg.ServerAddr = ":" + getEnv("API_PORT", "8787")
	return cfg
}

func load(env string, rateLimitMax int, corsOrigins string) *Config {
	return &Config{
		Env:                    getEnv("ENV", env),
		MaxBodyBytes:           getEnvInt("MAX_BODY_BYTES", 20_000),
		RateLimitMax:           getEnvInt("RATE_LIMIT_MAX", rateLimitMax),
		RateLimitWindow:        getEnvDuration("RATE_LIMIT_WINDOW", 60*time.Second),
		RateLimitSweepInterval: getEnvDuration("RATE_LIMIT_SWEEP_INTERVAL", 5*time.Minute),
		CORSOrigins:            getEnv("CORS_ORIGINS", corsOrigins),
		RedisURL:               getEnv("REDIS_URL", ""),
		DatabaseURL:            getEnv("DATABASE_URL", ""),
		MetricsEnabled:         getEnvBool("METRICS_ENABLED", true),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// CORSEnabled reports whether cross-origin headers should be served.
func (c *Config) CORSEnabled() bool {
	return len(c.AllowedOrigins()) > 0
}

// AllowedOrigins splits CORSOrigins into trimmed, non-empty entries.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
