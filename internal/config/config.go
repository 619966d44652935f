package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string // debug, info, warn, error

	// Server
	ServerAddr string
	BaseURL    string
	ViewsDir   string
	StaticDir  string

	// Database: postgres:// URL or sqlite:// path
	DatabaseURL string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// CORS
	CORSOrigins string // Comma-separated allowed origins for the JSON API

	// Rate limiting
	RateLimitPerMinute int
	RedisURL           string // Shared limiter storage; in-memory when empty

	// Naver blog search
	NaverClientID     string
	NaverClientSecret string

	// Chart ingestion
	ChartURL             string
	FetchTimeout         time.Duration
	ChartRefreshSchedule string // cron spec, e.g. "@every 1h"; empty disables
	ChartRefreshOnStart  bool

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Melon Rank"
	SiteTagline string // env: SITE_TAGLINE
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		ViewsDir:    getEnv("VIEWS_DIR", "./views"),
		StaticDir:   getEnv("STATIC_DIR", "./static"),
		DatabaseURL: getEnv("DATABASE_URL", "sqlite://search_rank.db"),

		TLSEnabled:  getEnv("TLS_ENABLED", "") != "",
		TLSCertFile: getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:  getEnv("TLS_KEY_FILE", ""),

		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		RedisURL:           getEnv("REDIS_URL", ""),

		NaverClientID:     strings.TrimSpace(getEnv("NAVER_CLIENT_ID", "")),
		NaverClientSecret: strings.TrimSpace(getEnv("NAVER_CLIENT_SECRET", "")),

		ChartURL:             getEnv("CHART_URL", "https://www.melon.com/chart/"),
		FetchTimeout:         getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		ChartRefreshSchedule: getEnv("CHART_REFRESH_SCHEDULE", ""),
		ChartRefreshOnStart:  getEnv("CHART_REFRESH_ON_START", "") != "",

		SiteTitle:   getEnv("SITE_TITLE", "Melon Rank"),
		SiteTagline: getEnv("SITE_TAGLINE", "Search trends and the Melon top 100"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer setting", "key", key, "value", value)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Warn("ignoring invalid duration setting", "key", key, "value", value)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
