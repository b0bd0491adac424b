// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/injuryctl.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Upstream statistics provider (kenpom)
	KenpomAPIKey  string
	KenpomBaseURL string
	KenpomRPM     int // upstream requests per minute

	// Injury intelligence (optional — empty key disables the module)
	AnthropicAPIKey string
	AnthropicModel  string
	InjuryCacheDir  string
	SeasonYear      int

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool
	StaticDir   string

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Response cache for the stats proxy
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
// KENPOM_API_KEY is required; ANTHROPIC_API_KEY is optional and gates the
// injury intelligence module.
func Load() (*Config, error) {
	apiKey := envOr("KENPOM_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("KENPOM_API_KEY must be set")
	}

	return &Config{
		KenpomAPIKey:  apiKey,
		KenpomBaseURL: envOr("KENPOM_BASE_URL", "https://kenpom.com"),
		KenpomRPM:     envInt("KENPOM_REQUESTS_PER_MINUTE", 60),

		AnthropicAPIKey: envOr("ANTHROPIC_API_KEY", ""),
		AnthropicModel:  envOr("ANTHROPIC_MODEL", "claude-3-haiku-20240307"),
		InjuryCacheDir:  envOr("INJURY_CACHE_DIR", ".injury_cache"),
		SeasonYear:      envInt("SEASON_YEAR", DefaultSeasonYear(time.Now())),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 5001)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),
		StaticDir:   envOr("STATIC_DIR", "static"),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{"*"}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}, nil
}

// InjuryEnabled reports whether the injury intelligence module can run.
func (c *Config) InjuryEnabled() bool {
	return c.AnthropicAPIKey != ""
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DefaultSeasonYear maps a date to the season it belongs to. College seasons
// span the new year and are named for their ending year, so anything from
// August onward counts toward the following calendar year.
func DefaultSeasonYear(now time.Time) int {
	if now.Month() >= time.August {
		return now.Year() + 1
	}
	return now.Year()
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
