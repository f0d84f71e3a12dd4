// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/fetch.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// League registry — the leagues the aggregation layer knows how to serve
// --------------------------------------------------------------------------

type LeagueConfig struct {
	ID            string
	Name          string
	ESPNPath      string // path segment under the ESPN basketball base URL
	CurrentSeason int
}

var LeagueRegistry = map[string]LeagueConfig{
	"nba":   {ID: "nba", Name: "National Basketball Association", ESPNPath: "nba", CurrentSeason: 2025},
	"wnba":  {ID: "wnba", Name: "Women's National Basketball Association", ESPNPath: "wnba", CurrentSeason: 2025},
	"ncaam": {ID: "ncaam", Name: "NCAA Men's Basketball", ESPNPath: "mens-college-basketball", CurrentSeason: 2025},
}

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Inbound rate limiting (per client IP)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// External providers
	BDLAPIKey             string
	BDLRequestsPerMinute  int
	ESPNRequestsPerMinute int
	ProviderTimeout       time.Duration

	// Cache
	CacheEnabled bool

	// Live-game poller
	PollEnabled  bool
	PollInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	return &Config{
		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		BDLAPIKey:             envOr("BALLDONTLIE_API_KEY", ""),
		BDLRequestsPerMinute:  envInt("BDL_REQUESTS_PER_MINUTE", 60),
		ESPNRequestsPerMinute: envInt("ESPN_REQUESTS_PER_MINUTE", 120),
		ProviderTimeout:       time.Duration(envInt("PROVIDER_TIMEOUT_SECONDS", 15)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),

		PollEnabled:  envBool("POLL_ENABLED", false),
		PollInterval: time.Duration(envInt("POLL_INTERVAL_SECONDS", 45)) * time.Second,
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
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
