// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/monsters.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Upstream defaults
// --------------------------------------------------------------------------

const (
	DefaultGraphQLURL = "https://graphqlpokemon.favware.tech/v8"
	DefaultPokeAPIURL = "https://pokeapi.co/api/v2"
	DefaultCacheName  = "lru-cache"
)

// --------------------------------------------------------------------------
// Config
// --------------------------------------------------------------------------

// Config holds settings populated from environment variables.
type Config struct {
	// Database (optional; the recency cache falls back to memory without it)
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Upstream services
	GraphQLURL                string
	PokeAPIURL                string
	UpstreamRequestsPerMinute int
	UpstreamTimeout           time.Duration

	// Recency cache
	CacheName     string
	CacheCapacity int
	SessionTTL    time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 5),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

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

		GraphQLURL:                strings.TrimRight(envOr("GRAPHQL_URL", DefaultGraphQLURL), "/"),
		PokeAPIURL:                strings.TrimRight(envOr("POKEAPI_URL", DefaultPokeAPIURL), "/"),
		UpstreamRequestsPerMinute: envInt("UPSTREAM_REQUESTS_PER_MINUTE", 120),
		UpstreamTimeout:           time.Duration(envInt("UPSTREAM_TIMEOUT_SECONDS", 15)) * time.Second,

		CacheName:     envOr("CACHE_NAME", DefaultCacheName),
		CacheCapacity: envInt("CACHE_CAPACITY", 10),
		SessionTTL:    time.Duration(envInt("SESSION_TTL_HOURS", 24)) * time.Hour,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	for name, raw := range map[string]string{"GRAPHQL_URL": c.GraphQLURL, "POKEAPI_URL": c.PokeAPIURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
		}
	}
	if c.CacheCapacity <= 0 {
		return fmt.Errorf("CACHE_CAPACITY must be positive, got %d", c.CacheCapacity)
	}
	if c.UpstreamRequestsPerMinute <= 0 {
		return fmt.Errorf("UPSTREAM_REQUESTS_PER_MINUTE must be positive, got %d", c.UpstreamRequestsPerMinute)
	}
	if c.DBPoolMaxConns < c.DBPoolMinConns {
		return fmt.Errorf("DB_POOL_MAX_CONNS (%d) is below DB_POOL_MIN_CONNS (%d)", c.DBPoolMaxConns, c.DBPoolMinConns)
	}
	return nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasDatabase reports whether a database URL was configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// Addr is the listen address for the API server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
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
