package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_URL", "API_PORT", "PORT", "GRAPHQL_URL", "POKEAPI_URL", "CACHE_CAPACITY", "CACHE_NAME"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HasDatabase() {
		t.Error("no database should be configured by default")
	}
	if cfg.APIPort != 8000 || cfg.Addr() != "0.0.0.0:8000" {
		t.Errorf("addr = %s", cfg.Addr())
	}
	if cfg.GraphQLURL != DefaultGraphQLURL || cfg.PokeAPIURL != DefaultPokeAPIURL {
		t.Errorf("upstreams = %s, %s", cfg.GraphQLURL, cfg.PokeAPIURL)
	}
	if cfg.CacheName != "lru-cache" || cfg.CacheCapacity != 10 {
		t.Errorf("cache = %s/%d", cfg.CacheName, cfg.CacheCapacity)
	}
	if cfg.UpstreamTimeout != 15*time.Second {
		t.Errorf("timeout = %v", cfg.UpstreamTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_PORT", "")
	t.Setenv("PORT", "9090")
	t.Setenv("POKEAPI_URL", "http://localhost:1234/api/v2/")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("DEBUG", "not-a-bool")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIPort != 9090 {
		t.Errorf("port = %d, want PORT fallback", cfg.APIPort)
	}
	if cfg.PokeAPIURL != "http://localhost:1234/api/v2" {
		t.Errorf("pokeapi url = %q, want trailing slash trimmed", cfg.PokeAPIURL)
	}
	if len(cfg.CORSAllowOrigins) != 2 || cfg.CORSAllowOrigins[1] != "https://b.example" {
		t.Errorf("origins = %v", cfg.CORSAllowOrigins)
	}
	if cfg.RateLimitEnabled || cfg.Debug {
		t.Errorf("rate limit = %v, debug = %v", cfg.RateLimitEnabled, cfg.Debug)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := map[string]string{
		"GRAPHQL_URL":                  "not a url",
		"CACHE_CAPACITY":               "-1",
		"UPSTREAM_REQUESTS_PER_MINUTE": "0",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Errorf("%s=%q should fail validation", key, value)
			}
		})
	}
}
