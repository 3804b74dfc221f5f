// Package pokeapi fetches species learnsets from the REST service.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/albapepper/monsters/internal/moveset"
	"github.com/albapepper/monsters/internal/provider"
)

// Client is the REST learnset client. It satisfies moveset.Fetcher.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a REST client with rate limiting. baseURL has no
// trailing slash, e.g. https://pokeapi.co/api/v2.
func NewClient(baseURL string, requestsPerMinute int, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: provider.NewHTTPClient(timeout),
		baseURL:    baseURL,
		limiter:    provider.NewLimiter(requestsPerMinute),
		logger:     logger,
	}
}

// Learnset fetches /pokemon/{slug}/ and decodes its moves.
func (c *Client) Learnset(ctx context.Context, slug string) (*moveset.Learnset, error) {
	path := "/pokemon/" + url.PathEscape(slug) + "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	body, err := provider.Do(ctx, c.httpClient, c.limiter, req, path)
	if err != nil {
		return nil, err
	}

	var out moveset.Learnset
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode learnset %s: %w", slug, err)
	}
	c.logger.Debug("learnset fetched", "slug", slug, "moves", len(out.Moves), "duration", time.Since(start).Round(time.Millisecond))
	return &out, nil
}
