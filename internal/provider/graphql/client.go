// Package graphql queries the upstream GraphQL service for species, move and
// dex listing data.
//
// Keys are checked against the local catalogue before they are interpolated
// into a query document, so an unknown key never reaches the network.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/albapepper/monsters/internal/dex"
	"github.com/albapepper/monsters/internal/provider"
	"github.com/albapepper/monsters/internal/species"
)

var (
	// ErrQuery is returned when the service answers with a GraphQL error.
	ErrQuery = errors.New("graphql error")
	// ErrNoData is returned when the operation's data field is missing or null.
	ErrNoData = errors.New("graphql response has no data")
)

// Client is the GraphQL HTTP client.
type Client struct {
	httpClient *http.Client
	url        string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a GraphQL client with rate limiting.
func NewClient(url string, requestsPerMinute int, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: provider.NewHTTPClient(timeout),
		url:        url,
		limiter:    provider.NewLimiter(requestsPerMinute),
		logger:     logger,
	}
}

// Pokemon fetches the full species payload for key.
func (c *Client) Pokemon(ctx context.Context, key string) (*species.Payload, error) {
	if _, ok := dex.PokemonName(key); !ok {
		return nil, fmt.Errorf("%s: %w", key, dex.ErrUnknownPokemon)
	}
	var out species.Payload
	if err := c.query(ctx, "getPokemon", fmt.Sprintf(pokemonQuery, key), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Move fetches the move payload for key.
func (c *Client) Move(ctx context.Context, key string) (*species.MovePayload, error) {
	if _, ok := dex.Move(key); !ok {
		return nil, fmt.Errorf("%s: %w", key, dex.ErrUnknownMove)
	}
	var out species.MovePayload
	if err := c.query(ctx, "getMove", fmt.Sprintf(moveQuery, key), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AllPokemon fetches the dex listing payload.
func (c *Client) AllPokemon(ctx context.Context) ([]species.FragmentPayload, error) {
	var out []species.FragmentPayload
	if err := c.query(ctx, "getAllPokemon", allPokemonQuery, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// query posts a query document and decodes data.<op> into dst.
func (c *Client) query(ctx context.Context, op, document string, dst any) error {
	reqBody, err := json.Marshal(map[string]string{"query": document})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	body, err := provider.Do(ctx, c.httpClient, c.limiter, req, op)
	if err != nil {
		return err
	}
	c.logger.Debug("graphql query", "op", op, "bytes", len(body), "duration", time.Since(start).Round(time.Millisecond))

	if !gjson.ValidBytes(body) {
		return fmt.Errorf("%s returned invalid JSON: %s", op, provider.Truncate(body, 200))
	}
	if msg := gjson.GetBytes(body, "errors.0.message"); msg.Exists() {
		return fmt.Errorf("%s: %s: %w", op, msg.String(), ErrQuery)
	}
	data := gjson.GetBytes(body, "data."+op)
	if !data.Exists() || data.Type == gjson.Null {
		return fmt.Errorf("%s: %w", op, ErrNoData)
	}
	if err := json.Unmarshal([]byte(data.Raw), dst); err != nil {
		return fmt.Errorf("decode %s: %w", op, err)
	}
	return nil
}
