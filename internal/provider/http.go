// Package provider holds the HTTP plumbing shared by the upstream clients.
package provider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ErrStatus wraps non-2xx upstream responses.
var ErrStatus = errors.New("unexpected upstream status")

// NewLimiter builds a token bucket allowing requestsPerMinute with a burst
// of one.
func NewLimiter(requestsPerMinute int) *rate.Limiter {
	rps := float64(requestsPerMinute) / 60.0
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// NewHTTPClient returns a client with the given overall request timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// Do waits for the limiter, sends req and returns the body of a 2xx
// response. name labels errors.
func Do(ctx context.Context, client *http.Client, limiter *rate.Limiter, req *http.Request, name string) ([]byte, error) {
	if err := limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s returned %d: %s: %w", name, resp.StatusCode, Truncate(body, 200), ErrStatus)
	}
	return body, nil
}

// Truncate returns a truncated string representation for error messages.
func Truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
