// Package respond writes the API's JSON responses. Data responses go through
// Cached, which owns conditional GETs (ETag / If-None-Match) and reports
// recency cache hits in X-Cache; everything else is an error or a small
// status object that clients must not cache.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Error codes used across the API.
const (
	CodeBadRequest  = "BAD_REQUEST"
	CodeNotFound    = "NOT_FOUND"
	CodeUpstream    = "UPSTREAM_ERROR"
	CodeInternal    = "INTERNAL_ERROR"
	CodeRateLimited = "RATE_LIMITED"
)

// ErrorResponse is the standard error shape for all API errors.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Detail  string `json:"detail,omitempty"`
	} `json:"error"`
}

// Cached serves a serialized data response. The body's ETag is compared with
// If-None-Match and a 304 is sent on a match. hit reports whether data came
// from the recency cache rather than a fresh upstream fetch; clients may
// reuse the body for ttl and serve it stale for half as long again.
func Cached(w http.ResponseWriter, r *http.Request, data []byte, ttl time.Duration, hit bool) {
	tag := etag(data)
	h := w.Header()
	h.Set("ETag", tag)
	h.Set("Vary", "Accept-Encoding")
	h.Set("X-Cache", cacheStatus(hit))
	maxAge := int(ttl.Seconds())
	h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", maxAge, maxAge/2))

	if matchETag(r.Header.Get("If-None-Match"), tag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	h.Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Encoded marshals v and serves it through Cached as a fresh response.
func Encoded(w http.ResponseWriter, r *http.Request, v any, ttl time.Duration) ([]byte, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		Error(w, http.StatusInternalServerError, CodeInternal, "Failed to encode response", err.Error())
		return nil, false
	}
	Cached(w, r, data, ttl, false)
	return data, true
}

// Status writes a small uncached JSON object, used by health and info
// endpoints.
func Status(w http.ResponseWriter, status int, v any) {
	writeUncached(w, status, v)
}

// Error sends a structured JSON error. detail may be empty.
func Error(w http.ResponseWriter, status int, code, message, detail string) {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Detail = detail
	writeUncached(w, status, resp)
}

func writeUncached(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func cacheStatus(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
