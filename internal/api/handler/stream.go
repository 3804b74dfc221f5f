package handler

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/albapepper/monsters/internal/dex"
	"github.com/albapepper/monsters/internal/moveset"
)

const (
	streamWriteWait = 10 * time.Second
	streamBuffer    = 8
)

// StreamRequest is a client message on the moveset stream.
type StreamRequest struct {
	Key  string `json:"key"`
	Skip bool   `json:"skip"`
}

// StreamMoves upgrades to a websocket that follows the creature most
// recently requested by the client. Each message {"key", "skip"} supersedes
// the previous one; the server pushes a pending state and then the outcome
// of the latest request only.
// @Summary Moveset stream
// @Description Websocket. Send {"key":"ivysaur","skip":false}; receive tracker states {seq, key, skip, status, error, moves}. Superseded requests never produce a terminal state.
// @Tags pokemon
// @Success 101 "Switching protocols"
// @Router /stream/moves [get]
func (h *Handler) StreamMoves(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	tracker := moveset.NewTracker(h.moves, streamBuffer)

	go func() {
		defer tracker.Close()
		for {
			var req StreamRequest
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			key := req.Key
			if resolved, ok := dex.LookupRoute(key); ok {
				key = resolved
			}
			tracker.Request(ctx, key, req.Skip)
		}
	}()

	for state := range tracker.Updates() {
		_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		if err := conn.WriteJSON(state); err != nil {
			h.logger.Debug("Websocket write failed", "error", err)
			return
		}
	}
}

// checkOrigin admits same-host requests, requests without an Origin header
// and the configured CORS origins.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host {
		return true
	}
	if h.cfg == nil {
		return false
	}
	return slices.Contains(h.cfg.CORSAllowOrigins, "*") || slices.Contains(h.cfg.CORSAllowOrigins, origin)
}
