package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/monsters/internal/api/respond"
	"github.com/albapepper/monsters/internal/dex"
	"github.com/albapepper/monsters/internal/moveset"
	"github.com/albapepper/monsters/internal/species"
)

// DexListResponse is the body of GET /pokemon.
type DexListResponse struct {
	Count   int                `json:"count"`
	Sort    species.SortKey    `json:"sort"`
	Dir     string             `json:"dir"`
	Pokemon []species.Fragment `json:"pokemon"`
}

// MovesetResponse is the body of GET /pokemon/{key}/moves.
type MovesetResponse struct {
	Key   string          `json:"key"`
	Name  string          `json:"name"`
	Moves moveset.Moveset `json:"moves"`
}

// ListPokemon serves the dex listing.
// @Summary Dex listing
// @Description Lists every catalogued creature with its attacker profile, sorted by dex number, name, effective total or base total.
// @Tags pokemon
// @Produce json
// @Param sort query string false "Sort key" Enums(dex, name, effective, base)
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} DexListResponse
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /pokemon [get]
func (h *Handler) ListPokemon(w http.ResponseWriter, r *http.Request) {
	sortKey, err := species.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, respond.CodeBadRequest, "Invalid sort key", err.Error())
		return
	}
	dir := strings.ToLower(r.URL.Query().Get("dir"))
	switch dir {
	case "":
		dir = "asc"
	case "asc", "desc":
	default:
		respond.Error(w, http.StatusBadRequest, respond.CodeBadRequest, "dir must be asc or desc", "")
		return
	}

	raw, err := h.gql.AllPokemon(r.Context())
	if err != nil {
		h.writeUpstreamError(w, "getAllPokemon", err)
		return
	}
	list := species.SortFragments(species.NormalizeFragments(raw), sortKey, dir == "desc")

	respond.Encoded(w, r, DexListResponse{Count: len(list), Sort: sortKey, Dir: dir, Pokemon: list}, responseTTL)
}

// GetPokemon serves one species record.
// @Summary Species record
// @Description Returns the normalized species record: abilities, stats, attacker profile, weakness table, sprites. Accepts a catalogue key or a route slug.
// @Tags pokemon
// @Produce json
// @Param key path string true "Catalogue key or route slug" example(bulbasaur)
// @Success 200 {object} species.Species
// @Success 304 "Not modified"
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /pokemon/{key} [get]
func (h *Handler) GetPokemon(w http.ResponseWriter, r *http.Request) {
	key, name, ok := resolvePokemon(w, r)
	if !ok {
		return
	}

	cacheKey := "pokemon:" + key
	if data, hit := h.recent.Get(r.Context(), cacheKey); hit {
		respond.Cached(w, r, []byte(data), responseTTL, true)
		return
	}

	payload, err := h.gql.Pokemon(r.Context(), key)
	if err != nil {
		h.writeUpstreamError(w, "getPokemon", err)
		return
	}
	if data, ok := respond.Encoded(w, r, species.Normalize(payload, name), responseTTL); ok {
		h.recent.Set(r.Context(), cacheKey, string(data))
	}
}

// GetMoves serves a creature's moves by generation.
// @Summary Moveset by generation
// @Description Merges the learnsets of the creature and its base evolution. Each generation lists a move once, with the highest-priority learn method (level-up, machine, tutor, egg).
// @Tags pokemon
// @Produce json
// @Param key path string true "Catalogue key or route slug" example(ivysaur)
// @Success 200 {object} MovesetResponse
// @Success 304 "Not modified"
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /pokemon/{key}/moves [get]
func (h *Handler) GetMoves(w http.ResponseWriter, r *http.Request) {
	key, name, ok := resolvePokemon(w, r)
	if !ok {
		return
	}

	cacheKey := "moves:" + key
	if data, hit := h.recent.Get(r.Context(), cacheKey); hit {
		respond.Cached(w, r, []byte(data), responseTTL, true)
		return
	}

	res := h.moves.Aggregate(r.Context(), key, false)
	switch res.Status {
	case moveset.StatusSuccess:
	case moveset.StatusNotFound:
		respond.Error(w, http.StatusNotFound, respond.CodeNotFound, "Unknown pokemon", res.Error)
		return
	default:
		h.logger.Warn("Moveset aggregation failed", "key", key, "error", res.Error)
		respond.Error(w, http.StatusBadGateway, respond.CodeUpstream, "Failed to fetch learnsets", res.Error)
		return
	}

	if data, ok := respond.Encoded(w, r, MovesetResponse{Key: key, Name: name, Moves: res.Moves}, responseTTL); ok {
		h.recent.Set(r.Context(), cacheKey, string(data))
	}
}

// GetMove serves one move's details.
// @Summary Move details
// @Description Returns move details. Accuracy comes from the local move table. Accepts keys with or without dashes.
// @Tags moves
// @Produce json
// @Param key path string true "Move key" example(vinewhip)
// @Success 200 {object} species.Move
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /moves/{key} [get]
func (h *Handler) GetMove(w http.ResponseWriter, r *http.Request) {
	key := dex.MoveKeyFromName(chi.URLParam(r, "key"))
	info, ok := dex.Move(key)
	if !ok {
		respond.Error(w, http.StatusNotFound, respond.CodeNotFound, "Unknown move", "")
		return
	}

	payload, err := h.gql.Move(r.Context(), key)
	if err != nil {
		h.writeUpstreamError(w, "getMove", err)
		return
	}
	respond.Encoded(w, r, species.NormalizeMove(key, info.Accuracy, payload), responseTTL)
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// resolvePokemon maps the {key} path parameter to a catalogue key, writing a
// 404 when it cannot.
func resolvePokemon(w http.ResponseWriter, r *http.Request) (key, name string, ok bool) {
	key, ok = dex.LookupRoute(chi.URLParam(r, "key"))
	if !ok {
		respond.Error(w, http.StatusNotFound, respond.CodeNotFound, "Unknown pokemon", "")
		return "", "", false
	}
	name, _ = dex.PokemonName(key)
	return key, name, true
}

func (h *Handler) writeUpstreamError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, dex.ErrUnknownPokemon) || errors.Is(err, dex.ErrUnknownMove) {
		respond.Error(w, http.StatusNotFound, respond.CodeNotFound, "Not found", err.Error())
		return
	}
	h.logger.Warn("Upstream request failed", "op", op, "error", err)
	respond.Error(w, http.StatusBadGateway, respond.CodeUpstream, "Upstream request failed", err.Error())
}
