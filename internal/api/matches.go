package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matchlive/commentary-service/internal/domain"
	"github.com/matchlive/commentary-service/internal/service"
)

type MatchHandler struct {
	matches *service.MatchService
}

func NewMatchHandler(matches *service.MatchService) *MatchHandler {
	return &MatchHandler{matches: matches}
}

func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	match, err := h.matches.Create(r.Context(), req)
	if err != nil {
		respondDomainError(w, err, "failed to create match")
		return
	}

	respondJSON(w, http.StatusCreated, match)
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	matches, err := h.matches.List(r.Context(), limit)
	if err != nil {
		respondDomainError(w, err, "failed to list matches")
		return
	}

	respondJSON(w, http.StatusOK, matches)
}

// parseLimit reads the optional limit query parameter. Absent means 0
// (the service applies the default); anything that is not a positive
// integer is a 400. Values over the maximum are clamped downstream,
// never rejected.
func parseLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return 0, true
	}
	n, err := strconv.Atoi(limitStr)
	if err != nil || n <= 0 {
		respondError(w, http.StatusBadRequest, "limit must be a positive integer")
		return 0, false
	}
	return n, true
}
