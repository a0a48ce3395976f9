package api

import (
	"net/http"

	"github.com/matchlive/commentary-service/internal/broadcast"
	"github.com/matchlive/commentary-service/internal/store"
)

type StatsHandler struct {
	store *store.PostgresStore
	hub   *broadcast.Hub
}

func NewStatsHandler(s *store.PostgresStore, hub *broadcast.Hub) *StatsHandler {
	return &StatsHandler{store: s, hub: hub}
}

// Stats returns aggregate counts plus the number of live stream
// subscribers.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetStats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to get stats")
		return
	}

	type statsResponse struct {
		store.Stats
		LiveSubscribers int `json:"live_subscribers"`
	}

	respondJSON(w, http.StatusOK, statsResponse{
		Stats:           *stats,
		LiveSubscribers: h.hub.TotalSubscribers(),
	})
}
