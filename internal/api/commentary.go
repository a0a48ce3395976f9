package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matchlive/commentary-service/internal/domain"
	"github.com/matchlive/commentary-service/internal/service"
)

type CommentaryHandler struct {
	feed *service.CommentaryFeed
}

func NewCommentaryHandler(feed *service.CommentaryFeed) *CommentaryHandler {
	return &CommentaryHandler{feed: feed}
}

func (h *CommentaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")

	var req domain.CreateCommentaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.feed.Create(r.Context(), matchID, req)
	if err != nil {
		respondDomainError(w, err, "failed to create commentary")
		return
	}

	respondJSON(w, http.StatusCreated, event)
}

func (h *CommentaryHandler) List(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")

	limit, ok := parseLimit(w, r)
	if !ok {
		return
	}

	events, err := h.feed.List(r.Context(), matchID, limit)
	if err != nil {
		respondDomainError(w, err, "failed to list commentary")
		return
	}

	respondJSON(w, http.StatusOK, events)
}
