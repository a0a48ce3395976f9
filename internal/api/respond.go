package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/matchlive/commentary-service/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondDomainError maps the domain error taxonomy onto HTTP status
// codes. Storage failures stay opaque: callers get a generic message,
// the detail goes to logs only.
func respondDomainError(w http.ResponseWriter, err error, storageMessage string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "match not found")
	default:
		respondError(w, http.StatusInternalServerError, storageMessage)
	}
}
