package domain

import (
	"time"
)

// Commentary types accepted from callers.
const (
	CommentaryTypeGoal         = "goal"
	CommentaryTypeCard         = "card"
	CommentaryTypeSubstitution = "substitution"
	CommentaryTypeInfo         = "info"
	CommentaryTypeDefault      = "commentary"
)

const maxCommentaryTextLen = 1000

// Commentary is a single timestamped note attached to a match,
// immutable once created. ID and CreatedAt are assigned by the store
// at insert time; together they form the feed ordering key.
type Commentary struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	Type      string    `json:"type"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentaryRequest is the caller-supplied payload for a new
// commentary event. Type is optional and defaults to "commentary".
type CreateCommentaryRequest struct {
	Type string `json:"type,omitempty"`
	Text string `json:"text"`
}

// Validate checks the payload shape and applies the type default.
func (r *CreateCommentaryRequest) Validate() error {
	if r.Text == "" {
		return &ValidationError{Field: "text", Reason: "is required"}
	}
	if len(r.Text) > maxCommentaryTextLen {
		return &ValidationError{Field: "text", Reason: "exceeds maximum length"}
	}
	if r.Type == "" {
		r.Type = CommentaryTypeDefault
	}
	switch r.Type {
	case CommentaryTypeGoal, CommentaryTypeCard, CommentaryTypeSubstitution,
		CommentaryTypeInfo, CommentaryTypeDefault:
	default:
		return &ValidationError{Field: "type", Reason: "is not a recognized commentary type"}
	}
	return nil
}
