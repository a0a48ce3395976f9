// Package service holds the match and commentary orchestration logic
// between the HTTP handlers and the durable store.
package service

import (
	"context"

	"github.com/matchlive/commentary-service/internal/domain"
)

// Store is the durable persistence collaborator. Implementations
// assign IDs and creation timestamps at insert time and return rows
// pre-ordered newest first.
type Store interface {
	InsertMatch(ctx context.Context, match domain.Match) (*domain.Match, error)
	ListMatches(ctx context.Context, limit int) ([]domain.Match, error)
	InsertCommentary(ctx context.Context, matchID, commentaryType, text string) (*domain.Commentary, error)
	ListCommentary(ctx context.Context, matchID string, limit int) ([]domain.Commentary, error)
}

// Broadcaster delivers a newly persisted commentary event to live
// subscribers of its match. Delivery is best effort; errors are logged
// by the caller and never surfaced to the creating request.
type Broadcaster interface {
	Publish(ctx context.Context, event domain.Commentary) error
}

// NopBroadcaster is the default Broadcaster when no live transport is
// wired up.
type NopBroadcaster struct{}

func (NopBroadcaster) Publish(context.Context, domain.Commentary) error { return nil }
