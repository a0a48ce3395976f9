package service

import (
	"context"
	"log/slog"

	"github.com/matchlive/commentary-service/internal/domain"
)

// CommentaryFeed orchestrates the append-only commentary stream of a
// match: durable creation, clamped listing, and best-effort fan-out to
// live subscribers.
type CommentaryFeed struct {
	store       Store
	broadcaster Broadcaster
	logger      *slog.Logger
}

// NewCommentaryFeed creates a feed. A nil broadcaster disables live
// fan-out without changing create semantics.
func NewCommentaryFeed(store Store, broadcaster Broadcaster, logger *slog.Logger) *CommentaryFeed {
	if broadcaster == nil {
		broadcaster = NopBroadcaster{}
	}
	return &CommentaryFeed{store: store, broadcaster: broadcaster, logger: logger}
}

// Create persists a commentary event for the match and then hands it
// to the broadcaster. The event is only ever broadcast after the write
// has committed, so subscribers never see an event that could later
// disappear. Broadcast failures are logged and swallowed; durability
// is the only success criterion.
func (f *CommentaryFeed) Create(ctx context.Context, matchID string, req domain.CreateCommentaryRequest) (*domain.Commentary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	event, err := f.store.InsertCommentary(ctx, matchID, req.Type, req.Text)
	if err != nil {
		return nil, err
	}

	if err := f.broadcaster.Publish(ctx, *event); err != nil {
		f.logger.Error("failed to broadcast commentary",
			"match_id", matchID, "commentary_id", event.ID, "error", err)
	}

	return event, nil
}

// List returns the match's commentary newest first, clamped to the
// system maximum. A match with no commentary, or an unknown match,
// yields an empty slice rather than an error.
func (f *CommentaryFeed) List(ctx context.Context, matchID string, limit int) ([]domain.Commentary, error) {
	return f.store.ListCommentary(ctx, matchID, domain.EffectiveLimit(limit))
}
