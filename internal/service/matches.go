package service

import (
	"context"
	"time"

	"github.com/matchlive/commentary-service/internal/domain"
)

// MatchService orchestrates match creation and listing.
type MatchService struct {
	store Store
	now   func() time.Time
}

// NewMatchService creates a match service using the wall clock.
func NewMatchService(store Store) *MatchService {
	return &MatchService{store: store, now: time.Now}
}

// Create validates the request, applies score defaults, derives the
// status snapshot from the current time, and delegates the write to
// the store. The returned match carries the store-assigned ID.
func (s *MatchService) Create(ctx context.Context, req domain.CreateMatchRequest) (*domain.Match, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	match := domain.Match{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    domain.ClassifyStatus(req.StartTime, req.EndTime, s.now()),
	}
	if req.HomeScore != nil {
		match.HomeScore = *req.HomeScore
	}
	if req.AwayScore != nil {
		match.AwayScore = *req.AwayScore
	}

	return s.store.InsertMatch(ctx, match)
}

// List returns matches newest first, with the requested page size
// clamped to the system maximum.
func (s *MatchService) List(ctx context.Context, limit int) ([]domain.Match, error) {
	return s.store.ListMatches(ctx, domain.EffectiveLimit(limit))
}
