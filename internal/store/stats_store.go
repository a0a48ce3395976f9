package store

import (
	"context"

	"github.com/matchlive/commentary-service/internal/domain"
)

// Stats are the aggregate counts served on the stats endpoint.
type Stats struct {
	TotalMatches     int64 `json:"total_matches"`
	ScheduledMatches int64 `json:"scheduled_matches"`
	LiveMatches      int64 `json:"live_matches"`
	CompletedMatches int64 `json:"completed_matches"`
	TotalCommentary  int64 `json:"total_commentary"`
}

func (s *PostgresStore) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = $1),
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3),
			(SELECT COUNT(*) FROM commentary)
		FROM matches
	`, domain.StatusScheduled, domain.StatusLive, domain.StatusCompleted).Scan(
		&stats.TotalMatches,
		&stats.ScheduledMatches,
		&stats.LiveMatches,
		&stats.CompletedMatches,
		&stats.TotalCommentary,
	)
	if err != nil {
		return nil, &domain.StorageError{Op: "get stats", Err: err}
	}
	return &stats, nil
}
