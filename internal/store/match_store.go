package store

import (
	"context"

	"github.com/matchlive/commentary-service/internal/domain"
)

func (s *PostgresStore) InsertMatch(ctx context.Context, match domain.Match) (*domain.Match, error) {
	var out domain.Match
	err := s.pool.QueryRow(ctx, `
		INSERT INTO matches (start_time, end_time, home_score, away_score, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, start_time, end_time, home_score, away_score, status, created_at
	`, match.StartTime, match.EndTime, match.HomeScore, match.AwayScore, match.Status).Scan(
		&out.ID, &out.StartTime, &out.EndTime, &out.HomeScore, &out.AwayScore, &out.Status, &out.CreatedAt,
	)
	if err != nil {
		return nil, &domain.StorageError{Op: "insert match", Err: err}
	}
	return &out, nil
}

func (s *PostgresStore) ListMatches(ctx context.Context, limit int) ([]domain.Match, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, start_time, end_time, home_score, away_score, status, created_at
		FROM matches
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, &domain.StorageError{Op: "list matches", Err: err}
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		var m domain.Match
		err := rows.Scan(&m.ID, &m.StartTime, &m.EndTime, &m.HomeScore, &m.AwayScore, &m.Status, &m.CreatedAt)
		if err != nil {
			return nil, &domain.StorageError{Op: "scan match", Err: err}
		}
		matches = append(matches, m)
	}

	if matches == nil {
		matches = []domain.Match{}
	}

	return matches, nil
}
