package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/matchlive/commentary-service/internal/domain"
)

// foreignKeyViolation is the SQLSTATE raised when an insert references
// a match that does not exist.
const foreignKeyViolation = "23503"

// InsertCommentary appends an event to the match's feed. The database
// assigns id and created_at atomically at insert time; together they
// are the feed's ordering key. A foreign-key violation means the match
// does not exist and surfaces as domain.ErrNotFound.
func (s *PostgresStore) InsertCommentary(ctx context.Context, matchID, commentaryType, text string) (*domain.Commentary, error) {
	var out domain.Commentary
	err := s.pool.QueryRow(ctx, `
		INSERT INTO commentary (match_id, type, text)
		VALUES ($1, $2, $3)
		RETURNING id, match_id, type, text, created_at
	`, matchID, commentaryType, text).Scan(
		&out.ID, &out.MatchID, &out.Type, &out.Text, &out.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, domain.ErrNotFound
		}
		return nil, &domain.StorageError{Op: "insert commentary", Err: err}
	}
	return &out, nil
}

// ListCommentary returns the match's events newest first. Ties on
// created_at are broken by id descending so page contents are
// deterministic even under a coarse clock.
func (s *PostgresStore) ListCommentary(ctx context.Context, matchID string, limit int) ([]domain.Commentary, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, match_id, type, text, created_at
		FROM commentary
		WHERE match_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, matchID, limit)
	if err != nil {
		return nil, &domain.StorageError{Op: "list commentary", Err: err}
	}
	defer rows.Close()

	var events []domain.Commentary
	for rows.Next() {
		var e domain.Commentary
		if err := rows.Scan(&e.ID, &e.MatchID, &e.Type, &e.Text, &e.CreatedAt); err != nil {
			return nil, &domain.StorageError{Op: "scan commentary", Err: err}
		}
		events = append(events, e)
	}

	if events == nil {
		events = []domain.Commentary{}
	}

	return events, nil
}
