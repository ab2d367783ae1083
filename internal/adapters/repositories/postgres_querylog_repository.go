package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"travel-estimate-service/internal/domain"
	"travel-estimate-service/internal/platform/obs"
)

// Postgres-backed implementation of the QueryLogRepository port.
// The table is append-only; created_at comes from the database clock so
// ordering stays consistent across client clock skew.
type PostgresQueryLogRepository struct{ DB *sql.DB }

func NewPostgresQueryLogRepository(db *sql.DB) *PostgresQueryLogRepository {
	return &PostgresQueryLogRepository{DB: db}
}

// Append writes one log entry.
func (s *PostgresQueryLogRepository) Append(ctx context.Context, entry domain.QueryLogEntry) (err error) {
	defer obs.Time(ctx, "querylog.Append")(&err)

	if s.DB == nil {
		return errors.New("query log repository: DB is nil")
	}

	if err := entry.Validate(); err != nil {
		return fmt.Errorf("append query log: %w", err)
	}

	var result []byte
	if entry.Result != nil {
		result, err = json.Marshal(entry.Result)
		if err != nil {
			return fmt.Errorf("append query log: marshal result: %w", err)
		}
	}

	q := `
	INSERT INTO query_log (session_id, origin, destination, distance_km, result, error)
	VALUES ($1, $2, $3, $4, $5, $6);
	`

	if _, err := s.DB.ExecContext(ctx, q,
		entry.SessionID, entry.Origin, entry.Destination,
		nullFloat(entry.DistanceKm), result, nullString(entry.Error),
	); err != nil {
		return fmt.Errorf("append query log: insert row: %w", err)
	}

	return nil
}

// Recent returns up to limit summaries for a session, newest first.
// Ties on created_at fall back to insertion order via the serial key.
func (s *PostgresQueryLogRepository) Recent(
	ctx context.Context,
	sessionID string,
	limit int,
) (_ []domain.QueryLogSummary, err error) {
	defer obs.Time(ctx, "querylog.Recent")(&err)

	if s.DB == nil {
		return nil, errors.New("query log repository: DB is nil")
	}

	if sessionID == "" {
		return nil, errors.New("recent query log: session id must be non-empty")
	}

	if limit <= 0 {
		return nil, errors.New("recent query log: limit must be positive")
	}

	q := `
	SELECT created_at, origin, destination, distance_km, error
	FROM query_log
	WHERE session_id = $1
	ORDER BY created_at DESC, id DESC
	LIMIT $2;
	`

	rows, err := s.DB.QueryContext(ctx, q, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent query log: query query_log table: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}

func scanSummaries(rows *sql.Rows) ([]domain.QueryLogSummary, error) {
	out := make([]domain.QueryLogSummary, 0, 16)
	for rows.Next() {
		var s domain.QueryLogSummary
		var distance sql.NullFloat64
		var errMsg sql.NullString

		if err := rows.Scan(&s.CreatedAt, &s.Origin, &s.Destination, &distance, &errMsg); err != nil {
			return nil, fmt.Errorf("recent query log: scan row: %w", err)
		}

		if distance.Valid {
			v := distance.Float64
			s.DistanceKm = &v
		}
		if errMsg.Valid {
			v := errMsg.String
			s.Error = &v
		}

		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent query log: row iteration: %w", err)
	}

	return out, nil
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullString(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
