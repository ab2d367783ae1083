package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travel-estimate-service/internal/domain"
)

// SQLite-backed implementation of the QueryLogRepository port, used for
// local runs. Same append-only contract as the Postgres repository;
// created_at is assigned here from the server clock since SQLite has no
// timezone-aware now().
type SqliteQueryLogRepository struct{ DB *sql.DB }

func NewSqliteQueryLogRepository(db *sql.DB) *SqliteQueryLogRepository {
	return &SqliteQueryLogRepository{DB: db}
}

// Append writes one log entry.
func (s *SqliteQueryLogRepository) Append(ctx context.Context, entry domain.QueryLogEntry) error {
	if s.DB == nil {
		return errors.New("query log repository: DB is nil")
	}

	if err := entry.Validate(); err != nil {
		return fmt.Errorf("append query log: %w", err)
	}

	var result any
	if entry.Result != nil {
		payload, err := json.Marshal(entry.Result)
		if err != nil {
			return fmt.Errorf("append query log: marshal result: %w", err)
		}
		result = string(payload)
	}

	q := `
	INSERT INTO query_log (session_id, origin, destination, distance_km, result, error, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q,
		entry.SessionID, entry.Origin, entry.Destination,
		nullFloat(entry.DistanceKm), result, nullString(entry.Error),
		time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("append query log: insert row: %w", err)
	}

	return nil
}

// Recent returns up to limit summaries for a session, newest first.
func (s *SqliteQueryLogRepository) Recent(
	ctx context.Context,
	sessionID string,
	limit int,
) ([]domain.QueryLogSummary, error) {
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
	WHERE session_id = ?
	ORDER BY created_at DESC, id DESC
	LIMIT ?;
	`

	rows, err := s.DB.QueryContext(ctx, q, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent query log: query query_log table: %w", err)
	}
	defer rows.Close()

	return scanSummaries(rows)
}
