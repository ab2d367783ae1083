package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitPostgresSchema creates the query log table and its history index.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createQueryLog := `
	CREATE TABLE IF NOT EXISTS query_log (
		id BIGSERIAL PRIMARY KEY,
		session_id TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_km DOUBLE PRECISION,
		result JSONB,
		error TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CHECK ((result IS NULL) <> (error IS NULL))
	);
	`

	createIndex := `
	CREATE INDEX IF NOT EXISTS idx_query_log_session_created
	ON query_log(session_id, created_at DESC);
	`

	return execStatements(db, []string{createQueryLog, createIndex})
}

// InitSqliteSchema creates the same shape for local SQLite runs.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createQueryLog := `
	CREATE TABLE IF NOT EXISTS query_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_km REAL,
		result TEXT,
		error TEXT,
		created_at TIMESTAMP NOT NULL,
		CHECK ((result IS NULL) <> (error IS NULL))
	);
	`

	createIndex := `
	CREATE INDEX IF NOT EXISTS idx_query_log_session_created
	ON query_log(session_id, created_at DESC);
	`

	return execStatements(db, []string{createQueryLog, createIndex})
}

func execStatements(db *sql.DB, statements []string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
