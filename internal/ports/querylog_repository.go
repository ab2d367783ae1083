package ports

import (
	"context"

	"travel-estimate-service/internal/domain"
)

// Port: a boundary for the append-only query log store.
type QueryLogRepository interface {
	// Append writes one log entry. No deduplication, no update-in-place;
	// the store assigns the timestamp.
	Append(ctx context.Context, entry domain.QueryLogEntry) error

	// Recent returns up to limit summaries for a session, newest first.
	// An unknown session yields an empty slice, not an error.
	Recent(ctx context.Context, sessionID string, limit int) ([]domain.QueryLogSummary, error)
}
