package services

import (
	"context"
	"errors"
	"fmt"

	"travel-estimate-service/internal/domain"
	"travel-estimate-service/internal/ports"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
)

// RecentHistory returns the most recent query attempts for one session,
// newest first. Sessions with no history yield an empty slice; a store
// failure propagates so callers can surface it as a recoverable warning.
func RecentHistory(
	ctx context.Context,
	sessionID string,
	limit int,
	logRepo ports.QueryLogRepository,
) ([]domain.QueryLogSummary, error) {
	if sessionID == "" {
		return nil, errors.New("recent history: session id must be non-empty")
	}

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	entries, err := logRepo.Recent(ctx, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent history: %w", err)
	}

	return entries, nil
}
