package domain

import (
	"errors"
	"time"
)

// EstimateResult is the structured payload stored in the query log for a
// successful attempt.
type EstimateResult struct {
	Message string        `json:"message"`
	Data    []EstimateRow `json:"data"`
}

// QueryLogEntry is one append-only record of an estimation attempt,
// successful or failed, keyed by an anonymous session identifier.
// Exactly one of Result and Error is set for a completed attempt.
// CreatedAt is assigned by the store, never by the caller.
type QueryLogEntry struct {
	ID          int64
	SessionID   string
	Origin      string
	Destination string
	DistanceKm  *float64
	Result      *EstimateResult
	Error       *string
	CreatedAt   time.Time
}

// QueryLogSummary is the projection returned by the recent-history view.
// Full result payloads are not included.
type QueryLogSummary struct {
	CreatedAt   time.Time `json:"created_at"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DistanceKm  *float64  `json:"distance_km"`
	Error       *string   `json:"error"`
}

// NewSuccessEntry builds a log entry for a completed estimation.
func NewSuccessEntry(sessionID, origin, destination string, distanceKm float64, result EstimateResult) QueryLogEntry {
	return QueryLogEntry{
		SessionID:   sessionID,
		Origin:      origin,
		Destination: destination,
		DistanceKm:  &distanceKm,
		Result:      &result,
	}
}

// NewFailureEntry builds a log entry for a failed estimation attempt.
// Distance is absent since the pipeline terminates before computing it.
func NewFailureEntry(sessionID, origin, destination, errMsg string) QueryLogEntry {
	return QueryLogEntry{
		SessionID:   sessionID,
		Origin:      origin,
		Destination: destination,
		Error:       &errMsg,
	}
}

// Validate enforces the log's core invariant: exactly one of Result and
// Error is present. Repositories reject entries that violate it.
func (e QueryLogEntry) Validate() error {
	if e.SessionID == "" {
		return errors.New("query log entry: session id must be non-empty")
	}
	if e.Result != nil && e.Error != nil {
		return errors.New("query log entry: result and error are mutually exclusive")
	}
	if e.Result == nil && e.Error == nil {
		return errors.New("query log entry: one of result or error is required")
	}
	return nil
}
