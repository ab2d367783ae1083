package dto

import "time"

type HistoryEntryResponse struct {
	CreatedAt   time.Time `json:"created_at"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DistanceKm  *float64  `json:"distance_km"`
	Error       *string   `json:"error"`
}

type HistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
}
