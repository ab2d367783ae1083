package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"travel-estimate-service/internal/api/dto"
	"travel-estimate-service/internal/observability"
	"travel-estimate-service/internal/ports"
	"travel-estimate-service/internal/services"
)

type HistoryHandler struct {
	Log ports.QueryLogRepository
}

// Recent returns the newest-first query summaries for one session. A store
// read failure is recoverable and independent of the estimation flow, so
// it maps to 503 rather than a hard failure.
func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sessionID := strings.TrimSpace(r.URL.Query().Get("session_id"))
	if sessionID == "" {
		writeError(w, r, http.StatusBadRequest, "session_id is required")
		return
	}

	limit := services.DefaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := services.RecentHistory(r.Context(), sessionID, limit, h.Log)
	if err != nil {
		observability.HistoryReadFailures.Inc()
		log.Printf("history read failed: session=%s err=%v", sessionID, err)
		writeError(w, r, http.StatusServiceUnavailable, "history is temporarily unavailable")
		return
	}

	res := dto.HistoryResponse{
		Entries: make([]dto.HistoryEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		res.Entries = append(res.Entries, dto.HistoryEntryResponse{
			CreatedAt:   e.CreatedAt,
			Origin:      e.Origin,
			Destination: e.Destination,
			DistanceKm:  e.DistanceKm,
			Error:       e.Error,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
