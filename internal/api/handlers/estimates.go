package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"travel-estimate-service/internal/api/dto"
	"travel-estimate-service/internal/observability"
	"travel-estimate-service/internal/ports"
	"travel-estimate-service/internal/services"
)

type EstimateHandler struct {
	Geocoder ports.Geocoder
	Log      ports.QueryLogRepository
}

// Estimate runs one estimation attempt. Blank fields are rejected here,
// before the pipeline is invoked, so they produce no log write. Estimation
// failures (place not found, geocoding error) return 422 with the same
// message that was written to the query log.
func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EstimateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.SessionID) == "" {
		writeError(w, r, http.StatusBadRequest, "session_id is required")
		return
	}
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	svcReq := services.EstimateRequest{
		SessionID:   req.SessionID,
		Origin:      req.Origin,
		Destination: req.Destination,
	}

	resp, err := services.EstimateAndLog(r.Context(), svcReq, h.Geocoder, h.Log)
	if err != nil {
		var pe *services.PipelineError
		if errors.As(err, &pe) {
			observability.EstimateFailures.Inc()
			writeError(w, r, http.StatusUnprocessableEntity, pe.Message)
			return
		}
		log.Printf("estimate failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	observability.EstimatesTotal.Inc()
	if resp.Warning != "" {
		observability.LogWriteFailures.Inc()
	}

	res := dto.EstimateResponse{
		Rows:       make([]dto.EstimateRowResponse, 0, len(resp.Rows)),
		DistanceKm: resp.DistanceKm,
		Message:    resp.Message,
		Warning:    resp.Warning,
	}
	for _, row := range resp.Rows {
		res.Rows = append(res.Rows, dto.EstimateRowResponse{
			Mode:            string(row.Mode),
			Price:           row.Price,
			DurationMinutes: row.DurationMinutes,
			Descriptor:      row.Descriptor,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
