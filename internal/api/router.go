package api

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"travel-estimate-service/internal/api/handlers"
	"travel-estimate-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware
// of concrete adapters).
func NewRouter(geocoder ports.Geocoder, logRepo ports.QueryLogRepository, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	estimateHandler := &handlers.EstimateHandler{Geocoder: geocoder, Log: logRepo}
	historyHandler := &handlers.HistoryHandler{Log: logRepo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/sessions", handlers.NewSession)
	mux.HandleFunc("/estimates", estimateHandler.Estimate)
	mux.HandleFunc("/history", historyHandler.Recent)
	mux.Handle("/metrics", promhttp.Handler())

	return loggingMiddleware(logger, mux)
}
