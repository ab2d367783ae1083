package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EstimatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "travel_estimate", Name: "estimates_total",
		Help: "Total estimation attempts that produced a result",
	})
	EstimateFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "travel_estimate", Name: "estimate_failures_total",
		Help: "Estimation attempts that failed (place not found or geocoding error)",
	})
	LogWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "travel_estimate", Name: "log_write_failures_total",
		Help: "Query log writes that failed (best-effort, non-blocking)",
	})
	HistoryReadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "travel_estimate", Name: "history_read_failures_total",
		Help: "History reads that failed",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "travel_estimate", Name: "http_requests_total",
			Help: "Total HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "travel_estimate",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
