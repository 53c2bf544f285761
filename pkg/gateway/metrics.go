package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "maestro",
		Subsystem: "gateway",
		Name:      "requests_total",
		Help:      "LLM requests by endpoint.",
	}, []string{"endpoint"})

	metricErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "maestro",
		Subsystem: "gateway",
		Name:      "errors_total",
		Help:      "Failed LLM requests by endpoint.",
	}, []string{"endpoint"})

	metricLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "maestro",
		Subsystem: "gateway",
		Name:      "request_duration_seconds",
		Help:      "LLM request latency by endpoint.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"endpoint"})

	metricCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "maestro",
		Subsystem: "gateway",
		Name:      "cache_total",
		Help:      "Fingerprint cache lookups by result (hit/miss).",
	}, []string{"result"})

	metricInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "maestro",
		Subsystem: "gateway",
		Name:      "in_flight",
		Help:      "LLM requests currently executing by endpoint.",
	}, []string{"endpoint"})
)
