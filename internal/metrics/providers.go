// Package metrics defines Prometheus instrumentation for the external
// provider calls (vision description, embedding encode) and the
// embedding cache.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Embedding provider metrics.
var (
	EmbeddingRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slidematch",
			Name:      "embedding_requests_total",
			Help:      "Total number of embedding requests",
		},
		[]string{"provider", "model", "status"},
	)

	EmbeddingRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "slidematch",
			Name:      "embedding_request_duration_seconds",
			Help:      "Embedding request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "model"},
	)

	EmbeddingTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slidematch",
			Name:      "embedding_tokens_total",
			Help:      "Total embedding tokens consumed",
		},
		[]string{"provider", "model", "type"},
	)

	EmbeddingErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slidematch",
			Name:      "embedding_errors_total",
			Help:      "Total embedding errors",
		},
		[]string{"provider", "model", "error_type"},
	)

	EmbeddingCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slidematch",
			Name:      "embedding_cache_total",
			Help:      "Embedding cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

// Vision provider metrics.
var (
	VisionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slidematch",
			Name:      "vision_requests_total",
			Help:      "Total number of vision description requests",
		},
		[]string{"provider", "model", "status"},
	)

	VisionRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "slidematch",
			Name:      "vision_request_duration_seconds",
			Help:      "Vision description request duration in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"provider", "model"},
	)

	VisionErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "slidematch",
			Name:      "vision_errors_total",
			Help:      "Total vision description errors",
		},
		[]string{"provider", "model", "error_type"},
	)

	VisionFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "slidematch",
			Name:      "vision_fallbacks_total",
			Help:      "Descriptions degraded to filename decomposition",
		},
	)
)

// Register registers all provider metrics with the given registerer.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(
		EmbeddingRequestsTotal,
		EmbeddingRequestDuration,
		EmbeddingTokensTotal,
		EmbeddingErrorsTotal,
		EmbeddingCacheTotal,
		VisionRequestsTotal,
		VisionRequestDuration,
		VisionErrorsTotal,
		VisionFallbacksTotal,
	)
}
