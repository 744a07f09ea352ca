package metrics

import "github.com/prometheus/client_golang/prometheus"

// Upstream data-source Prometheus metrics.
var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "facade",
			Name:      "upstream_requests_total",
			Help:      "Total number of upstream data-source requests",
		},
		[]string{"operation", "status"},
	)

	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "facade",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation"},
	)
)

// RegisterUpstreamMetrics registers the upstream metrics with the default
// registry. Called once from the composition root (no init()).
func RegisterUpstreamMetrics() {
	prometheus.MustRegister(UpstreamRequestsTotal)
	prometheus.MustRegister(UpstreamRequestDuration)
}
