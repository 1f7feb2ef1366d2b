// Package metrics holds the transport-level Prometheus collectors.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestsTotal counts HTTP requests to the engine by handler
	// (update, select) and outcome (ok, error).
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "solrkit",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests to the search engine",
		},
		[]string{"handler", "outcome"},
	)

	// RequestDuration observes request latency by handler.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "solrkit",
			Name:      "request_duration_seconds",
			Help:      "Search engine request duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"handler"},
	)

	// QueryCacheTotal counts query cache hits and misses.
	QueryCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "solrkit",
			Name:      "query_cache_total",
			Help:      "Query response cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)
)

var transportMetricsRegistered bool

// RegisterTransportMetrics registers the collectors on the default
// registry. Must be called once from main; no init() registration.
func RegisterTransportMetrics() {
	if transportMetricsRegistered {
		return
	}
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(QueryCacheTotal)
	transportMetricsRegistered = true
}
