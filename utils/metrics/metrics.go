// Package metrics exposes the service's prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "readlog_http_requests_total",
		Help: "Total HTTP requests handled, labeled by method, path, and status code.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration observes request latency by path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "readlog_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// MetadataFetchTotal counts outbound page-metadata fetches by outcome.
	MetadataFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "readlog_metadata_fetch_total",
		Help: "Outbound metadata fetches, labeled by result (ok, blocked, error).",
	}, []string{"result"})

	// MetadataFetchDuration observes outbound fetch latency.
	MetadataFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "readlog_metadata_fetch_duration_seconds",
		Help:    "Outbound metadata fetch latency in seconds.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})
)
