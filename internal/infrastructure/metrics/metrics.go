package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal tracks API requests by method and response status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "penmark_http_requests_total",
		Help: "Total number of HTTP requests handled",
	}, []string{"method", "status"})

	// HTTPRequestDuration tracks request handling time.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "penmark_http_request_duration_seconds",
		Help:    "Histogram of HTTP request handling duration",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	// AuthAttemptsTotal tracks authentication outcomes per guard.
	AuthAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "penmark_auth_attempts_total",
		Help: "Total number of authentication attempts by guard and result",
	}, []string{"guard", "result"})

	// CacheOperations tracks article cache hits and misses.
	CacheOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "penmark_cache_operations_total",
		Help: "Total number of article cache hits and misses",
	}, []string{"result"})

	// DBConnectionsActive tracks open database connections.
	DBConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "penmark_db_connections_active",
		Help: "Number of active database connections",
	})
)
