package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GatewayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total number of remote gateway calls by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	StoreFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_fallbacks_total",
			Help: "Total number of store operations that fell back to local-only persistence",
		},
		[]string{"operation"},
	)

	CacheWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_write_failures_total",
			Help: "Total number of snapshot writes that failed and were skipped",
		},
	)

	NotificationsDerived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_derived_total",
			Help: "Total number of notifications emitted by the deriver",
		},
		[]string{"type"},
	)
)
