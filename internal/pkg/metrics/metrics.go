// Package metrics provides Prometheus metrics for the fault dashboard (RED + layout + WebSocket).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "networkfault"

var (
	// HTTPRequestTotal counts requests by method, path, status (RED: rate).
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, path, and status.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDurationSeconds is request latency histogram (RED: duration).
	HTTPRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2.5, 10), // 1ms to ~9.3s
		},
		[]string{"method", "path"},
	)

	// MutationsTotal counts state changes by entity and operation.
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Total number of dashboard state mutations by entity and operation.",
		},
		[]string{"entity", "op"},
	)

	// DiagramBuildDurationSeconds is the render model build latency.
	DiagramBuildDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "diagram_build_duration_seconds",
			Help:      "Diagram render model build duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		},
	)

	// LayoutExhaustedTotal counts placements that ran out of spiral attempts.
	LayoutExhaustedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layout_exhausted_total",
			Help:      "Total number of placements that returned a possibly colliding best-effort point.",
		},
	)

	// LinkPathsTotal counts routed link paths by kind (straight, quadratic).
	LinkPathsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "link_paths_total",
			Help:      "Total number of link paths routed, by kind.",
		},
		[]string{"kind"},
	)

	// WebSocketConnectionsActive is current number of WebSocket clients.
	WebSocketConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_connections_active",
			Help:      "Number of active WebSocket connections.",
		},
	)

	// ExportCacheHitsTotal counts export cache hits.
	ExportCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_cache_hits_total",
			Help:      "Total number of diagram export cache hits.",
		},
	)

	// ExportCacheMissesTotal counts export cache misses.
	ExportCacheMissesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_cache_misses_total",
			Help:      "Total number of diagram export cache misses.",
		},
	)

	// RateLimitRejectionsTotal counts requests rejected by the per-IP limiter.
	RateLimitRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limit_rejections_total",
			Help:      "Total number of requests rejected by the rate limiter.",
		},
	)
)
