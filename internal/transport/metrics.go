package transport

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "saferoute_client",
			Name:      "http_requests_total",
			Help:      "API requests by method and status (or network_error).",
		},
		[]string{"method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "saferoute_client",
			Name:      "http_request_duration_seconds",
			Help:      "Latency of API requests, including failed ones.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
