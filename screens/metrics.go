package screens

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "saferoute_client",
			Subsystem: "screen",
			Name:      "loads_total",
			Help:      "List loads by screen and outcome.",
		},
		[]string{"screen", "outcome"},
	)

	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "saferoute_client",
			Subsystem: "screen",
			Name:      "mutations_total",
			Help:      "Create, update and delete attempts by screen, operation and outcome.",
		},
		[]string{"screen", "op", "outcome"},
	)

	busyRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "saferoute_client",
			Subsystem: "screen",
			Name:      "busy_rejections_total",
			Help:      "Actions refused because a request from the same screen was in flight.",
		},
		[]string{"screen"},
	)
)

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
