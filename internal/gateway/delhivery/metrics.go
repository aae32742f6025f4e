package delhivery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CarrierRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "carrier_request_duration_seconds",
			Help:    "Duration of carrier API requests",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"carrier", "method", "outcome"},
	)

	CarrierDemoFallbackTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carrier_demo_fallback_total",
			Help: "Total number of waybills issued by the demo generator instead of the carrier",
		},
		[]string{"carrier", "method"},
	)
)
