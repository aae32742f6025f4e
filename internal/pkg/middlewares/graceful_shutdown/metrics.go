package graceful_shutdown

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InFlightRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "Requests currently being served",
		},
	)

	RejectedOnShutdownTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rejected_on_shutdown_total",
			Help: "Requests rejected after the server started shutting down",
		},
	)
)
