package order_status_changed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeProcessed = "processed"
	outcomeSkipped   = "skipped"
	outcomeInvalid   = "invalid"
	outcomeFailed    = "failed"
	outcomeRetry     = "retry"
)

var OrderStatusEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "order_status_events_total",
		Help: "Order status change events consumed, by outcome",
	},
	[]string{"outcome"},
)
