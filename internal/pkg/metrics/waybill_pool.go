package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"shipment/internal/entities"
)

var (
	WaybillPoolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "waybill_pool_size",
			Help: "Number of waybills in the pool by status",
		},
		[]string{"status"},
	)

	WaybillPoolReplenishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "waybill_pool_replenished_total",
			Help: "Total number of waybills added to the pool by replenishment",
		},
	)

	WaybillReservationsExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "waybill_reservations_expired_total",
			Help: "Total number of stale reservations returned to the pool",
		},
	)

	TrackingRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tracking_refresh_shipments_total",
			Help: "Shipments processed by the background tracking refresh",
		},
		[]string{"outcome"},
	)
)

func SetWaybillPoolStats(stats *entities.WaybillPoolStats) {
	if stats == nil {
		return
	}

	WaybillPoolSize.WithLabelValues(entities.WaybillGenerated.String()).Set(float64(stats.Generated))
	WaybillPoolSize.WithLabelValues(entities.WaybillReserved.String()).Set(float64(stats.Reserved))
	WaybillPoolSize.WithLabelValues(entities.WaybillUsed.String()).Set(float64(stats.Used))
	WaybillPoolSize.WithLabelValues(entities.WaybillCancelled.String()).Set(float64(stats.Cancelled))
}

func ObserveTrackingRefresh(refresh *entities.TrackingRefresh) {
	if refresh == nil {
		return
	}

	TrackingRefreshTotal.WithLabelValues("checked").Add(float64(refresh.Checked))
	TrackingRefreshTotal.WithLabelValues("advanced").Add(float64(refresh.Advanced))
	TrackingRefreshTotal.WithLabelValues("failed").Add(float64(refresh.Failed))
}
