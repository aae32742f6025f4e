package reservation_expiry

import (
	"context"
	"time"

	"shipment/internal/pkg/metrics"
	"shipment/pkg/logger"
)

// ReservationExpiry возвращает в пул накладные, зарезервированные дольше TTL
// и так и не использованные (упавший процесс, оборванный запрос).
type ReservationExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewReservationExpiry(log logger.Logger, service Service, interval time.Duration) *ReservationExpiry {
	return &ReservationExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *ReservationExpiry) TTL() time.Duration {
	return r.interval
}

func (r *ReservationExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	expired, err := r.service.ExpireReservations(ctxWithTimeout)

	if expired > 0 {
		metrics.WaybillReservationsExpiredTotal.Add(float64(expired))
		r.log.With(
			logger.NewField("expired_reservations", expired),
		).Info("waybill reservations expired")
	}

	return err
}

func (r *ReservationExpiry) Info() string {
	return "waybill reservation expiry"
}
