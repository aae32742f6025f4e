package tracking_refresh

import (
	"context"

	"shipment/internal/pkg/metrics"
	"shipment/pkg/logger"
)

// TrackingRefresh опрашивает перевозчика по активным отправлениям,
// чтобы статусы двигались и без запросов из админки.
type TrackingRefresh struct {
	log       logger.Logger
	service   Service
	spec      string
	batchSize int
}

func NewTrackingRefresh(log logger.Logger, service Service, spec string, batchSize int) *TrackingRefresh {
	return &TrackingRefresh{
		log:       log,
		service:   service,
		spec:      spec,
		batchSize: batchSize,
	}
}

func (t *TrackingRefresh) Spec() string {
	return t.spec
}

func (t *TrackingRefresh) Do(ctx context.Context) error {
	refresh, err := t.service.RefreshActiveShipments(ctx, t.batchSize)
	metrics.ObserveTrackingRefresh(refresh)
	if err != nil {
		return err
	}

	if refresh.Checked > 0 {
		t.log.With(
			logger.NewField("checked", refresh.Checked),
			logger.NewField("advanced", refresh.Advanced),
			logger.NewField("failed", refresh.Failed),
		).Info("tracking refresh")
	}
	return nil
}

func (t *TrackingRefresh) Info() string {
	return "tracking refresh"
}
