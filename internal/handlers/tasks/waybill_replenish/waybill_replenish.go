package waybill_replenish

import (
	"context"
	"fmt"

	"shipment/internal/pkg/metrics"
	"shipment/pkg/logger"
)

// WaybillReplenish доливает пул до минимального остатка и обновляет гейджи пула.
type WaybillReplenish struct {
	log     logger.Logger
	service Service
	spec    string
}

func NewWaybillReplenish(log logger.Logger, service Service, spec string) *WaybillReplenish {
	return &WaybillReplenish{
		log:     log,
		service: service,
		spec:    spec,
	}
}

func (w *WaybillReplenish) Spec() string {
	return w.spec
}

// Do статистику снимаем и после неудачного пополнения: часть пачек могла успеть лечь в пул.
func (w *WaybillReplenish) Do(ctx context.Context) error {
	added, replenishErr := w.service.Replenish(ctx)
	if added > 0 {
		metrics.WaybillPoolReplenishedTotal.Add(float64(added))
		w.log.With(
			logger.NewField("added", added),
		).Info("waybill pool replenished")
	}

	stats, err := w.service.Stats(ctx)
	if err != nil {
		if replenishErr != nil {
			return fmt.Errorf("%w (stats: %v)", replenishErr, err)
		}
		return err
	}
	metrics.SetWaybillPoolStats(stats)

	return replenishErr
}

func (w *WaybillReplenish) Info() string {
	return "waybill pool replenish"
}
