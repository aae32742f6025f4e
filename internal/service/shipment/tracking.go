package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipment/internal/entities"
	"shipment/pkg/logger"
)

const trackTimeout = 30 * time.Second

// TrackShipment параллельные запросы по одной накладной схлопываются в один вызов перевозчика.
// Если отправление есть в БД, новые сканы дописываются, а статус двигается только вперед.
func (s *Service) TrackShipment(ctx context.Context, waybill string) (*entities.TrackingInfo, error) {
	if !isValidID(waybill) {
		return nil, ErrInvalidWaybill
	}

	// общий вызов живет отдельно от ctx первого запроса,
	// каждый вызывающий ждет результат в пределах своего ctx
	ch := s.trackGroup.DoChan(waybill, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), trackTimeout)
		defer cancel()
		return s.track(ctx, waybill)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*entities.TrackingInfo), nil
	}
}

func (s *Service) track(ctx context.Context, waybill string) (*entities.TrackingInfo, error) {
	info, err := s.gateway.TrackShipment(ctx, waybill)
	if err != nil {
		return nil, err
	}

	shipment, err := s.repository.GetByWaybill(ctx, waybill)
	if err != nil {
		if errors.Is(err, ErrShipmentNotFound) {
			return info, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	if _, err := s.applyTracking(ctx, shipment, info); err != nil {
		return nil, err
	}
	return info, nil
}

// applyTracking возвращает true, если статус отправления сдвинулся.
// Дубли сканов при гонке между процессами допустимы.
func (s *Service) applyTracking(ctx context.Context, shipment *entities.Shipment, info *entities.TrackingInfo) (bool, error) {
	if !info.Found {
		return false, nil
	}

	if len(info.Scans) > 0 {
		events := make([]entities.TrackingEvent, len(info.Scans))
		for i, scan := range info.Scans {
			events[i] = entities.TrackingEvent{
				ShipmentID:  shipment.ID,
				OccurredAt:  scan.OccurredAt,
				Status:      scan.Status,
				Location:    scan.Location,
				Description: scan.Description,
			}
		}
		if _, err := s.repository.AppendTrackingEvents(ctx, shipment.ID, events); err != nil {
			return false, fmt.Errorf("append tracking events: %w", err)
		}
	}

	next := info.Status
	if !next.IsValid() || !shipment.Status.CanTransitionTo(next) {
		return false, nil
	}

	advanced, err := s.repository.UpdateStatus(ctx, shipment.ID, next)
	if err != nil {
		return false, fmt.Errorf("update shipment status: %w", err)
	}
	if !advanced {
		// конкурентный опрос уже сдвинул статус дальше
		return false, nil
	}

	shipment.Status = next
	err = s.orderRepository.UpdateShipmentLink(ctx, entities.OrderModify{
		ID:             &shipment.OrderID,
		ShipmentStatus: &next,
	})
	if err != nil {
		return true, fmt.Errorf("link shipment status to order: %w", err)
	}

	eventType := entities.ShipmentEventStatusChanged
	if next == entities.ShipmentCancelled {
		eventType = entities.ShipmentEventCancelled
	}
	s.publish(ctx, eventType, shipment)

	return true, nil
}

// RefreshActiveShipments фоновый опрос самых давно обновленных активных отправлений.
// Транспортные сбои перевозчика повторяются ретраером, ошибка по одному отправлению
// не останавливает проход.
func (s *Service) RefreshActiveShipments(ctx context.Context, limit int) (*entities.TrackingRefresh, error) {
	if limit <= 0 {
		return &entities.TrackingRefresh{}, nil
	}

	shipments, err := s.repository.ListActive(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list active shipments: %w", err)
	}

	refresh := &entities.TrackingRefresh{}
	for i := range shipments {
		if err := ctx.Err(); err != nil {
			return refresh, err
		}

		shipment := &shipments[i]
		refresh.Checked++

		advanced, err := s.refreshOne(ctx, shipment)
		if err != nil {
			refresh.Failed++
			s.log.Warn("failed to refresh shipment tracking",
				logger.NewField("shipment_id", shipment.ID),
				logger.NewField("waybill", shipment.PrimaryWaybill),
				logger.NewField("error", err),
			)
			continue
		}
		if advanced {
			refresh.Advanced++
		}
	}

	return refresh, nil
}

func (s *Service) refreshOne(ctx context.Context, shipment *entities.Shipment) (bool, error) {
	var info *entities.TrackingInfo
	err := s.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var err error
		info, err = s.gateway.TrackShipment(ctx, shipment.PrimaryWaybill)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("track shipment: %w", err)
	}

	advanced, err := s.applyTracking(ctx, shipment, info)
	if err != nil {
		return advanced, err
	}

	if !advanced {
		// сдвигаем в конец очереди опроса
		if err := s.repository.Touch(ctx, shipment.ID); err != nil {
			return false, fmt.Errorf("touch shipment: %w", err)
		}
	}
	return advanced, nil
}
