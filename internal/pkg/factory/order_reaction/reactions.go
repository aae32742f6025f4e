package order_reaction

import (
	"context"
	"fmt"

	"shipment/internal/entities"
	"shipment/internal/service/order"
	"shipment/pkg/logger"
)

type reactionLogger interface {
	Info(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Table реакции отправлений на статусы заказа. Доставленные и отмененные
// отправления терминальны, их отмена пропускается внутри сервиса отправлений.
type Table struct {
	log       reactionLogger
	reactions map[entities.OrderStatusType]order.Reaction
}

func New(log reactionLogger, shipments order.ShipmentService) *Table {
	t := &Table{
		log: log.With(logger.NewField("component", "order_reactions")),
	}
	t.reactions = map[entities.OrderStatusType]order.Reaction{
		entities.OrderCancelled: t.cancelShipments(shipments, "order cancelled"),
		entities.OrderReturned:  t.cancelShipments(shipments, "order returned"),
	}
	return t
}

func (t *Table) For(status entities.OrderStatusType) (order.Reaction, bool) {
	r, ok := t.reactions[status]
	return r, ok
}

func (t *Table) cancelShipments(shipments order.ShipmentService, reason string) order.Reaction {
	return func(ctx context.Context, orderID string) (int, error) {
		n, err := shipments.CancelShipmentsByOrder(ctx, orderID)
		if err != nil {
			return n, fmt.Errorf("cancel shipments (%s): %w", reason, err)
		}

		t.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("reason", reason),
			logger.NewField("cancelled", n),
		).Info("shipments cancelled by order status")

		return n, nil
	}
}
