package order

import (
	"context"
	"fmt"

	"shipment/internal/entities"
)

type Service struct {
	orders    OrderRepository
	reactions Reactions
}

func New(orders OrderRepository, reactions Reactions) *Service {
	return &Service{
		orders:    orders,
		reactions: reactions,
	}
}

// ProcessOrderStatusChange событие из топика только повод перечитать заказ:
// пока оно лежало в очереди, админка могла сменить статус еще раз.
// Для статуса без реакции возвращается заказ и ErrUndefinedStatus.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, change entities.OrderModify) (*entities.Order, error) {
	if change.ID == nil || *change.ID == "" || change.Status == nil {
		return nil, fmt.Errorf("%w: order id and status are required", ErrInvalidOrderID)
	}

	order, err := s.orders.GetByID(ctx, *change.ID)
	if err != nil {
		return nil, fmt.Errorf("get order from store: %w", err)
	}

	react, ok := s.reactions.For(order.Status)
	if !ok {
		return order, fmt.Errorf("%w: %s", ErrUndefinedStatus, order.Status)
	}

	if _, err := react(ctx, order.ID); err != nil {
		return nil, fmt.Errorf("react to %s order %s: %w", order.Status, order.ID, err)
	}

	return order, nil
}
