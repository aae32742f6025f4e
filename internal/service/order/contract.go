//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"shipment/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
}

type ShipmentService interface {
	CancelShipmentsByOrder(ctx context.Context, orderID string) (int, error)
}

// Reaction действие над отправлениями заказа, возвращает число затронутых.
type Reaction func(ctx context.Context, orderID string) (int, error)

type Reactions interface {
	For(status entities.OrderStatusType) (Reaction, bool)
}
