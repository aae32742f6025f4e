//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_changed_test
package order_status_changed

import (
	"context"

	"shipment/internal/entities"
	"shipment/pkg/logger"
)

// StatusProcessor применяет смену статуса заказа к его отправлениям.
type StatusProcessor interface {
	ProcessOrderStatusChange(ctx context.Context, change entities.OrderModify) (*entities.Order, error)
}

type eventLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
