//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=warehouse_post_test
package warehouse_post

import (
	"context"

	"shipment/internal/entities"
	"shipment/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RegisterWarehouse(ctx context.Context, name string) (*entities.WarehouseRegistration, error)
}
