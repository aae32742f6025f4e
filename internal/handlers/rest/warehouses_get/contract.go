//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=warehouses_get_test
package warehouses_get

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
	SyncWarehouses(ctx context.Context) (*entities.WarehouseSync, error)
}
