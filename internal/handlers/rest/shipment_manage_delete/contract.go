//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_manage_delete_test
package shipment_manage_delete

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
	CancelShipmentByWaybill(ctx context.Context, waybill string) (*entities.Shipment, error)
}
