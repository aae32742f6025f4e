//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_get_test
package shipment_get

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
	GetShipmentByWaybill(ctx context.Context, waybill string) (*entities.Shipment, error)
	GetShipmentByID(ctx context.Context, id string) (*entities.Shipment, error)
	GetShipmentDetails(ctx context.Context, orderID string) ([]entities.Shipment, error)
}
