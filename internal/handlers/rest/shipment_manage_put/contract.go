//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_manage_put_test
package shipment_manage_put

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
	UpdateShipment(ctx context.Context, waybill string, edit entities.ShipmentEdit) (*entities.Shipment, error)
}
