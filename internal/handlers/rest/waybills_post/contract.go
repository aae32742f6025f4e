//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=waybills_post_test
package waybills_post

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
	GenerateWaybills(ctx context.Context, count int, mode entities.WaybillFetchMode) ([]entities.Waybill, error)
}
