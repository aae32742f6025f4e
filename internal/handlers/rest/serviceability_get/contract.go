//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=serviceability_get_test
package serviceability_get

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
	CheckServiceability(ctx context.Context, pincode string, productType entities.ProductType) (*entities.Serviceability, error)
}
