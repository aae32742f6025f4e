//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=waybill_replenish_test
package waybill_replenish

import (
	"context"

	"shipment/internal/entities"
)

type Service interface {
	Replenish(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*entities.WaybillPoolStats, error)
}
