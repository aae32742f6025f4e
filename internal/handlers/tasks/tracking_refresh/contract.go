//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_refresh_test
package tracking_refresh

import (
	"context"

	"shipment/internal/entities"
)

type Service interface {
	RefreshActiveShipments(ctx context.Context, limit int) (*entities.TrackingRefresh, error)
}
