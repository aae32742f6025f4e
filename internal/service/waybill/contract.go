//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=waybill_test
package waybill

import (
	"context"
	"time"

	"shipment/internal/entities"
)

type Repository interface {
	GetAvailable(ctx context.Context, count int, filter entities.WaybillFilter) ([]entities.Waybill, error)
	GetByCode(ctx context.Context, code string) (*entities.Waybill, error)
	Reserve(ctx context.Context, codes []string, reservedBy string) ([]string, error)
	Use(ctx context.Context, code, orderID, shipmentID string) (bool, error)
	Cancel(ctx context.Context, code string) (bool, error)
	Release(ctx context.Context, codes []string, reservedBy string) (int64, error)
	Add(ctx context.Context, waybills []entities.Waybill) (int64, error)
	ExpireReservations(ctx context.Context, reservedBefore time.Time) (int64, error)
	CountByStatus(ctx context.Context) (*entities.WaybillPoolStats, error)
}

type CarrierGateway interface {
	IsConfigured() bool
	GenerateWaybills(ctx context.Context, count int) ([]entities.Waybill, error)
	FetchSingleWaybill(ctx context.Context) (*entities.Waybill, error)
}
