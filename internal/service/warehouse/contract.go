//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=warehouse_test
package warehouse

import (
	"context"

	"shipment/internal/entities"
)

type Repository interface {
	GetByName(ctx context.Context, name string) (*entities.Warehouse, error)
	List(ctx context.Context) ([]entities.Warehouse, error)
	MarkRegistered(ctx context.Context, names []string) (int64, error)
}

type CarrierGateway interface {
	FetchWarehouses(ctx context.Context) ([]entities.Warehouse, error)
	RegisterWarehouse(ctx context.Context, warehouse entities.Warehouse) (*entities.WarehouseRegistration, error)
}
