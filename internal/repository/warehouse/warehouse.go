package warehouse

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shipment/internal/entities"
	"shipment/internal/service/warehouse"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var warehouseColumns = []string{
	"name",
	"phone",
	"email",
	"address",
	"city",
	"pincode",
	"state",
	"country",
	"return_address",
	"return_pincode",
	"return_city",
	"return_state",
	"active",
	"registered_with_carrier",
	"updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByName(ctx context.Context, name string) (*entities.Warehouse, error) {
	query, args, err := qb.
		Select(warehouseColumns...).
		From("warehouses").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected warehouse repository getbyname error: %w", err)
	}

	var m WarehouseDB
	if err := scanWarehouse(r.querier.QueryRow(ctx, query, args...), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, warehouse.ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("unexpected warehouse repository getbyname error: %w", err)
	}

	return ToDomain(&m), nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Warehouse, error) {
	query, args, err := qb.
		Select(warehouseColumns...).
		From("warehouses").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected warehouse repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected warehouse repository list error: %w", err)
	}
	defer rows.Close()

	warehouseModels := make([]WarehouseDB, 0, 4)
	for rows.Next() {
		var m WarehouseDB
		if err := scanWarehouse(rows, &m); err != nil {
			return nil, fmt.Errorf("unexpected warehouse repository list error: %w", err)
		}
		warehouseModels = append(warehouseModels, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected warehouse repository list error: %w", err)
	}

	return ToDomainList(warehouseModels), nil
}

// MarkRegistered проставляет флаг регистрации у перевозчика, уже отмеченные не трогаем.
func (r *Repository) MarkRegistered(ctx context.Context, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}

	query, args, err := qb.
		Update("warehouses").
		Set("registered_with_carrier", true).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"name":                    names,
			"registered_with_carrier": false,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected warehouse repository markregistered error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected warehouse repository markregistered error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanWarehouse(row pgx.Row, m *WarehouseDB) error {
	return row.Scan(
		&m.Name,
		&m.Phone,
		&m.Email,
		&m.Address,
		&m.City,
		&m.Pincode,
		&m.State,
		&m.Country,
		&m.ReturnAddress,
		&m.ReturnPincode,
		&m.ReturnCity,
		&m.ReturnState,
		&m.Active,
		&m.RegisteredWithCarrier,
		&m.UpdatedAt,
	)
}
