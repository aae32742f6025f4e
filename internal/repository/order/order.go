package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shipment/internal/entities"
	"shipment/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"id",
	"status",
	"shipping_name",
	"shipping_phone",
	"shipping_address",
	"shipping_city",
	"shipping_state",
	"shipping_pincode",
	"shipping_country",
	"payment_mode",
	"total_amount",
	"cod_amount",
	"product_description",
	"product_category",
	"quantity",
	"weight_grams",
	"length_cm",
	"breadth_cm",
	"height_cm",
	"shipment_created",
	"waybill",
	"shipment_id",
	"shipment_status",
	"created_at",
	"updated_at",
}

// Repository заказами владеет админка, здесь только чтение и поля связки с отправлением.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	var m OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&m.ID,
		&m.Status,
		&m.ShippingName,
		&m.ShippingPhone,
		&m.ShippingAddress,
		&m.ShippingCity,
		&m.ShippingState,
		&m.ShippingPincode,
		&m.ShippingCountry,
		&m.PaymentMode,
		&m.TotalAmount,
		&m.CODAmount,
		&m.ProductDescription,
		&m.ProductCategory,
		&m.Quantity,
		&m.WeightGrams,
		&m.LengthCm,
		&m.BreadthCm,
		&m.HeightCm,
		&m.ShipmentCreated,
		&m.Waybill,
		&m.ShipmentID,
		&m.ShipmentStatus,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&m), nil
}

// UpdateShipmentLink пишет только переданные поля связки.
func (r *Repository) UpdateShipmentLink(ctx context.Context, modify entities.OrderModify) error {
	if modify.ID == nil {
		return order.ErrInvalidOrderID
	}

	builder := qb.Update("orders")

	if modify.Status != nil {
		builder = builder.Set("status", modify.Status.String())
	}
	if modify.ShipmentCreated != nil {
		builder = builder.Set("shipment_created", *modify.ShipmentCreated)
	}
	if modify.Waybill != nil {
		builder = builder.Set("waybill", *modify.Waybill)
	}
	if modify.ShipmentID != nil {
		builder = builder.Set("shipment_id", *modify.ShipmentID)
	}
	if modify.ShipmentStatus != nil {
		builder = builder.Set("shipment_status", modify.ShipmentStatus.String())
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *modify.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository updateshipmentlink error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository updateshipmentlink error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}
