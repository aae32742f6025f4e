package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shipment/internal/entities"
	"shipment/internal/repository"
	"shipment/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var shipmentColumns = []string{
	"id",
	"order_id",
	"waybills",
	"primary_waybill",
	"shipment_type",
	"status",
	"pickup_location",
	"weight_grams",
	"length_cm",
	"breadth_cm",
	"height_cm",
	"payment_mode",
	"cod_amount",
	"shipping_mode",
	"quantity",
	"product_description",
	"hsn_code",
	"demo",
	"carrier_response",
	"label_generated",
	"created_at",
	"updated_at",
	"cancelled_at",
}

// статусы, которые опрашиваем у перевозчика в фоне
var refreshableStatuses = []string{
	entities.ShipmentCreated.String(),
	entities.ShipmentManifested.String(),
	entities.ShipmentInTransit.String(),
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentEntity entities.Shipment) error {
	m := FromDomain(&shipmentEntity)

	query, args, err := qb.
		Insert("shipments").
		Columns(shipmentColumns...).
		Values(
			m.ID,
			m.OrderID,
			m.Waybills,
			m.PrimaryWaybill,
			m.ShipmentType,
			m.Status,
			m.PickupLocation,
			m.WeightGrams,
			m.LengthCm,
			m.BreadthCm,
			m.HeightCm,
			m.PaymentMode,
			m.CODAmount,
			m.ShippingMode,
			m.Quantity,
			m.ProductDescription,
			m.HSNCode,
			m.Demo,
			m.CarrierResponse,
			m.LabelGenerated,
			m.CreatedAt,
			m.UpdatedAt,
			m.CancelledAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, query, args...); err != nil {
		switch {
		case repository.IsUniqueViolationOn(err, repository.ConstraintActiveShipment):
			return shipment.ErrActiveShipmentExists
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			return shipment.ErrShipmentConflict
		}
		return fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Shipment, error) {
	return r.getOne(ctx, "getbyid", sq.Eq{"id": id})
}

// GetByWaybill ищем и по основной накладной, и среди дочерних mps.
func (r *Repository) GetByWaybill(ctx context.Context, waybill string) (*entities.Shipment, error) {
	return r.getOne(ctx, "getbywaybill", sq.Or{
		sq.Eq{"primary_waybill": waybill},
		sq.Expr("? = ANY(waybills)", waybill),
	})
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) ([]entities.Shipment, error) {
	query, args, err := qb.
		Select(shipmentColumns...).
		From("shipments").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository getbyorderid error: %w", err)
	}

	return r.list(ctx, "getbyorderid", query, args)
}

// HasActive активное = любое не отмененное.
func (r *Repository) HasActive(ctx context.Context, orderID string, shipmentType entities.ShipmentType) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM shipments
		WHERE order_id = $1 AND shipment_type = $2 AND status <> $3
	)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, orderID, shipmentType.String(), entities.ShipmentCancelled.String()).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected shipment repository hasactive error: %w", err)
	}

	return exists, nil
}

// UpdateStatus compare-and-set: статус меняется только из допустимых источников,
// поэтому откат назад при гонке двух опросов невозможен.
// false означает, что переход не применился.
func (r *Repository) UpdateStatus(ctx context.Context, id string, next entities.ShipmentStatusType) (bool, error) {
	sources := entities.TransitionSources(next)
	if len(sources) == 0 {
		return false, nil
	}

	statuses := make([]string, len(sources))
	for i, s := range sources {
		statuses[i] = s.String()
	}

	builder := qb.
		Update("shipments").
		Set("status", next.String()).
		Set("updated_at", sq.Expr("NOW()"))

	if next == entities.ShipmentCancelled {
		builder = builder.Set("cancelled_at", sq.Expr("NOW()"))
	}

	query, args, err := builder.
		Where(sq.Eq{
			"id":     id,
			"status": statuses,
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("unexpected shipment repository updatestatus error: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Update(ctx context.Context, modify entities.ShipmentModify) (*entities.Shipment, error) {
	if modify.ID == nil {
		return nil, shipment.ErrInvalidShipmentID
	}

	builder := qb.Update("shipments")

	// опциональные поля
	if modify.Package != nil {
		builder = builder.
			Set("weight_grams", modify.Package.WeightGrams).
			Set("length_cm", modify.Package.LengthCm).
			Set("breadth_cm", modify.Package.BreadthCm).
			Set("height_cm", modify.Package.HeightCm).
			Set("payment_mode", modify.Package.PaymentMode.String()).
			Set("cod_amount", modify.Package.CODAmount)
	}
	if modify.ProductDescription != nil {
		builder = builder.Set("product_description", *modify.ProductDescription)
	}
	if modify.LabelGenerated != nil {
		builder = builder.Set("label_generated", *modify.LabelGenerated)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *modify.ID}).
		Suffix("RETURNING " + strings.Join(shipmentColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	var shipmentModel ShipmentDB
	err = scanShipment(r.querier.QueryRow(ctx, query, args...), &shipmentModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return ToDomain(&shipmentModel), nil
}

// Touch сдвигает updated_at, чтобы фоновый опрос шел по кругу, а не по одним и тем же.
func (r *Repository) Touch(ctx context.Context, id string) error {
	query := `UPDATE shipments SET updated_at = NOW() WHERE id = $1`

	if _, err := r.querier.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("unexpected shipment repository touch error: %w", err)
	}
	return nil
}

// ListActive самые давно обновленные не-demo отправления в нетерминальных статусах.
func (r *Repository) ListActive(ctx context.Context, limit int) ([]entities.Shipment, error) {
	query, args, err := qb.
		Select(shipmentColumns...).
		From("shipments").
		Where(sq.Eq{
			"status": refreshableStatuses,
			"demo":   false,
		}).
		OrderBy("updated_at ASC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository listactive error: %w", err)
	}

	return r.list(ctx, "listactive", query, args)
}

func (r *Repository) getOne(ctx context.Context, op string, where sq.Sqlizer) (*entities.Shipment, error) {
	query, args, err := qb.
		Select(shipmentColumns...).
		From("shipments").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository %s error: %w", op, err)
	}

	var shipmentModel ShipmentDB
	err = scanShipment(r.querier.QueryRow(ctx, query, args...), &shipmentModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository %s error: %w", op, err)
	}

	return ToDomain(&shipmentModel), nil
}

func (r *Repository) list(ctx context.Context, op, query string, args []interface{}) ([]entities.Shipment, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository %s error: %w", op, err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 4)
	for rows.Next() {
		var shipmentModel ShipmentDB
		if err := scanShipment(rows, &shipmentModel); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository %s error: %w", op, err)
		}
		shipmentModels = append(shipmentModels, shipmentModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository %s error: %w", op, err)
	}

	return ToDomainList(shipmentModels), nil
}

func scanShipment(row pgx.Row, m *ShipmentDB) error {
	return row.Scan(
		&m.ID,
		&m.OrderID,
		&m.Waybills,
		&m.PrimaryWaybill,
		&m.ShipmentType,
		&m.Status,
		&m.PickupLocation,
		&m.WeightGrams,
		&m.LengthCm,
		&m.BreadthCm,
		&m.HeightCm,
		&m.PaymentMode,
		&m.CODAmount,
		&m.ShippingMode,
		&m.Quantity,
		&m.ProductDescription,
		&m.HSNCode,
		&m.Demo,
		&m.CarrierResponse,
		&m.LabelGenerated,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.CancelledAt,
	)
}

// AppendTrackingEvents дописывает только новые сканы, дубль определяется по
// (shipment_id, occurred_at, status, location). Возвращает число вставленных.
func (r *Repository) AppendTrackingEvents(ctx context.Context, shipmentID string, events []entities.TrackingEvent) (int64, error) {
	query := `
		INSERT INTO shipment_tracking_events (shipment_id, occurred_at, status, location, description)
		SELECT $1::text, $2::timestamptz, $3::text, $4::text, $5::text
		WHERE NOT EXISTS (
			SELECT 1 FROM shipment_tracking_events
			WHERE shipment_id = $1::text
				AND occurred_at = $2::timestamptz
				AND status = $3::text
				AND location = $4::text
		)`

	var inserted int64
	for _, e := range events {
		tag, err := r.querier.Exec(ctx, query, shipmentID, e.OccurredAt, e.Status, e.Location, e.Description)
		if err != nil {
			return inserted, fmt.Errorf("unexpected shipment repository appendtrackingevents error: %w", err)
		}
		inserted += tag.RowsAffected()
	}

	return inserted, nil
}

// GetTrackingEvents события в порядке вставки, время скана у перевозчика не учитывается.
func (r *Repository) GetTrackingEvents(ctx context.Context, shipmentID string) ([]entities.TrackingEvent, error) {
	query := `
		SELECT id, shipment_id, occurred_at, status, location, description, created_at
		FROM shipment_tracking_events
		WHERE shipment_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository gettrackingevents error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.TrackingEvent, 0, 8)
	for rows.Next() {
		var e TrackingEventDB
		if err := rows.Scan(&e.ID, &e.ShipmentID, &e.OccurredAt, &e.Status, &e.Location, &e.Description, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository gettrackingevents error: %w", err)
		}
		events = append(events, TrackingEventToDomain(&e))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository gettrackingevents error: %w", err)
	}

	return events, nil
}
