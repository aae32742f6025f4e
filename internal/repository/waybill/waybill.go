package waybill

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"shipment/internal/entities"
	"shipment/internal/service/waybill"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var waybillColumns = []string{
	"code",
	"status",
	"source",
	"generated_at",
	"reserved_by",
	"reserved_at",
	"used_at",
	"cancelled_at",
	"order_id",
	"shipment_id",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetAvailable FIFO по generated_at, code как тай-брейкер для стабильного порядка.
func (r *Repository) GetAvailable(ctx context.Context, count int, filter entities.WaybillFilter) ([]entities.Waybill, error) {
	builder := qb.
		Select(waybillColumns...).
		From("waybills").
		Where(sq.Eq{"status": entities.WaybillGenerated.String()})

	if filter.Source != nil {
		builder = builder.Where(sq.Eq{"source": filter.Source.String()})
	}
	if filter.Demo != nil {
		if *filter.Demo {
			builder = builder.Where(sq.Eq{"source": entities.WaybillSourceDemo.String()})
		} else {
			builder = builder.Where(sq.NotEq{"source": entities.WaybillSourceDemo.String()})
		}
	}

	query, args, err := builder.
		OrderBy("generated_at ASC", "code ASC").
		Limit(uint64(count)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected waybill repository getavailable error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected waybill repository getavailable error: %w", err)
	}
	defer rows.Close()

	waybillModels := make([]WaybillDB, 0, count)
	for rows.Next() {
		var waybillModel WaybillDB
		if err := scanWaybill(rows, &waybillModel); err != nil {
			return nil, fmt.Errorf("unexpected waybill repository getavailable error: %w", err)
		}
		waybillModels = append(waybillModels, waybillModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected waybill repository getavailable error: %w", err)
	}

	return ToDomainList(waybillModels), nil
}

func (r *Repository) GetByCode(ctx context.Context, code string) (*entities.Waybill, error) {
	query, args, err := qb.
		Select(waybillColumns...).
		From("waybills").
		Where(sq.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected waybill repository getbycode error: %w", err)
	}

	var waybillModel WaybillDB
	err = scanWaybill(r.querier.QueryRow(ctx, query, args...), &waybillModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, waybill.ErrWaybillNotFound
		}
		return nil, fmt.Errorf("unexpected waybill repository getbycode error: %w", err)
	}

	return ToDomain(&waybillModel), nil
}

// Reserve compare-and-set: WHERE status = 'generated' гарантирует,
// что одну накладную не зарезервируют два конкурентных вызова.
// Возвращает только реально перевернутые коды.
func (r *Repository) Reserve(ctx context.Context, codes []string, reservedBy string) ([]string, error) {
	query, args, err := qb.
		Update("waybills").
		Set("status", entities.WaybillReserved.String()).
		Set("reserved_by", reservedBy).
		Set("reserved_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"code":   codes,
			"status": entities.WaybillGenerated.String(),
		}).
		Suffix("RETURNING code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected waybill repository reserve error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected waybill repository reserve error: %w", err)
	}
	defer rows.Close()

	reserved := make([]string, 0, len(codes))
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("unexpected waybill repository reserve error: %w", err)
		}
		reserved = append(reserved, code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected waybill repository reserve error: %w", err)
	}

	return reserved, nil
}

// Use false означает, что накладная уже в терминальном статусе (или не существует).
func (r *Repository) Use(ctx context.Context, code, orderID, shipmentID string) (bool, error) {
	query, args, err := qb.
		Update("waybills").
		Set("status", entities.WaybillUsed.String()).
		Set("used_at", sq.Expr("NOW()")).
		Set("order_id", orderID).
		Set("shipment_id", shipmentID).
		Where(sq.Eq{
			"code": code,
			"status": []string{
				entities.WaybillGenerated.String(),
				entities.WaybillReserved.String(),
			},
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected waybill repository use error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("unexpected waybill repository use error: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Cancel(ctx context.Context, code string) (bool, error) {
	query, args, err := qb.
		Update("waybills").
		Set("status", entities.WaybillCancelled.String()).
		Set("cancelled_at", sq.Expr("NOW()")).
		Where(sq.Eq{
			"code": code,
			"status": []string{
				entities.WaybillGenerated.String(),
				entities.WaybillReserved.String(),
			},
		}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected waybill repository cancel error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("unexpected waybill repository cancel error: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Release возвращает в generated только то, что все еще зарезервировано этим же актором.
func (r *Repository) Release(ctx context.Context, codes []string, reservedBy string) (int64, error) {
	query, args, err := qb.
		Update("waybills").
		Set("status", entities.WaybillGenerated.String()).
		Set("reserved_by", nil).
		Set("reserved_at", nil).
		Where(sq.Eq{
			"code":        codes,
			"status":      entities.WaybillReserved.String(),
			"reserved_by": reservedBy,
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected waybill repository release error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected waybill repository release error: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Add дубликаты молча пропускаются, возвращается число реально вставленных строк.
func (r *Repository) Add(ctx context.Context, waybills []entities.Waybill) (int64, error) {
	if len(waybills) == 0 {
		return 0, nil
	}

	builder := qb.
		Insert("waybills").
		Columns("code", "status", "source", "generated_at")

	for _, w := range waybills {
		generatedAt := w.GeneratedAt
		if generatedAt.IsZero() {
			generatedAt = time.Now().UTC()
		}
		builder = builder.Values(w.Code, entities.WaybillGenerated.String(), w.Source.String(), generatedAt)
	}

	query, args, err := builder.
		Suffix("ON CONFLICT (code) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected waybill repository add error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected waybill repository add error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) ExpireReservations(ctx context.Context, reservedBefore time.Time) (int64, error) {
	query, args, err := qb.
		Update("waybills").
		Set("status", entities.WaybillGenerated.String()).
		Set("reserved_by", nil).
		Set("reserved_at", nil).
		Where(sq.Eq{"status": entities.WaybillReserved.String()}).
		Where(sq.Lt{"reserved_at": reservedBefore}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected waybill repository expire error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected waybill repository expire error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (*entities.WaybillPoolStats, error) {
	query := `SELECT status, COUNT(*), COUNT(*) FILTER (WHERE source = 'demo') FROM waybills GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected waybill repository countbystatus error: %w", err)
	}
	defer rows.Close()

	stats := &entities.WaybillPoolStats{}
	for rows.Next() {
		var (
			status string
			count  int64
			demo   int64
		)
		if err := rows.Scan(&status, &count, &demo); err != nil {
			return nil, fmt.Errorf("unexpected waybill repository countbystatus error: %w", err)
		}

		switch entities.WaybillStatusType(status) {
		case entities.WaybillGenerated:
			stats.Generated = count
			stats.GeneratedDemo = demo
		case entities.WaybillReserved:
			stats.Reserved = count
		case entities.WaybillUsed:
			stats.Used = count
		case entities.WaybillCancelled:
			stats.Cancelled = count
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected waybill repository countbystatus error: %w", err)
	}

	return stats, nil
}

func scanWaybill(row pgx.Row, w *WaybillDB) error {
	return row.Scan(
		&w.Code,
		&w.Status,
		&w.Source,
		&w.GeneratedAt,
		&w.ReservedBy,
		&w.ReservedAt,
		&w.UsedAt,
		&w.CancelledAt,
		&w.OrderID,
		&w.ShipmentID,
	)
}
