package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"shipment/internal/entities"
	"shipment/internal/service/shipment"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Get настройки хранятся одной строкой с id = 1.
func (r *Repository) Get(ctx context.Context) (*entities.ShipmentSettings, error) {
	query := `
		SELECT default_weight_grams, default_length_cm, default_breadth_cm, default_height_cm,
			lead_time_days, default_hsn_code, hsn_by_category, default_shipping_mode
		FROM shipment_settings
		WHERE id = 1`

	var m SettingsDB
	err := r.querier.QueryRow(ctx, query).Scan(
		&m.DefaultWeightGrams,
		&m.DefaultLengthCm,
		&m.DefaultBreadthCm,
		&m.DefaultHeightCm,
		&m.LeadTimeDays,
		&m.DefaultHSNCode,
		&m.HSNByCategory,
		&m.DefaultShippingMode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("unexpected settings repository get error: %w", err)
	}

	return ToDomain(&m), nil
}
