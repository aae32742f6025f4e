package delhivery

import (
	"context"
	"errors"

	"shipment/internal/entities"
)

// registrationStrategy один способ зарегистрировать склад у перевозчика.
type registrationStrategy struct {
	name string
	call func(ctx context.Context, req *WarehouseRequest) (*WarehouseResponse, error)
}

// registrationStrategies порядок важен: сначала create, если склад уже есть, то edit.
func (g *Gateway) registrationStrategies() []registrationStrategy {
	return []registrationStrategy{
		{name: "create", call: g.api.CreateWarehouse},
		{name: "edit", call: g.api.EditWarehouse},
	}
}

// runStrategies выигрывает первая успешная стратегия, иначе возвращаем последнюю ошибку.
// Транспорт и отсутствие токена прерывают перебор сразу.
func runStrategies(
	ctx context.Context,
	strategies []registrationStrategy,
	req *WarehouseRequest,
) (*entities.WarehouseRegistration, error) {
	lastErr := ErrNoStrategySucceeded

	for _, strategy := range strategies {
		resp, err := strategy.call(ctx, req)
		if err == nil && !resp.Success {
			err = rejectedError(warehouseMessage(resp))
		}
		if err == nil {
			return &entities.WarehouseRegistration{
				Name:     req.Name,
				Strategy: strategy.name,
				Message:  warehouseMessage(resp),
			}, nil
		}

		if errors.Is(err, ErrTransport) || errors.Is(err, ErrNotConfigured) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func warehouseMessage(resp *WarehouseResponse) string {
	if len(resp.Error) > 0 {
		return resp.Error.Join()
	}
	return resp.Message
}
