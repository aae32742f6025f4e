package warehouse

import (
	"context"
	"fmt"

	"shipment/internal/entities"
)

type Service struct {
	repository Repository
	gateway    CarrierGateway
}

func New(repository Repository, gateway CarrierGateway) *Service {
	return &Service{
		repository: repository,
		gateway:    gateway,
	}
}

// SyncWarehouses склады, известные перевозчику, отмечаются зарегистрированными локально.
func (s *Service) SyncWarehouses(ctx context.Context) (*entities.WarehouseSync, error) {
	carrierWarehouses, err := s.gateway.FetchWarehouses(ctx)
	if err != nil {
		return nil, err
	}

	local, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}

	known := make(map[string]struct{}, len(carrierWarehouses))
	for _, w := range carrierWarehouses {
		known[normalizeName(w.Name)] = struct{}{}
	}

	names := make([]string, 0, len(local))
	for _, w := range local {
		if _, ok := known[normalizeName(w.Name)]; ok && !w.RegisteredWithCarrier {
			names = append(names, w.Name)
		}
	}

	registered, err := s.repository.MarkRegistered(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("mark warehouses registered: %w", err)
	}

	return &entities.WarehouseSync{
		CarrierWarehouses: carrierWarehouses,
		Registered:        registered,
	}, nil
}

// RegisterWarehouse регистрирует локальный склад у перевозчика (create, затем edit).
func (s *Service) RegisterWarehouse(ctx context.Context, name string) (*entities.WarehouseRegistration, error) {
	if !isValidName(name) {
		return nil, ErrInvalidName
	}

	warehouse, err := s.repository.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	if !warehouse.Active {
		return nil, ErrWarehouseInactive
	}

	registration, err := s.gateway.RegisterWarehouse(ctx, *warehouse)
	if err != nil {
		return nil, err
	}

	if _, err := s.repository.MarkRegistered(ctx, []string{warehouse.Name}); err != nil {
		return nil, fmt.Errorf("mark warehouse registered: %w", err)
	}
	return registration, nil
}
