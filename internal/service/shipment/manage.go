package shipment

import (
	"context"
	"errors"
	"fmt"

	"shipment/internal/entities"
)

// UpdateShipment правка у перевозчика, затем локальная копия атрибутов посылки.
// Адрес получателя хранит заказ, локально его не пишем.
func (s *Service) UpdateShipment(ctx context.Context, waybill string, edit entities.ShipmentEdit) (*entities.Shipment, error) {
	if !isValidID(waybill) {
		return nil, ErrInvalidWaybill
	}
	if edit.IsEmpty() {
		return nil, ErrNothingToUpdate
	}

	shipment, err := s.repository.GetByWaybill(ctx, waybill)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	// проверка до вызова перевозчика
	if !isMutable(shipment.Status) {
		return nil, fmt.Errorf("%w: edit in status %s", ErrStateNotAllowed, shipment.Status)
	}
	if !shipment.Demo {
		if err := s.gateway.EditShipment(ctx, shipment.PrimaryWaybill, shipment.Status, edit); err != nil {
			return nil, err
		}
	}

	modify := entities.ShipmentModify{
		ID:                 &shipment.ID,
		Package:            applyEdit(shipment.Package, edit),
		ProductDescription: edit.ProductDescription,
	}
	if modify.Package == nil && modify.ProductDescription == nil {
		// поменялись только поля получателя
		return shipment, nil
	}

	updated, err := s.repository.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("update shipment: %w", err)
	}
	return updated, nil
}

func (s *Service) CancelShipmentByWaybill(ctx context.Context, waybill string) (*entities.Shipment, error) {
	if !isValidID(waybill) {
		return nil, ErrInvalidWaybill
	}

	shipment, err := s.repository.GetByWaybill(ctx, waybill)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	if err := s.cancel(ctx, shipment); err != nil {
		return nil, err
	}
	return shipment, nil
}

// CancelShipmentsByOrder отменяет все нетерминальные отправления заказа.
// Ошибки по отдельным отправлениям собираются, остальные продолжают отменяться.
func (s *Service) CancelShipmentsByOrder(ctx context.Context, orderID string) (int, error) {
	if !isValidID(orderID) {
		return 0, ErrInvalidOrderID
	}

	shipments, err := s.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("get shipments by order: %w", err)
	}

	var (
		cancelled int
		errs      []error
	)
	for i := range shipments {
		if shipments[i].Status.IsTerminal() {
			continue
		}
		if err := s.cancel(ctx, &shipments[i]); err != nil {
			errs = append(errs, fmt.Errorf("cancel shipment %s: %w", shipments[i].ID, err))
			continue
		}
		cancelled++
	}

	return cancelled, errors.Join(errs...)
}

func (s *Service) cancel(ctx context.Context, shipment *entities.Shipment) error {
	if !isMutable(shipment.Status) {
		return fmt.Errorf("%w: cancel in status %s", ErrStateNotAllowed, shipment.Status)
	}
	// demo-накладные перевозчику неизвестны
	if !shipment.Demo {
		if err := s.gateway.CancelShipment(ctx, shipment.PrimaryWaybill, shipment.Status); err != nil {
			return err
		}
	}

	cancelled, err := s.repository.UpdateStatus(ctx, shipment.ID, entities.ShipmentCancelled)
	if err != nil {
		return fmt.Errorf("update shipment status: %w", err)
	}
	if !cancelled {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, shipment.Status, entities.ShipmentCancelled)
	}

	shipment.Status = entities.ShipmentCancelled
	now := s.now()
	shipment.CancelledAt = &now

	// после отмены по заказу можно создать новое отправление
	shipmentCreated := false
	err = s.orderRepository.UpdateShipmentLink(ctx, entities.OrderModify{
		ID:              &shipment.OrderID,
		ShipmentCreated: &shipmentCreated,
		ShipmentStatus:  &shipment.Status,
	})
	if err != nil {
		return fmt.Errorf("link shipment status to order: %w", err)
	}

	s.publish(ctx, entities.ShipmentEventCancelled, shipment)
	return nil
}

// GenerateShippingLabel по умолчанию формат 4R, после получения отмечаем labelGenerated.
func (s *Service) GenerateShippingLabel(ctx context.Context, waybill string, opts entities.LabelOptions) (*entities.Label, error) {
	if !isValidID(waybill) {
		return nil, ErrInvalidWaybill
	}
	if opts.Size == "" {
		opts.Size = entities.LabelSize4R
	}
	if !isValidLabelSize(opts.Size) {
		return nil, fmt.Errorf("%w: unknown label size %q", ErrValidation, opts.Size)
	}

	shipment, err := s.repository.GetByWaybill(ctx, waybill)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	label, err := s.gateway.FetchLabel(ctx, shipment.PrimaryWaybill, opts)
	if err != nil {
		return nil, err
	}

	if !shipment.LabelGenerated {
		labelGenerated := true
		_, err := s.repository.Update(ctx, entities.ShipmentModify{
			ID:             &shipment.ID,
			LabelGenerated: &labelGenerated,
		})
		if err != nil {
			return nil, fmt.Errorf("mark label generated: %w", err)
		}
	}

	return label, nil
}

func (s *Service) CheckServiceability(ctx context.Context, pincode string, productType entities.ProductType) (*entities.Serviceability, error) {
	switch productType {
	case "", entities.ProductStandard:
		return s.gateway.CheckPincodeServiceability(ctx, pincode)
	case entities.ProductHeavy:
		return s.gateway.CheckHeavyPincodeServiceability(ctx, pincode)
	default:
		return nil, ErrInvalidProductType
	}
}

func (s *Service) GenerateWaybills(ctx context.Context, count int, mode entities.WaybillFetchMode) ([]entities.Waybill, error) {
	if mode == "" {
		mode = entities.WaybillFetchBulk
	}

	waybills, err := s.waybillPool.Generate(ctx, count, mode)
	if err != nil {
		return nil, fmt.Errorf("generate waybills: %w", err)
	}
	return waybills, nil
}

func isMutable(status entities.ShipmentStatusType) bool {
	for _, st := range entities.MutableShipmentStatuses() {
		if st == status {
			return true
		}
	}
	return false
}

// applyEdit nil, если атрибуты посылки не менялись.
func applyEdit(current entities.PackageAttributes, edit entities.ShipmentEdit) *entities.PackageAttributes {
	changed := false
	next := current

	if edit.WeightGrams != nil {
		next.WeightGrams = *edit.WeightGrams
		changed = true
	}
	if edit.LengthCm != nil {
		next.LengthCm = *edit.LengthCm
		changed = true
	}
	if edit.BreadthCm != nil {
		next.BreadthCm = *edit.BreadthCm
		changed = true
	}
	if edit.HeightCm != nil {
		next.HeightCm = *edit.HeightCm
		changed = true
	}
	if edit.PaymentMode != nil {
		next.PaymentMode = *edit.PaymentMode
		if next.PaymentMode != entities.PaymentCOD {
			next.CODAmount = 0
		}
		changed = true
	}
	if edit.CODAmount != nil {
		next.CODAmount = *edit.CODAmount
		changed = true
	}

	if !changed {
		return nil
	}
	return &next
}
