package shipment

import (
	"encoding/json"

	"shipment/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	var carrierResponse json.RawMessage
	if len(s.CarrierResponse) > 0 {
		carrierResponse = json.RawMessage(s.CarrierResponse)
	}

	return &entities.Shipment{
		ID:             s.ID,
		OrderID:        s.OrderID,
		Waybills:       s.Waybills,
		PrimaryWaybill: s.PrimaryWaybill,
		Type:           entities.ShipmentType(s.ShipmentType),
		Status:         entities.ShipmentStatusType(s.Status),
		PickupLocation: s.PickupLocation,
		Package: entities.PackageAttributes{
			WeightGrams:  s.WeightGrams,
			LengthCm:     s.LengthCm,
			BreadthCm:    s.BreadthCm,
			HeightCm:     s.HeightCm,
			PaymentMode:  entities.PaymentModeType(s.PaymentMode),
			CODAmount:    s.CODAmount,
			ShippingMode: entities.ShippingModeType(s.ShippingMode),
			Quantity:     s.Quantity,
		},
		ProductDescription: s.ProductDescription,
		HSNCode:            s.HSNCode,
		Demo:               s.Demo,
		CarrierResponse:    carrierResponse,
		LabelGenerated:     s.LabelGenerated,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		CancelledAt:        s.CancelledAt,
	}
}

func ToDomainList(shipmentsDB []ShipmentDB) []entities.Shipment {
	if len(shipmentsDB) == 0 {
		return []entities.Shipment{}
	}

	result := make([]entities.Shipment, len(shipmentsDB))
	for i, shipmentDB := range shipmentsDB {
		result[i] = *ToDomain(&shipmentDB)
	}
	return result
}

func FromDomain(s *entities.Shipment) *ShipmentDB {
	if s == nil {
		return nil
	}

	var carrierResponse []byte
	if len(s.CarrierResponse) > 0 {
		carrierResponse = s.CarrierResponse
	}

	return &ShipmentDB{
		ID:                 s.ID,
		OrderID:            s.OrderID,
		Waybills:           s.Waybills,
		PrimaryWaybill:     s.PrimaryWaybill,
		ShipmentType:       s.Type.String(),
		Status:             s.Status.String(),
		PickupLocation:     s.PickupLocation,
		WeightGrams:        s.Package.WeightGrams,
		LengthCm:           s.Package.LengthCm,
		BreadthCm:          s.Package.BreadthCm,
		HeightCm:           s.Package.HeightCm,
		PaymentMode:        s.Package.PaymentMode.String(),
		CODAmount:          s.Package.CODAmount,
		ShippingMode:       s.Package.ShippingMode.String(),
		Quantity:           s.Package.Quantity,
		ProductDescription: s.ProductDescription,
		HSNCode:            s.HSNCode,
		Demo:               s.Demo,
		CarrierResponse:    carrierResponse,
		LabelGenerated:     s.LabelGenerated,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		CancelledAt:        s.CancelledAt,
	}
}

func TrackingEventToDomain(e *TrackingEventDB) entities.TrackingEvent {
	return entities.TrackingEvent{
		ID:          e.ID,
		ShipmentID:  e.ShipmentID,
		OccurredAt:  e.OccurredAt,
		Status:      e.Status,
		Location:    e.Location,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}
