package response

import (
	"shipment/internal/entities"
	"shipment/internal/generated/dto"
)

// statusLabels подписи статусов для админки, внутри сервиса только коды.
var statusLabels = map[entities.ShipmentStatusType]string{
	entities.ShipmentPending:        "Pending",
	entities.ShipmentCreated:        "Created",
	entities.ShipmentManifested:     "Manifested",
	entities.ShipmentInTransit:      "In Transit",
	entities.ShipmentDelivered:      "Delivered",
	entities.ShipmentCancelled:      "Cancelled",
	entities.ShipmentReturnToOrigin: "RTO",
}

func StatusLabel(status entities.ShipmentStatusType) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status.String()
}

func ShipmentToDTO(s *entities.Shipment) dto.Shipment {
	res := dto.Shipment{
		Id:             s.ID,
		OrderId:        s.OrderID,
		Waybills:       s.Waybills,
		PrimaryWaybill: s.PrimaryWaybill,
		ShipmentType:   s.Type.String(),
		Status:         StatusLabel(s.Status),
		StatusCode:     s.Status.String(),
		PickupLocation: s.PickupLocation,
		Package: dto.PackageAttributes{
			Weight:       s.Package.WeightGrams,
			Length:       s.Package.LengthCm,
			Breadth:      s.Package.BreadthCm,
			Height:       s.Package.HeightCm,
			PaymentMode:  s.Package.PaymentMode.String(),
			CodAmount:    s.Package.CODAmount,
			ShippingMode: s.Package.ShippingMode.String(),
			Quantity:     s.Package.Quantity,
		},
		ProductDescription: optional(s.ProductDescription),
		HsnCode:            optional(s.HSNCode),
		Demo:               s.Demo,
		LabelGenerated:     s.LabelGenerated,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		CancelledAt:        s.CancelledAt,
	}
	if res.Waybills == nil {
		res.Waybills = []string{}
	}

	if len(s.TrackingEvents) > 0 {
		events := make([]dto.TrackingScan, 0, len(s.TrackingEvents))
		for _, e := range s.TrackingEvents {
			events = append(events, dto.TrackingScan{
				OccurredAt:  e.OccurredAt,
				Status:      e.Status,
				Location:    optional(e.Location),
				Description: optional(e.Description),
			})
		}
		res.TrackingEvents = &events
	}

	return res
}

func ShipmentsToDTO(shipments []entities.Shipment) []dto.Shipment {
	res := make([]dto.Shipment, 0, len(shipments))
	for i := range shipments {
		res = append(res, ShipmentToDTO(&shipments[i]))
	}
	return res
}

func TrackingScansToDTO(scans []entities.TrackingScan) []dto.TrackingScan {
	res := make([]dto.TrackingScan, 0, len(scans))
	for _, scan := range scans {
		res = append(res, dto.TrackingScan{
			OccurredAt:  scan.OccurredAt,
			Status:      scan.Status,
			Location:    optional(scan.Location),
			Description: optional(scan.Description),
		})
	}
	return res
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
