package waybill

import (
	"shipment/internal/entities"
)

func ToDomain(w *WaybillDB) *entities.Waybill {
	if w == nil {
		return nil
	}

	return &entities.Waybill{
		Code:        w.Code,
		Status:      entities.WaybillStatusType(w.Status),
		Source:      entities.WaybillSourceType(w.Source),
		GeneratedAt: w.GeneratedAt,
		ReservedBy:  w.ReservedBy,
		ReservedAt:  w.ReservedAt,
		UsedAt:      w.UsedAt,
		CancelledAt: w.CancelledAt,
		OrderID:     w.OrderID,
		ShipmentID:  w.ShipmentID,
	}
}

func ToDomainList(waybillsDB []WaybillDB) []entities.Waybill {
	if len(waybillsDB) == 0 {
		return []entities.Waybill{}
	}

	result := make([]entities.Waybill, len(waybillsDB))
	for i, waybillDB := range waybillsDB {
		result[i] = *ToDomain(&waybillDB)
	}
	return result
}
