package warehouse

import "shipment/internal/entities"

func ToDomain(w *WarehouseDB) *entities.Warehouse {
	if w == nil {
		return nil
	}

	return &entities.Warehouse{
		Name:                  w.Name,
		Phone:                 w.Phone,
		Email:                 w.Email,
		Address:               w.Address,
		City:                  w.City,
		Pincode:               w.Pincode,
		State:                 w.State,
		Country:               w.Country,
		ReturnAddress:         w.ReturnAddress,
		ReturnPincode:         w.ReturnPincode,
		ReturnCity:            w.ReturnCity,
		ReturnState:           w.ReturnState,
		Active:                w.Active,
		RegisteredWithCarrier: w.RegisteredWithCarrier,
		UpdatedAt:             w.UpdatedAt,
	}
}

func ToDomainList(warehousesDB []WarehouseDB) []entities.Warehouse {
	if len(warehousesDB) == 0 {
		return []entities.Warehouse{}
	}

	result := make([]entities.Warehouse, len(warehousesDB))
	for i, warehouseDB := range warehousesDB {
		result[i] = *ToDomain(&warehouseDB)
	}
	return result
}
