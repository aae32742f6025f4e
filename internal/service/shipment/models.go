package shipment

import "shipment/internal/entities"

// CreateShipmentRequest пустые опциональные поля берутся из заказа, затем из настроек.
type CreateShipmentRequest struct {
	OrderID        string                    `validate:"required,max=64"`
	ShipmentType   entities.ShipmentType     `validate:"required,oneof=forward reverse replacement mps"`
	PickupLocation string                    `validate:"required,max=128"`
	ShippingMode   entities.ShippingModeType `validate:"omitempty,oneof=surface express"`
	PackageCount   int                       `validate:"gte=0,lte=50"`
	WeightGrams    *float64                  `validate:"omitempty,gt=0"`
	LengthCm       *float64                  `validate:"omitempty,gt=0"`
	BreadthCm      *float64                  `validate:"omitempty,gt=0"`
	HeightCm       *float64                  `validate:"omitempty,gt=0"`
	CustomFields   map[string]string
	Actor          string `validate:"required"`
}

// CreateShipmentResult накладные и сохраненное отправление.
type CreateShipmentResult struct {
	WaybillNumbers []string
	Shipment       *entities.Shipment
}
