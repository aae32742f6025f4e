package order

import "shipment/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	var shipmentStatus *entities.ShipmentStatusType
	if o.ShipmentStatus != nil {
		s := entities.ShipmentStatusType(*o.ShipmentStatus)
		shipmentStatus = &s
	}

	return &entities.Order{
		ID:     o.ID,
		Status: entities.OrderStatusType(o.Status),
		Address: entities.ShippingAddress{
			Name:    o.ShippingName,
			Phone:   o.ShippingPhone,
			Address: o.ShippingAddress,
			City:    o.ShippingCity,
			State:   o.ShippingState,
			Pincode: o.ShippingPincode,
			Country: o.ShippingCountry,
		},
		PaymentMode:        entities.PaymentModeType(o.PaymentMode),
		TotalAmount:        o.TotalAmount,
		CODAmount:          o.CODAmount,
		ProductDescription: o.ProductDescription,
		ProductCategory:    o.ProductCategory,
		Quantity:           o.Quantity,
		WeightGrams:        o.WeightGrams,
		LengthCm:           o.LengthCm,
		BreadthCm:          o.BreadthCm,
		HeightCm:           o.HeightCm,
		ShipmentCreated:    o.ShipmentCreated,
		Waybill:            o.Waybill,
		ShipmentID:         o.ShipmentID,
		ShipmentStatus:     shipmentStatus,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}
