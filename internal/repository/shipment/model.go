package shipment

import "time"

type ShipmentDB struct {
	ID                 string
	OrderID            string
	Waybills           []string
	PrimaryWaybill     string
	ShipmentType       string
	Status             string
	PickupLocation     string
	WeightGrams        float64
	LengthCm           float64
	BreadthCm          float64
	HeightCm           float64
	PaymentMode        string
	CODAmount          float64
	ShippingMode       string
	Quantity           int
	ProductDescription string
	HSNCode            string
	Demo               bool
	CarrierResponse    []byte
	LabelGenerated     bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CancelledAt        *time.Time
}

type TrackingEventDB struct {
	ID          int64
	ShipmentID  string
	OccurredAt  time.Time
	Status      string
	Location    string
	Description string
	CreatedAt   time.Time
}
