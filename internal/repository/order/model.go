package order

import "time"

type OrderDB struct {
	ID                 string
	Status             string
	ShippingName       string
	ShippingPhone      string
	ShippingAddress    string
	ShippingCity       string
	ShippingState      string
	ShippingPincode    string
	ShippingCountry    string
	PaymentMode        string
	TotalAmount        float64
	CODAmount          float64
	ProductDescription string
	ProductCategory    string
	Quantity           int
	WeightGrams        *float64
	LengthCm           *float64
	BreadthCm          *float64
	HeightCm           *float64
	ShipmentCreated    bool
	Waybill            *string
	ShipmentID         *string
	ShipmentStatus     *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
