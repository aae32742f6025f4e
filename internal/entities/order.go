package entities

import "time"

type Order struct {
	ID                 string
	Status             OrderStatusType
	Address            ShippingAddress
	PaymentMode        PaymentModeType
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
	ShipmentStatus     *ShipmentStatusType
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type ShippingAddress struct {
	Name    string
	Phone   string
	Address string
	City    string
	State   string
	Pincode string
	Country string
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderConfirmed  OrderStatusType = "confirmed"
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
	OrderReturned   OrderStatusType = "returned"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// OrderModify только поля связки с отправлением, остальным заказом владеет админка.
type OrderModify struct {
	ID              *string
	Status          *OrderStatusType
	ShipmentCreated *bool
	Waybill         *string
	ShipmentID      *string
	ShipmentStatus  *ShipmentStatusType
}
