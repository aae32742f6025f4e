package waybill

import "time"

type WaybillDB struct {
	Code        string
	Status      string
	Source      string
	GeneratedAt time.Time
	ReservedBy  *string
	ReservedAt  *time.Time
	UsedAt      *time.Time
	CancelledAt *time.Time
	OrderID     *string
	ShipmentID  *string
}
