package warehouse

import "time"

type WarehouseDB struct {
	Name                  string
	Phone                 string
	Email                 string
	Address               string
	City                  string
	Pincode               string
	State                 string
	Country               string
	ReturnAddress         string
	ReturnPincode         string
	ReturnCity            string
	ReturnState           string
	Active                bool
	RegisteredWithCarrier bool
	UpdatedAt             time.Time
}
