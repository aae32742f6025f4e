package entities

import "time"

type Warehouse struct {
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

type WarehouseRegistration struct {
	Name     string
	Strategy string
	Message  string
}

type WarehouseSync struct {
	CarrierWarehouses []Warehouse
	Registered        int64
}
