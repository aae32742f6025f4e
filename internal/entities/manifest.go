package entities

import (
	"encoding/json"
	"time"
)

// Manifest запрос на создание отправления у перевозчика.
type Manifest struct {
	OrderID               string
	Waybills              []string
	PrimaryWaybill        string
	Type                  ShipmentType
	Consignee             ShippingAddress
	Package               PackageAttributes
	ProductDescription    string
	HSNCode               string
	TotalAmount           float64
	PickupLocation        Warehouse
	OrderDate             time.Time
	ManifestDate          time.Time
	EstimatedDeliveryDate time.Time
	CustomFields          map[string]string
}

type ManifestResult struct {
	Success  bool
	Packages []ManifestPackage
	Remark   string
	Raw      json.RawMessage
}

type ManifestPackage struct {
	Waybill string
	Status  string
	Remarks []string
}
