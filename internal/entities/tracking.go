package entities

import (
	"encoding/json"
	"time"
)

type TrackingEvent struct {
	ID          int64
	ShipmentID  string
	OccurredAt  time.Time
	Status      string
	Location    string
	Description string
	CreatedAt   time.Time
}

// TrackingInfo нормализованный ответ трекинга перевозчика.
// Found=false значит, что перевозчик еще не знает о накладной.
type TrackingInfo struct {
	Waybill           string
	Found             bool
	Status            ShipmentStatusType
	RawStatus         string
	CurrentLocation   string
	EstimatedDelivery *time.Time
	Scans             []TrackingScan
	Raw               json.RawMessage
}

type TrackingScan struct {
	OccurredAt  time.Time
	Status      string
	Location    string
	Description string
}

// TrackingRefresh итог одного прохода фонового опроса.
type TrackingRefresh struct {
	Checked  int
	Advanced int
	Failed   int
}
