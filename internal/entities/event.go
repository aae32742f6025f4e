package entities

import "time"

type ShipmentEventType string

const (
	ShipmentEventCreated       ShipmentEventType = "shipment.created"
	ShipmentEventStatusChanged ShipmentEventType = "shipment.status_changed"
	ShipmentEventCancelled     ShipmentEventType = "shipment.cancelled"
)

type ShipmentEvent struct {
	Type           ShipmentEventType
	ShipmentID     string
	OrderID        string
	PrimaryWaybill string
	Status         ShipmentStatusType
	Demo           bool
	OccurredAt     time.Time
}
