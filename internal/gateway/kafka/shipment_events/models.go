package shipment_events

import (
	"time"

	"shipment/internal/entities"
)

type message struct {
	Type           string    `json:"type"`
	ShipmentID     string    `json:"shipment_id"`
	OrderID        string    `json:"order_id"`
	PrimaryWaybill string    `json:"primary_waybill"`
	Status         string    `json:"status"`
	Demo           bool      `json:"demo"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func toMessage(e entities.ShipmentEvent) message {
	return message{
		Type:           string(e.Type),
		ShipmentID:     e.ShipmentID,
		OrderID:        e.OrderID,
		PrimaryWaybill: e.PrimaryWaybill,
		Status:         e.Status.String(),
		Demo:           e.Demo,
		OccurredAt:     e.OccurredAt.UTC(),
	}
}
