package delivery_estimate

import (
	"time"

	"shipment/internal/entities"
)

// если в настройках срок не задан
const defaultLeadTimeDays = 5

type DeliveryEstimateFactory struct{}

func New() *DeliveryEstimateFactory {
	return &DeliveryEstimateFactory{}
}

// CalculateEndDate конечная дата доставки для манифеста: база плюс срок в днях.
// Для обратной отправки срок считается так же, перевозчик сам двигает дату забора.
func (f *DeliveryEstimateFactory) CalculateEndDate(shipmentType entities.ShipmentType, leadTimeDays int, baseTime time.Time) time.Time {
	if leadTimeDays <= 0 {
		leadTimeDays = defaultLeadTimeDays
	}

	switch shipmentType {
	case entities.ShipmentForward, entities.ShipmentMPS, entities.ShipmentReverse, entities.ShipmentReplacement:
		return baseTime.AddDate(0, 0, leadTimeDays)
	default:
		return baseTime.AddDate(0, 0, defaultLeadTimeDays)
	}
}
