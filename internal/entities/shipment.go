package entities

import (
	"encoding/json"
	"time"
)

type Shipment struct {
	ID                 string
	OrderID            string
	Waybills           []string
	PrimaryWaybill     string
	Type               ShipmentType
	Status             ShipmentStatusType
	PickupLocation     string
	Package            PackageAttributes
	ProductDescription string
	HSNCode            string
	Demo               bool
	CarrierResponse    json.RawMessage
	TrackingEvents     []TrackingEvent
	LabelGenerated     bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
	CancelledAt        *time.Time
}

type PackageAttributes struct {
	WeightGrams  float64
	LengthCm     float64
	BreadthCm    float64
	HeightCm     float64
	PaymentMode  PaymentModeType
	CODAmount    float64
	ShippingMode ShippingModeType
	Quantity     int
}

type ShipmentModify struct {
	ID                 *string
	Status             *ShipmentStatusType
	Package            *PackageAttributes
	ProductDescription *string
	LabelGenerated     *bool
	CancelledAt        *time.Time
}

type ShipmentType string

const (
	ShipmentForward     ShipmentType = "forward"
	ShipmentReverse     ShipmentType = "reverse"
	ShipmentReplacement ShipmentType = "replacement"
	ShipmentMPS         ShipmentType = "mps"
)

func (t ShipmentType) String() string {
	return string(t)
}

func (t ShipmentType) IsValid() bool {
	switch t {
	case ShipmentForward, ShipmentReverse, ShipmentReplacement, ShipmentMPS:
		return true
	default:
		return false
	}
}

type ShipmentStatusType string

const (
	ShipmentPending        ShipmentStatusType = "pending"
	ShipmentCreated        ShipmentStatusType = "created"
	ShipmentManifested     ShipmentStatusType = "manifested"
	ShipmentInTransit      ShipmentStatusType = "in_transit"
	ShipmentDelivered      ShipmentStatusType = "delivered"
	ShipmentCancelled      ShipmentStatusType = "cancelled"
	ShipmentReturnToOrigin ShipmentStatusType = "rto"
)

// shipmentStatusRank порядок прямой ветки state machine,
// cancelled обрабатывается отдельно.
var shipmentStatusRank = map[ShipmentStatusType]int{
	ShipmentPending:        0,
	ShipmentCreated:        1,
	ShipmentManifested:     2,
	ShipmentInTransit:      3,
	ShipmentDelivered:      4,
	ShipmentReturnToOrigin: 4,
}

func (t ShipmentStatusType) String() string {
	return string(t)
}

func (t ShipmentStatusType) IsValid() bool {
	if t == ShipmentCancelled {
		return true
	}
	_, ok := shipmentStatusRank[t]
	return ok
}

func (t ShipmentStatusType) IsTerminal() bool {
	return t == ShipmentDelivered || t == ShipmentCancelled || t == ShipmentReturnToOrigin
}

// CanTransitionTo переход разрешен только вперед по цепочке
// pending -> created -> manifested -> in_transit -> {delivered | rto},
// cancelled достижим из любого нетерминального статуса.
func (t ShipmentStatusType) CanTransitionTo(next ShipmentStatusType) bool {
	if !t.IsValid() || !next.IsValid() || t.IsTerminal() {
		return false
	}
	if next == ShipmentCancelled {
		return true
	}
	return shipmentStatusRank[next] > shipmentStatusRank[t]
}

// TransitionSources все статусы, из которых допустим переход в next.
// Используется для CAS-обновления в репозитории.
func TransitionSources(next ShipmentStatusType) []ShipmentStatusType {
	sources := make([]ShipmentStatusType, 0, len(shipmentStatusRank))
	for _, status := range AllShipmentStatuses() {
		if status.CanTransitionTo(next) {
			sources = append(sources, status)
		}
	}
	return sources
}

func AllShipmentStatuses() []ShipmentStatusType {
	return []ShipmentStatusType{
		ShipmentPending,
		ShipmentCreated,
		ShipmentManifested,
		ShipmentInTransit,
		ShipmentDelivered,
		ShipmentCancelled,
		ShipmentReturnToOrigin,
	}
}

// MutableShipmentStatuses статусы, в которых перевозчик принимает edit/cancel.
func MutableShipmentStatuses() []ShipmentStatusType {
	return []ShipmentStatusType{
		ShipmentPending,
		ShipmentCreated,
		ShipmentManifested,
		ShipmentInTransit,
	}
}

type PaymentModeType string

const (
	PaymentPrepaid PaymentModeType = "prepaid"
	PaymentCOD     PaymentModeType = "cod"
	PaymentPickup  PaymentModeType = "pickup"
	PaymentREPL    PaymentModeType = "repl"
)

func (t PaymentModeType) String() string {
	return string(t)
}

type ShippingModeType string

const (
	ShippingSurface ShippingModeType = "surface"
	ShippingExpress ShippingModeType = "express"
)

func (t ShippingModeType) String() string {
	return string(t)
}

func (t ShippingModeType) IsValid() bool {
	return t == ShippingSurface || t == ShippingExpress
}

type ShipmentEdit struct {
	Name               *string
	Phone              *string
	Address            *string
	PaymentMode        *PaymentModeType
	CODAmount          *float64
	WeightGrams        *float64
	LengthCm           *float64
	BreadthCm          *float64
	HeightCm           *float64
	ProductDescription *string
}

func (e ShipmentEdit) IsEmpty() bool {
	return e.Name == nil && e.Phone == nil && e.Address == nil &&
		e.PaymentMode == nil && e.CODAmount == nil && e.WeightGrams == nil &&
		e.LengthCm == nil && e.BreadthCm == nil && e.HeightCm == nil &&
		e.ProductDescription == nil
}
