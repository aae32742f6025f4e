package entities

import "time"

type Waybill struct {
	Code        string
	Status      WaybillStatusType
	Source      WaybillSourceType
	GeneratedAt time.Time
	ReservedBy  *string
	ReservedAt  *time.Time
	UsedAt      *time.Time
	CancelledAt *time.Time
	OrderID     *string
	ShipmentID  *string
}

// IsDemo demo-номера никогда не выдаются перевозчиком.
func (w Waybill) IsDemo() bool {
	return w.Source == WaybillSourceDemo
}

type WaybillStatusType string

const (
	WaybillGenerated WaybillStatusType = "generated"
	WaybillReserved  WaybillStatusType = "reserved"
	WaybillUsed      WaybillStatusType = "used"
	WaybillCancelled WaybillStatusType = "cancelled"
)

func (t WaybillStatusType) String() string {
	return string(t)
}

func (t WaybillStatusType) IsTerminal() bool {
	return t == WaybillUsed || t == WaybillCancelled
}

type WaybillSourceType string

const (
	WaybillSourceBulkFetch   WaybillSourceType = "bulk_fetch"
	WaybillSourceSingleFetch WaybillSourceType = "single_fetch"
	WaybillSourceDemo        WaybillSourceType = "demo"
)

func (t WaybillSourceType) String() string {
	return string(t)
}

func (t WaybillSourceType) IsValid() bool {
	switch t {
	case WaybillSourceBulkFetch, WaybillSourceSingleFetch, WaybillSourceDemo:
		return true
	default:
		return false
	}
}

// WaybillFilter Demo: nil любые номера, true только demo, false только от перевозчика.
type WaybillFilter struct {
	Source *WaybillSourceType
	Demo   *bool
}

type WaybillPoolStats struct {
	Generated int64
	// свободные demo-номера, входят в Generated
	GeneratedDemo int64
	Reserved  int64
	Used      int64
	Cancelled int64
}

type WaybillFetchMode string

const (
	WaybillFetchBulk   WaybillFetchMode = "bulk"
	WaybillFetchSingle WaybillFetchMode = "single"
	WaybillFetchPool   WaybillFetchMode = "pool"
)

func (m WaybillFetchMode) String() string {
	return string(m)
}
