//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"shipment/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentEntity entities.Shipment) error
	GetByID(ctx context.Context, id string) (*entities.Shipment, error)
	GetByWaybill(ctx context.Context, waybill string) (*entities.Shipment, error)
	GetByOrderID(ctx context.Context, orderID string) ([]entities.Shipment, error)
	HasActive(ctx context.Context, orderID string, shipmentType entities.ShipmentType) (bool, error)
	UpdateStatus(ctx context.Context, id string, next entities.ShipmentStatusType) (bool, error)
	Update(ctx context.Context, modify entities.ShipmentModify) (*entities.Shipment, error)
	Touch(ctx context.Context, id string) error
	ListActive(ctx context.Context, limit int) ([]entities.Shipment, error)
	AppendTrackingEvents(ctx context.Context, shipmentID string, events []entities.TrackingEvent) (int64, error)
	GetTrackingEvents(ctx context.Context, shipmentID string) ([]entities.TrackingEvent, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	UpdateShipmentLink(ctx context.Context, modify entities.OrderModify) error
}

type WarehouseRepository interface {
	GetByName(ctx context.Context, name string) (*entities.Warehouse, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (*entities.ShipmentSettings, error)
}

type WaybillPool interface {
	Acquire(ctx context.Context, count int, reservedBy string) ([]entities.Waybill, error)
	Use(ctx context.Context, code, orderID, shipmentID string) error
	Release(ctx context.Context, codes []string, reservedBy string) (int64, error)
	Cancel(ctx context.Context, code string) error
	Generate(ctx context.Context, count int, mode entities.WaybillFetchMode) ([]entities.Waybill, error)
}

type CarrierGateway interface {
	CreateShipment(ctx context.Context, manifest entities.Manifest) (*entities.ManifestResult, error)
	TrackShipment(ctx context.Context, waybill string) (*entities.TrackingInfo, error)
	CancelShipment(ctx context.Context, waybill string, current entities.ShipmentStatusType) error
	EditShipment(ctx context.Context, waybill string, current entities.ShipmentStatusType, edit entities.ShipmentEdit) error
	CheckPincodeServiceability(ctx context.Context, pincode string) (*entities.Serviceability, error)
	CheckHeavyPincodeServiceability(ctx context.Context, pincode string) (*entities.Serviceability, error)
	FetchLabel(ctx context.Context, waybill string, opts entities.LabelOptions) (*entities.Label, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.ShipmentEvent) error
}

type DeliveryEstimateFactory interface {
	CalculateEndDate(shipmentType entities.ShipmentType, leadTimeDays int, baseTime time.Time) time.Time
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
