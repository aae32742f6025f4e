package shipment

import (
	"errors"

	"shipment/internal/gateway/delhivery"
	orderservice "shipment/internal/service/order"
	warehouseservice "shipment/internal/service/warehouse"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidWaybill      = errors.New("invalid waybill")
	ErrInvalidShipmentID   = errors.New("invalid shipment id")
	ErrInvalidPackageCount = errors.New("invalid package count")
	ErrInvalidProductType  = errors.New("invalid product type")
	ErrNothingToUpdate     = errors.New("nothing to update")

	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrSettingsNotFound  = errors.New("shipment settings not found")
	ErrOrderNotFound     = orderservice.ErrOrderNotFound
	ErrWarehouseNotFound = warehouseservice.ErrWarehouseNotFound
	ErrWarehouseInactive = warehouseservice.ErrWarehouseInactive

	ErrOrderStatusNotAllowed = errors.New("order status does not allow this shipment type")
	ErrActiveShipmentExists  = errors.New("order already has an active shipment of this type")
	ErrShipmentConflict      = errors.New("shipment already exists")
	ErrInvalidTransition     = errors.New("shipment status transition not allowed")
	ErrStateNotAllowed       = delhivery.ErrStateNotAllowed
)
