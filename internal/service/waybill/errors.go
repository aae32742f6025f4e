package waybill

import "errors"

var (
	ErrInvalidCount     = errors.New("invalid waybill count")
	ErrInvalidCode      = errors.New("invalid waybill code")
	ErrInvalidActor     = errors.New("invalid reservation actor")
	ErrInvalidSource    = errors.New("invalid waybill source")
	ErrInvalidFetchMode = errors.New("invalid waybill fetch mode")
	ErrMissingOwner     = errors.New("order id and shipment id are required")

	ErrWaybillNotFound = errors.New("waybill not found")
	ErrPoolExhausted   = errors.New("waybill pool exhausted")
	ErrCarrierNoStock  = errors.New("carrier issued no real waybills")
)
