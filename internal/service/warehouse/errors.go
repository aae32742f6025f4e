package warehouse

import "errors"

var (
	ErrInvalidName = errors.New("invalid warehouse name")

	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrWarehouseInactive = errors.New("warehouse is inactive")
)
