package order

import "errors"

var (
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrOrderNotFound   = errors.New("order not found")
	ErrUndefinedStatus = errors.New("no reaction for order status")
)
