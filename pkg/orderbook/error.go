package orderbook

import "errors"

var (
	ErrMalformedMessage = errors.New("malformed message")
	ErrUnknownAction    = errors.New("unknown action")
	ErrDuplicateOrderID = errors.New("duplicate order id")
	ErrUnknownOrderID   = errors.New("order id not found")
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidSide      = errors.New("invalid side")
	ErrNegativeValue    = errors.New("negative price or quantity")
	ErrInvalidPolicy    = errors.New("invalid match policy")
)
