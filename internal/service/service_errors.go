package service

import "errors"

var (
	ErrNoItems        = errors.New("order must contain at least one item")
	ErrInvalidStatus  = errors.New("unknown order status")
	ErrInvalidPayment = errors.New("unknown payment method")
	ErrUnknownProduct = errors.New("order item references an unknown product")
	ErrPriceMismatch  = errors.New("item price does not match the current product price")
)
