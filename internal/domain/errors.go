package domain

import "errors"

var (
	ErrExpiredProduct      = errors.New("product is expired")
	ErrUnavailableQuantity = errors.New("product is not available in the requested quantity")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientBalance = errors.New("insufficient balance")

	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrNilProduct       = errors.New("product is nil")
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrNothingToShip    = errors.New("no items to ship")
)
