package product

import "errors"

var (
	// ErrInvalidArgument indicates malformed construction or purchase input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInsufficientStock indicates a purchase exceeding the available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrLimitExceeded indicates a purchase exceeding a product's per-order maximum.
	ErrLimitExceeded = errors.New("order limit exceeded")
)
