package pricing

import "errors"

var (
	ErrInvalidDuration    = errors.New("pricing: duration must be a positive integer")
	ErrInvalidBookingType = errors.New("pricing: unknown booking type")
	ErrInvalidPricing     = errors.New("pricing: all five rates are required and must be non-negative")
)
