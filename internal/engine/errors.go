package engine

import "errors"

var (
	// ErrInvalidDimension is returned when a drawer, bed, or unit dimension is not positive.
	ErrInvalidDimension = errors.New("drawer, bed, and unit dimensions must be positive")
	// ErrDrawerTooSmall is returned when a drawer axis cannot hold even one grid unit.
	ErrDrawerTooSmall = errors.New("drawer is smaller than one grid unit")
	// ErrBedTooSmall is returned when the printer bed cannot hold even one grid unit.
	ErrBedTooSmall = errors.New("printer bed is smaller than one grid unit")
	// ErrInvalidFillConstraints is returned when spacer constraints are not positive.
	ErrInvalidFillConstraints = errors.New("spacer max length and max aspect ratio must be positive")
)
