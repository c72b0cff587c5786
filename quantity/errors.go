// Copyright 2017 Aleksey Blinov. All rights reserved.

package quantity

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned on division by a zero-valued quantity
	// or a zero scalar.
	ErrDivisionByZero = errors.New("quantity: division by zero")

	// ErrNegativeFractionalPower is returned when a fractional power is
	// applied to a negative value, which has no result in the real domain.
	ErrNegativeFractionalPower = errors.New("quantity: fractional power of a negative value")

	// ErrNotDimensionless is returned when a dimensional quantity is used
	// where a bare number is required.
	ErrNotDimensionless = errors.New("quantity: dimensional quantity used as a bare number")
)

// DimensionError indicates an operation that requires matching units was
// given operands of different dimensions. It carries the rendered forms of
// both signatures for diagnostics. A DimensionError reflects a usage error
// and is never worth retrying.
type DimensionError struct {

	// Op is the offending operation, e.g. "add" or "compare".
	Op string

	// Left and Right are the canonical renderings of the two unit
	// signatures involved.
	Left, Right string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("quantity: cannot %s %s and %s", e.Op, sigName(e.Left), sigName(e.Right))
}

func sigName(s string) string {
	if s == "" {
		return "dimensionless"
	}
	return s
}

func dimensionErr(op string, a, b Signature) error {
	return &DimensionError{Op: op, Left: a.String(), Right: b.String()}
}
