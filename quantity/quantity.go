// Copyright 2017 Aleksey Blinov. All rights reserved.

// Package quantity implements dimensionally checked numeric quantities:
// values tagged with a unit expressed as a normalized mapping from
// dimension label to rational exponent, such as 3.3 meters or 42 meters
// per second:
//
//	quantity.New(3.3, quantity.Unit().With("m", 1))
//	quantity.New(42, quantity.Unit().With("m", 1).With("s", -1))
//
// Arithmetic is unit safe: adding, subtracting or ordering quantities of
// different dimensions fails with a DimensionError, while multiplication,
// division and exponentiation combine exponents freely. Dimension labels
// are opaque strings with no predefined vocabulary, so callers may compute
// in arbitrary units.
//
// Quantities and signatures are immutable; every operation returns new
// values, and instances can be shared across goroutines without
// synchronization.
package quantity

// Quantity is a numeric magnitude paired with a unit Signature. The pair
// is immutable after construction. The zero value is the dimensionless
// zero, which acts as the universal additive identity: it may be added to,
// subtracted from or ordered against a quantity of any dimension.
type Quantity struct {
	value Value
	unit  Signature
}

// New returns a quantity with the given float64 magnitude and unit.
func New(v float64, unit Signature) Quantity {
	return Quantity{value: Float(v), unit: unit}
}

// NewValue returns a quantity with the given magnitude and unit. A nil
// value is treated as zero.
func NewValue(v Value, unit Signature) Quantity {
	if v == nil {
		v = Float(0)
	}
	return Quantity{value: v, unit: unit}
}

// Value returns the quantity's magnitude.
func (q Quantity) Value() Value {
	return q.val()
}

// Unit returns the quantity's unit signature.
func (q Quantity) Unit() Signature {
	return q.unit
}

// IsZero returns true if the magnitude is zero, regardless of unit.
func (q Quantity) IsZero() bool {
	return q.val().Sign() == 0
}

func (q Quantity) val() Value {
	if q.value == nil {
		return Float(0)
	}
	return q.value
}

// isIdentity reports whether q is the dimensionless zero, the one operand
// exempt from dimension checks.
func (q Quantity) isIdentity() bool {
	return q.unit.IsDimensionless() && q.IsZero()
}

// Add returns q + other. The units must be equal, except that the
// dimensionless zero may be added to anything; the result carries the
// other operand's unit. Mismatched units fail with a DimensionError.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if other.isIdentity() {
		return q, nil
	}
	if q.isIdentity() {
		return other, nil
	}
	if !q.unit.Equal(other.unit) {
		return Quantity{}, dimensionErr("add", q.unit, other.unit)
	}
	return NewValue(q.val().Add(other.val()), q.unit), nil
}

// Sub returns q - other under the same unit rules as Add.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if other.isIdentity() {
		return q, nil
	}
	if q.isIdentity() {
		return other.Neg(), nil
	}
	if !q.unit.Equal(other.unit) {
		return Quantity{}, dimensionErr("subtract", q.unit, other.unit)
	}
	return NewValue(q.val().Sub(other.val()), q.unit), nil
}

// Mul returns q * other: magnitudes multiplied, exponents added.
func (q Quantity) Mul(other Quantity) Quantity {
	return NewValue(q.val().Mul(other.val()), q.unit.Combine(other.unit, 1))
}

// Div returns q / other: magnitudes divided, exponents subtracted.
// Division by a zero-valued quantity fails with ErrDivisionByZero.
func (q Quantity) Div(other Quantity) (Quantity, error) {
	if other.IsZero() {
		return Quantity{}, ErrDivisionByZero
	}
	return NewValue(q.val().Div(other.val()), q.unit.Combine(other.unit, -1)), nil
}

// MulScalar returns q scaled by the bare number x. The unit is unchanged.
func (q Quantity) MulScalar(x float64) Quantity {
	return NewValue(q.val().Mul(Float(x)), q.unit)
}

// DivScalar returns q divided by the bare number x. The unit is unchanged.
// A zero x fails with ErrDivisionByZero.
func (q Quantity) DivScalar(x float64) (Quantity, error) {
	if x == 0 {
		return Quantity{}, ErrDivisionByZero
	}
	return NewValue(q.val().Div(Float(x)), q.unit), nil
}

// Pow raises q to the rational exponent e: the magnitude is raised to e
// and every unit exponent is multiplied by e. A fractional e applied to a
// negative magnitude fails with ErrNegativeFractionalPower; a negative e
// applied to a zero magnitude fails with ErrDivisionByZero.
func (q Quantity) Pow(e Exp) (Quantity, error) {
	v, err := q.val().Pow(e)
	if err != nil {
		return Quantity{}, err
	}
	return NewValue(v, q.unit.Pow(e)), nil
}

// Neg returns q with its magnitude negated.
func (q Quantity) Neg() Quantity {
	return NewValue(q.val().Neg(), q.unit)
}

// Abs returns q with a non-negative magnitude.
func (q Quantity) Abs() Quantity {
	return NewValue(q.val().Abs(), q.unit)
}

// Cmp orders q against other, returning -1, 0 or 1. No ordering is
// defined between different dimensions: unless one operand is the
// dimensionless zero, mismatched units fail with a DimensionError.
func (q Quantity) Cmp(other Quantity) (int, error) {
	if !q.isIdentity() && !other.isIdentity() && !q.unit.Equal(other.unit) {
		return 0, dimensionErr("compare", q.unit, other.unit)
	}
	return q.val().Cmp(other.val()), nil
}

// Equal reports whether the two quantities have equal units and equal
// magnitudes. Unlike Cmp it is total: quantities of different dimensions
// are simply not equal.
func (q Quantity) Equal(other Quantity) bool {
	if !q.unit.Equal(other.unit) {
		return false
	}
	return q.val().Cmp(other.val()) == 0
}

// In converts q to the given display unit and returns the bare ratio, i.e.
// how many display units fit in q. The signatures must be equal and the
// display unit's magnitude non-zero:
//
//	d.In(si.Kilometer) // 217.26144 for d = 217261.44 m
func (q Quantity) In(unit Quantity) (float64, error) {
	if !q.unit.Equal(unit.unit) {
		return 0, dimensionErr("convert", q.unit, unit.unit)
	}
	if unit.IsZero() {
		return 0, ErrDivisionByZero
	}
	return q.val().Div(unit.val()).Float64(), nil
}

// Float64 returns the magnitude of a dimensionless quantity. Dimensional
// quantities fail with ErrNotDimensionless.
func (q Quantity) Float64() (float64, error) {
	if !q.unit.IsDimensionless() {
		return 0, ErrNotDimensionless
	}
	return q.val().Float64(), nil
}

// String renders the magnitude followed by the canonical unit form, e.g.
// "217261.44 m" or "1 s^1/2". A dimensionless quantity renders as the bare
// magnitude.
func (q Quantity) String() string {
	vs := q.val().String()
	if q.unit.IsDimensionless() {
		return vs
	}
	return vs + " " + q.unit.String()
}
