// Copyright 2017 Aleksey Blinov. All rights reserved.

package quantity

import (
	"math"
	"math/big"
	"strconv"
)

// Value is the numeric magnitude of a Quantity. It is an interface so that
// quantities can carry magnitudes other than float64, such as exact
// rationals. Implementations must be immutable: every operation returns a
// new Value. Mixed-implementation arithmetic is allowed and degrades to
// float64.
type Value interface {
	Add(Value) Value
	Sub(Value) Value
	Mul(Value) Value
	Div(Value) Value

	// Pow raises the value to the given rational exponent. A fractional
	// exponent applied to a negative value has no real result and fails
	// with ErrNegativeFractionalPower. A negative exponent applied to a
	// zero value fails with ErrDivisionByZero.
	Pow(e Exp) (Value, error)

	// Cmp returns -1, 0 or 1 depending on how the value compares to other.
	Cmp(Value) int

	// Sign returns -1, 0 or 1 depending on the sign of the value.
	Sign() int

	Neg() Value
	Abs() Value
	Float64() float64
	String() string
}

// Float is the default float64-backed Value.
type Float float64

func (f Float) Add(o Value) Value {
	return Float(float64(f) + o.Float64())
}

func (f Float) Sub(o Value) Value {
	return Float(float64(f) - o.Float64())
}

func (f Float) Mul(o Value) Value {
	return Float(float64(f) * o.Float64())
}

func (f Float) Div(o Value) Value {
	return Float(float64(f) / o.Float64())
}

func (f Float) Pow(e Exp) (Value, error) {
	if e.IsZero() {
		return Float(1), nil
	}
	if f == 0 && e.Sign() < 0 {
		return nil, ErrDivisionByZero
	}
	if f < 0 && !e.IsInt() {
		return nil, ErrNegativeFractionalPower
	}
	return Float(math.Pow(float64(f), e.Float64())), nil
}

func (f Float) Cmp(o Value) int {
	v, ov := float64(f), o.Float64()
	switch {
	case v < ov:
		return -1
	case v > ov:
		return 1
	}
	return 0
}

func (f Float) Sign() int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}

func (f Float) Neg() Value {
	return -f
}

func (f Float) Abs() Value {
	if f < 0 {
		return -f
	}
	return f
}

func (f Float) Float64() float64 {
	return float64(f)
}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// Ratio is an exact rational Value backed by math/big. It keeps quantities
// built from fractions free of floating point error for as long as the
// operations themselves are exact: addition, subtraction, multiplication,
// division and whole powers. Fractional powers degrade to float64.
type Ratio struct {
	r *big.Rat
}

// NewRatio returns the exact rational value num/den.
// NewRatio panics if den is 0.
func NewRatio(num, den int64) Ratio {
	return Ratio{r: big.NewRat(num, den)}
}

// RatioOf returns a Ratio holding a copy of r.
func RatioOf(r *big.Rat) Ratio {
	return Ratio{r: new(big.Rat).Set(r)}
}

// Rat returns a copy of the underlying rational.
func (x Ratio) Rat() *big.Rat {
	return new(big.Rat).Set(x.rat())
}

func (x Ratio) rat() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

func (x Ratio) Add(o Value) Value {
	if oy, ok := o.(Ratio); ok {
		return Ratio{r: new(big.Rat).Add(x.rat(), oy.rat())}
	}
	return Float(x.Float64()).Add(o)
}

func (x Ratio) Sub(o Value) Value {
	if oy, ok := o.(Ratio); ok {
		return Ratio{r: new(big.Rat).Sub(x.rat(), oy.rat())}
	}
	return Float(x.Float64()).Sub(o)
}

func (x Ratio) Mul(o Value) Value {
	if oy, ok := o.(Ratio); ok {
		return Ratio{r: new(big.Rat).Mul(x.rat(), oy.rat())}
	}
	return Float(x.Float64()).Mul(o)
}

func (x Ratio) Div(o Value) Value {
	if oy, ok := o.(Ratio); ok {
		return Ratio{r: new(big.Rat).Quo(x.rat(), oy.rat())}
	}
	return Float(x.Float64()).Div(o)
}

func (x Ratio) Pow(e Exp) (Value, error) {
	if e.IsZero() {
		return NewRatio(1, 1), nil
	}
	if x.Sign() == 0 && e.Sign() < 0 {
		return nil, ErrDivisionByZero
	}
	if !e.IsInt() {
		if x.Sign() < 0 {
			return nil, ErrNegativeFractionalPower
		}
		return Float(math.Pow(x.Float64(), e.Float64())), nil
	}
	n := e.Int()
	r := x.rat()
	if n < 0 {
		r = new(big.Rat).Inv(r)
		n = -n
	}
	num := new(big.Int).Exp(r.Num(), big.NewInt(n), nil)
	den := new(big.Int).Exp(r.Denom(), big.NewInt(n), nil)
	return Ratio{r: new(big.Rat).SetFrac(num, den)}, nil
}

func (x Ratio) Cmp(o Value) int {
	if oy, ok := o.(Ratio); ok {
		return x.rat().Cmp(oy.rat())
	}
	return Float(x.Float64()).Cmp(o)
}

func (x Ratio) Sign() int {
	return x.rat().Sign()
}

func (x Ratio) Neg() Value {
	return Ratio{r: new(big.Rat).Neg(x.rat())}
}

func (x Ratio) Abs() Value {
	return Ratio{r: new(big.Rat).Abs(x.rat())}
}

func (x Ratio) Float64() float64 {
	f, _ := x.rat().Float64()
	return f
}

// String renders whole values without a denominator, fractions as
// "num/den".
func (x Ratio) String() string {
	r := x.rat()
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}
