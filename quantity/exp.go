// Copyright 2017 Aleksey Blinov. All rights reserved.

package quantity

import "strconv"

// Exp is an exact rational exponent of a dimension. Exponents are kept
// reduced to lowest terms with a positive denominator, so equal exponents
// are equal as Go values and fractional exponents such as 1/2 render
// without floating point noise. The zero value is the exponent 0.
type Exp struct {
	num, den int64
}

// E returns the integer exponent n.
func E(n int64) Exp {
	return Exp{num: n, den: 1}
}

// Frac returns the exponent num/den reduced to lowest terms.
// Frac panics if den is 0.
func Frac(num, den int64) Exp {
	if den == 0 {
		panic("quantity: exponent denominator is zero")
	}
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Exp{num: 0, den: 1}
	}
	g := gcd(abs64(num), den)
	return Exp{num: num / g, den: den / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func (e Exp) canon() Exp {
	if e.den == 0 {
		return Exp{num: e.num, den: 1}
	}
	return e
}

// Add returns the sum of the two exponents.
func (e Exp) Add(o Exp) Exp {
	e, o = e.canon(), o.canon()
	return Frac(e.num*o.den+o.num*e.den, e.den*o.den)
}

// Mul returns the product of the two exponents.
func (e Exp) Mul(o Exp) Exp {
	e, o = e.canon(), o.canon()
	return Frac(e.num*o.num, e.den*o.den)
}

// Neg returns the exponent with its sign flipped.
func (e Exp) Neg() Exp {
	e = e.canon()
	return Exp{num: -e.num, den: e.den}
}

// IsZero returns true if the exponent is 0.
func (e Exp) IsZero() bool {
	return e.num == 0
}

// IsInt returns true if the exponent is a whole number.
func (e Exp) IsInt() bool {
	return e.canon().den == 1
}

// Int returns the exponent truncated towards zero.
func (e Exp) Int() int64 {
	e = e.canon()
	return e.num / e.den
}

// Sign returns -1, 0 or 1 depending on the sign of the exponent.
func (e Exp) Sign() int {
	switch {
	case e.num < 0:
		return -1
	case e.num > 0:
		return 1
	}
	return 0
}

// Float64 returns the nearest floating point value of the exponent.
func (e Exp) Float64() float64 {
	e = e.canon()
	return float64(e.num) / float64(e.den)
}

// String renders the exponent as "2", "-1" or "1/2".
func (e Exp) String() string {
	e = e.canon()
	if e.den == 1 {
		return strconv.FormatInt(e.num, 10)
	}
	return strconv.FormatInt(e.num, 10) + "/" + strconv.FormatInt(e.den, 10)
}
