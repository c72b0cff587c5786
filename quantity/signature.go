// Copyright 2017 Aleksey Blinov. All rights reserved.

package quantity

import (
	"sort"
	"strings"
)

// Signature is an immutable normalized mapping from dimension label to
// rational exponent. It fully characterizes the dimensional type of a
// Quantity: two quantities are dimensionally compatible if and only if
// their signatures are Equal. A dimension with exponent 0 is never stored,
// so signatures compare structurally and String output can serve as a map
// key. All combining operations return new signatures. The zero value is
// the dimensionless signature.
type Signature struct {
	dims map[string]Exp
}

// Unit returns the dimensionless signature. It is the seed for builder
// style construction:
//
//	Unit().With("m", 1).With("s", -1)
func Unit() Signature {
	return Signature{}
}

// With returns a new signature with exp added to the exponent of the given
// dimension label. A resulting exponent of 0 removes the dimension.
func (s Signature) With(label string, exp int64) Signature {
	return s.WithExp(label, E(exp))
}

// WithFrac is With for fractional exponents.
func (s Signature) WithFrac(label string, num, den int64) Signature {
	return s.WithExp(label, Frac(num, den))
}

// WithExp returns a new signature with e added to the exponent of the
// given dimension label.
func (s Signature) WithExp(label string, e Exp) Signature {
	r := s.clone()
	r.bump(label, e)
	return r.seal()
}

// Combine merges two signatures by adding other's exponents scaled by the
// given factor to this signature's. A scale of +1 corresponds to
// multiplication of the underlying quantities, -1 to division. Dimensions
// whose exponents cancel are dropped.
func (s Signature) Combine(other Signature, scale int64) Signature {
	r := s.clone()
	for label, e := range other.dims {
		r.bump(label, e.Mul(E(scale)))
	}
	return r.seal()
}

// Pow returns a new signature with every exponent multiplied by e.
func (s Signature) Pow(e Exp) Signature {
	r := Signature{dims: make(map[string]Exp, len(s.dims))}
	if !e.IsZero() {
		for label, se := range s.dims {
			r.dims[label] = se.Mul(e)
		}
	}
	return r.seal()
}

// Equal reports structural equality of the two normalized mappings. This
// is the sole dimensional type check used by Quantity arithmetic.
func (s Signature) Equal(other Signature) bool {
	if len(s.dims) != len(other.dims) {
		return false
	}
	for label, e := range s.dims {
		if oe, ok := other.dims[label]; !ok || oe != e {
			return false
		}
	}
	return true
}

// IsDimensionless returns true if the signature has no dimensions.
func (s Signature) IsDimensionless() bool {
	return len(s.dims) == 0
}

// Exp returns the exponent of the given dimension label, 0 if absent.
func (s Signature) Exp(label string) Exp {
	return s.dims[label].canon()
}

// Dims returns the dimension labels in sorted order.
func (s Signature) Dims() []string {
	r := make([]string, 0, len(s.dims))
	for label := range s.dims {
		r = append(r, label)
	}
	sort.Strings(r)
	return r
}

// String renders the signature in its canonical textual form: dimensions
// sorted by label, space separated, each as label^exponent with ^1
// elided, e.g. "kg m s^-2". The dimensionless signature renders as "".
// The canonical form is deterministic: two signatures are Equal if and
// only if their strings match.
func (s Signature) String() string {
	var b strings.Builder
	for i, label := range s.Dims() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(label)
		if e := s.dims[label]; e != E(1) {
			b.WriteByte('^')
			b.WriteString(e.String())
		}
	}
	return b.String()
}

func (s Signature) clone() Signature {
	r := Signature{dims: make(map[string]Exp, len(s.dims)+1)}
	for label, e := range s.dims {
		r.dims[label] = e
	}
	return r
}

func (s *Signature) bump(label string, e Exp) {
	n := s.dims[label].canon().Add(e)
	if n.IsZero() {
		delete(s.dims, label)
	} else {
		s.dims[label] = n
	}
}

// seal keeps the zero value canonical for empty results.
func (s Signature) seal() Signature {
	if len(s.dims) == 0 {
		return Signature{}
	}
	return s
}
