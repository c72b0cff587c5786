// Copyright 2017 Aleksey Blinov. All rights reserved.

package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpReduction(t *testing.T) {
	assert.Exactly(t, Frac(1, 2), Frac(2, 4))
	assert.Exactly(t, Frac(-1, 2), Frac(1, -2))
	assert.Exactly(t, Frac(-1, 2), Frac(-2, 4))
	assert.Exactly(t, E(3), Frac(3, 1))
	assert.Exactly(t, E(3), Frac(-6, -2))
	assert.Exactly(t, Frac(0, 5), Frac(0, -7))
	assert.Panics(t, func() { Frac(1, 0) })
}

func TestExpArithmetic(t *testing.T) {
	assert.Exactly(t, E(3), E(1).Add(E(2)))
	assert.Exactly(t, E(1), Frac(1, 2).Add(Frac(1, 2)))
	assert.Exactly(t, Frac(5, 6), Frac(1, 2).Add(Frac(1, 3)))
	assert.Exactly(t, Frac(1, 3), Frac(2, 3).Mul(Frac(1, 2)))
	assert.Exactly(t, E(-4), E(2).Mul(E(-2)))
	assert.Exactly(t, Frac(-1, 2), Frac(1, 2).Neg())
	assert.True(t, E(1).Add(E(-1)).IsZero())
	assert.True(t, Exp{}.IsZero())
}

func TestExpAccessors(t *testing.T) {
	assert.True(t, E(2).IsInt())
	assert.False(t, Frac(1, 2).IsInt())
	assert.Exactly(t, int64(-3), E(-3).Int())
	assert.Exactly(t, 0.5, Frac(1, 2).Float64())
	assert.Exactly(t, 1, E(5).Sign())
	assert.Exactly(t, -1, Frac(-1, 3).Sign())
	assert.Exactly(t, 0, E(0).Sign())
}

func TestExpString(t *testing.T) {
	assert.Exactly(t, "2", E(2).String())
	assert.Exactly(t, "-1", E(-1).String())
	assert.Exactly(t, "1/2", Frac(1, 2).String())
	assert.Exactly(t, "-3/2", Frac(3, -2).String())
	assert.Exactly(t, "0", Exp{}.String())
}
