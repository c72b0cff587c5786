// Copyright 2017 Aleksey Blinov. All rights reserved.

package si

import (
	"testing"

	"github.com/baobabus/go-quantity/quantity"
	"github.com/stretchr/testify/assert"
)

func TestBaseUnits(t *testing.T) {
	assert.True(t, Meter.Unit().Equal(quantity.Unit().With("m", 1)))
	assert.True(t, Second.Unit().Equal(quantity.Unit().With("s", 1)))
	assert.True(t, Kilogram.Unit().Equal(quantity.Unit().With("kg", 1)))
	f, err := Kilogram.In(Gram)
	assert.NoError(t, err)
	assert.InDelta(t, 1000, f, 1e-9)
	f, err = Hour.In(Second)
	assert.NoError(t, err)
	assert.InDelta(t, 3600, f, 1e-9)
	f, err = Day.In(Hour)
	assert.NoError(t, err)
	assert.InDelta(t, 24, f, 1e-9)
}

func TestRoundTripConversion(t *testing.T) {
	// 45 miles per hour for 3 hours
	v, err := Mile.MulScalar(45).Div(Hour)
	assert.NoError(t, err)
	d := Hour.MulScalar(3).Mul(v)
	assert.True(t, d.Unit().Equal(Meter.Unit()))
	m, err := d.In(Meter)
	assert.NoError(t, err)
	assert.InDelta(t, 217261.44, m, 1e-6)
	km, err := d.In(Kilometer)
	assert.NoError(t, err)
	assert.InDelta(t, 217.26144, km, 1e-9)
}

func TestDerivedUnits(t *testing.T) {
	assert.True(t, Newton.Unit().Equal(quantity.Unit().With("kg", 1).With("m", 1).With("s", -2)))
	assert.True(t, Newton.Mul(Meter).Equal(Joule))
	joule, err := Joule.Div(Second)
	assert.NoError(t, err)
	assert.True(t, joule.Equal(Watt))
	assert.True(t, Ampere.Mul(Second).Equal(Coulomb))
	volt, err := Watt.Div(Ampere)
	assert.NoError(t, err)
	assert.True(t, volt.Equal(Volt))
	ohm, err := Volt.Div(Ampere)
	assert.NoError(t, err)
	assert.True(t, ohm.Equal(Ohm))
	pascal, err := Newton.Div(Meter.Mul(Meter))
	assert.NoError(t, err)
	assert.True(t, pascal.Equal(Pascal))
	hertz, err := quantity.New(1, quantity.Unit()).Div(Second)
	assert.NoError(t, err)
	assert.True(t, hertz.Equal(Hertz))
}

func TestVolumes(t *testing.T) {
	// a liter is a cubic decimeter
	dm, err := Meter.MulScalar(0.1).Pow(quantity.E(3))
	assert.NoError(t, err)
	assert.True(t, dm.Unit().Equal(Liter.Unit()))
	f, err := dm.In(Liter)
	assert.NoError(t, err)
	assert.InDelta(t, 1, f, 1e-9)
	f, err = Gallon.In(Liter)
	assert.NoError(t, err)
	assert.InDelta(t, 3.78541178, f, 1e-9)
	// a hectare is the area of a 100 m square
	ha, err := Meter.MulScalar(100).Pow(quantity.E(2))
	assert.NoError(t, err)
	assert.True(t, ha.Equal(Hectare))
}

func TestNonMetricUnits(t *testing.T) {
	f, err := Mile.In(Kilometer)
	assert.NoError(t, err)
	assert.InDelta(t, 1.609344, f, 1e-9)
	f, err = Inch.In(Centimeter)
	assert.NoError(t, err)
	assert.InDelta(t, 2.54, f, 1e-9)
}

func TestPhysicalConstants(t *testing.T) {
	assert.True(t, Avogadro.Unit().Equal(quantity.Unit().With("mol", -1)))
	kt, err := Boltzmann.Div(Joule)
	assert.NoError(t, err)
	assert.True(t, kt.Unit().Equal(quantity.Unit().With("K", -1)))
	// Planck is an action, J*s
	js := Planck.Unit().Combine(Second.Unit(), -1)
	assert.True(t, js.Equal(Joule.Unit()))
}

func TestDimensionSafety(t *testing.T) {
	_, err := Meter.Add(Second)
	assert.IsType(t, &quantity.DimensionError{}, err)
	sum, err := Meter.MulScalar(2).Add(Centimeter.MulScalar(50))
	assert.NoError(t, err)
	f, err := sum.In(Meter)
	assert.NoError(t, err)
	assert.InDelta(t, 2.5, f, 1e-9)
}
