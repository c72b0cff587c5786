// Copyright 2017 Aleksey Blinov. All rights reserved.

// Package si supplies predefined unit quantities: the SI base units, units
// accepted for use with the SI, common derived and non-metric units, and a
// few physical constants. Every unit is an ordinary Quantity, so new ones
// are a one-liner built from these by multiplication and scaling.
package si

import "github.com/baobabus/go-quantity/quantity"

// SI base units. Each has magnitude 1 and a single dimension of exponent 1,
// except Gram, which is defined against the kilogram base dimension.
var (
	Meter   = quantity.New(1, quantity.Unit().With("m", 1))
	Second  = quantity.New(1, quantity.Unit().With("s", 1))
	Gram    = quantity.New(1e-3, quantity.Unit().With("kg", 1))
	Ampere  = quantity.New(1, quantity.Unit().With("A", 1))
	Kelvin  = quantity.New(1, quantity.Unit().With("K", 1))
	Candela = quantity.New(1, quantity.Unit().With("cd", 1))
	Mole    = quantity.New(1, quantity.Unit().With("mol", 1))
	Bit     = quantity.New(1, quantity.Unit().With("bit", 1))
)

// Units officially accepted for use with the SI.
var (
	Minute   = Second.MulScalar(60)
	Hour     = Minute.MulScalar(60)
	Day      = Hour.MulScalar(24)
	Hectare  = quantity.New(1e4, quantity.Unit().With("m", 2))
	Liter    = quantity.New(1e-3, quantity.Unit().With("m", 3))
	Kilogram = Gram.MulScalar(Kilo)
	Tonne    = Kilogram.MulScalar(1e3)
)

// Commonly used metric multiples.
var (
	Kilometer   = Meter.MulScalar(Kilo)
	Centimeter  = Meter.MulScalar(Centi)
	Millimeter  = Meter.MulScalar(Milli)
	Micrometer  = Meter.MulScalar(Micro)
	Nanometer   = Meter.MulScalar(Nano)
	Millisecond = Second.MulScalar(Milli)
	Microsecond = Second.MulScalar(Micro)
	Nanosecond  = Second.MulScalar(Nano)
	Milligram   = Gram.MulScalar(Milli)
	Milliliter  = Liter.MulScalar(Milli)
)

// Derived units.
var (
	Hertz   = quantity.New(1, quantity.Unit().With("s", -1))
	Newton  = quantity.New(1, quantity.Unit().With("kg", 1).With("m", 1).With("s", -2))
	Pascal  = quantity.New(1, quantity.Unit().With("kg", 1).With("m", -1).With("s", -2))
	Joule   = quantity.New(1, quantity.Unit().With("kg", 1).With("m", 2).With("s", -2))
	Watt    = quantity.New(1, quantity.Unit().With("kg", 1).With("m", 2).With("s", -3))
	Coulomb = quantity.New(1, quantity.Unit().With("A", 1).With("s", 1))
	Volt    = quantity.New(1, quantity.Unit().With("kg", 1).With("m", 2).With("s", -3).With("A", -1))
	Farad   = quantity.New(1, quantity.Unit().With("kg", -1).With("m", -2).With("s", 4).With("A", 2))
	Ohm     = quantity.New(1, quantity.Unit().With("kg", 1).With("m", 2).With("s", -3).With("A", -2))
)

// Common units outside the SI.
var (
	Angstrom    = Meter.MulScalar(1e-10)
	Dyne        = Newton.MulScalar(1e-5)
	Erg         = Joule.MulScalar(1e-7)
	Calorie     = Joule.MulScalar(4.184)
	Kilocalorie = Calorie.MulScalar(Kilo)
	Bar         = Pascal.MulScalar(1e5)
)

// Non-metric units.
var (
	Mile   = Meter.MulScalar(1609.344)
	Gallon = Liter.MulScalar(3.78541178)
	Inch   = Centimeter.MulScalar(2.54)
)

// Physical constants.
var (
	Avogadro  = quantity.New(6.02214179e23, quantity.Unit().With("mol", -1))
	Boltzmann = quantity.New(1.3806488e-23, quantity.Unit().With("kg", 1).With("m", 2).With("s", -2).With("K", -1))
	Planck    = quantity.New(6.62606957e-34, quantity.Unit().With("kg", 1).With("m", 2).With("s", -1))
)
