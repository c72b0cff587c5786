// Copyright 2017 Aleksey Blinov. All rights reserved.

// Package fmtx renders quantities for humans: it picks a compact display
// unit from a set of candidates (e.g. km over m for large distances) and
// formats conversion results for LaTeX. It is convenience glue over the
// quantity package's In and String contract.
package fmtx

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/baobabus/go-quantity/quantity"
	"github.com/baobabus/go-quantity/si"
)

// UnitDef names a display unit.
type UnitDef struct {
	Symbol string
	Unit   quantity.Quantity
}

var metricPrefixes = []struct {
	symbol string
	factor float64
}{
	{"T", si.Tera},
	{"G", si.Giga},
	{"M", si.Mega},
	{"k", si.Kilo},
	{"h", si.Hecto},
	{"da", si.Deca},
	{"", 1},
	{"d", si.Deci},
	{"c", si.Centi},
	{"m", si.Milli},
	{"µ", si.Micro},
	{"n", si.Nano},
	{"p", si.Pico},
	{"f", si.Femto},
}

// MetricSet returns display units for all metric multiples of a base unit,
// largest first, e.g. MetricSet("m", si.Meter) yields Tm down to fm.
func MetricSet(symbol string, base quantity.Quantity) []UnitDef {
	r := make([]UnitDef, len(metricPrefixes))
	for i, p := range metricPrefixes {
		r[i] = UnitDef{Symbol: p.symbol + symbol, Unit: base.MulScalar(p.factor)}
	}
	return r
}

// Render formats q in the most compact of the candidate display units:
// the largest candidate of matching signature in which the magnitude is at
// least 1, or the smallest candidate if none reaches 1. With no matching
// candidate, q renders in its canonical form.
func Render(q quantity.Quantity, candidates ...UnitDef) string {
	matched := make([]UnitDef, 0, len(candidates))
	for _, c := range candidates {
		if c.Unit.Unit().Equal(q.Unit()) && !c.Unit.IsZero() {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		return q.String()
	}
	sort.SliceStable(matched, func(i, j int) bool {
		a, _ := matched[i].Unit.Abs().In(matched[j].Unit.Abs())
		return a > 1
	})
	pick := matched[len(matched)-1]
	mag := 0.0
	for _, c := range matched {
		v, err := q.In(c.Unit)
		if err != nil {
			continue
		}
		if v >= 1 || v <= -1 {
			pick, mag = c, v
			break
		}
	}
	if mag == 0 {
		mag, _ = q.In(pick.Unit)
	}
	s := strconv.FormatFloat(mag, 'g', 8, 64)
	if pick.Symbol == "" {
		return s
	}
	return s + " " + pick.Symbol
}

// LaTeX formats q converted to the given display unit with the supplied
// printf verb, rewriting e-notation into LaTeX scientific notation, e.g.
// 1.5e+07 becomes `1.5 \times 10^{7}`. The dimensions of q and unit must
// match.
func LaTeX(q, unit quantity.Quantity, format string) (string, error) {
	v, err := q.In(unit)
	if err != nil {
		return "", err
	}
	s := fmt.Sprintf(format, v)
	mantissa, exponent, ok := strings.Cut(s, "e")
	if !ok {
		return s, nil
	}
	exponent = strings.TrimPrefix(exponent, "+")
	exponent = cutZeros(exponent)
	return fmt.Sprintf(`%s \times 10^{%s}`, mantissa, exponent), nil
}

func cutZeros(exp string) string {
	neg := strings.HasPrefix(exp, "-")
	t := strings.TrimLeft(strings.TrimPrefix(exp, "-"), "0")
	if t == "" {
		t = "0"
	}
	if neg {
		return "-" + t
	}
	return t
}
