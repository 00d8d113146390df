// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numfmt formats metric values with SI or binary prefixes.
//
// Benchmark metrics span many orders of magnitude: an execution-time
// axis runs single-digit seconds while a cache-miss axis runs into
// the trillions. This package scales such values for display, e.g.
// 2147483648000 as "2.147T", keeping at least three significant
// digits.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
)

// A Class specifies which prefix family to scale with.
type Class int

const (
	// Decimal scales by powers of 1000 using SI prefixes
	// ("k", "M", "G", ...).
	Decimal Class = iota
	// Binary scales by powers of 1024 using IEC prefixes
	// ("Ki", "Mi", "Gi", ...). Appropriate for byte counts.
	Binary
)

func (c Class) String() string {
	switch c {
	case Decimal:
		return "Decimal"
	case Binary:
		return "Binary"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// A Scaler represents a fixed scaling factor and output precision.
type Scaler struct {
	Prec   int     // digits after the decimal point
	Factor float64 // unscaled value of one Prefix (1 "k" => 1000)
	Prefix string
}

// Format formats val scaled by s, appending the prefix.
func (s Scaler) Format(val float64) string {
	return strconv.FormatFloat(val/s.Factor, 'f', s.Prec, 64) + s.Prefix
}

// NoOpScaler formats numbers exactly, with no prefix. It is intended
// for machine-readable output such as CSV.
var NoOpScaler = Scaler{Prec: -1, Factor: 1}

type step struct {
	factor float64
	prefix string
	// Smallest values that format as 100.0, 10.00, and 1.000
	// with this prefix.
	t100, t10, t1 float64
}

// parseThreshold builds a rounding threshold by parsing its printed
// representation, so a threshold rounds exactly the way formatting
// itself will.
func parseThreshold(format string, exp int) float64 {
	v, err := strconv.ParseFloat(fmt.Sprintf(format, exp), 64)
	if err != nil {
		panic(err)
	}
	return v
}

var decimalSteps = func() []step {
	prefixes := []string{"T", "G", "M", "k", "", "m", "µ", "n"}
	steps := make([]step, len(prefixes))
	for i, p := range prefixes {
		exp := 12 - 3*i
		steps[i] = step{
			factor: math.Pow(10, float64(exp)),
			prefix: p,
			t100:   parseThreshold("99.995e%d", exp),
			t10:    parseThreshold("9.9995e%d", exp),
			t1:     parseThreshold(".99995e%d", exp),
		}
	}
	return steps
}()

var binarySteps = func() []step {
	// There are no fractional IEC prefixes, so this bottoms out at
	// the unit step and Scale compensates with extra precision.
	prefixes := []string{"Ti", "Gi", "Mi", "Ki", ""}
	steps := make([]step, len(prefixes))
	for i, p := range prefixes {
		exp := 40 - 10*i
		steps[i] = step{
			factor: math.Pow(2, float64(exp)),
			prefix: p,
			t100:   parseThreshold("0x1.8ffae147ae148p%d", 6+exp),  // 99.995
			t10:    parseThreshold("0x1.3ffbe76c8b439p%d", 3+exp),  // 9.9995
			t1:     parseThreshold("0x1.fff972474538fp%d", -1+exp), // .99995
		}
	}
	return steps
}()

// Scale formats val with at least three significant digits and an
// SI or IEC prefix according to cls.
func Scale(val float64, cls Class) string {
	return CommonScale([]float64{val}, cls).Format(val)
}

// CommonScale returns a single Scaler suitable for every value in
// vals, chosen so the non-zero value closest to zero still shows at
// least three significant digits. Applying one common scale keeps a
// column or axis of values comparable at a glance.
func CommonScale(vals []float64, cls Class) Scaler {
	var min float64
	for _, v := range vals {
		v = math.Abs(v)
		if v != 0 && (min == 0 || v < min) {
			min = v
		}
	}
	if min == 0 {
		return Scaler{3, 1, ""}
	}

	var steps []step
	switch cls {
	default:
		panic(fmt.Sprintf("bad Class %v", cls))
	case Decimal:
		steps = decimalSteps
	case Binary:
		steps = binarySteps
	}

	for _, st := range steps {
		switch {
		case min >= st.t100:
			return Scaler{1, st.factor, st.prefix}
		case min >= st.t10:
			return Scaler{2, st.factor, st.prefix}
		case min >= st.t1:
			return Scaler{3, st.factor, st.prefix}
		}
	}

	// Below the smallest step. Add precision digit by digit until
	// the value shows three significant figures.
	st := steps[len(steps)-1]
	v := min / st.factor
	prec := 3
	for thresh := 0.99995; prec < 10 && v < thresh; thresh /= 10 {
		prec++
	}
	return Scaler{prec, st.factor, st.prefix}
}
