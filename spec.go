// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders comparison charts for benchmark sweeps.
//
// A chart is described declaratively by a Spec: a title, axis labels,
// a shared x axis (the sweep parameter, such as matrix size), and one
// or more named Series of y values. Render turns a Spec into a Chart,
// a multi-series line chart with one marker style per series, a
// legend, a grid, and tick marks at exactly the swept x values.
//
// Render is a pure function of its Spec. It holds no process-wide
// styling state, so rendering the same Spec twice produces identical
// output and independent Specs may be rendered concurrently.
package benchchart

import "fmt"

// A Series is one named line in a chart.
//
// Values are plotted against the owning Spec's XValues in order, so
// len(Values) must equal len(Spec.XValues). Values are arbitrary
// caller-supplied measurements; zero and negative values are drawn
// like any other.
type Series struct {
	Label  string
	Values []float64

	// Marker and Color select the point glyph and line color.
	// Empty values auto-cycle through a default palette.
	Marker Marker
	Color  Color
}

// A Spec is the full declarative description of one chart.
//
// A Spec is constructed, passed once to Render, and discarded. Render
// does not mutate or retain it.
type Spec struct {
	Title  string
	XLabel string
	YLabel string

	// XValues is the shared x axis. It must be strictly
	// increasing; tick marks are drawn at exactly these values.
	XValues []float64

	// Series are drawn, and listed in the legend, in order.
	Series []Series

	// YScale selects how y tick labels are scaled:
	// ScaleSI (the default), ScaleBinary, or ScaleNone.
	YScale Scale
}

// A Scale names a y-axis tick label scaling mode.
type Scale string

const (
	ScaleSI     Scale = "si"     // SI prefixes: 137438953472 -> "137.4G"
	ScaleBinary Scale = "binary" // IEC prefixes: "128.0Gi"
	ScaleNone   Scale = "none"   // plain decimal labels
)

// An InvalidSpecError reports a malformed Spec. It is returned by
// Validate and Render before any drawing work begins.
type InvalidSpecError struct {
	Title string // title of the offending Spec, may be empty
	Msg   string
}

func (e *InvalidSpecError) Error() string {
	if e.Title == "" {
		return "invalid chart spec: " + e.Msg
	}
	return fmt.Sprintf("invalid chart spec %q: %s", e.Title, e.Msg)
}

func (s *Spec) errorf(format string, args ...interface{}) error {
	return &InvalidSpecError{Title: s.Title, Msg: fmt.Sprintf(format, args...)}
}

// Validate checks that s describes a renderable chart: at least one
// series, strictly increasing x values, every series the same length
// as the x axis, and known style and scale names.
func (s *Spec) Validate() error {
	if len(s.Series) == 0 {
		return s.errorf("no series")
	}
	if len(s.XValues) == 0 {
		return s.errorf("no x values")
	}
	for i, x := range s.XValues[1:] {
		if x <= s.XValues[i] {
			return s.errorf("x values must be strictly increasing: x[%d]=%v, x[%d]=%v", i, s.XValues[i], i+1, x)
		}
	}
	for _, ser := range s.Series {
		if len(ser.Values) != len(s.XValues) {
			return s.errorf("series %q has %d values for %d x values", ser.Label, len(ser.Values), len(s.XValues))
		}
		if !ser.Marker.valid() {
			return s.errorf("series %q: unknown marker %q", ser.Label, ser.Marker)
		}
		if !ser.Color.valid() {
			return s.errorf("series %q: unknown color %q", ser.Label, ser.Color)
		}
	}
	switch s.YScale {
	case "", ScaleSI, ScaleBinary, ScaleNone:
	default:
		return s.errorf("unknown y scale %q", s.YScale)
	}
	return nil
}
