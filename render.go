// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/matmulbench/benchchart/numfmt"
)

// Fixed drawing surface, 8x5 inch landscape.
const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
)

var (
	glyphRadius  = vg.Points(3)
	titlePadding = vg.Points(10)
)

// A BackendError reports a failure of the underlying drawing or
// encoding backend. It is surfaced verbatim to the caller, never
// retried.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("render backend: %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// A Chart is a rendered chart, ready to be encoded to an image
// format or saved to a file.
type Chart struct {
	plot  *plot.Plot
	lines []*plotter.Line
}

// Render turns spec into a Chart.
//
// Each series becomes one solid line with per-point glyphs, drawn and
// listed in the legend in spec order. Tick marks appear at exactly
// spec.XValues. Render validates spec first and returns an
// *InvalidSpecError before any drawing happens if it is malformed.
func Render(spec *Spec) (*Chart, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.Title.Padding = titlePadding
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.BackgroundColor = color.White

	p.Add(plotter.NewGrid())

	p.X.Tick.Marker = fixedTicks(spec.XValues)
	switch spec.YScale {
	case "", ScaleSI:
		p.Y.Tick.Marker = scaledTicks{cls: numfmt.Decimal}
	case ScaleBinary:
		p.Y.Tick.Marker = scaledTicks{cls: numfmt.Binary}
	case ScaleNone:
		// keep the default ticker
	}

	c := &Chart{plot: p}
	for i, s := range spec.Series {
		pts := make(plotter.XYs, len(s.Values))
		for j, v := range s.Values {
			pts[j] = plotter.XY{X: spec.XValues[j], Y: v}
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, &BackendError{Op: "series " + s.Label, Err: err}
		}
		clr := s.Color.pick(i)
		line.LineStyle.Color = clr
		points.GlyphStyle.Color = clr
		points.GlyphStyle.Shape = s.Marker.glyph(i)
		points.GlyphStyle.Radius = glyphRadius

		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
		c.lines = append(c.lines, line)
	}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Millimeter

	return c, nil
}

// Encode encodes the chart in the named image format ("png", "svg",
// or "pdf") and writes it to w.
func (c *Chart) Encode(w io.Writer, format string) error {
	wt, err := c.plot.WriterTo(chartWidth, chartHeight, format)
	if err != nil {
		return &BackendError{Op: "encode " + format, Err: err}
	}
	if _, err := wt.WriteTo(w); err != nil {
		return &BackendError{Op: "write " + format, Err: err}
	}
	return nil
}

// Save writes the chart to path in the format implied by its
// extension.
func (c *Chart) Save(path string) error {
	if err := c.plot.Save(chartWidth, chartHeight, path); err != nil {
		return &BackendError{Op: "save " + path, Err: err}
	}
	return nil
}
