// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/color"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Marker names a point glyph. The names follow the single-character
// marker vocabulary common in plotting tools: "o" circle, "s" square,
// "^" triangle up, "v" triangle down, "d"/"D" diamond, "P" plus,
// "x" cross. The empty Marker cycles through a default shape per
// series index.
type Marker string

// A Color names a line color: "b" blue, "r" red, "g" green,
// "m" magenta, "c" cyan, "k" black, or "orange". The empty Color
// cycles through a default palette per series index.
type Color string

var glyphs = map[Marker]draw.GlyphDrawer{
	"o": draw.CircleGlyph{},
	"s": draw.BoxGlyph{},
	"^": draw.PyramidGlyph{},
	"v": triDownGlyph{},
	"d": diamondGlyph{},
	"D": diamondGlyph{},
	"P": draw.PlusGlyph{},
	"x": draw.CrossGlyph{},
}

var colors = map[Color]color.Color{
	"b":      color.NRGBA{0, 0, 0xFF, 0xFF},
	"r":      color.NRGBA{0xFF, 0, 0, 0xFF},
	"g":      color.NRGBA{0, 0x80, 0, 0xFF},
	"m":      color.NRGBA{0xFF, 0, 0xFF, 0xFF},
	"c":      color.NRGBA{0, 0xBF, 0xBF, 0xFF},
	"k":      color.NRGBA{0, 0, 0, 0xFF},
	"orange": color.NRGBA{0xFF, 0xA5, 0, 0xFF},
}

func (m Marker) valid() bool {
	if m == "" {
		return true
	}
	_, ok := glyphs[m]
	return ok
}

func (c Color) valid() bool {
	if c == "" {
		return true
	}
	_, ok := colors[c]
	return ok
}

// glyph returns the glyph for m, falling back to the i'th default
// shape when m is unset.
func (m Marker) glyph(i int) draw.GlyphDrawer {
	if g, ok := glyphs[m]; ok {
		return g
	}
	return plotutil.Shape(i)
}

// pick returns the color for c, falling back to the i'th default
// palette entry when c is unset.
func (c Color) pick(i int) color.Color {
	if clr, ok := colors[c]; ok {
		return clr
	}
	return plotutil.Color(i)
}

const (
	sinπover6 = vg.Length(.500000000025921)
	cosπover6 = vg.Length(.866025403769473)
)

// diamondGlyph draws a filled diamond, a shape the draw package does
// not provide.
type diamondGlyph struct{}

// DrawGlyph implements the Glyph interface.
func (diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r := sty.Radius
	p := make(vg.Path, 0, 5)
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Close()
	c.Fill(p)
}

// triDownGlyph draws a filled downward-pointing triangle, the mirror
// of draw.PyramidGlyph.
type triDownGlyph struct{}

// DrawGlyph implements the Glyph interface.
func (triDownGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	r := sty.Radius
	p := make(vg.Path, 0, 4)
	p.Move(vg.Point{X: pt.X - r*cosπover6, Y: pt.Y + r*sinπover6})
	p.Line(vg.Point{X: pt.X + r*cosπover6, Y: pt.Y + r*sinπover6})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Close()
	c.Fill(p)
}
