// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"strconv"

	"gonum.org/v1/plot"

	"github.com/matmulbench/benchchart/numfmt"
)

// fixedTicks places a labeled major tick at each of its values and
// nothing else, pinning the x axis to the swept sizes.
type fixedTicks []float64

// Ticks implements plot.Ticker.
func (t fixedTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, len(t))
	for i, x := range t {
		ticks[i] = plot.Tick{Value: x, Label: strconv.FormatFloat(x, 'g', -1, 64)}
	}
	return ticks
}

// scaledTicks keeps the default tick placement but relabels the major
// ticks with a scale common to all of them, so a cache-miss axis
// reads "50G" rather than "5e+10".
type scaledTicks struct {
	cls numfmt.Class
}

// Ticks implements plot.Ticker.
func (t scaledTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	var vals []float64
	for _, tk := range ticks {
		if tk.Label != "" {
			vals = append(vals, tk.Value)
		}
	}
	s := numfmt.CommonScale(vals, t.cls)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = s.Format(ticks[i].Value)
		}
	}
	return ticks
}
