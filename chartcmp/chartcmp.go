// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chartcmp compares the series of a chart against a baseline
// series.
//
// For a sweep chart this answers the question the chart itself only
// shows visually: how much better or worse is each variant than the
// baseline at every size, and on (geometric) average?
package chartcmp

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/aclements/go-moremath/stats"

	"github.com/matmulbench/benchchart"
)

// A Row is one series' ratios against the baseline.
type Row struct {
	Label string

	// Ratios holds series value / baseline value at each x value.
	// A ratio is NaN where the baseline is zero, and 1 where both
	// are zero.
	Ratios []float64

	// GeoMean is the geometric mean of Ratios. HasGeoMean is
	// false when any ratio is NaN or non-positive.
	GeoMean    float64
	HasGeoMean bool
}

// A Table holds the ratios of every non-baseline series in a chart.
type Table struct {
	Baseline string
	XValues  []float64
	Rows     []Row
}

// Compute builds the ratio table for spec against the series labeled
// baseline. Rows appear in spec order, skipping the baseline itself.
func Compute(spec *benchchart.Spec, baseline string) (*Table, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	var base *benchchart.Series
	for i := range spec.Series {
		if spec.Series[i].Label == baseline {
			base = &spec.Series[i]
			break
		}
	}
	if base == nil {
		return nil, fmt.Errorf("no series %q in chart %q", baseline, spec.Title)
	}

	t := &Table{Baseline: baseline, XValues: spec.XValues}
	for _, s := range spec.Series {
		if s.Label == baseline {
			continue
		}
		row := Row{Label: s.Label, Ratios: make([]float64, len(s.Values))}
		ok := true
		for i, v := range s.Values {
			b := base.Values[i]
			switch {
			case v == b:
				// Treat 0/0 as 1.
				row.Ratios[i] = 1
			case b == 0:
				row.Ratios[i] = math.NaN()
				ok = false
			default:
				row.Ratios[i] = v / b
			}
		}
		if ok {
			gm := stats.GeoMean(row.Ratios)
			// GeoMean is NaN if any ratio is non-positive.
			if !math.IsNaN(gm) {
				row.GeoMean = gm
				row.HasGeoMean = true
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// WriteText writes the table in aligned text form.
func (t *Table) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "vs %s", t.Baseline)
	for _, x := range t.XValues {
		fmt.Fprintf(tw, "\t%s", strconv.FormatFloat(x, 'g', -1, 64))
	}
	fmt.Fprint(tw, "\tgeomean\n")

	for _, row := range t.Rows {
		fmt.Fprint(tw, row.Label)
		for _, r := range row.Ratios {
			if math.IsNaN(r) {
				fmt.Fprint(tw, "\t~")
			} else {
				fmt.Fprintf(tw, "\t%.3f", r)
			}
		}
		if row.HasGeoMean {
			fmt.Fprintf(tw, "\t%.3f\n", row.GeoMean)
		} else {
			fmt.Fprint(tw, "\t~\n")
		}
	}
	return tw.Flush()
}
