// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartcmp

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/matmulbench/benchchart"
)

func sweep(series ...benchchart.Series) *benchchart.Spec {
	return &benchchart.Spec{
		Title:   "t",
		XValues: []float64{4096, 6144},
		Series:  series,
	}
}

func TestCompute(t *testing.T) {
	spec := sweep(
		benchchart.Series{Label: "Line", Values: []float64{2, 4}},
		benchchart.Series{Label: "Block", Values: []float64{1, 2}},
	)
	tab, err := Compute(spec, "Line")
	if err != nil {
		t.Fatal(err)
	}
	if len(tab.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(tab.Rows))
	}
	row := tab.Rows[0]
	if row.Label != "Block" {
		t.Errorf("got label %q, want Block", row.Label)
	}
	for i, r := range row.Ratios {
		if r != 0.5 {
			t.Errorf("ratio %d: got %v, want 0.5", i, r)
		}
	}
	if !row.HasGeoMean || math.Abs(row.GeoMean-0.5) > 1e-12 {
		t.Errorf("got geomean %v (has=%v), want 0.5", row.GeoMean, row.HasGeoMean)
	}
}

func TestComputeZeroBaseline(t *testing.T) {
	spec := sweep(
		benchchart.Series{Label: "base", Values: []float64{0, 2}},
		benchchart.Series{Label: "both zero", Values: []float64{0, 4}},
		benchchart.Series{Label: "undefined", Values: []float64{3, 4}},
	)
	tab, err := Compute(spec, "base")
	if err != nil {
		t.Fatal(err)
	}

	// 0/0 counts as 1.
	row := tab.Rows[0]
	if row.Ratios[0] != 1 || row.Ratios[1] != 2 {
		t.Errorf("got ratios %v, want [1 2]", row.Ratios)
	}
	if !row.HasGeoMean || math.Abs(row.GeoMean-math.Sqrt2) > 1e-12 {
		t.Errorf("got geomean %v (has=%v), want sqrt(2)", row.GeoMean, row.HasGeoMean)
	}

	// 3/0 is undefined and suppresses the geomean.
	row = tab.Rows[1]
	if !math.IsNaN(row.Ratios[0]) {
		t.Errorf("got ratio %v, want NaN", row.Ratios[0])
	}
	if row.HasGeoMean {
		t.Error("geomean should be suppressed for an undefined ratio")
	}
}

func TestComputeUnknownBaseline(t *testing.T) {
	spec := sweep(benchchart.Series{Label: "Line", Values: []float64{2, 4}})
	if _, err := Compute(spec, "Blocked"); err == nil {
		t.Fatal("expected error for unknown baseline series")
	}
}

func TestWriteText(t *testing.T) {
	spec := sweep(
		benchchart.Series{Label: "Line", Values: []float64{2, 4}},
		benchchart.Series{Label: "Block", Values: []float64{1, 2}},
	)
	tab, err := Compute(spec, "Line")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := tab.WriteText(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"vs Line", "geomean", "Block", "0.500"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
