// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"errors"
	"strings"
	"testing"
)

func validSpec() *Spec {
	return &Spec{
		Title:   "Execution time comparison",
		XLabel:  "Matrix Size",
		YLabel:  "Execution Time (s)",
		XValues: []float64{600, 1000, 1400},
		Series: []Series{
			{Label: "Simple", Values: []float64{0.39, 1.92, 5.37}, Marker: "o", Color: "b"},
		},
	}
}

func TestValidate(t *testing.T) {
	check := func(mutate func(*Spec), want string) {
		t.Helper()
		s := validSpec()
		if mutate != nil {
			mutate(s)
		}
		err := s.Validate()
		if want == "" {
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			return
		}
		var ise *InvalidSpecError
		if !errors.As(err, &ise) {
			t.Fatalf("got error %v, want *InvalidSpecError", err)
		}
		if !strings.Contains(ise.Msg, want) {
			t.Errorf("got %q, want message containing %q", ise.Msg, want)
		}
	}

	check(nil, "")
	check(func(s *Spec) { s.Series = nil }, "no series")
	check(func(s *Spec) { s.XValues = nil }, "no x values")
	check(func(s *Spec) { s.XValues[1] = s.XValues[0] }, "strictly increasing")
	check(func(s *Spec) { s.XValues[2] = 500 }, "strictly increasing")
	check(func(s *Spec) { s.Series[0].Values = s.Series[0].Values[:2] }, `series "Simple" has 2 values for 3 x values`)
	check(func(s *Spec) { s.Series[0].Marker = "?" }, `unknown marker "?"`)
	check(func(s *Spec) { s.Series[0].Color = "teal" }, `unknown color "teal"`)
	check(func(s *Spec) { s.YScale = "log" }, `unknown y scale "log"`)
	check(func(s *Spec) { s.YScale = ScaleBinary }, "")
	check(func(s *Spec) { s.Series[0].Marker = ""; s.Series[0].Color = "" }, "")
}

func TestStyleLookup(t *testing.T) {
	if Marker("o").glyph(0) != glyphs["o"] {
		t.Errorf("marker o did not map to its glyph")
	}
	// An unset marker cycles by series index.
	if Marker("").glyph(0) == Marker("").glyph(1) {
		t.Errorf("unset markers for series 0 and 1 should differ")
	}
	if Color("b").pick(3) != colors["b"] {
		t.Errorf("color b did not map to its color")
	}
	if Color("").pick(0) == Color("").pick(1) {
		t.Errorf("unset colors for series 0 and 1 should differ")
	}
}
