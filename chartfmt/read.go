// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chartfmt reads declarative chart definitions.
//
// A chart definition is a TOML file describing one chart: title, axis
// labels, the shared x values, and a [[series]] table per line. The
// benchmark numbers live in these files as data, not in code, so the
// renderer can be exercised with any input.
package chartfmt

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matmulbench/benchchart"
)

type chartFile struct {
	Title  string        `toml:"title"`
	XLabel string        `toml:"x-label"`
	YLabel string        `toml:"y-label"`
	X      []float64     `toml:"x"`
	YScale string        `toml:"y-scale"`
	Series []seriesTable `toml:"series"`
}

type seriesTable struct {
	Label  string    `toml:"label"`
	Marker string    `toml:"marker"`
	Color  string    `toml:"color"`
	Values []float64 `toml:"values"`
}

func (f *chartFile) spec() *benchchart.Spec {
	spec := &benchchart.Spec{
		Title:   f.Title,
		XLabel:  f.XLabel,
		YLabel:  f.YLabel,
		XValues: f.X,
		YScale:  benchchart.Scale(f.YScale),
	}
	for _, s := range f.Series {
		spec.Series = append(spec.Series, benchchart.Series{
			Label:  s.Label,
			Values: s.Values,
			Marker: benchchart.Marker(s.Marker),
			Color:  benchchart.Color(s.Color),
		})
	}
	return spec
}

// Read parses one chart definition from r and validates it.
// name is used in error messages; it is purely diagnostic.
func Read(r io.Reader, name string) (*benchchart.Spec, error) {
	var f chartFile
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	spec := f.spec()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return spec, nil
}

// ReadFile parses the chart definition in the named file.
func ReadFile(path string) (*benchchart.Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}
