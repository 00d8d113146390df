// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartfmt

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/matmulbench/benchchart"
)

// WriteCSV writes spec's data table to w in CSV form: a header row of
// "size" followed by the series labels, then one row per x value.
// Values are written exactly, with no prefix scaling.
func WriteCSV(w io.Writer, spec *benchchart.Spec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	cw := csv.NewWriter(w)

	header := make([]string, 0, 1+len(spec.Series))
	header = append(header, "size")
	for _, s := range spec.Series {
		header = append(header, s.Label)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	for i, x := range spec.XValues {
		row[0] = strconv.FormatFloat(x, 'g', -1, 64)
		for j, s := range spec.Series {
			row[j+1] = strconv.FormatFloat(s.Values[i], 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
