// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartfmt

import (
	"os"

	"github.com/matmulbench/benchchart"
)

// A Files reads chart definitions from a sequence of input files.
//
// Its API is modeled on bufio.Scanner: call Scan until it returns
// false, then check Err.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin. This is generally the desired behavior when the file
	// list comes from command-line flags.
	AllowStdin bool

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet.
	inputs []string

	spec    *benchchart.Spec
	path    string
	err     error
	started bool
}

// Scan advances to the next input file and parses it. It returns
// false at the end of the inputs or on the first error.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if !f.started {
		f.started = true
		f.inputs = f.Paths
	}
	if len(f.inputs) == 0 {
		return false
	}
	path := f.inputs[0]
	f.inputs = f.inputs[1:]
	f.path = path
	if path == "-" && f.AllowStdin {
		f.spec, f.err = Read(os.Stdin, "stdin")
	} else {
		f.spec, f.err = ReadFile(path)
	}
	return f.err == nil
}

// Spec returns the chart definition parsed by the last call to Scan.
func (f *Files) Spec() *benchchart.Spec { return f.spec }

// Path returns the input path read by the last call to Scan.
func (f *Files) Path() string { return f.path }

// Err returns the first error encountered, or nil.
func (f *Files) Err() error { return f.err }
