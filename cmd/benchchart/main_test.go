// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputBase(t *testing.T) {
	test := func(path, want string) {
		t.Helper()
		if got := outputBase(path); got != want {
			t.Errorf("outputBase(%q) = %q, want %q", path, got, want)
		}
	}
	test("charts/gflops-block-line.toml", "gflops-block-line")
	test("exec-time.toml", "exec-time")
	test("noext", "noext")
	test("-", "stdin")
}

func TestGalleryTemplate(t *testing.T) {
	entries := []galleryEntry{
		{Title: "GFLOPS comparison", Image: "gflops.png"},
		{Title: "L1 Cache Misses", Image: "l1.png"},
	}
	var buf bytes.Buffer
	if err := galleryTemplate.Execute(&buf, entries); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`src="gflops.png"`, `src="l1.png"`, "GFLOPS comparison", "L1 Cache Misses"} {
		if !strings.Contains(out, want) {
			t.Errorf("gallery output missing %q", want)
		}
	}
	// Entries appear in input order.
	if strings.Index(out, "gflops.png") > strings.Index(out, "l1.png") {
		t.Error("gallery entries out of order")
	}
}

func TestWriteGallery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	if err := writeGallery(path, []galleryEntry{{Title: "t", Image: "t.png"}}); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "t.png") {
		t.Error("gallery file does not reference the image")
	}
}
