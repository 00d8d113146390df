// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchchart renders benchmark comparison charts from declarative
// chart definitions.
//
// Usage:
//
//	benchchart [-o dir] [-format list] [-csv] [-compare series] [-html file] chart.toml ...
//
// Each input file defines one chart in TOML form: a title, axis
// labels, the shared x values, and a [[series]] table per line. For
// example:
//
//	title   = "Execution time, simple vs. line multiplication"
//	x-label = "Matrix Size"
//	y-label = "Execution Time (s)"
//	x       = [600.0, 1000.0, 1400.0]
//
//	[[series]]
//	label  = "Simple"
//	marker = "o"
//	color  = "b"
//	values = [0.39, 1.92, 5.37]
//
// Benchchart writes one image per chart and format to the output
// directory, named after the input file. The input path "-" reads a
// single chart definition from stdin.
//
// The -csv flag additionally writes each chart's data table in CSV
// form. The -compare flag prints, for each chart, the ratio of every
// series against the named baseline series along with the geometric
// mean of those ratios. The -html flag writes a gallery page
// referencing the rendered images.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/matmulbench/benchchart"
	"github.com/matmulbench/benchchart/chartcmp"
	"github.com/matmulbench/benchchart/chartfmt"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: benchchart [options] chart.toml ...\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagOut     = flag.String("o", ".", "write rendered charts to `dir`")
	flagFormat  = flag.String("format", "png", "comma-separated image `formats`: png, svg, pdf")
	flagCSV     = flag.Bool("csv", false, "also write each chart's data table in CSV form")
	flagCompare = flag.String("compare", "", "print each chart's ratios against baseline `series`")
	flagHTML    = flag.String("html", "", "write an HTML gallery of the rendered charts to `file`")
)

var knownFormats = map[string]bool{"png": true, "svg": true, "pdf": true}

func main() {
	log.SetPrefix("benchchart: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}

	formats := strings.Split(*flagFormat, ",")
	for _, f := range formats {
		if !knownFormats[f] {
			log.Fatalf("unknown format %q", f)
		}
	}

	if err := os.MkdirAll(*flagOut, 0777); err != nil {
		log.Fatal(err)
	}

	var gallery []galleryEntry
	files := &chartfmt.Files{Paths: flag.Args(), AllowStdin: true}
	for files.Scan() {
		spec := files.Spec()
		chart, err := benchchart.Render(spec)
		if err != nil {
			log.Fatal(err)
		}

		base := outputBase(files.Path())
		for _, format := range formats {
			if err := chart.Save(filepath.Join(*flagOut, base+"."+format)); err != nil {
				log.Fatal(err)
			}
		}
		gallery = append(gallery, galleryEntry{Title: spec.Title, Image: base + "." + formats[0]})

		if *flagCSV {
			if err := writeCSVFile(filepath.Join(*flagOut, base+".csv"), spec); err != nil {
				log.Fatal(err)
			}
		}
		if *flagCompare != "" {
			tab, err := chartcmp.Compute(spec, *flagCompare)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf("%s\n", spec.Title)
			if err := tab.WriteText(os.Stdout); err != nil {
				log.Fatal(err)
			}
			fmt.Println()
		}
	}
	if err := files.Err(); err != nil {
		log.Fatal(err)
	}

	if *flagHTML != "" {
		if err := writeGallery(*flagHTML, gallery); err != nil {
			log.Fatal(err)
		}
	}
}

// outputBase derives the output file base name from an input path.
func outputBase(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeCSVFile(path string, spec *benchchart.Spec) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chartfmt.WriteCSV(f, spec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
