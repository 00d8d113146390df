// Copyright 2025 The benchchart Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/google/safehtml/template"
)

type galleryEntry struct {
	Title string
	Image string
}

var galleryTemplate = template.Must(template.New("gallery").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Benchmark Charts</title>
<style>
body { font-family: sans-serif; margin: 2em; }
figure { margin: 0 0 2em 0; }
figure img { max-width: 100%; border: 1px solid #ccc; }
figcaption { color: #666; padding-top: 0.5em; }
</style>
</head>
<body>
<h1>Benchmark Charts</h1>
{{range . -}}
<figure>
<img src="{{.Image}}" alt="{{.Title}}">
<figcaption>{{.Title}}</figcaption>
</figure>
{{end -}}
</body>
</html>
`)))

// writeGallery writes an HTML page showing the rendered charts in
// input order. Image paths are relative to the gallery file, so it
// belongs next to the images in the output directory.
func writeGallery(path string, entries []galleryEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := galleryTemplate.Execute(f, entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
