/*
Package icons holds the build helpers of an SVG icon set.

It loads the icon sources of a directory, derives their names, resolves
aliases, reads the compile options of the font build, lays the icons out on a
preview sheet and prints release changelogs. Path data and document
minification live in the svgpath and svgo packages, PNG conversion in raster.

The package provides a command line interface wiring these steps together.
To check the supported commands type:

	$ iconkit --help

Building a preview sheet from a directory of icons:

	package main

	import (
		"fmt"
		"github.com/SH20RAJ/icons"
	)

	func main() {
		files, err := icons.ListSVGFiles("icons/outline", 0)
		if err != nil {
			fmt.Printf("Error listing icons: %s", err.Error())
		}
		opts := icons.DefaultPreviewOptions()
		if _, err := icons.BuildPreview(files, "preview.svg", opts, nil); err != nil {
			fmt.Printf("Error building the preview: %s", err.Error())
		}
	}
*/
package icons

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'icons.build'.
func tracer() tracing.Trace {
	return tracing.Select("icons.build")
}
