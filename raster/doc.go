// Package raster turns SVG artwork into pixels.
//
// Converter shells out to an external SVG to PNG converter (rsvg-convert by
// default) for the preview sheets. Fill is a small in-process outline
// rasterizer, used to check that rewritten path data still covers the same
// area as the source.
package raster

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'icons.raster'.
func tracer() tracing.Trace {
	return tracing.Select("icons.raster")
}
