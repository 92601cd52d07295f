/*
Package svgo minifies SVG documents.

Optimize runs a fixed pipeline of plugins over the parsed document tree and
serializes the result. Plugins can be switched off by name with WithOverride.
The preset used for icon sources keeps every path separate and pretty prints
with two spaces:

	out, err := svgo.OptimizeIcon(src)
*/
package svgo

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'icons.svg'.
func tracer() tracing.Trace {
	return tracing.Select("icons.svg")
}
