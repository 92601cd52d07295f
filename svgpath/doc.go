/*
Package svgpath parses and rewrites SVG path data.

A path is parsed into one Segment per drawing command, with implicitly
repeated commands expanded. Optimize produces the canonical form used for
icon sources: every segment relative, coordinates rounded to three decimals
with the rounding error carried forward so points do not drift, tokens joined
by single spaces.

	d, err := svgpath.Optimize("M 4 4 L 20 20")
	// d == "M 4 4l 16 16"
*/
package svgpath
