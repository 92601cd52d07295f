// Package svgdoc holds the structured tree an SVG document is parsed into.
//
// The tree is deliberately small: elements with ordered attributes, text and
// comments. It serializes back either compactly, for embedding, or indented,
// for files meant to be read and diffed.
package svgdoc
