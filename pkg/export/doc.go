// Package export renders shape sequences into presentation formats: an
// XML-tagged form mirroring the canonical text format's fields, and
// Graphviz structure graphs (DOT, with SVG/PNG rasterization) showing the
// document's group tree.
package export
