// Package drw reads and writes the canonical text form of a drawing: a
// line-oriented format in which groups are delimited by begin/end pairs.
//
// # Format
//
// A document is a flat sequence of lines. Blank lines are ignored. Nesting
// is purely structural: it comes from matching begin/end pairs, never from
// indentation.
//
//	line <x1> <y1> <x2> <y2> <k,r,g,b>
//	rect <x1> <y1> <x2> <y2> <k,r,g,b> <s|r>
//	begin
//	<members>
//	end
//
// A line shape names its two endpoints; a rect its upper-left and
// lower-right corners. The colour spec is exactly four comma-separated
// integer channels (0-255). The rect corner style defaults to "s" when
// omitted; the writer always emits it.
//
// The outermost scope is unnamed: parsing returns a plain [shape.Seq], not
// an enclosing group.
//
// # Parsing
//
// [Unmarshal], [Read] and [ReadFile] run a recursive-descent parser with a
// single cursor over the input's lines. Parsing is atomic: it returns a
// complete document or a [ParseError] and nothing else, so callers can keep
// the previous document on failure (parse, then swap).
//
// Coordinates are written with the shortest representation that re-reads to
// the identical float64, so serialize/parse round trips are exact.
package drw
