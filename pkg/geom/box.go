package geom

import "math"

// Box is an axis-aligned bounding box described by its top-left and
// bottom-right corners. The remaining corners are derived, never stored.
//
// The zero value is the "unused" box: it is the identity element of [Box.Union]
// and [Box.Contains] reports true for every point. Shapes without an extent
// (an empty group) report an unused box.
//
// A box with InUse set is always normalized: TopLeft.X <= BottomRight.X and
// TopLeft.Y <= BottomRight.Y. Construct boxes with [NewBox] or [Envelope] to
// preserve this.
type Box struct {
	TopLeft     Point
	BottomRight Point
	InUse       bool
}

// NewBox returns the normalized box spanning points a and b.
func NewBox(a, b Point) Box {
	return Box{
		TopLeft:     Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		BottomRight: Point{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
		InUse:       true,
	}
}

// Envelope returns the smallest box containing all pts. With no points it
// returns the unused box.
func Envelope(pts ...Point) Box {
	var b Box
	for _, p := range pts {
		b = b.Union(NewBox(p, p))
	}
	return b
}

// TopRight returns the derived top-right corner.
func (b Box) TopRight() Point { return Point{b.BottomRight.X, b.TopLeft.Y} }

// BottomLeft returns the derived bottom-left corner.
func (b Box) BottomLeft() Point { return Point{b.TopLeft.X, b.BottomRight.Y} }

// Width returns the horizontal extent. Zero for an unused box.
func (b Box) Width() float64 {
	if !b.InUse {
		return 0
	}
	return b.BottomRight.X - b.TopLeft.X
}

// Height returns the vertical extent. Zero for an unused box.
func (b Box) Height() float64 {
	if !b.InUse {
		return 0
	}
	return b.BottomRight.Y - b.TopLeft.Y
}

// Union returns the join of b and o: the smallest box covering both.
// An unused operand is the identity, so the result is the other operand
// unchanged. Union is commutative and associative.
func (b Box) Union(o Box) Box {
	if !b.InUse {
		return o
	}
	if !o.InUse {
		return b
	}
	return Box{
		TopLeft:     Point{math.Min(b.TopLeft.X, o.TopLeft.X), math.Min(b.TopLeft.Y, o.TopLeft.Y)},
		BottomRight: Point{math.Max(b.BottomRight.X, o.BottomRight.X), math.Max(b.BottomRight.Y, o.BottomRight.Y)},
		InUse:       true,
	}
}

// Contains reports whether p lies inside b using half-open intervals:
// x in [left, right) and y in [top, bottom). A point exactly on the right or
// bottom edge is outside, so adjacent boxes never both claim a shared edge.
//
// An unused box contains every point.
func (b Box) Contains(p Point) bool {
	if !b.InUse {
		return true
	}
	return p.X >= b.TopLeft.X && p.X < b.BottomRight.X &&
		p.Y >= b.TopLeft.Y && p.Y < b.BottomRight.Y
}
