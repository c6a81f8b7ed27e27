// Package shape implements the document model of the drawing editor: a
// sealed shape variant (Line, Rect, Group) and the ordered sequence
// operations a presentation layer edits documents through.
//
// The variant is closed: Shape has an unexported method, so only the three
// types in this package satisfy it. Behaviour shared by all variants (move,
// clone, hit test, bounds, structural equality) lives in methods, which
// keeps dispatch exhaustive; code that must branch on the concrete type
// (codecs, exporters) type-switches and treats an unknown kind as a
// programming error.
//
// Bounding boxes are derived on demand from the defining geometry via
// [Shape.Bounds]. Nothing caches them, so they can never go stale after a
// move or a membership change.
//
// A Group exclusively owns its member tree. Documents are ordered [Seq]
// values; there is no implicit enclosing group.
package shape

import "github.com/drawkit/drawkit/pkg/geom"

// Kind identifies the concrete type behind a Shape.
type Kind int

const (
	// KindLine is a straight segment between two points.
	KindLine Kind = iota
	// KindRect is an axis-aligned rectangle.
	KindRect
	// KindGroup is a composite holding an ordered list of member shapes.
	KindGroup
)

// String returns the lower-case name used in graphs, tables and API output.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindRect:
		return "rectangle"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Shape is the closed variant over lines, rectangles and groups.
//
// All implementations use pointer receivers: Move mutates the shape in
// place. Equality is structural ([Shape.Equal]), never pointer identity;
// callers that need to tell equal-valued shapes apart should use the
// handle-based facade in the doc package.
type Shape interface {
	// Kind reports the concrete variant.
	Kind() Kind

	// Bounds returns the bounding box derived from the current geometry.
	// An empty group returns the unused box.
	Bounds() geom.Box

	// Contains reports whether p hits the shape.
	Contains(p geom.Point) bool

	// Move translates the defining geometry by (dx, dy).
	Move(dx, dy float64)

	// Clone returns a deep copy; groups clone their entire member tree.
	Clone() Shape

	// Equal reports structural equality with another shape.
	Equal(other Shape) bool

	// isShape seals the variant to this package.
	isShape()
}

// hitEpsilon is the tolerance for the segment hit test: a point at most
// this perpendicular distance from the segment counts as on it. Exact
// floating-point collinearity is too fragile to test for.
const hitEpsilon = 1e-9

// Line is a straight segment from Start to End.
type Line struct {
	Start  geom.Point
	End    geom.Point
	Colour Colour
}

// NewLine returns a line between the two points.
func NewLine(start, end geom.Point, colour Colour) *Line {
	return &Line{Start: start, End: end, Colour: colour}
}

func (l *Line) Kind() Kind { return KindLine }

// Bounds returns the min/max envelope of the two endpoints.
func (l *Line) Bounds() geom.Box { return geom.NewBox(l.Start, l.End) }

// Contains reports whether p lies on the segment, within [hitEpsilon]: the
// point must be collinear with the segment (cross product near zero) and
// between the endpoints (dot product within the span).
func (l *Line) Contains(p geom.Point) bool {
	d := l.End.Sub(l.Start)
	v := p.Sub(l.Start)

	lenSq := d.Dot(d)
	if lenSq == 0 {
		// Degenerate segment: both endpoints coincide.
		return v.Dot(v) <= hitEpsilon*hitEpsilon
	}

	// Perpendicular distance check: |cross|/|d| <= eps.
	cross := d.Cross(v)
	if cross*cross > hitEpsilon*hitEpsilon*lenSq {
		return false
	}

	// Projection of v onto d must fall within [0, |d|^2].
	t := d.Dot(v)
	return t >= 0 && t <= lenSq
}

func (l *Line) Move(dx, dy float64) {
	l.Start = l.Start.Translate(dx, dy)
	l.End = l.End.Translate(dx, dy)
}

func (l *Line) Clone() Shape {
	cp := *l
	return &cp
}

func (l *Line) Equal(other Shape) bool {
	o, ok := other.(*Line)
	return ok && *l == *o
}

func (l *Line) isShape() {}

// Rect is an axis-aligned rectangle described by its upper-left and
// lower-right corners.
type Rect struct {
	UpperLeft  geom.Point
	LowerRight geom.Point
	Colour     Colour
	Corner     Corner
}

// NewRect returns a rectangle spanning the two corners.
func NewRect(upperLeft, lowerRight geom.Point, colour Colour, corner Corner) *Rect {
	return &Rect{UpperLeft: upperLeft, LowerRight: lowerRight, Colour: colour, Corner: corner}
}

func (r *Rect) Kind() Kind { return KindRect }

// Bounds returns the box spanning the two defining corners.
func (r *Rect) Bounds() geom.Box { return geom.NewBox(r.UpperLeft, r.LowerRight) }

// Contains delegates to the bounding box (half-open intervals).
func (r *Rect) Contains(p geom.Point) bool { return r.Bounds().Contains(p) }

func (r *Rect) Move(dx, dy float64) {
	r.UpperLeft = r.UpperLeft.Translate(dx, dy)
	r.LowerRight = r.LowerRight.Translate(dx, dy)
}

func (r *Rect) Clone() Shape {
	cp := *r
	return &cp
}

func (r *Rect) Equal(other Shape) bool {
	o, ok := other.(*Rect)
	return ok && *r == *o
}

func (r *Rect) isShape() {}

// Group is a composite shape owning an ordered list of members, which may
// themselves be groups. The member tree is exclusive to the group: no shape
// is referenced from two containers at once.
type Group struct {
	Members []Shape
}

// NewGroup builds a group over the given members, taking ownership of them.
func NewGroup(members ...Shape) *Group {
	g := &Group{}
	for _, m := range members {
		g.Append(m)
	}
	return g
}

// Append adds a member at the end of the group.
func (g *Group) Append(s Shape) {
	g.Members = append(g.Members, s)
}

func (g *Group) Kind() Kind { return KindGroup }

// Bounds returns the union of all members' bounds. An empty group returns
// the unused box, which contains every point.
func (g *Group) Bounds() geom.Box {
	var b geom.Box
	for _, m := range g.Members {
		b = b.Union(m.Bounds())
	}
	return b
}

// Contains delegates to the group's bounding box.
func (g *Group) Contains(p geom.Point) bool { return g.Bounds().Contains(p) }

// Move translates every member.
func (g *Group) Move(dx, dy float64) {
	for _, m := range g.Members {
		m.Move(dx, dy)
	}
}

// Clone deep-copies the entire member tree.
func (g *Group) Clone() Shape {
	cp := &Group{Members: make([]Shape, len(g.Members))}
	for i, m := range g.Members {
		cp.Members[i] = m.Clone()
	}
	return cp
}

// Equal reports structural equality: same member count and pairwise equal
// members in the same order.
func (g *Group) Equal(other Shape) bool {
	o, ok := other.(*Group)
	if !ok || len(g.Members) != len(o.Members) {
		return false
	}
	for i, m := range g.Members {
		if !m.Equal(o.Members[i]) {
			return false
		}
	}
	return true
}

func (g *Group) isShape() {}
