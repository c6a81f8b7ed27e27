package shape

import (
	"errors"

	"github.com/drawkit/drawkit/pkg/geom"
)

var (
	// ErrShapeNotFound is returned by [Seq.Group] and [Seq.Ungroup] when a
	// referenced shape has no structurally equal match in the sequence.
	ErrShapeNotFound = errors.New("shape not found in sequence")

	// ErrEmptySelection is returned by [Seq.Group] for an empty selection;
	// an empty group cannot stand in for nothing.
	ErrEmptySelection = errors.New("empty selection")
)

// Seq is an ordered document: the top-level shape sequence, with no implicit
// enclosing group. Operations that restructure the document return a new
// Seq and leave the receiver untouched, so callers can swap atomically and
// never observe a half-edited document.
type Seq []Shape

// Add returns s with sh appended.
func (s Seq) Add(sh Shape) Seq {
	out := make(Seq, 0, len(s)+1)
	out = append(out, s...)
	return append(out, sh)
}

// Remove returns s without the first shape structurally equal to sh, and
// whether a match was removed.
func (s Seq) Remove(sh Shape) (Seq, bool) {
	for i, cur := range s {
		if cur.Equal(sh) {
			out := make(Seq, 0, len(s)-1)
			out = append(out, s[:i]...)
			return append(out, s[i+1:]...), true
		}
	}
	return s, false
}

// HitTest returns every shape whose Contains reports true for p, in
// document order. There is no front-to-back priority beyond that order.
func (s Seq) HitTest(p geom.Point) Seq {
	var hits Seq
	for _, sh := range s {
		if sh.Contains(p) {
			hits = append(hits, sh)
		}
	}
	return hits
}

// Group removes the shapes of sel from s and replaces them, at the position
// of the first removed element, with a new group wrapping them in their
// original document order. Each selection entry claims one distinct match,
// so duplicate-valued selections group duplicate-valued shapes.
//
// If any selection entry has no remaining match, s is returned unchanged
// alongside [ErrShapeNotFound].
func (s Seq) Group(sel Seq) (Seq, *Group, error) {
	if len(sel) == 0 {
		return s, nil, ErrEmptySelection
	}

	claimed := make([]bool, len(s))
	for _, want := range sel {
		found := false
		for i, sh := range s {
			if !claimed[i] && sh.Equal(want) {
				claimed[i] = true
				found = true
				break
			}
		}
		if !found {
			return s, nil, ErrShapeNotFound
		}
	}

	g := &Group{}
	out := make(Seq, 0, len(s)-len(sel)+1)
	for i, sh := range s {
		if claimed[i] {
			g.Append(sh)
			if len(g.Members) == 1 {
				out = append(out, g)
			}
			continue
		}
		out = append(out, sh)
	}
	return out, g, nil
}

// Ungroup splices the direct members of g back into s at the group's former
// position. The group is located by structural equality, consistent with
// [Seq.Remove].
func (s Seq) Ungroup(g *Group) (Seq, error) {
	for i, sh := range s {
		cur, ok := sh.(*Group)
		if !ok || !cur.Equal(g) {
			continue
		}
		out := make(Seq, 0, len(s)-1+len(cur.Members))
		out = append(out, s[:i]...)
		out = append(out, cur.Members...)
		return append(out, s[i+1:]...), nil
	}
	return s, ErrShapeNotFound
}

// UngroupAll recursively flattens every group at every depth into a single
// flat sequence, discarding all group wrappers. Leaf order is preserved.
func (s Seq) UngroupAll() Seq {
	out := make(Seq, 0, len(s))
	for _, sh := range s {
		if g, ok := sh.(*Group); ok {
			out = append(out, Seq(g.Members).UngroupAll()...)
			continue
		}
		out = append(out, sh)
	}
	return out
}

// Clone deep-copies the sequence and every shape in it.
func (s Seq) Clone() Seq {
	out := make(Seq, len(s))
	for i, sh := range s {
		out[i] = sh.Clone()
	}
	return out
}

// Equal reports structural equality of two sequences: same length, pairwise
// equal shapes in order.
func (s Seq) Equal(o Seq) bool {
	if len(s) != len(o) {
		return false
	}
	for i, sh := range s {
		if !sh.Equal(o[i]) {
			return false
		}
	}
	return true
}

// Bounds returns the union of all top-level bounds: the document extent.
func (s Seq) Bounds() geom.Box {
	var b geom.Box
	for _, sh := range s {
		b = b.Union(sh.Bounds())
	}
	return b
}
