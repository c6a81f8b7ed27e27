// Package doc layers stable identity onto a shape sequence.
//
// Sequence operations in pkg/shape address shapes by value, so two
// equal-valued shapes are interchangeable. Interactive callers (editors,
// APIs) need to say "this one": a Document assigns every top-level entry a
// UUID handle that survives moves and edits, and resolves all mutating
// operations through those handles.
package doc

import (
	"errors"

	"github.com/google/uuid"

	"github.com/drawkit/drawkit/pkg/geom"
	"github.com/drawkit/drawkit/pkg/shape"
)

var (
	// ErrHandleNotFound is returned when no entry has the given handle.
	ErrHandleNotFound = errors.New("handle not found")

	// ErrNotAGroup is returned when an ungroup target is a leaf shape.
	ErrNotAGroup = errors.New("shape is not a group")

	// ErrIndexOutOfRange is returned for positional access past either end.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Handle identifies a top-level entry in a Document, independent of the
// shape's value or position.
type Handle uuid.UUID

func (h Handle) String() string { return uuid.UUID(h).String() }

// ParseHandle parses the canonical UUID text form of a handle.
func ParseHandle(s string) (Handle, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Handle{}, err
	}
	return Handle(id), nil
}

func newHandle() Handle { return Handle(uuid.New()) }

type entry struct {
	handle Handle
	shape  shape.Shape
}

// Document is an ordered sequence of shapes with stable handles. It owns its
// shapes exclusively: callers must mutate them through Document methods only.
type Document struct {
	entries []entry
}

// New builds a Document from seq, cloning every shape and assigning each
// top-level entry a fresh handle.
func New(seq shape.Seq) *Document {
	d := &Document{entries: make([]entry, 0, len(seq))}
	for _, sh := range seq {
		d.entries = append(d.entries, entry{handle: newHandle(), shape: sh.Clone()})
	}
	return d
}

// Len returns the number of top-level entries.
func (d *Document) Len() int { return len(d.entries) }

// Seq returns a deep copy of the document's shapes in order.
func (d *Document) Seq() shape.Seq {
	seq := make(shape.Seq, 0, len(d.entries))
	for _, e := range d.entries {
		seq = append(seq, e.shape.Clone())
	}
	return seq
}

// Handles returns the entry handles in document order.
func (d *Document) Handles() []Handle {
	hs := make([]Handle, 0, len(d.entries))
	for _, e := range d.entries {
		hs = append(hs, e.handle)
	}
	return hs
}

// At returns the handle and shape of the i-th entry.
func (d *Document) At(i int) (Handle, shape.Shape, error) {
	if i < 0 || i >= len(d.entries) {
		return Handle{}, nil, ErrIndexOutOfRange
	}
	return d.entries[i].handle, d.entries[i].shape, nil
}

// Find returns the shape for a handle.
func (d *Document) Find(h Handle) (shape.Shape, bool) {
	if i := d.index(h); i >= 0 {
		return d.entries[i].shape, true
	}
	return nil, false
}

// Insert appends a clone of sh and returns its new handle.
func (d *Document) Insert(sh shape.Shape) Handle {
	h := newHandle()
	d.entries = append(d.entries, entry{handle: h, shape: sh.Clone()})
	return h
}

// RemoveByHandle removes the entry with handle h. Unlike value-based
// removal, an equal-valued twin elsewhere in the document is untouched.
func (d *Document) RemoveByHandle(h Handle) error {
	i := d.index(h)
	if i < 0 {
		return ErrHandleNotFound
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	return nil
}

// MoveByHandle translates the entry with handle h by (dx, dy).
func (d *Document) MoveByHandle(h Handle, dx, dy float64) error {
	i := d.index(h)
	if i < 0 {
		return ErrHandleNotFound
	}
	d.entries[i].shape.Move(dx, dy)
	return nil
}

// GroupByHandles collapses the selected entries into one group entry. The
// group keeps the members in document order, sits at the first selected
// entry's position, and gets a fresh handle. Duplicate handles in the
// selection are ignored.
func (d *Document) GroupByHandles(hs ...Handle) (Handle, error) {
	if len(hs) == 0 {
		return Handle{}, shape.ErrEmptySelection
	}

	selected := make(map[Handle]bool, len(hs))
	for _, h := range hs {
		if d.index(h) < 0 {
			return Handle{}, ErrHandleNotFound
		}
		selected[h] = true
	}

	g := &shape.Group{}
	gh := newHandle()
	out := make([]entry, 0, len(d.entries)-len(selected)+1)
	placed := false
	for _, e := range d.entries {
		if !selected[e.handle] {
			out = append(out, e)
			continue
		}
		g.Members = append(g.Members, e.shape)
		if !placed {
			out = append(out, entry{handle: gh, shape: g})
			placed = true
		}
	}
	d.entries = out
	return gh, nil
}

// UngroupByHandle splices a group's members back into the document at the
// group's position, each member under a fresh handle. Returns the new
// handles in member order.
func (d *Document) UngroupByHandle(h Handle) ([]Handle, error) {
	i := d.index(h)
	if i < 0 {
		return nil, ErrHandleNotFound
	}
	g, ok := d.entries[i].shape.(*shape.Group)
	if !ok {
		return nil, ErrNotAGroup
	}

	spliced := make([]entry, 0, len(d.entries)-1+len(g.Members))
	spliced = append(spliced, d.entries[:i]...)
	hs := make([]Handle, 0, len(g.Members))
	for _, m := range g.Members {
		mh := newHandle()
		hs = append(hs, mh)
		spliced = append(spliced, entry{handle: mh, shape: m})
	}
	spliced = append(spliced, d.entries[i+1:]...)
	d.entries = spliced
	return hs, nil
}

// HitTest returns the handles of every entry containing p, in document
// order.
func (d *Document) HitTest(p geom.Point) []Handle {
	var hs []Handle
	for _, e := range d.entries {
		if e.shape.Contains(p) {
			hs = append(hs, e.handle)
		}
	}
	return hs
}

// Bounds returns the union of all entries' bounding boxes.
func (d *Document) Bounds() geom.Box {
	var b geom.Box
	for _, e := range d.entries {
		b = b.Union(e.shape.Bounds())
	}
	return b
}

func (d *Document) index(h Handle) int {
	for i, e := range d.entries {
		if e.handle == h {
			return i
		}
	}
	return -1
}
