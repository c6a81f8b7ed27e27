package shape

import (
	"errors"
	"testing"

	"github.com/drawkit/drawkit/pkg/geom"
)

func testLine(x float64) *Line {
	return NewLine(geom.Pt(x, 0), geom.Pt(x+1, 1), Colour{})
}

func TestAddRemove(t *testing.T) {
	a, b := testLine(0), testLine(10)

	seq := Seq{}.Add(a).Add(b)
	if len(seq) != 2 {
		t.Fatalf("len = %d, want 2", len(seq))
	}

	// Removal matches by value, not pointer: an equal-valued copy works.
	seq, ok := seq.Remove(testLine(0))
	if !ok {
		t.Fatal("Remove should find an equal-valued shape")
	}
	if len(seq) != 1 || !seq[0].Equal(b) {
		t.Errorf("after Remove: %v", seq)
	}

	if _, ok := seq.Remove(testLine(99)); ok {
		t.Error("Remove of an absent shape should report false")
	}
}

func TestRemoveFirstMatchOnly(t *testing.T) {
	seq := Seq{testLine(0), testLine(0), testLine(5)}

	out, ok := seq.Remove(testLine(0))
	if !ok || len(out) != 2 {
		t.Fatalf("Remove: ok=%v len=%d, want true/2", ok, len(out))
	}
	if !out[0].Equal(testLine(0)) {
		t.Error("Remove should take only the first of two equal shapes")
	}
}

func TestHitTestDocumentOrder(t *testing.T) {
	r1 := NewRect(geom.Pt(0, 0), geom.Pt(10, 10), Colour{R: 1}, CornerSquare)
	l := NewLine(geom.Pt(0, 5), geom.Pt(10, 5), Colour{})
	r2 := NewRect(geom.Pt(4, 4), geom.Pt(6, 6), Colour{R: 2}, CornerSquare)
	miss := NewRect(geom.Pt(100, 100), geom.Pt(101, 101), Colour{}, CornerSquare)

	seq := Seq{r1, l, r2, miss}
	hits := seq.HitTest(geom.Pt(5, 5))

	if len(hits) != 3 {
		t.Fatalf("hits = %d, want 3", len(hits))
	}
	if hits[0] != Shape(r1) || hits[1] != Shape(l) || hits[2] != Shape(r2) {
		t.Error("hits should preserve document order")
	}
}

func TestGroupReplacesInPlace(t *testing.T) {
	a, b, c, d := testLine(0), testLine(1), testLine(2), testLine(3)
	seq := Seq{a, b, c, d}

	out, g, err := seq.Group(Seq{b, d})
	if err != nil {
		t.Fatalf("Group() error: %v", err)
	}

	// The group replaces the first removed element (index 1).
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	if out[0] != Shape(a) || out[1] != Shape(g) || out[2] != Shape(c) {
		t.Errorf("out = %v, want [a g c]", out)
	}
	// Members keep their original document order.
	if len(g.Members) != 2 || g.Members[0] != Shape(b) || g.Members[1] != Shape(d) {
		t.Errorf("members = %v, want [b d]", g.Members)
	}
}

func TestGroupClaimsDuplicatesOnce(t *testing.T) {
	seq := Seq{testLine(0), testLine(0), testLine(5)}

	out, g, err := seq.Group(Seq{testLine(0), testLine(0)})
	if err != nil {
		t.Fatalf("Group() error: %v", err)
	}
	if len(out) != 2 || len(g.Members) != 2 {
		t.Errorf("out=%d members=%d, want 2/2", len(out), len(g.Members))
	}
}

func TestGroupMissingSelection(t *testing.T) {
	seq := Seq{testLine(0)}

	out, _, err := seq.Group(Seq{testLine(42)})
	if !errors.Is(err, ErrShapeNotFound) {
		t.Fatalf("err = %v, want ErrShapeNotFound", err)
	}
	if !out.Equal(seq) {
		t.Error("sequence should be unchanged on error")
	}
}

func TestGroupEmptySelection(t *testing.T) {
	if _, _, err := (Seq{testLine(0)}).Group(nil); !errors.Is(err, ErrEmptySelection) {
		t.Errorf("err = %v, want ErrEmptySelection", err)
	}
}

func TestUngroupSplicesAtFormerPosition(t *testing.T) {
	a, c := testLine(0), testLine(9)
	g := NewGroup(testLine(1), testLine(2))
	seq := Seq{a, g, c}

	out, err := seq.Ungroup(g)
	if err != nil {
		t.Fatalf("Ungroup() error: %v", err)
	}

	want := Seq{a, testLine(1), testLine(2), c}
	if !out.Equal(want) {
		t.Errorf("out = %v, want %v", out, want)
	}
}

func TestUngroupMissing(t *testing.T) {
	seq := Seq{testLine(0)}
	if _, err := seq.Ungroup(NewGroup(testLine(1))); !errors.Is(err, ErrShapeNotFound) {
		t.Errorf("err = %v, want ErrShapeNotFound", err)
	}
}

func TestGroupUngroupInverse(t *testing.T) {
	sel := Seq{testLine(1), testLine(3)}
	seq := Seq{testLine(0), testLine(1), testLine(2), testLine(3)}

	grouped, g, err := seq.Group(sel)
	if err != nil {
		t.Fatalf("Group() error: %v", err)
	}
	restored, err := grouped.Ungroup(g)
	if err != nil {
		t.Fatalf("Ungroup() error: %v", err)
	}

	// The members splice back together at the group's slot, in their
	// original relative order: [0 1 3 2].
	want := Seq{testLine(0), testLine(1), testLine(3), testLine(2)}
	if !restored.Equal(want) {
		t.Errorf("restored = %v, want %v", restored, want)
	}
	for _, sh := range restored {
		if sh.Kind() == KindGroup {
			t.Error("restored sequence should contain no groups")
		}
	}
}

func TestUngroupAll(t *testing.T) {
	l1, l2, l3 := testLine(0), testLine(1), testLine(2)
	r := NewRect(geom.Pt(0, 0), geom.Pt(1, 1), Colour{}, CornerRounded)
	seq := Seq{l1, NewGroup(l2, NewGroup(r, l3)), testLine(9)}

	flat := seq.UngroupAll()

	want := Seq{l1, l2, r, l3, testLine(9)}
	if !flat.Equal(want) {
		t.Errorf("flat = %v, want %v", flat, want)
	}
	for _, sh := range flat {
		if sh.Kind() == KindGroup {
			t.Error("flattened sequence should contain no groups")
		}
	}
}

func TestSeqCloneIndependence(t *testing.T) {
	orig := Seq{testLine(0), NewGroup(testLine(1))}
	cp := orig.Clone()

	if !cp.Equal(orig) {
		t.Fatal("clone should equal the original")
	}
	orig[0].Move(5, 5)
	if cp.Equal(orig) {
		t.Error("clone should be independent of the original")
	}
}

func TestStats(t *testing.T) {
	seq := Seq{
		testLine(0),
		NewGroup(
			NewRect(geom.Pt(0, 0), geom.Pt(5, 5), Colour{}, CornerSquare),
			NewGroup(testLine(1)),
		),
	}

	st := seq.Stats()
	if st.Lines != 2 || st.Rects != 1 || st.Groups != 2 {
		t.Errorf("counts = %d/%d/%d, want 2/1/2", st.Lines, st.Rects, st.Groups)
	}
	if st.Depth != 2 {
		t.Errorf("Depth = %d, want 2", st.Depth)
	}
	if st.Total() != 3 {
		t.Errorf("Total() = %d, want 3", st.Total())
	}
	if !st.Extent.InUse {
		t.Error("Extent should be in use for a non-empty document")
	}
}

func TestStatsEmpty(t *testing.T) {
	st := Seq{}.Stats()
	if st.Total() != 0 || st.Groups != 0 || st.Depth != 0 {
		t.Errorf("empty stats = %+v", st)
	}
	if st.Extent.InUse {
		t.Error("empty document extent should be unused")
	}
}
