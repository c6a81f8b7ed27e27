package export

import (
	"strings"
	"testing"

	"github.com/drawkit/drawkit/pkg/geom"
	"github.com/drawkit/drawkit/pkg/shape"
)

func testSeq() shape.Seq {
	return shape.Seq{
		shape.NewGroup(
			shape.NewLine(geom.Pt(0, 0), geom.Pt(10, 10), shape.Colour{K: 255}),
		),
		shape.NewRect(geom.Pt(1, 2), geom.Pt(3, 4), shape.Colour{}, shape.CornerSquare),
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testSeq(), Options{})

	for _, want := range []string{
		"digraph drawing {",
		`"doc" [label="document"`,
		`"s0" [label="group"`,
		`"doc" -> "s0";`,
		`"s0.0" [label="line"`,
		`"s0" -> "s0.0";`,
		`"s1" [label="rectangle"`,
		`"doc" -> "s1";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q in:\n%s", want, dot)
		}
	}
}

func TestToDOTGroupStyle(t *testing.T) {
	dot := ToDOT(testSeq(), Options{})
	if !strings.Contains(dot, `style="rounded,filled,dashed", fillcolor=lightgrey`) {
		t.Errorf("ToDOT() missing dashed group styling in:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(testSeq(), Options{Detailed: true})

	for _, want := range []string{
		"shapes: 2",
		"start: (0, 0)",
		"end: (10, 10)",
		"colour: 255,0,0,0",
		"upper left: (1, 2)",
		"corner: s",
		"members: 1",
		"extent: (0, 0) to (10, 10)",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT(Detailed) missing %q in:\n%s", want, dot)
		}
	}
}

func TestToDOTEmptyDocument(t *testing.T) {
	dot := ToDOT(shape.Seq{}, Options{})
	if !strings.Contains(dot, `"doc"`) {
		t.Errorf("ToDOT() missing document root in:\n%s", dot)
	}
	if strings.Contains(dot, `"s0"`) {
		t.Errorf("ToDOT() has shape node for empty document:\n%s", dot)
	}
}
