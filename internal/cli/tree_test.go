package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drawkit/drawkit/pkg/geom"
	"github.com/drawkit/drawkit/pkg/palette"
	"github.com/drawkit/drawkit/pkg/shape"
)

func treeTestSeq() shape.Seq {
	return shape.Seq{
		shape.NewLine(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}, shape.Colour{K: 255}),
		shape.NewGroup(
			shape.NewLine(geom.Point{X: 1, Y: 1}, geom.Point{X: 2, Y: 2}, shape.Colour{}),
			shape.NewRect(geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 5}, shape.Colour{}, shape.CornerSquare),
		),
	}
}

func TestTreeModelVisibleRows(t *testing.T) {
	m := newTreeModel(treeTestSeq(), palette.Default())

	// All groups start expanded: line + group + 2 members.
	if len(m.visible) != 4 {
		t.Fatalf("visible rows = %d, want 4", len(m.visible))
	}

	wantPaths := []string{"0", "1", "1.0", "1.1"}
	for i, n := range m.visible {
		if n.path != wantPaths[i] {
			t.Errorf("visible[%d].path = %q, want %q", i, n.path, wantPaths[i])
		}
	}
}

func TestTreeModelCollapse(t *testing.T) {
	m := newTreeModel(treeTestSeq(), palette.Default())

	// Move the cursor onto the group and collapse it.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(TreeModel)
	if m.Cursor != 1 {
		t.Fatalf("Cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(TreeModel)
	if len(m.visible) != 2 {
		t.Fatalf("visible rows after collapse = %d, want 2", len(m.visible))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(TreeModel)
	if len(m.visible) != 4 {
		t.Fatalf("visible rows after expand = %d, want 4", len(m.visible))
	}
}

func TestTreeModelCursorBounds(t *testing.T) {
	m := newTreeModel(treeTestSeq(), palette.Default())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(TreeModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d after up at top, want 0", m.Cursor)
	}

	for i := 0; i < 10; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(TreeModel)
	}
	if m.Cursor != len(m.visible)-1 {
		t.Errorf("Cursor = %d after many downs, want %d", m.Cursor, len(m.visible)-1)
	}
}

func TestTreeModelQuit(t *testing.T) {
	m := newTreeModel(treeTestSeq(), palette.Default())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestTreeModelView(t *testing.T) {
	m := newTreeModel(treeTestSeq(), palette.Default())
	view := m.View()

	for _, want := range []string{"Document Tree", "line", "group (2 members)", "rect", "[1/4]"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	// Detail line for the selected line shape shows its palette colour.
	if !strings.Contains(view, "black") {
		t.Error("View() should name the selected shape's colour")
	}
}

func TestNodeTitle(t *testing.T) {
	line := shape.NewLine(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}, shape.Colour{})
	if got := nodeTitle(line); got != "line (0, 0) → (10, 0)" {
		t.Errorf("nodeTitle(line) = %q", got)
	}

	rect := shape.NewRect(geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 5}, shape.Colour{}, shape.CornerRounded)
	if got := nodeTitle(rect); got != "rect (0, 0) → (5, 5) [r]" {
		t.Errorf("nodeTitle(rect) = %q", got)
	}

	group := shape.NewGroup(line, rect)
	if got := nodeTitle(group); got != "group (2 members)" {
		t.Errorf("nodeTitle(group) = %q", got)
	}
}
