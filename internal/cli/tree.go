package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/drawkit/drawkit/pkg/palette"
	"github.com/drawkit/drawkit/pkg/shape"
)

// Tree styles
var (
	treeSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	treeKindStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	treeDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newTreeCmd creates the tree command, an interactive browser for the
// document's group structure.
func newTreeCmd() *cobra.Command {
	var palettePath string

	cmd := &cobra.Command{
		Use:   "tree [file]",
		Short: "Browse the document tree interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			if len(seq) == 0 {
				printInfo("Document is empty")
				return nil
			}
			pal, err := loadPalette(palettePath)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newTreeModel(seq, pal))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&palettePath, "palette", "", "palette file (default ~/.config/drawkit/palette.toml)")

	return cmd
}

// =============================================================================
// TreeModel - Interactive document browser
// =============================================================================

// treeNode is one shape in the browsable tree.
type treeNode struct {
	shape    shape.Shape
	path     string // dotted index path, e.g. "2.0"
	depth    int
	children []*treeNode
	expanded bool
}

// TreeModel is the bubbletea model for the document tree browser.
type TreeModel struct {
	roots   []*treeNode
	visible []*treeNode // flattened respecting expansion state
	pal     *palette.Palette
	Cursor  int
	Height  int
	Offset  int
}

// newTreeModel builds the tree with all groups expanded.
func newTreeModel(seq shape.Seq, pal *palette.Palette) TreeModel {
	m := TreeModel{
		roots:  buildTree(seq, 0, ""),
		pal:    pal,
		Height: 20,
	}
	m.refresh()
	return m
}

func buildTree(seq shape.Seq, depth int, prefix string) []*treeNode {
	nodes := make([]*treeNode, 0, len(seq))
	for i, sh := range seq {
		path := strconv.Itoa(i)
		if prefix != "" {
			path = prefix + "." + path
		}
		n := &treeNode{shape: sh, path: path, depth: depth, expanded: true}
		if g, ok := sh.(*shape.Group); ok {
			n.children = buildTree(g.Members, depth+1, path)
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// refresh rebuilds the visible slice after an expansion change.
func (m *TreeModel) refresh() {
	m.visible = m.visible[:0]
	var walk func(ns []*treeNode)
	walk = func(ns []*treeNode) {
		for _, n := range ns {
			m.visible = append(m.visible, n)
			if n.expanded {
				walk(n.children)
			}
		}
	}
	walk(m.roots)
	if m.Cursor >= len(m.visible) {
		m.Cursor = len(m.visible) - 1
	}
}

func (m TreeModel) Init() tea.Cmd {
	return nil
}

func (m TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.visible)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "left", "h":
			n := m.visible[m.Cursor]
			if n.expanded && len(n.children) > 0 {
				n.expanded = false
				m.refresh()
			}
		case "right", "l":
			n := m.visible[m.Cursor]
			if !n.expanded && len(n.children) > 0 {
				n.expanded = true
				m.refresh()
			}
		case "enter", " ":
			n := m.visible[m.Cursor]
			if len(n.children) > 0 {
				n.expanded = !n.expanded
				m.refresh()
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 7
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m TreeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Document Tree"))
	b.WriteString("\n")
	b.WriteString(treeDimStyle.Render("↑/↓ navigate  ←/→ collapse/expand  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.visible) {
		end = len(m.visible)
	}

	for i := m.Offset; i < end; i++ {
		n := m.visible[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		marker := "· "
		if len(n.children) > 0 {
			if n.expanded {
				marker = "▾ "
			} else {
				marker = "▸ "
			}
		}

		line := cursor + strings.Repeat("  ", n.depth) + marker + nodeTitle(n.shape)
		if i == m.Cursor {
			b.WriteString(treeSelectedStyle.Render(line))
		} else if n.shape.Kind() == shape.KindGroup {
			b.WriteString(treeKindStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Cursor < len(m.visible) {
		b.WriteString(m.detailLine(m.visible[m.Cursor]))
		b.WriteString("\n")
	}
	b.WriteString(treeDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.visible))))

	return b.String()
}

// detailLine summarizes the selected shape: path, bounds, colour.
func (m TreeModel) detailLine(n *treeNode) string {
	parts := []string{"path " + n.path}
	if b := fmtBox(n.shape.Bounds()); b != "" {
		parts = append(parts, "bounds "+b)
	}
	switch v := n.shape.(type) {
	case *shape.Line:
		parts = append(parts, "colour "+colourCell(v.Colour, m.pal))
	case *shape.Rect:
		parts = append(parts, "colour "+colourCell(v.Colour, m.pal))
	}
	return treeDimStyle.Render("  " + strings.Join(parts, "  ·  "))
}

// nodeTitle is the one-line label for a tree row.
func nodeTitle(sh shape.Shape) string {
	switch v := sh.(type) {
	case *shape.Line:
		return fmt.Sprintf("line %s %s %s", fmtPoint(v.Start), iconArrow, fmtPoint(v.End))
	case *shape.Rect:
		return fmt.Sprintf("rect %s %s %s [%s]", fmtPoint(v.UpperLeft), iconArrow, fmtPoint(v.LowerRight), v.Corner)
	case *shape.Group:
		return fmt.Sprintf("group (%d members)", len(v.Members))
	default:
		return sh.Kind().String()
	}
}
