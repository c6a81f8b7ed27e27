package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/drawkit/drawkit/pkg/geom"
	"github.com/drawkit/drawkit/pkg/palette"
	"github.com/drawkit/drawkit/pkg/shape"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	jsonOut     bool   // emit machine-readable JSON instead of the table
	palettePath string // optional palette file override
}

// newInspectCmd creates the inspect command. It prints one row per shape
// (nested shapes indented by index path) plus document statistics.
func newInspectCmd() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Show shapes, bounds, and colours of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "emit JSON instead of a table")
	cmd.Flags().StringVar(&opts.palettePath, "palette", "", "palette file (default ~/.config/drawkit/palette.toml)")

	return cmd
}

// inspectRow is one display row of the inspect table.
type inspectRow struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	Geometry string `json:"geometry"`
	Colour   string `json:"colour,omitempty"`
	Bounds   string `json:"bounds,omitempty"`
}

// inspectReport is the --json payload.
type inspectReport struct {
	Shapes []inspectRow `json:"shapes"`
	Stats  inspectStats `json:"stats"`
}

type inspectStats struct {
	Lines  int    `json:"lines"`
	Rects  int    `json:"rects"`
	Groups int    `json:"groups"`
	Depth  int    `json:"depth"`
	Extent string `json:"extent,omitempty"`
}

func runInspect(ctx context.Context, input string, opts *inspectOpts) error {
	logger := loggerFromContext(ctx)

	seq, err := loadDocument(input)
	if err != nil {
		return err
	}

	pal, err := loadPalette(opts.palettePath)
	if err != nil {
		return err
	}
	logger.Debugf("Palette has %d colours", len(pal.Names()))

	var rows []inspectRow
	collectRows(seq, "", pal, &rows)
	st := seq.Stats()

	if opts.jsonOut {
		report := inspectReport{
			Shapes: rows,
			Stats: inspectStats{
				Lines:  st.Lines,
				Rects:  st.Rects,
				Groups: st.Groups,
				Depth:  st.Depth,
				Extent: fmtBox(st.Extent),
			},
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printTable(rows)
	printNewline()
	printKeyValue("Shapes", strconv.Itoa(st.Total()))
	printKeyValue("Groups", strconv.Itoa(st.Groups))
	printKeyValue("Depth", strconv.Itoa(st.Depth))
	if st.Extent.InUse {
		printKeyValue("Extent", fmtBox(st.Extent))
	}
	return nil
}

// collectRows walks the document and appends one row per shape, depth-first.
// Index paths use dotted notation: "2" is the third top-level shape, "2.0"
// the first member of that group.
func collectRows(seq shape.Seq, prefix string, pal *palette.Palette, rows *[]inspectRow) {
	for i, sh := range seq {
		path := strconv.Itoa(i)
		if prefix != "" {
			path = prefix + "." + path
		}

		row := inspectRow{Path: path, Kind: sh.Kind().String(), Bounds: fmtBox(sh.Bounds())}
		switch v := sh.(type) {
		case *shape.Line:
			row.Geometry = fmt.Sprintf("%s %s %s", fmtPoint(v.Start), iconArrow, fmtPoint(v.End))
			row.Colour = colourCell(v.Colour, pal)
		case *shape.Rect:
			row.Geometry = fmt.Sprintf("%s %s %s [%s]", fmtPoint(v.UpperLeft), iconArrow, fmtPoint(v.LowerRight), v.Corner)
			row.Colour = colourCell(v.Colour, pal)
		case *shape.Group:
			row.Geometry = fmt.Sprintf("%d members", len(v.Members))
		}
		*rows = append(*rows, row)

		if g, ok := sh.(*shape.Group); ok {
			collectRows(g.Members, path, pal, rows)
		}
	}
}

// printTable renders the rows as a bordered table.
func printTable(rows []inspectRow) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	cells := make([][]string, len(rows))
	for i, r := range rows {
		colour := r.Colour
		if colour == "" {
			colour = "—"
		}
		bounds := r.Bounds
		if bounds == "" {
			bounds = "—"
		}
		cells[i] = []string{r.Path, r.Kind, r.Geometry, colour, bounds}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Path", "Kind", "Geometry", "Colour", "Bounds").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return StyleDim
			case 1:
				return StyleHighlight
			default:
				return StyleValue
			}
		})

	fmt.Println(t.Render())
}

// =============================================================================
// Helpers
// =============================================================================

// colourCell shows the palette name when the palette knows the colour.
func colourCell(c shape.Colour, pal *palette.Palette) string {
	if name, ok := pal.Name(c); ok {
		return name
	}
	return c.String()
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func fmtPoint(p geom.Point) string {
	return fmt.Sprintf("(%s, %s)", fmtNum(p.X), fmtNum(p.Y))
}

// fmtBox formats a bounding box, or "" for the empty box.
func fmtBox(b geom.Box) string {
	if !b.InUse {
		return ""
	}
	return fmt.Sprintf("%s to %s", fmtPoint(b.TopLeft), fmtPoint(b.BottomRight))
}
