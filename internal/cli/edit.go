package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/drawkit/drawkit/pkg/doc"
	"github.com/drawkit/drawkit/pkg/drw"
	"github.com/drawkit/drawkit/pkg/geom"
	"github.com/drawkit/drawkit/pkg/shape"
)

// editOpts holds the command-line flags for the edit command.
type editOpts struct {
	colour      string // shape colour for add-line/add-rect
	corner      string // rectangle corner style for add-rect
	palettePath string // optional palette file override
}

// newEditCmd creates the edit command. It applies one document operation
// and rewrites the file in place.
//
// Operations (indices address top-level document order, as shown by inspect):
//
//	add-line x1 y1 x2 y2      append a line
//	add-rect x1 y1 x2 y2      append a rectangle
//	move     index dx dy      translate one shape
//	delete   index            remove one shape
//	group    index...         collect shapes into a group
//	ungroup  index            splice a group's members back
func newEditCmd() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "edit [file] [op] [args...]",
		Short: "Apply a document operation and rewrite the file",
		Long: `Apply a document operation and rewrite the file.

Operations:
  add-line x1 y1 x2 y2                 append a line
  add-rect x1 y1 x2 y2 [--corner s|r]  append a rectangle
  move     index dx dy                 translate one shape
  delete   index                       remove one shape
  group    index...                    collect shapes into a group
  ungroup  index                       splice a group's members back

Indices address top-level document order ("drawkit inspect" shows them).
The file is rewritten only when the whole operation succeeds; the new
content is written to a temp file and renamed into place.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd.Context(), args[0], args[1], args[2:], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.colour, "colour", "black", "shape colour: palette name or k,r,g,b")
	cmd.Flags().StringVar(&opts.corner, "corner", "s", "rectangle corner style: s (square) or r (rounded)")
	cmd.Flags().StringVar(&opts.palettePath, "palette", "", "palette file (default ~/.config/drawkit/palette.toml)")

	return cmd
}

func runEdit(ctx context.Context, file, op string, args []string, opts *editOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Editing %s: %s %v", file, op, args)

	seq, err := drw.ReadFile(file)
	if err != nil {
		return err
	}
	d := doc.New(seq)

	switch op {
	case "add-line":
		err = editAddLine(d, args, opts)
	case "add-rect":
		err = editAddRect(d, args, opts)
	case "move":
		err = editMove(d, args)
	case "delete":
		err = editDelete(d, args)
	case "group":
		err = editGroup(d, args)
	case "ungroup":
		err = editUngroup(d, args)
	default:
		return fmt.Errorf("unknown operation: %s (must be add-line, add-rect, move, delete, group, or ungroup)", op)
	}
	if err != nil {
		return err
	}

	out := d.Seq()
	if err := writeDocumentAtomic(file, out); err != nil {
		return err
	}

	printSuccess("Applied %s", op)
	printFile(file)
	printStats(out.Stats())
	return nil
}

func editAddLine(d *doc.Document, args []string, opts *editOpts) error {
	nums, err := parseCoords(args, 4, "add-line expects x1 y1 x2 y2")
	if err != nil {
		return err
	}
	colour, err := resolveColour(opts)
	if err != nil {
		return err
	}
	d.Insert(shape.NewLine(geom.Point{X: nums[0], Y: nums[1]}, geom.Point{X: nums[2], Y: nums[3]}, colour))
	return nil
}

func editAddRect(d *doc.Document, args []string, opts *editOpts) error {
	nums, err := parseCoords(args, 4, "add-rect expects x1 y1 x2 y2")
	if err != nil {
		return err
	}
	colour, err := resolveColour(opts)
	if err != nil {
		return err
	}
	corner, err := shape.ParseCorner(opts.corner)
	if err != nil {
		return err
	}
	d.Insert(shape.NewRect(geom.Point{X: nums[0], Y: nums[1]}, geom.Point{X: nums[2], Y: nums[3]}, colour, corner))
	return nil
}

func editMove(d *doc.Document, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("move expects index dx dy")
	}
	h, err := handleAt(d, args[0])
	if err != nil {
		return err
	}
	deltas, err := parseCoords(args[1:], 2, "move expects numeric dx dy")
	if err != nil {
		return err
	}
	return d.MoveByHandle(h, deltas[0], deltas[1])
}

func editDelete(d *doc.Document, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("delete expects one index")
	}
	h, err := handleAt(d, args[0])
	if err != nil {
		return err
	}
	return d.RemoveByHandle(h)
}

func editGroup(d *doc.Document, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("group expects at least one index")
	}
	hs := make([]doc.Handle, 0, len(args))
	for _, arg := range args {
		h, err := handleAt(d, arg)
		if err != nil {
			return err
		}
		hs = append(hs, h)
	}
	_, err := d.GroupByHandles(hs...)
	return err
}

func editUngroup(d *doc.Document, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("ungroup expects one index")
	}
	h, err := handleAt(d, args[0])
	if err != nil {
		return err
	}
	_, err = d.UngroupByHandle(h)
	return err
}

// =============================================================================
// Helpers
// =============================================================================

// parseCoords parses exactly n floats from args.
func parseCoords(args []string, n int, usage string) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s", usage)
	}
	nums := make([]float64, n)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad number %q", usage, arg)
		}
		nums[i] = v
	}
	return nums, nil
}

// handleAt resolves a top-level index argument to the shape's handle.
func handleAt(d *doc.Document, arg string) (doc.Handle, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return doc.Handle{}, fmt.Errorf("invalid index %q", arg)
	}
	h, _, err := d.At(i)
	if err != nil {
		return doc.Handle{}, fmt.Errorf("shape %d: %w", i, err)
	}
	return h, nil
}

// resolveColour parses the --colour flag against the palette.
func resolveColour(opts *editOpts) (shape.Colour, error) {
	pal, err := loadPalette(opts.palettePath)
	if err != nil {
		return shape.Colour{}, err
	}
	return pal.Resolve(opts.colour)
}

// writeDocumentAtomic serializes seq next to path and renames it into place,
// so a failed write never truncates the original file.
func writeDocumentAtomic(path string, seq shape.Seq) error {
	data, err := drw.Marshal(seq)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".drawkit-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
