package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/drawkit/drawkit/pkg/geom"
)

// newHitTestCmd creates the hittest command. It reports every top-level
// shape whose bounding region contains the given point, in document order.
// Groups count as a unit: a hit anywhere in a group's extent reports the
// group, not its members.
func newHitTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hittest [file] [x] [y]",
		Short: "List the shapes containing a point",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid x coordinate %q", args[1])
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid y coordinate %q", args[2])
			}
			return runHitTest(cmd.Context(), args[0], geom.Point{X: x, Y: y})
		},
	}
}

func runHitTest(ctx context.Context, input string, p geom.Point) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Hit-testing %s at %s", input, fmtPoint(p))

	seq, err := loadDocument(input)
	if err != nil {
		return err
	}

	hits := seq.HitTest(p)
	if len(hits) == 0 {
		printInfo("No shapes at %s", fmtPoint(p))
		return nil
	}

	printSuccess("%d of %d shapes contain %s", len(hits), len(seq), fmtPoint(p))
	for _, sh := range hits {
		printDetail("%-6s %s", sh.Kind(), fmtBox(sh.Bounds()))
	}
	return nil
}
