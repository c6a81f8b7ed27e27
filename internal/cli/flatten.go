package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/drawkit/drawkit/pkg/drw"
)

// newFlattenCmd creates the flatten command. It dissolves every group at
// every depth, preserving leaf order, and writes the flat document.
func newFlattenCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "flatten [file]",
		Short: "Dissolve all groups and write the flat document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlatten(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runFlatten(ctx context.Context, input, output string) error {
	logger := loggerFromContext(ctx)

	seq, err := loadDocument(input)
	if err != nil {
		return err
	}

	before := seq.Stats()
	flat := seq.UngroupAll()
	logger.Debugf("Flattened %d groups into %d shapes", before.Groups, len(flat))

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := drw.Write(flat, out); err != nil {
		return err
	}

	if output != "" {
		printSuccess("Flattened %d groups", before.Groups)
		printFile(output)
		printStats(flat.Stats())
	}
	return nil
}
