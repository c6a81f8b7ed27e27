package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/drawkit/drawkit/pkg/drw"
)

// newValidateCmd creates the validate command. It parses a document and
// reports shape statistics, or the parse error with its line number.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Parse a document and report its statistics",
		Long: `Parse a document and report its statistics.

Validation is atomic: a document either parses completely or is rejected
with the first offending line. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args[0])
		},
	}
}

func runValidate(ctx context.Context, input string) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Validating %s", input)

	seq, err := loadDocument(input)
	if err != nil {
		var pe *drw.ParseError
		if errors.As(err, &pe) {
			printError("Invalid document: line %d: %v", pe.Line, pe.Err)
			printDetail("%q", pe.Content)
		}
		return err
	}

	st := seq.Stats()
	printSuccess("Valid document: %d shapes", st.Total())
	printStats(st)
	if st.Extent.InUse {
		printDetail("extent %s", fmtBox(st.Extent))
	}
	return nil
}
