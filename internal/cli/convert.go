package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drawkit/drawkit/pkg/drw"
	"github.com/drawkit/drawkit/pkg/export"
)

// convertOpts holds the command-line flags for the convert command.
type convertOpts struct {
	output string // output file path; stdout when empty
	to     string // target form: "drw" or "xml"
	pretty bool   // indent XML output
	header bool   // emit the XML declaration
}

// newConvertCmd creates the convert command. It parses a document and
// re-serializes it as canonical text or as the XML form.
//
// The target form is taken from --to, or inferred from the output file
// extension; it defaults to canonical text.
func newConvertCmd() *cobra.Command {
	var opts convertOpts

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Re-serialize a document as canonical text or XML",
		Long: `Re-serialize a document as canonical text or XML.

Reads the input (use "-" for stdin), parses it, and writes the document in
the target form. XML is a write-only form: convert never reads it back.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.to == "" {
				opts.to = detectFormat(opts.output, formatDRW)
			}
			if err := validateFormat(opts.to); err != nil {
				return err
			}
			return runConvert(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.to, "to", "", "target form: drw, xml (default inferred from output extension)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent XML output")
	cmd.Flags().BoolVar(&opts.header, "header", false, "emit the XML declaration")

	return cmd
}

func runConvert(ctx context.Context, input string, opts *convertOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Converting %s to %s", input, opts.to)

	seq, err := loadDocument(input)
	if err != nil {
		return err
	}

	var data []byte
	switch opts.to {
	case formatXML:
		var xmlOpts []export.XMLOption
		if opts.pretty {
			xmlOpts = append(xmlOpts, export.WithIndent("  "))
		}
		if opts.header {
			xmlOpts = append(xmlOpts, export.WithHeader())
		}
		data = export.XML(seq, xmlOpts...)
	case formatDRW:
		data, err = drw.Marshal(seq)
		if err != nil {
			return err
		}
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if opts.output != "" {
		logger.Debugf("Wrote %d bytes", len(data))
		printSuccess("Converted to %s", opts.to)
		printFile(opts.output)
	}
	return nil
}
