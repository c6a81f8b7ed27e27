package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/drawkit/drawkit/pkg/cache"
	"github.com/drawkit/drawkit/pkg/drw"
	apperrors "github.com/drawkit/drawkit/pkg/errors"
	"github.com/drawkit/drawkit/pkg/export"
)

const (
	renderSVG = "svg"
	renderPNG = "png"
	renderDOT = "dot"
)

// renderFormats is the set of supported render outputs.
var renderFormats = map[string]bool{renderSVG: true, renderPNG: true, renderDOT: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path; derived from input when empty
	format   string // output format: "svg", "png", "dot"
	detailed bool   // include geometry and colour labels per node
	noCache  bool   // bypass the artifact cache
}

// newRenderCmd creates the render command for drawing the document tree as
// a structure graph. Groups become dashed clusters of their members; lines
// and rectangles become leaf nodes.
//
// SVG and PNG artifacts are cached under ~/.cache/drawkit/, keyed by the
// canonical document text and the render options.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{format: renderSVG}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the document structure as a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !renderFormats[opts.format] {
				return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'dot')", opts.format)
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default derived from input)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label nodes with geometry and colours")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	seq, err := loadDocument(input)
	if err != nil {
		return err
	}
	st := seq.Stats()
	logger.Infof("Loaded document: %d shapes, %d groups", st.Total(), st.Groups)

	dot := export.ToDOT(seq, export.Options{Detailed: opts.detailed})

	// Derive the output path from the input name unless told otherwise.
	// Stdin input with no -o goes to stdout.
	outputPath := opts.output
	if outputPath == "" && input != "-" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}

	var data []byte
	cached := false
	if opts.format == renderDOT {
		data = []byte(dot)
	} else {
		// Key the cache on the canonical text so equal documents share
		// entries regardless of source formatting.
		docText, err := drw.Marshal(seq)
		if err != nil {
			return err
		}
		data, cached, err = renderGraph(ctx, docText, dot, opts)
		if err != nil {
			return err
		}
	}

	out, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}

	if outputPath != "" {
		printSuccess("Rendered %s", opts.format)
		printArtifact(outputPath, cached)
	}
	return nil
}

// renderGraph produces the SVG or PNG artifact, consulting the cache first.
// Cache failures are logged and ignored; rendering always proceeds.
func renderGraph(ctx context.Context, docText []byte, dot string, opts *renderOpts) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)

	c, err := newCache(opts.noCache)
	if err != nil {
		logger.Debugf("Cache unavailable: %v", err)
		c = cache.NewNullCache()
	}
	defer c.Close()

	key := cache.RenderKey(docText, opts.format, opts.detailed)
	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		logger.Debugf("Cache hit for %s", opts.format)
		return data, true, nil
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", opts.format))
	spinner.Start()

	prog := newProgress(logger)
	var data []byte
	switch opts.format {
	case renderSVG:
		data, err = export.RenderSVG(ctx, dot)
	case renderPNG:
		data, err = export.RenderPNG(ctx, dot)
	}
	if err != nil {
		spinner.StopWithError("Render failed")
		return nil, false, apperrors.Wrap(apperrors.ErrCodeRender, err, "render %s", opts.format)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %s (%d bytes)", opts.format, len(data)))

	if err := c.Set(ctx, key, data, 30*24*time.Hour); err != nil {
		logger.Debugf("Cache store failed: %v", err)
	}
	return data, false, nil
}

// newCache opens the file cache, falling back to a no-op cache when the
// cache directory cannot be determined.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}
