package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/drawkit/drawkit/pkg/drw"
	"github.com/drawkit/drawkit/pkg/palette"
	"github.com/drawkit/drawkit/pkg/shape"
)

// Document forms understood by convert.
const (
	formatDRW = "drw" // canonical text
	formatXML = "xml" // export-only XML form
)

// loadDocument parses a document from path, or from stdin when path is "-".
func loadDocument(path string) (shape.Seq, error) {
	if path == "-" {
		return drw.Read(os.Stdin)
	}
	return drw.ReadFile(path)
}

// detectFormat infers the document form from a file extension.
// An empty path (stdout) or an unknown extension returns fallback.
func detectFormat(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".drw", ".txt":
		return formatDRW
	case ".xml":
		return formatXML
	}
	return fallback
}

// validFormats is the set of forms convert can write.
var validFormats = map[string]bool{formatDRW: true, formatXML: true}

// validateFormat checks that the requested target form is supported.
func validateFormat(format string) error {
	if !validFormats[format] {
		return fmt.Errorf("invalid format: %s (must be 'drw' or 'xml')", format)
	}
	return nil
}

type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// loadPalette loads the palette from the --palette override, or from the
// XDG config location, falling back to the built-in defaults when neither
// file exists.
func loadPalette(override string) (*palette.Palette, error) {
	if override != "" {
		return palette.Load(override)
	}
	path, err := palettePath()
	if err != nil {
		return palette.Default(), nil
	}
	return palette.LoadOrDefault(path)
}
