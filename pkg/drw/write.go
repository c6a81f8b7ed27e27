package drw

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/drawkit/drawkit/pkg/shape"
)

// Marshal renders a shape sequence in canonical text form. The output parses
// back to an equal sequence: coordinates use the shortest representation that
// survives a float64 round trip, and rects always carry an explicit corner
// field.
func Marshal(seq shape.Seq) ([]byte, error) {
	var buf bytes.Buffer
	for _, sh := range seq {
		if err := writeShape(&buf, sh); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Write renders seq in canonical text form to w.
func Write(seq shape.Seq, w io.Writer) error {
	data, err := Marshal(seq)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// WriteFile renders seq in canonical text form to the file at path,
// creating or truncating it.
func WriteFile(seq shape.Seq, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(seq, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeShape(buf *bytes.Buffer, sh shape.Shape) error {
	switch s := sh.(type) {
	case *shape.Line:
		fmt.Fprintf(buf, "line %s %s %s %s %s\n",
			num(s.Start.X), num(s.Start.Y), num(s.End.X), num(s.End.Y), s.Colour)
	case *shape.Rect:
		fmt.Fprintf(buf, "rect %s %s %s %s %s %s\n",
			num(s.UpperLeft.X), num(s.UpperLeft.Y), num(s.LowerRight.X), num(s.LowerRight.Y),
			s.Colour, s.Corner)
	case *shape.Group:
		buf.WriteString("begin\n")
		for _, m := range s.Members {
			if err := writeShape(buf, m); err != nil {
				return err
			}
		}
		buf.WriteString("end\n")
	default:
		return fmt.Errorf("unsupported shape kind %v", sh.Kind())
	}
	return nil
}

// num formats a coordinate with the fewest digits that parse back to the
// same float64.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
