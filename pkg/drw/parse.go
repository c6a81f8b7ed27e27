package drw

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/drawkit/drawkit/pkg/geom"
	"github.com/drawkit/drawkit/pkg/shape"
)

var (
	// ErrUnknownKeyword is returned when a line starts with anything other
	// than "line", "rect", "begin" or "end".
	ErrUnknownKeyword = errors.New("unknown keyword")

	// ErrFieldCount is returned when a line has the wrong number of fields
	// for its keyword.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrInvalidNumber is returned when a coordinate field is not a valid
	// floating-point number.
	ErrInvalidNumber = errors.New("invalid coordinate")

	// ErrUnterminatedGroup is returned when the input ends while a group is
	// still open. The error points at the unmatched "begin" line.
	ErrUnterminatedGroup = errors.New("unterminated group")

	// ErrUnexpectedEnd is returned for an "end" line with no open group.
	ErrUnexpectedEnd = errors.New(`"end" without matching "begin"`)
)

// ParseError reports why a document failed to parse, carrying the offending
// line's position and content. The underlying cause is one of the sentinel
// errors in this package, or [shape.ErrInvalidColour] / [shape.ErrInvalidCorner]
// for malformed style fields; test for it with errors.Is.
type ParseError struct {
	Line    int    // 1-based line number in the original input
	Content string // the offending line, trimmed
	Err     error  // underlying cause
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Content)
}

func (e *ParseError) Unwrap() error { return e.Err }

// line is one non-blank input line with its position in the original text.
type srcLine struct {
	n    int
	text string
}

// parser is a cursor over an immutable line buffer. The cursor only ever
// advances; group recursion shares the same buffer instead of re-slicing it.
type parser struct {
	lines []srcLine
	pos   int
}

func newParser(src string) *parser {
	raw := strings.Split(src, "\n")
	lines := make([]srcLine, 0, len(raw))
	for i, text := range raw {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		lines = append(lines, srcLine{n: i + 1, text: text})
	}
	return &parser{lines: lines}
}

// Unmarshal parses a document in canonical text form. It either returns the
// complete shape sequence or a [ParseError]; there are no partial results.
func Unmarshal(data []byte) (shape.Seq, error) {
	p := newParser(string(data))
	seq := shape.Seq{}
	for p.pos < len(p.lines) {
		sh, err := p.shape()
		if err != nil {
			return nil, err
		}
		seq = append(seq, sh)
	}
	return seq, nil
}

// Read parses a document from r.
func Read(r io.Reader) (shape.Seq, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return Unmarshal(data)
}

// ReadFile parses the document stored at path.
func ReadFile(path string) (shape.Seq, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// shape parses the next shape (a line, a rect, or a whole group) and
// advances the cursor past it. At the top level an "end" line has no open
// group to close and fails the parse.
func (p *parser) shape() (shape.Shape, error) {
	ln := p.lines[p.pos]
	fields := strings.Fields(ln.text)

	switch fields[0] {
	case "line":
		p.pos++
		return parseLineShape(ln, fields)
	case "rect":
		p.pos++
		return parseRectShape(ln, fields)
	case "begin":
		if len(fields) != 1 {
			return nil, errAt(ln, ErrFieldCount)
		}
		return p.group(ln)
	case "end":
		return nil, errAt(ln, ErrUnexpectedEnd)
	default:
		return nil, errAt(ln, ErrUnknownKeyword)
	}
}

// group parses the members between a "begin" line and its matching "end".
// The begin line is used to report unterminated groups.
func (p *parser) group(begin srcLine) (shape.Shape, error) {
	p.pos++ // consume "begin"
	members := shape.Seq{}
	for {
		if p.pos >= len(p.lines) {
			return nil, errAt(begin, ErrUnterminatedGroup)
		}
		ln := p.lines[p.pos]
		if fields := strings.Fields(ln.text); fields[0] == "end" {
			if len(fields) != 1 {
				return nil, errAt(ln, ErrFieldCount)
			}
			p.pos++
			return shape.NewGroup(members...), nil
		}
		sh, err := p.shape()
		if err != nil {
			return nil, err
		}
		members = append(members, sh)
	}
}

// parseLineShape parses "line x1 y1 x2 y2 colour".
func parseLineShape(ln srcLine, fields []string) (shape.Shape, error) {
	if len(fields) != 6 {
		return nil, errAt(ln, ErrFieldCount)
	}
	nums, err := parseNums(ln, fields[1:5])
	if err != nil {
		return nil, err
	}
	colour, err := shape.ParseColour(fields[5])
	if err != nil {
		return nil, errAt(ln, err)
	}
	return shape.NewLine(geom.Pt(nums[0], nums[1]), geom.Pt(nums[2], nums[3]), colour), nil
}

// parseRectShape parses "rect x1 y1 x2 y2 colour [corner]". The corner
// defaults to square when omitted.
func parseRectShape(ln srcLine, fields []string) (shape.Shape, error) {
	if len(fields) != 6 && len(fields) != 7 {
		return nil, errAt(ln, ErrFieldCount)
	}
	nums, err := parseNums(ln, fields[1:5])
	if err != nil {
		return nil, err
	}
	colour, err := shape.ParseColour(fields[5])
	if err != nil {
		return nil, errAt(ln, err)
	}
	corner := shape.CornerSquare
	if len(fields) == 7 {
		corner, err = shape.ParseCorner(fields[6])
		if err != nil {
			return nil, errAt(ln, err)
		}
	}
	return shape.NewRect(geom.Pt(nums[0], nums[1]), geom.Pt(nums[2], nums[3]), colour, corner), nil
}

func parseNums(ln srcLine, fields []string) ([4]float64, error) {
	var nums [4]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nums, errAt(ln, fmt.Errorf("%w: %q", ErrInvalidNumber, f))
		}
		nums[i] = v
	}
	return nums, nil
}

func errAt(ln srcLine, err error) *ParseError {
	return &ParseError{Line: ln.n, Content: ln.text, Err: err}
}
