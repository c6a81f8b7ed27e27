package export

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/drawkit/drawkit/pkg/geom"
	"github.com/drawkit/drawkit/pkg/shape"
)

const xmlHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

// XMLOption configures XML output.
type XMLOption func(*xmlWriter)

// WithIndent pretty-prints the XML, one tag per line, nested tags prefixed
// with indent per depth level. Without it each top-level shape is emitted
// compactly on a single line.
func WithIndent(indent string) XMLOption { return func(w *xmlWriter) { w.indent = indent } }

// WithHeader prepends the XML declaration.
func WithHeader() XMLOption { return func(w *xmlWriter) { w.header = true } }

// XML renders seq in the XML-tagged form: every field wrapped in a tag named
// after the field, a Point as <x>..</x><y>..</y>, a Colour as one tag per
// channel, and a group as the concatenation of its members' XML inside
// <group>…</group>.
func XML(seq shape.Seq, opts ...XMLOption) []byte {
	w := &xmlWriter{}
	for _, opt := range opts {
		opt(w)
	}
	if w.header {
		w.buf.WriteString(xmlHeader)
	}
	for _, sh := range seq {
		w.shape(sh)
		if w.indent == "" {
			w.buf.WriteByte('\n')
		}
	}
	return w.buf.Bytes()
}

type xmlWriter struct {
	buf    bytes.Buffer
	indent string
	header bool
	depth  int
}

func (w *xmlWriter) shape(sh shape.Shape) {
	switch s := sh.(type) {
	case *shape.Line:
		w.open("line")
		w.point("start", s.Start)
		w.point("end", s.End)
		w.colour(s.Colour)
		w.close("line")
	case *shape.Rect:
		w.open("rectangle")
		w.point("upper-left", s.UpperLeft)
		w.point("lower-right", s.LowerRight)
		w.colour(s.Colour)
		w.leaf("corner", s.Corner.String())
		w.close("rectangle")
	case *shape.Group:
		w.open("group")
		for _, m := range s.Members {
			w.shape(m)
		}
		w.close("group")
	}
}

func (w *xmlWriter) point(tag string, p geom.Point) {
	w.open(tag)
	w.leaf("x", num(p.X))
	w.leaf("y", num(p.Y))
	w.close(tag)
}

func (w *xmlWriter) colour(c shape.Colour) {
	w.open("colour")
	w.leaf("k", strconv.Itoa(int(c.K)))
	w.leaf("r", strconv.Itoa(int(c.R)))
	w.leaf("g", strconv.Itoa(int(c.G)))
	w.leaf("b", strconv.Itoa(int(c.B)))
	w.close("colour")
}

func (w *xmlWriter) open(tag string) {
	w.pad()
	w.buf.WriteString("<" + tag + ">")
	w.eol()
	w.depth++
}

func (w *xmlWriter) close(tag string) {
	w.depth--
	w.pad()
	w.buf.WriteString("</" + tag + ">")
	w.eol()
}

func (w *xmlWriter) leaf(tag, val string) {
	w.pad()
	w.buf.WriteString("<" + tag + ">" + val + "</" + tag + ">")
	w.eol()
}

func (w *xmlWriter) pad() {
	if w.indent != "" {
		w.buf.WriteString(strings.Repeat(w.indent, w.depth))
	}
}

func (w *xmlWriter) eol() {
	if w.indent != "" {
		w.buf.WriteByte('\n')
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
