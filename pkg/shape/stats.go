package shape

import "github.com/drawkit/drawkit/pkg/geom"

// Stats summarizes a document for inspection commands and the API.
type Stats struct {
	Lines  int // line count, all depths
	Rects  int // rectangle count, all depths
	Groups int // group count, all depths
	Depth  int // deepest group nesting; 0 for a flat document
	Extent geom.Box
}

// Total returns the number of leaf shapes (lines and rectangles).
func (st Stats) Total() int { return st.Lines + st.Rects }

// Stats walks the document and counts shapes by kind at every depth.
func (s Seq) Stats() Stats {
	st := Stats{Extent: s.Bounds()}
	countInto(&st, s, 0)
	return st
}

func countInto(st *Stats, s Seq, depth int) {
	for _, sh := range s {
		switch v := sh.(type) {
		case *Line:
			st.Lines++
		case *Rect:
			st.Rects++
		case *Group:
			st.Groups++
			if depth+1 > st.Depth {
				st.Depth = depth + 1
			}
			countInto(st, v.Members, depth+1)
		}
	}
}
