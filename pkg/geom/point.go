// Package geom provides the geometric value types underlying the document
// model: points and axis-aligned bounding boxes.
//
// Both types are plain immutable values compared with ==. Box forms a
// commutative monoid under [Box.Union], with the zero (unused) box as the
// identity element; this is what keeps composite extents cheap to combine.
package geom

// Point is a 2-D coordinate. The zero value is the origin.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns the vector sum p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector difference p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Translate returns p shifted by (dx, dy).
func (p Point) Translate(dx, dy float64) Point { return Point{p.X + dx, p.Y + dy} }

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z component of the cross product p×q. It is zero when
// the two vectors are collinear, which is what segment hit tests check.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }
