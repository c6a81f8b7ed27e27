package geom_test

import (
	"fmt"

	"github.com/drawkit/drawkit/pkg/geom"
)

func ExampleBox_Union() {
	a := geom.NewBox(geom.Pt(0, 0), geom.Pt(5, 5))
	b := geom.NewBox(geom.Pt(2, 2), geom.Pt(7, 7))

	u := a.Union(b)
	fmt.Println("TopLeft:", u.TopLeft)
	fmt.Println("BottomRight:", u.BottomRight)

	// The unused box is the identity element.
	u = a.Union(geom.Box{})
	fmt.Println("Identity:", u == a)
	// Output:
	// TopLeft: {0 0}
	// BottomRight: {7 7}
	// Identity: true
}

func ExampleBox_Contains() {
	b := geom.NewBox(geom.Pt(0, 0), geom.Pt(10, 10))

	// Intervals are half-open: the right and bottom edges are outside.
	fmt.Println(b.Contains(geom.Pt(5, 5)))
	fmt.Println(b.Contains(geom.Pt(0, 0)))
	fmt.Println(b.Contains(geom.Pt(10, 10)))
	// Output:
	// true
	// true
	// false
}
