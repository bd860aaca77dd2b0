package affine

import "fmt"

// Point represents an absolute position in the plane.
// Use Vector for displacements.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Origin returns the point (0, 0).
func Origin() Point {
	return Point{}
}

// Equal reports whether p and q have exactly the same coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Approx reports whether both coordinates of p and q differ by less than Epsilon.
func (p Point) Approx(q Point) bool {
	return approx(p.X, q.X) && approx(p.Y, q.Y)
}

// Offset returns p moved by v.
func (p Point) Offset(v Vector) Point {
	return Point{X: p.X + v.DX, Y: p.Y + v.DY}
}

// Sub returns the displacement from q to p, so that q.Offset(p.Sub(q)) is p.
// It is equivalent to FromTo(q, p).
func (p Point) Sub(q Point) Vector {
	return FromTo(q, p)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return FromTo(p, q).Length()
}

// Lerp returns the affine combination p*(1-t) + q*t.
// t=0 returns exactly p and t=1 returns exactly q for finite inputs.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: lerp(p.X, q.X, t), Y: lerp(p.Y, q.Y, t)}
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("P(%g, %g)", p.X, p.Y)
}
