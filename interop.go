package affine

import (
	"math"

	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// F64 converts v to an x/image f64.Vec2 laid out as [DX, DY].
func (v Vector) F64() f64.Vec2 {
	return f64.Vec2{v.DX, v.DY}
}

// VectorFromF64 converts an x/image f64.Vec2 to a Vector.
func VectorFromF64(a f64.Vec2) Vector {
	return Vector{DX: a[0], DY: a[1]}
}

// Fixed converts p to 26.6 fixed-point coordinates, rounding each
// coordinate to the nearest 1/64. Coordinates beyond the range of
// fixed.Int26_6 saturate at its bounds and NaN maps to 0.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: floatToFixed(p.X), Y: floatToFixed(p.Y)}
}

// PointFromFixed converts a 26.6 fixed-point position to a Point.
func PointFromFixed(fp fixed.Point26_6) Point {
	return Point{X: fixedToFloat(fp.X), Y: fixedToFloat(fp.Y)}
}

// floatToFixed converts a float64 coordinate to fixed.Int26_6.
// A float-to-int conversion of NaN or an out-of-range value is
// implementation-defined in Go, so those are handled before converting.
func floatToFixed(f float64) fixed.Int26_6 {
	v := math.Round(f * 64)
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return fixed.Int26_6(v)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
