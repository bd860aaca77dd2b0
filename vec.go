package affine

import (
	"fmt"
	"math"
)

// Vector represents a 2D displacement.
// Unlike Point which represents a position, Vector represents a direction and magnitude.
type Vector struct {
	DX, DY float64
}

// V is a convenience function to create a Vector.
func V(dx, dy float64) Vector {
	return Vector{DX: dx, DY: dy}
}

// Zero returns the zero vector (0, 0).
func Zero() Vector {
	return Vector{}
}

// XAxis returns the unit vector along the X axis (1, 0).
func XAxis() Vector {
	return Vector{DX: 1, DY: 0}
}

// YAxis returns the unit vector along the Y axis (0, 1).
func YAxis() Vector {
	return Vector{DX: 0, DY: 1}
}

// FromTo returns the displacement from p1 to p2.
func FromTo(p1, p2 Point) Vector {
	return Vector{DX: p2.X - p1.X, DY: p2.Y - p1.Y}
}

// FromRotation returns the unit vector at angle r radians from the X axis.
// It equals XAxis().Rotate(r).
func FromRotation(r float64) Vector {
	sin, cos := math.Sincos(r)
	return Vector{DX: cos, DY: sin}
}

// Equal reports whether v and w have exactly the same components.
func (v Vector) Equal(w Vector) bool {
	return v.DX == w.DX && v.DY == w.DY
}

// Approx reports whether both components of v and w differ by less than Epsilon.
func (v Vector) Approx(w Vector) bool {
	return approx(v.DX, w.DX) && approx(v.DY, w.DY)
}

// Add returns the sum of two vectors.
func (v Vector) Add(w Vector) Vector {
	return Vector{DX: v.DX + w.DX, DY: v.DY + w.DY}
}

// Sub returns the difference of two vectors.
func (v Vector) Sub(w Vector) Vector {
	return Vector{DX: v.DX - w.DX, DY: v.DY - w.DY}
}

// Mul returns the vector scaled by a scalar.
func (v Vector) Mul(s float64) Vector {
	return Scalar(s).Mul(v)
}

// Div returns the vector divided by a scalar.
// Dividing by zero yields infinite or NaN components.
func (v Vector) Div(s float64) Vector {
	return Vector{DX: v.DX / s, DY: v.DY / s}
}

// Neg returns the negation of the vector.
func (v Vector) Neg() Vector {
	return Vector{DX: -v.DX, DY: -v.DY}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(w Vector) float64 {
	return v.DX*w.DX + v.DY*w.DY
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
// Useful for determining the sign of the angle between vectors.
func (v Vector) Cross(w Vector) float64 {
	return v.DX*w.DY - v.DY*w.DX
}

// Length returns the length (magnitude) of the vector.
// It is computed without squaring the components, so it stays positive
// and finite for every finite non-zero vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.DX, v.DY)
}

// LengthSq returns the squared length of the vector.
// Unlike Length it can underflow to 0 or overflow to +Inf.
func (v Vector) LengthSq() float64 {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		Logger().Debug("affine: normalize of zero-length vector")
		return Vector{}
	}
	return Vector{DX: v.DX / length, DY: v.DY / length}
}

// Rotate returns the vector rotated counter-clockwise by r radians.
func (v Vector) Rotate(r float64) Vector {
	sin, cos := math.Sincos(r)
	return Vector{
		DX: v.DX*cos - v.DY*sin,
		DY: v.DX*sin + v.DY*cos,
	}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vector) Perp() Vector {
	return Vector{DX: -v.DY, DY: v.DX}
}

// Angle returns the angle of the vector in radians, in [-Pi, Pi].
func (v Vector) Angle() float64 {
	return math.Atan2(v.DY, v.DX)
}

// AngleTo returns the signed angle from v to w in radians.
func (v Vector) AngleTo(w Vector) float64 {
	return math.Atan2(v.Cross(w), v.Dot(w))
}

// IsZero returns true if the vector is the zero vector.
func (v Vector) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns exactly v and t=1 returns exactly w for finite inputs.
func (v Vector) Lerp(w Vector, t float64) Vector {
	return Vector{
		DX: lerp(v.DX, w.DX, t),
		DY: lerp(v.DY, w.DY, t),
	}
}

// lerp blends a and b as a*(1-t) + b*t, which is exact at both ends.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("V(%g, %g)", v.DX, v.DY)
}
