package affine

// Scalar is a real-number multiplier.
type Scalar float64

// Mul returns v scaled by s.
// It agrees exactly with v.Mul(float64(s)).
func (s Scalar) Mul(v Vector) Vector {
	return Vector{DX: float64(s) * v.DX, DY: float64(s) * v.DY}
}
