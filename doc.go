// Package affine provides immutable 2D affine-geometry value types for Go.
//
// # Overview
//
// affine keeps positions and displacements apart. A [Point] is an absolute
// position in the plane, a [Vector] is a displacement (direction and
// magnitude) and a [Scalar] is a real-number multiplier. Only the
// operations that make sense between them are defined:
//
//	Point  + Vector -> Point   (Point.Offset)
//	Point  - Point  -> Vector  (Point.Sub, FromTo)
//	Vector + Vector -> Vector  (Vector.Add)
//	Scalar * Vector -> Vector  (Scalar.Mul, Vector.Mul)
//	Vector . Vector -> float64 (Vector.Dot)
//
// Two points cannot be added; [Point.Lerp] is the affine combination to use
// instead.
//
// # Quick Start
//
//	import "github.com/gogpu/affine"
//
//	p := affine.Pt(0, 0)
//	q := affine.Pt(3, 4)
//
//	d := p.Distance(q)                  // 5
//	v := affine.FromTo(p, q).Normalize() // (0.6, 0.8)
//	r := p.Offset(v.Mul(10))            // (6, 8)
//
// # Equality
//
// Every type exposes two comparisons that are never conflated: Equal is
// exact, Approx compares each component within [Epsilon] (1e-6). The
// tolerance is fixed so that approximate comparisons agree everywhere.
//
// # Degenerate values
//
// No operation returns an error or panics. Normalizing the zero vector
// yields the zero vector. NaN and infinities propagate under IEEE-754.
//
// # Coordinate System
//
// Angles are in radians; 0 points along +X and rotation is
// counter-clockwise in a Y-up frame. In a Y-down frame (screen space)
// the same rotation appears clockwise.
//
// # Interoperability
//
// [Vector.F64] and [Point.Fixed] convert to the golang.org/x/image
// math/f64 and math/fixed types used by rasterizers and font drawers.
package affine

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = ""
)
