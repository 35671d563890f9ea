// Package geom provides generic value types for 2D and 3D Euclidean
// geometry: vectors, points, lines, planes, circles and spheres.
//
// # Overview
//
// Every type is a small immutable-by-value struct parameterized over a
// component type satisfying [Scalar] (any integer or floating-point type).
// Copying a value copies all of its members; nothing is shared and no
// operation mutates its receiver except the explicit Set* methods.
//
// # Quick Start
//
//	import "github.com/gogpu/geom"
//
//	c := geom.UnitCircle[float64]()
//	p := c.EvaluateParametricSpecification(math.Pi / 3)
//	c.IsOnCurve(p) // true
//
//	pl := geom.PlaneFromThreePoints(
//	    geom.Pt3(0.0, 0, 0), geom.Pt3(1.0, 0, 0), geom.Pt3(0.0, 1, 0))
//	pl.Normal() // Vector3D(0, 0, 1)
//
// # Equality
//
// [AreEqual] compares floating-point components with a relative tolerance
// of one machine epsilon of their own width, and integer components
// exactly. The Equal methods are built on it. IsOrthogonal, IsCollinear
// and IsNormalized compute a residue that is zero only in exact arithmetic,
// so they judge it with [IsNearZero] relative to the magnitudes of the
// operands. Membership tests (IsOnCurve, IsOnSurface, Contains) evaluate an
// implicit equation and judge the residue the same way.
//
// # Points and Vectors
//
// A [Point2D] or [Point3D] is a position, a [Vector2D] or [Vector3D] a
// displacement. Points translate by vectors; p.Sub(q) is the vector from q
// to p. Adding two points is not offered.
//
// # Degenerate Input
//
// Division by a zero scalar and normalizing the zero vector are not
// checked: floating types produce Inf or NaN, integer types panic like any
// Go integer division by zero. Component access with At panics with
// [ErrIndexOutOfRange]. [NewCircle] and [NewSphere] reject negative radii
// with [ErrNegativeRadius].
//
// # Concurrency
//
// All values are safe to share between goroutines. The package keeps no
// mutable global state other than the logger installed with [SetLogger].
package geom
