package geom

import "fmt"

// Plane is an infinite plane in 3D space, represented by an anchor point and
// a unit normal.
//
// The normal is unexported so that it always stays normalized; replace it
// with SetNormal. The zero value has no normal; use NewPlane, one of the
// Plane* factories or DefaultPlane.
type Plane[T Scalar] struct {
	P Point3D[T]
	n Vector3D[T]
}

// NewPlane creates the plane through p with normal n. n is normalized.
func NewPlane[T Scalar](p Point3D[T], n Vector3D[T]) Plane[T] {
	return Plane[T]{P: p, n: n.Normalize()}
}

// DefaultPlane returns the XY plane through the origin with normal +Z.
func DefaultPlane[T Scalar]() Plane[T] {
	return Plane[T]{n: Zn3[T]()}
}

// PlaneFromPointAndTwoVectors creates the plane through p spanned by v1 and
// v2, with normal v1 × v2.
//
// When v1 and v2 are collinear they span no plane. The X axis is then used
// in place of v2, or the Y axis if X is collinear with v1, so that the
// result is still a plane containing p and v1.
func PlaneFromPointAndTwoVectors[T Scalar](p Point3D[T], v1, v2 Vector3D[T]) Plane[T] {
	if !v1.IsCollinear(v2) {
		return NewPlane(p, v1.Cross(v2))
	}
	alt := Xn3[T]()
	if alt.IsCollinear(v1) {
		alt = Yn3[T]()
	}
	return NewPlane(p, v1.Cross(alt))
}

// PlaneFromThreePoints creates the plane through a, b and c. The normal is
// (b-a) × (c-a), so it points toward the side from which a, b, c appear
// counter-clockwise.
func PlaneFromThreePoints[T Scalar](a, b, c Point3D[T]) Plane[T] {
	return PlaneFromPointAndTwoVectors(a, b.Sub(a), c.Sub(a))
}

// ConvertPlane converts the plane to component type U.
func ConvertPlane[U, T Scalar](pl Plane[T]) Plane[U] {
	n := ConvertVector3D[U](pl.n)
	if IsFloat[U]() {
		n = n.Normalize()
	}
	return Plane[U]{P: ConvertPoint3D[U](pl.P), n: n}
}

// Normal returns the unit normal of the plane.
func (pl Plane[T]) Normal() Vector3D[T] {
	return pl.n
}

// SetNormal replaces the normal with n normalized.
func (pl *Plane[T]) SetNormal(n Vector3D[T]) {
	pl.n = n.Normalize()
}

// Translate returns the plane moved by v.
func (pl Plane[T]) Translate(v Vector3D[T]) Plane[T] {
	pl.P = pl.P.Add(v)
	return pl
}

// EvaluateImplicitEquation returns (p - P)·n: zero on the plane, positive
// above it (on the side the normal points to) and negative below.
func (pl Plane[T]) EvaluateImplicitEquation(p Point3D[T]) T {
	return p.Sub(pl.P).Dot(pl.n)
}

// IsOnSurface reports whether p lies on the plane.
func (pl Plane[T]) IsOnSurface(p Point3D[T]) bool {
	return IsNearZero(pl.EvaluateImplicitEquation(p), manhattan3(p.Vec())+manhattan3(pl.P.Vec()))
}

// Contains is an alias for IsOnSurface.
func (pl Plane[T]) Contains(p Point3D[T]) bool {
	return pl.IsOnSurface(p)
}

// IsAbovePlane reports whether p lies strictly on the side the normal
// points to.
func (pl Plane[T]) IsAbovePlane(p Point3D[T]) bool {
	return !pl.IsOnSurface(p) && pl.EvaluateImplicitEquation(p) > 0
}

// IsBelowPlane reports whether p lies strictly on the side opposite the
// normal.
func (pl Plane[T]) IsBelowPlane(p Point3D[T]) bool {
	return !pl.IsOnSurface(p) && pl.EvaluateImplicitEquation(p) < 0
}

// SignedDistanceToSurface returns the signed distance from p to the plane.
func (pl Plane[T]) SignedDistanceToSurface(p Point3D[T]) T {
	return pl.EvaluateImplicitEquation(p)
}

// DistanceToSurface returns the distance from p to the plane.
func (pl Plane[T]) DistanceToSurface(p Point3D[T]) T {
	return abs(pl.SignedDistanceToSurface(p))
}

// FindNearestPoint returns the orthogonal projection of p onto the plane.
func (pl Plane[T]) FindNearestPoint(p Point3D[T]) Point3D[T] {
	return p.SubVector(pl.n.Mul(pl.SignedDistanceToSurface(p)))
}

// Basis returns two unit vectors u, v spanning the plane such that
// (u, v, n) is a right-handed orthonormal frame.
func (pl Plane[T]) Basis() (u, v Vector3D[T]) {
	f := FrameFromOneVector(pl.P, pl.n)
	return f.U, f.V
}

// EvaluateParametricSpecification returns P + u*s + v*t, where u and v are
// the in-plane basis returned by Basis.
func (pl Plane[T]) EvaluateParametricSpecification(s, t T) Point3D[T] {
	u, v := pl.Basis()
	return pl.P.Add(u.Mul(s)).Add(v.Mul(t))
}

// Equal reports whether both planes have the same normal and pl contains
// the anchor of o.
func (pl Plane[T]) Equal(o Plane[T]) bool {
	return pl.n.Approx(o.n, Tolerance[T]()) && pl.Contains(o.P)
}

// String returns the plane formatted as "Plane(p=Point3D(...), n=Vector3D(...))".
func (pl Plane[T]) String() string {
	return fmt.Sprintf("Plane(p=%v, n=%v)", pl.P, pl.n)
}
