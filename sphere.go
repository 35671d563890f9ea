package geom

import (
	"fmt"
	"math"
)

// Sphere is a sphere in 3D space, represented by a center and a radius.
type Sphere[T Scalar] struct {
	C Point3D[T]
	R T
}

// NewSphere creates a sphere with the given center and radius.
// It returns ErrNegativeRadius if r < 0.
func NewSphere[T Scalar](c Point3D[T], r T) (Sphere[T], error) {
	if r < 0 {
		return Sphere[T]{}, fmt.Errorf("%w: %v", ErrNegativeRadius, r)
	}
	return Sphere[T]{C: c, R: r}, nil
}

// UnitSphere returns the sphere of radius 1 around the origin.
func UnitSphere[T Scalar]() Sphere[T] {
	return Sphere[T]{R: 1}
}

// ConvertSphere converts the sphere to component type U.
func ConvertSphere[U, T Scalar](s Sphere[T]) Sphere[U] {
	return Sphere[U]{C: ConvertPoint3D[U](s.C), R: U(s.R)}
}

// Translate returns the sphere moved by v.
func (s Sphere[T]) Translate(v Vector3D[T]) Sphere[T] {
	s.C = s.C.Add(v)
	return s
}

// Area returns the surface area 4πr².
func (s Sphere[T]) Area() T {
	r := float64(s.R)
	return T(4 * math.Pi * r * r)
}

// Volume returns 4/3 πr³.
func (s Sphere[T]) Volume() T {
	r := float64(s.R)
	return T(4.0 / 3.0 * math.Pi * r * r * r)
}

// EvaluateImplicitEquation returns |p - C|² - r².
func (s Sphere[T]) EvaluateImplicitEquation(p Point3D[T]) T {
	return p.Sub(s.C).LengthSquared() - s.R*s.R
}

// IsOnSurface reports whether p lies on the sphere.
func (s Sphere[T]) IsOnSurface(p Point3D[T]) bool {
	m := manhattan3(p.Vec()) + manhattan3(s.C.Vec()) + abs(s.R)
	return IsNearZero(s.EvaluateImplicitEquation(p), m*m)
}

// IsInside reports whether p lies strictly inside the sphere.
func (s Sphere[T]) IsInside(p Point3D[T]) bool {
	return !s.IsOnSurface(p) && s.EvaluateImplicitEquation(p) < 0
}

// IsOutside reports whether p lies strictly outside the sphere.
func (s Sphere[T]) IsOutside(p Point3D[T]) bool {
	return !s.IsOnSurface(p) && s.EvaluateImplicitEquation(p) > 0
}

// SignedDistanceToSurface returns |p - C| - r.
func (s Sphere[T]) SignedDistanceToSurface(p Point3D[T]) T {
	return p.Distance(s.C) - s.R
}

// DistanceToSurface returns the distance from p to the sphere.
func (s Sphere[T]) DistanceToSurface(p Point3D[T]) T {
	return abs(s.SignedDistanceToSurface(p))
}

// EvaluateParametricSpecification maps the polar angle θ (from +Z) and the
// azimuth φ (from +X toward +Y) to C + r(sin θ cos φ, sin θ sin φ, cos θ).
func (s Sphere[T]) EvaluateParametricSpecification(theta, phi float64) Point3D[T] {
	r := float64(s.R)
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)
	return s.C.Add(V3(T(r*st*cp), T(r*st*sp), T(r*ct)))
}

// At is shorthand for EvaluateParametricSpecification.
func (s Sphere[T]) At(theta, phi float64) Point3D[T] {
	return s.EvaluateParametricSpecification(theta, phi)
}

// FindNearestParameterValue returns the spherical angles (θ, φ) of the
// point on the sphere closest to p.
func (s Sphere[T]) FindNearestParameterValue(p Point3D[T]) (theta, phi float64) {
	d := p.Sub(s.C)
	x, y, z := float64(d.X), float64(d.Y), float64(d.Z)
	return math.Atan2(math.Hypot(x, y), z), math.Atan2(y, x)
}

// FindNearestNormal returns the outward unit normal at the point closest
// to p. It is undefined for p == C.
func (s Sphere[T]) FindNearestNormal(p Point3D[T]) Vector3D[T] {
	return p.Sub(s.C).Normalize()
}

// FindNearestPoint returns the point on the sphere closest to p.
func (s Sphere[T]) FindNearestPoint(p Point3D[T]) Point3D[T] {
	return s.C.Add(s.FindNearestNormal(p).Mul(s.R))
}

// Equal reports whether both spheres have equal centers and radii.
func (s Sphere[T]) Equal(o Sphere[T]) bool {
	return AreEqual(s.R, o.R) && s.C.Equal(o.C)
}

// String returns the sphere formatted as "Sphere(c=Point3D(...), r=...)".
func (s Sphere[T]) String() string {
	return fmt.Sprintf("Sphere(c=%v, r=%v)", s.C, s.R)
}
