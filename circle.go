package geom

import (
	"fmt"
	"math"
)

// Circle is a circle in 2D space, represented by a center and a radius.
type Circle[T Scalar] struct {
	C Point2D[T]
	R T
}

// NewCircle creates a circle with the given center and radius.
// It returns ErrNegativeRadius if r < 0. A zero radius is allowed and
// describes a single point.
func NewCircle[T Scalar](c Point2D[T], r T) (Circle[T], error) {
	if r < 0 {
		return Circle[T]{}, fmt.Errorf("%w: %v", ErrNegativeRadius, r)
	}
	return Circle[T]{C: c, R: r}, nil
}

// UnitCircle returns the circle of radius 1 around the origin.
func UnitCircle[T Scalar]() Circle[T] {
	return Circle[T]{R: 1}
}

// ConvertCircle converts the circle to component type U.
func ConvertCircle[U, T Scalar](c Circle[T]) Circle[U] {
	return Circle[U]{C: ConvertPoint2D[U](c.C), R: U(c.R)}
}

// Translate returns the circle moved by v.
func (c Circle[T]) Translate(v Vector2D[T]) Circle[T] {
	c.C = c.C.Add(v)
	return c
}

// Area returns πr².
func (c Circle[T]) Area() T {
	r := float64(c.R)
	return T(math.Pi * r * r)
}

// Circumference returns 2πr.
func (c Circle[T]) Circumference() T {
	return T(2 * math.Pi * float64(c.R))
}

// EvaluateImplicitEquation returns |p - C|² - r²: zero on the circle,
// negative inside and positive outside.
func (c Circle[T]) EvaluateImplicitEquation(p Point2D[T]) T {
	return p.Sub(c.C).LengthSquared() - c.R*c.R
}

// IsOnCurve reports whether p lies on the circle.
func (c Circle[T]) IsOnCurve(p Point2D[T]) bool {
	s := manhattan2(p.Vec()) + manhattan2(c.C.Vec()) + abs(c.R)
	return IsNearZero(c.EvaluateImplicitEquation(p), s*s)
}

// IsInside reports whether p lies strictly inside the circle.
func (c Circle[T]) IsInside(p Point2D[T]) bool {
	return !c.IsOnCurve(p) && c.EvaluateImplicitEquation(p) < 0
}

// IsOutside reports whether p lies strictly outside the circle.
func (c Circle[T]) IsOutside(p Point2D[T]) bool {
	return !c.IsOnCurve(p) && c.EvaluateImplicitEquation(p) > 0
}

// SignedDistanceToCurve returns |p - C| - r: negative inside, positive
// outside. It has the sign of the implicit equation.
func (c Circle[T]) SignedDistanceToCurve(p Point2D[T]) T {
	return p.Distance(c.C) - c.R
}

// DistanceToCurve returns the distance from p to the circle.
func (c Circle[T]) DistanceToCurve(p Point2D[T]) T {
	return abs(c.SignedDistanceToCurve(p))
}

// EvaluateParametricSpecification returns C + r(cos θ, sin θ).
func (c Circle[T]) EvaluateParametricSpecification(theta float64) Point2D[T] {
	r := float64(c.R)
	return c.C.Add(V2(T(r*math.Cos(theta)), T(r*math.Sin(theta))))
}

// At is shorthand for EvaluateParametricSpecification.
func (c Circle[T]) At(theta float64) Point2D[T] {
	return c.EvaluateParametricSpecification(theta)
}

// FindNearestParameterValue returns the angle θ in (-π, π] of the point
// on the circle closest to p.
func (c Circle[T]) FindNearestParameterValue(p Point2D[T]) float64 {
	d := p.Sub(c.C)
	return math.Atan2(float64(d.Y), float64(d.X))
}

// FindNearestNormal returns the outward unit normal of the circle at the
// point closest to p. It is undefined for p == C.
func (c Circle[T]) FindNearestNormal(p Point2D[T]) Vector2D[T] {
	return p.Sub(c.C).Normalize()
}

// FindNearestPoint returns the point on the circle closest to p.
// It is undefined for p == C, where every point is equally close.
func (c Circle[T]) FindNearestPoint(p Point2D[T]) Point2D[T] {
	return c.C.Add(c.FindNearestNormal(p).Mul(c.R))
}

// Equal reports whether both circles have equal centers and radii.
func (c Circle[T]) Equal(o Circle[T]) bool {
	return AreEqual(c.R, o.R) && c.C.Equal(o.C)
}

// String returns the circle formatted as "Circle(c=Point2D(...), r=...)".
func (c Circle[T]) String() string {
	return fmt.Sprintf("Circle(c=%v, r=%v)", c.C, c.R)
}
