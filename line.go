package geom

import "fmt"

// Line2D is an infinite line in 2D space, represented by an anchor point
// and a unit direction vector.
//
// The direction is unexported so that it always stays normalized: it can
// only be replaced through SetDirection. The zero value has no direction;
// build lines with NewLine2D, Line2DThrough or DefaultLine2D.
type Line2D[T Scalar] struct {
	P Point2D[T]
	v Vector2D[T]
}

// NewLine2D creates a line through p with direction v. v is normalized.
func NewLine2D[T Scalar](p Point2D[T], v Vector2D[T]) Line2D[T] {
	return Line2D[T]{P: p, v: v.Normalize()}
}

// Line2DThrough creates the line through p1 pointing toward p2.
func Line2DThrough[T Scalar](p1, p2 Point2D[T]) Line2D[T] {
	return NewLine2D(p1, p2.Sub(p1))
}

// DefaultLine2D returns the diagonal line through the origin with direction
// (1, 1) normalized.
func DefaultLine2D[T Scalar]() Line2D[T] {
	return NewLine2D(Point2D[T]{}, V2[T](1, 1))
}

// ConvertLine2D converts the line to component type U. For floating U the
// direction is normalized again in the new precision.
func ConvertLine2D[U, T Scalar](l Line2D[T]) Line2D[U] {
	v := ConvertVector2D[U](l.v)
	if IsFloat[U]() {
		v = v.Normalize()
	}
	return Line2D[U]{P: ConvertPoint2D[U](l.P), v: v}
}

// Direction returns the unit direction of the line.
func (l Line2D[T]) Direction() Vector2D[T] {
	return l.v
}

// SetDirection replaces the direction with v normalized.
func (l *Line2D[T]) SetDirection(v Vector2D[T]) {
	l.v = v.Normalize()
}

// Normal returns the unit normal of the line, the direction rotated
// 90 degrees counter-clockwise.
func (l Line2D[T]) Normal() Vector2D[T] {
	return l.v.Normal()
}

// Translate returns the line moved by v.
func (l Line2D[T]) Translate(v Vector2D[T]) Line2D[T] {
	l.P = l.P.Add(v)
	return l
}

// EvaluateImplicitEquation returns n·(p - P), where n is the unit normal.
// The value is zero on the line, positive on its left side and negative on
// its right side, looking along the direction.
func (l Line2D[T]) EvaluateImplicitEquation(p Point2D[T]) T {
	return l.Normal().Dot(p.Sub(l.P))
}

// IsOnCurve reports whether p lies on the line.
func (l Line2D[T]) IsOnCurve(p Point2D[T]) bool {
	return IsNearZero(l.EvaluateImplicitEquation(p), manhattan2(p.Vec())+manhattan2(l.P.Vec()))
}

// IsOnLeftSide reports whether p lies strictly left of the line.
func (l Line2D[T]) IsOnLeftSide(p Point2D[T]) bool {
	return !l.IsOnCurve(p) && l.EvaluateImplicitEquation(p) > 0
}

// IsOnRightSide reports whether p lies strictly right of the line.
func (l Line2D[T]) IsOnRightSide(p Point2D[T]) bool {
	return !l.IsOnCurve(p) && l.EvaluateImplicitEquation(p) < 0
}

// SignedDistanceToCurve returns the signed distance from p to the line.
// Because the normal has unit length this is the implicit equation itself.
func (l Line2D[T]) SignedDistanceToCurve(p Point2D[T]) T {
	return l.EvaluateImplicitEquation(p)
}

// DistanceToCurve returns the distance from p to the line.
func (l Line2D[T]) DistanceToCurve(p Point2D[T]) T {
	return abs(l.SignedDistanceToCurve(p))
}

// EvaluateParametricSpecification returns P + direction*s.
func (l Line2D[T]) EvaluateParametricSpecification(s T) Point2D[T] {
	return l.P.Add(l.v.Mul(s))
}

// At is shorthand for EvaluateParametricSpecification.
func (l Line2D[T]) At(s T) Point2D[T] {
	return l.EvaluateParametricSpecification(s)
}

// FindNearestParameterValue returns the parameter of the point on the line
// closest to p: the scalar projection of p - P onto the direction.
func (l Line2D[T]) FindNearestParameterValue(p Point2D[T]) T {
	return p.Sub(l.P).Dot(l.v)
}

// FindNearestPoint returns the orthogonal projection of p onto the line.
func (l Line2D[T]) FindNearestPoint(p Point2D[T]) Point2D[T] {
	return l.EvaluateParametricSpecification(l.FindNearestParameterValue(p))
}

// Equal reports whether both lines describe the same set of points,
// regardless of anchor and of the sign of the direction.
func (l Line2D[T]) Equal(o Line2D[T]) bool {
	return l.v.IsCollinear(o.v) && l.IsOnCurve(o.P)
}

// String returns the line formatted as "Line2D(p=Point2D(...), v=Vector2D(...))".
func (l Line2D[T]) String() string {
	return fmt.Sprintf("Line2D(p=%v, v=%v)", l.P, l.v)
}

// Line3D is an infinite line in 3D space, represented by an anchor point
// and a unit direction vector. See Line2D for the direction invariant.
type Line3D[T Scalar] struct {
	P Point3D[T]
	v Vector3D[T]
}

// NewLine3D creates a line through p with direction v. v is normalized.
func NewLine3D[T Scalar](p Point3D[T], v Vector3D[T]) Line3D[T] {
	return Line3D[T]{P: p, v: v.Normalize()}
}

// Line3DThrough creates the line through p1 pointing toward p2.
func Line3DThrough[T Scalar](p1, p2 Point3D[T]) Line3D[T] {
	return NewLine3D(p1, p2.Sub(p1))
}

// DefaultLine3D returns the line through the origin with direction
// (1, 1, 1) normalized.
func DefaultLine3D[T Scalar]() Line3D[T] {
	return NewLine3D(Point3D[T]{}, V3[T](1, 1, 1))
}

// ConvertLine3D converts the line to component type U.
func ConvertLine3D[U, T Scalar](l Line3D[T]) Line3D[U] {
	v := ConvertVector3D[U](l.v)
	if IsFloat[U]() {
		v = v.Normalize()
	}
	return Line3D[U]{P: ConvertPoint3D[U](l.P), v: v}
}

// Direction returns the unit direction of the line.
func (l Line3D[T]) Direction() Vector3D[T] {
	return l.v
}

// SetDirection replaces the direction with v normalized.
func (l *Line3D[T]) SetDirection(v Vector3D[T]) {
	l.v = v.Normalize()
}

// Translate returns the line moved by v.
func (l Line3D[T]) Translate(v Vector3D[T]) Line3D[T] {
	l.P = l.P.Add(v)
	return l
}

// IsOnCurve reports whether p lies on the line: p is the anchor or p - P is
// collinear with the direction.
func (l Line3D[T]) IsOnCurve(p Point3D[T]) bool {
	if p.Equal(l.P) {
		return true
	}
	return p.Sub(l.P).IsCollinear(l.v)
}

// EvaluateParametricSpecification returns P + direction*s.
func (l Line3D[T]) EvaluateParametricSpecification(s T) Point3D[T] {
	return l.P.Add(l.v.Mul(s))
}

// At is shorthand for EvaluateParametricSpecification.
func (l Line3D[T]) At(s T) Point3D[T] {
	return l.EvaluateParametricSpecification(s)
}

// FindNearestParameterValue returns the scalar projection of p - P onto the
// direction.
func (l Line3D[T]) FindNearestParameterValue(p Point3D[T]) T {
	return p.Sub(l.P).Dot(l.v)
}

// FindNearestPoint returns the orthogonal projection of p onto the line.
func (l Line3D[T]) FindNearestPoint(p Point3D[T]) Point3D[T] {
	return l.EvaluateParametricSpecification(l.FindNearestParameterValue(p))
}

// DistanceToCurve returns the distance from p to its projection on the line.
func (l Line3D[T]) DistanceToCurve(p Point3D[T]) T {
	return p.Distance(l.FindNearestPoint(p))
}

// Equal reports whether both lines describe the same set of points.
func (l Line3D[T]) Equal(o Line3D[T]) bool {
	return l.v.IsCollinear(o.v) && l.IsOnCurve(o.P)
}

// String returns the line formatted as "Line3D(p=Point3D(...), v=Vector3D(...))".
func (l Line3D[T]) String() string {
	return fmt.Sprintf("Line3D(p=%v, v=%v)", l.P, l.v)
}

// manhattan2 returns the L1 norm of v.
func manhattan2[T Scalar](v Vector2D[T]) T {
	return abs(v.X) + abs(v.Y)
}

func manhattan3[T Scalar](v Vector3D[T]) T {
	return abs(v.X) + abs(v.Y) + abs(v.Z)
}
