package geom

import "fmt"

// Segment2D is the line segment between P1 and P2.
type Segment2D[T Scalar] struct {
	P1, P2 Point2D[T]
}

// Seg2 is a convenience function to create a Segment2D.
func Seg2[T Scalar](p1, p2 Point2D[T]) Segment2D[T] {
	return Segment2D[T]{P1: p1, P2: p2}
}

// Length returns the distance between the end points.
func (s Segment2D[T]) Length() T {
	return s.P1.Distance(s.P2)
}

// Direction returns P2 - P1.
func (s Segment2D[T]) Direction() Vector2D[T] {
	return s.P2.Sub(s.P1)
}

// Normal returns the direction rotated 90 degrees counter-clockwise.
func (s Segment2D[T]) Normal() Vector2D[T] {
	return s.Direction().Normal()
}

// PointAt returns the point at fraction t along the segment.
func (s Segment2D[T]) PointAt(t T) Point2D[T] {
	return s.P1.Lerp(s.P2, t)
}

// Line returns the infinite line through the segment.
func (s Segment2D[T]) Line() Line2D[T] {
	return Line2DThrough(s.P1, s.P2)
}

// Bounds returns the axis-aligned bounding rectangle of the segment.
func (s Segment2D[T]) Bounds() Rect2D[T] {
	return Rect2D[T](s).Canon()
}

// Contains reports whether p lies on the segment, end points included.
// A degenerate segment contains only its end point.
func (s Segment2D[T]) Contains(p Point2D[T]) bool {
	d := s.Direction()
	if d.IsZero() {
		return p.Equal(s.P1)
	}
	e := p.Sub(s.P1)
	m := manhattan2(d) + manhattan2(e)
	if !IsNearZero(d.Normal().Dot(e), m*m) {
		return false
	}
	slack := Tolerance[T]() * m * m
	t := e.Dot(d)
	return -slack <= t && t <= d.LengthSquared()+slack
}

// FindNearestPoint returns the point of the segment closest to p.
func (s Segment2D[T]) FindNearestPoint(p Point2D[T]) Point2D[T] {
	d := s.Direction()
	dd := d.LengthSquared()
	if dd == 0 {
		return s.P1
	}
	switch t := p.Sub(s.P1).Dot(d); {
	case t <= 0:
		return s.P1
	case t >= dd:
		return s.P2
	default:
		return s.P1.Add(d.Mul(t).Div(dd))
	}
}

// DistanceTo returns the distance from p to the nearest point of the
// segment.
func (s Segment2D[T]) DistanceTo(p Point2D[T]) T {
	return p.Distance(s.FindNearestPoint(p))
}

// Translate returns the segment moved by v.
func (s Segment2D[T]) Translate(v Vector2D[T]) Segment2D[T] {
	return Segment2D[T]{P1: s.P1.Add(v), P2: s.P2.Add(v)}
}

// Equal reports whether both segments have the same end points in either
// order.
func (s Segment2D[T]) Equal(o Segment2D[T]) bool {
	return (s.P1.Equal(o.P1) && s.P2.Equal(o.P2)) || (s.P1.Equal(o.P2) && s.P2.Equal(o.P1))
}

// String returns the segment formatted as "Segment2D(Point2D(...), Point2D(...))".
func (s Segment2D[T]) String() string {
	return fmt.Sprintf("Segment2D(%v, %v)", s.P1, s.P2)
}

// Rect2D is the axis-aligned rectangle spanned by two opposite corners.
// The corners may be given in any order; Canon orders them.
type Rect2D[T Scalar] struct {
	P1, P2 Point2D[T]
}

// Rect is a convenience function to create a Rect2D from corner coordinates.
func Rect[T Scalar](x1, y1, x2, y2 T) Rect2D[T] {
	return Rect2D[T]{P1: Pt2(x1, y1), P2: Pt2(x2, y2)}
}

// Canon returns the rectangle with P1 the minimum and P2 the maximum corner.
func (r Rect2D[T]) Canon() Rect2D[T] {
	return Rect2D[T]{
		P1: Pt2(min(r.P1.X, r.P2.X), min(r.P1.Y, r.P2.Y)),
		P2: Pt2(max(r.P1.X, r.P2.X), max(r.P1.Y, r.P2.Y)),
	}
}

// Size returns the width and height as a vector.
func (r Rect2D[T]) Size() Vector2D[T] {
	c := r.Canon()
	return c.P2.Sub(c.P1)
}

// Area returns width * height.
func (r Rect2D[T]) Area() T {
	s := r.Size()
	return s.X * s.Y
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect2D[T]) Contains(p Point2D[T]) bool {
	c := r.Canon()
	return c.P1.X <= p.X && p.X <= c.P2.X && c.P1.Y <= p.Y && p.Y <= c.P2.Y
}

// ContainsSegment reports whether both end points of s lie in r.
func (r Rect2D[T]) ContainsSegment(s Segment2D[T]) bool {
	return r.Contains(s.P1) && r.Contains(s.P2)
}

// PointAt maps (s, t) in [0, 1]² to the point at those fractions of the
// width and height, measured from the minimum corner.
func (r Rect2D[T]) PointAt(s, t T) Point2D[T] {
	c := r.Canon()
	return Pt2(c.P1.X+(c.P2.X-c.P1.X)*s, c.P1.Y+(c.P2.Y-c.P1.Y)*t)
}

// VerticalAt returns the vertical segment across the rectangle at fraction
// s of its width.
func (r Rect2D[T]) VerticalAt(s T) Segment2D[T] {
	return Seg2(r.PointAt(s, 0), r.PointAt(s, 1))
}

// Translate returns the rectangle moved by v.
func (r Rect2D[T]) Translate(v Vector2D[T]) Rect2D[T] {
	return Rect2D[T]{P1: r.P1.Add(v), P2: r.P2.Add(v)}
}

// Equal reports whether both rectangles cover the same area.
func (r Rect2D[T]) Equal(o Rect2D[T]) bool {
	a, b := r.Canon(), o.Canon()
	return a.P1.Equal(b.P1) && a.P2.Equal(b.P2)
}

// String returns the rectangle formatted as "Rect2D(Point2D(...), Point2D(...))".
func (r Rect2D[T]) String() string {
	return fmt.Sprintf("Rect2D(%v, %v)", r.P1, r.P2)
}
