package geom

import "fmt"

// Vector2D represents a 2D displacement: a direction and magnitude.
// Unlike Point2D which represents a position, a vector is free and can be
// added to points, scaled and combined with other vectors.
type Vector2D[T Scalar] struct {
	X, Y T
}

// V2 is a convenience function to create a Vector2D.
func V2[T Scalar](x, y T) Vector2D[T] {
	return Vector2D[T]{X: x, Y: y}
}

// Xn2 returns the unit vector along the X axis.
func Xn2[T Scalar]() Vector2D[T] { return Vector2D[T]{X: 1} }

// Yn2 returns the unit vector along the Y axis.
func Yn2[T Scalar]() Vector2D[T] { return Vector2D[T]{Y: 1} }

// ConvertVector2D converts each component of v to U using Go conversion
// rules, so float to integer conversion truncates toward zero.
func ConvertVector2D[U, T Scalar](v Vector2D[T]) Vector2D[U] {
	return Vector2D[U]{X: U(v.X), Y: U(v.Y)}
}

// At returns the component with index i (0 for X, 1 for Y).
// It panics with ErrIndexOutOfRange for any other index.
func (v Vector2D[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Errorf("%w: %d not in [0, 2)", ErrIndexOutOfRange, i))
}

// With returns a copy of v with component i replaced by x.
// It panics with ErrIndexOutOfRange for an index other than 0 or 1.
func (v Vector2D[T]) With(i int, x T) Vector2D[T] {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	default:
		panic(fmt.Errorf("%w: %d not in [0, 2)", ErrIndexOutOfRange, i))
	}
	return v
}

// Add returns the sum of two vectors.
func (v Vector2D[T]) Add(w Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2D[T]) Sub(w Vector2D[T]) Vector2D[T] {
	return Vector2D[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Neg returns the negation of the vector.
func (v Vector2D[T]) Neg() Vector2D[T] {
	return Vector2D[T]{X: -v.X, Y: -v.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vector2D[T]) Mul(s T) Vector2D[T] {
	return Vector2D[T]{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
// Dividing by zero follows Go arithmetic: Inf/NaN components for floating
// types and a run-time panic for integer types.
func (v Vector2D[T]) Div(s T) Vector2D[T] {
	return Vector2D[T]{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of two vectors.
func (v Vector2D[T]) Dot(w Vector2D[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// ScalarProduct returns the scalar (dot) product. It is identical to Dot.
func (v Vector2D[T]) ScalarProduct(w Vector2D[T]) T {
	return v.Dot(w)
}

// Normal returns the vector rotated 90 degrees counter-clockwise.
// The result has the length of v, not unit length.
func (v Vector2D[T]) Normal() Vector2D[T] {
	return Vector2D[T]{X: -v.Y, Y: v.X}
}

// LengthSquared returns the squared length of the vector.
func (v Vector2D[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the length (magnitude) of the vector.
// For integer component types the result is truncated.
func (v Vector2D[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// Normalize returns v divided by its length. A vector that already passes
// IsNormalized is returned unchanged, so normalizing twice gives the same
// vector as normalizing once.
// The zero vector has no direction; normalizing it yields NaN components
// for floating types and panics for integer types.
func (v Vector2D[T]) Normalize() Vector2D[T] {
	l := v.Length()
	if IsNearZero(l-1, 1) {
		return v
	}
	return v.Div(l)
}

// IsNormalized reports whether v has unit length within Tolerance.
func (v Vector2D[T]) IsNormalized() bool {
	return IsNearZero(v.Length()-1, 1)
}

// IsOrthogonal reports whether the dot product of v and w is zero relative
// to the magnitudes of v and w.
func (v Vector2D[T]) IsOrthogonal(w Vector2D[T]) bool {
	return IsNearZero(v.Dot(w), manhattan2(v)*manhattan2(w))
}

// IsCollinear reports whether v and w are parallel or anti-parallel,
// using the Cauchy-Schwarz equality (v·w)² = |v|²|w|² with the residue
// judged relative to |v|²|w|². The zero vector is collinear with every
// vector.
func (v Vector2D[T]) IsCollinear(w Vector2D[T]) bool {
	d := v.Dot(w)
	lsq := v.LengthSquared() * w.LengthSquared()
	return IsNearZero(d*d-lsq, lsq)
}

// ProjectOnto returns the projection of v onto the direction of w.
// w does not need to be normalized.
func (v Vector2D[T]) ProjectOnto(w Vector2D[T]) Vector2D[T] {
	return w.Mul(v.Dot(w) / w.LengthSquared())
}

// Reflect returns v mirrored about the line orthogonal to normal.
func (v Vector2D[T]) Reflect(normal Vector2D[T]) Vector2D[T] {
	return v.Sub(v.ProjectOnto(normal).Mul(2))
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w.
func (v Vector2D[T]) Lerp(w Vector2D[T], t T) Vector2D[T] {
	return Vector2D[T]{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// IsZero reports whether every component is exactly zero.
func (v Vector2D[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Equal reports whether every component of v equals the matching component
// of w according to AreEqual.
func (v Vector2D[T]) Equal(w Vector2D[T]) bool {
	return AreEqual(v.X, w.X) && AreEqual(v.Y, w.Y)
}

// Approx reports whether each component of v differs from w by at most
// epsilon.
func (v Vector2D[T]) Approx(w Vector2D[T], epsilon T) bool {
	return abs(v.X-w.X) <= epsilon && abs(v.Y-w.Y) <= epsilon
}

// String returns the vector formatted as "Vector2D(x, y)".
func (v Vector2D[T]) String() string {
	return fmt.Sprintf("Vector2D(%v, %v)", v.X, v.Y)
}
