package geom

import "fmt"

// Vector3D represents a 3D displacement: a direction and magnitude.
type Vector3D[T Scalar] struct {
	X, Y, Z T
}

// V3 is a convenience function to create a Vector3D.
func V3[T Scalar](x, y, z T) Vector3D[T] {
	return Vector3D[T]{X: x, Y: y, Z: z}
}

// Xn3 returns the unit vector along the X axis.
func Xn3[T Scalar]() Vector3D[T] { return Vector3D[T]{X: 1} }

// Yn3 returns the unit vector along the Y axis.
func Yn3[T Scalar]() Vector3D[T] { return Vector3D[T]{Y: 1} }

// Zn3 returns the unit vector along the Z axis.
func Zn3[T Scalar]() Vector3D[T] { return Vector3D[T]{Z: 1} }

// ConvertVector3D converts each component of v to U using Go conversion
// rules, so float to integer conversion truncates toward zero.
func ConvertVector3D[U, T Scalar](v Vector3D[T]) Vector3D[U] {
	return Vector3D[U]{X: U(v.X), Y: U(v.Y), Z: U(v.Z)}
}

// At returns the component with index i (0 for X, 1 for Y, 2 for Z).
// It panics with ErrIndexOutOfRange for any other index.
func (v Vector3D[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Errorf("%w: %d not in [0, 3)", ErrIndexOutOfRange, i))
}

// With returns a copy of v with component i replaced by x.
func (v Vector3D[T]) With(i int, x T) Vector3D[T] {
	switch i {
	case 0:
		v.X = x
	case 1:
		v.Y = x
	case 2:
		v.Z = x
	default:
		panic(fmt.Errorf("%w: %d not in [0, 3)", ErrIndexOutOfRange, i))
	}
	return v
}

// Add returns the sum of two vectors.
func (v Vector3D[T]) Add(w Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vector3D[T]) Sub(w Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Neg returns the negation of the vector.
func (v Vector3D[T]) Neg() Vector3D[T] {
	return Vector3D[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vector3D[T]) Mul(s T) Vector3D[T] {
	return Vector3D[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by a scalar.
// Division by zero is not checked; see Vector2D.Div.
func (v Vector3D[T]) Div(s T) Vector3D[T] {
	return Vector3D[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// Dot returns the dot product of two vectors.
func (v Vector3D[T]) Dot(w Vector3D[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// ScalarProduct returns the scalar (dot) product. It is identical to Dot.
func (v Vector3D[T]) ScalarProduct(w Vector3D[T]) T {
	return v.Dot(w)
}

// Cross returns the right-handed cross product v × w.
// The result is orthogonal to both operands.
func (v Vector3D[T]) Cross(w Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// CrossProduct is an alias for Cross.
func (v Vector3D[T]) CrossProduct(w Vector3D[T]) Vector3D[T] {
	return v.Cross(w)
}

// LengthSquared returns the squared length of the vector.
func (v Vector3D[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the length (magnitude) of the vector.
// For integer component types the result is truncated.
func (v Vector3D[T]) Length() T {
	return sqrt(v.LengthSquared())
}

// Normalize returns v divided by its length. A vector that already passes
// IsNormalized is returned unchanged, so normalizing twice gives the same
// vector as normalizing once.
// Normalizing the zero vector is undefined; see Vector2D.Normalize.
func (v Vector3D[T]) Normalize() Vector3D[T] {
	l := v.Length()
	if IsNearZero(l-1, 1) {
		return v
	}
	return v.Div(l)
}

// IsNormalized reports whether v has unit length within Tolerance.
func (v Vector3D[T]) IsNormalized() bool {
	return IsNearZero(v.Length()-1, 1)
}

// IsOrthogonal reports whether the dot product of v and w is zero relative
// to the magnitudes of v and w.
func (v Vector3D[T]) IsOrthogonal(w Vector3D[T]) bool {
	return IsNearZero(v.Dot(w), manhattan3(v)*manhattan3(w))
}

// IsCollinear reports whether v and w are parallel or anti-parallel,
// using the Cauchy-Schwarz equality (v·w)² = |v|²|w|² with the residue
// judged relative to |v|²|w|². The zero vector is collinear with every
// vector.
func (v Vector3D[T]) IsCollinear(w Vector3D[T]) bool {
	d := v.Dot(w)
	lsq := v.LengthSquared() * w.LengthSquared()
	return IsNearZero(d*d-lsq, lsq)
}

// ProjectOnto returns the projection of v onto the direction of w.
func (v Vector3D[T]) ProjectOnto(w Vector3D[T]) Vector3D[T] {
	return w.Mul(v.Dot(w) / w.LengthSquared())
}

// Reflect returns v mirrored about the plane orthogonal to normal.
func (v Vector3D[T]) Reflect(normal Vector3D[T]) Vector3D[T] {
	return v.Sub(v.ProjectOnto(normal).Mul(2))
}

// Lerp performs linear interpolation between two vectors.
func (v Vector3D[T]) Lerp(w Vector3D[T], t T) Vector3D[T] {
	return Vector3D[T]{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// IsZero reports whether every component is exactly zero.
func (v Vector3D[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Equal reports whether all components are equal according to AreEqual.
func (v Vector3D[T]) Equal(w Vector3D[T]) bool {
	return AreEqual(v.X, w.X) && AreEqual(v.Y, w.Y) && AreEqual(v.Z, w.Z)
}

// Approx reports whether each component of v differs from w by at most
// epsilon.
func (v Vector3D[T]) Approx(w Vector3D[T], epsilon T) bool {
	return abs(v.X-w.X) <= epsilon && abs(v.Y-w.Y) <= epsilon && abs(v.Z-w.Z) <= epsilon
}

// String returns the vector formatted as "Vector3D(x, y, z)".
func (v Vector3D[T]) String() string {
	return fmt.Sprintf("Vector3D(%v, %v, %v)", v.X, v.Y, v.Z)
}
