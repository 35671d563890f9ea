package geom

import "fmt"

// Point2D represents a position in 2D space.
// Points translate by vectors; the difference of two points is a vector.
type Point2D[T Scalar] struct {
	X, Y T
}

// Pt2 is a convenience function to create a Point2D.
func Pt2[T Scalar](x, y T) Point2D[T] {
	return Point2D[T]{X: x, Y: y}
}

// ConvertPoint2D converts each component of p to U using Go conversion
// rules.
func ConvertPoint2D[U, T Scalar](p Point2D[T]) Point2D[U] {
	return Point2D[U]{X: U(p.X), Y: U(p.Y)}
}

// At returns the component with index i (0 for X, 1 for Y).
// It panics with ErrIndexOutOfRange for any other index.
func (p Point2D[T]) At(i int) T {
	return p.Vec().At(i)
}

// With returns a copy of p with component i replaced by x.
func (p Point2D[T]) With(i int, x T) Point2D[T] {
	return Point2D[T](p.Vec().With(i, x))
}

// Add returns p translated by v.
func (p Point2D[T]) Add(v Vector2D[T]) Point2D[T] {
	return Point2D[T]{X: p.X + v.X, Y: p.Y + v.Y}
}

// SubVector returns p translated by -v.
func (p Point2D[T]) SubVector(v Vector2D[T]) Point2D[T] {
	return Point2D[T]{X: p.X - v.X, Y: p.Y - v.Y}
}

// Sub returns the displacement p - q: the vector pointing from q to p.
func (p Point2D[T]) Sub(q Point2D[T]) Vector2D[T] {
	return Vector2D[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceSquared returns the squared distance between two points.
func (p Point2D[T]) DistanceSquared(q Point2D[T]) T {
	return p.Sub(q).LengthSquared()
}

// Distance returns the distance between two points.
func (p Point2D[T]) Distance(q Point2D[T]) T {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point2D[T]) Lerp(q Point2D[T], t T) Point2D[T] {
	return p.Add(q.Sub(p).Mul(t))
}

// Vec returns the position vector of p relative to the origin.
func (p Point2D[T]) Vec() Vector2D[T] {
	return Vector2D[T](p)
}

// Equal reports whether both points coincide according to AreEqual.
func (p Point2D[T]) Equal(q Point2D[T]) bool {
	return AreEqual(p.X, q.X) && AreEqual(p.Y, q.Y)
}

// String returns the point formatted as "Point2D(x, y)".
func (p Point2D[T]) String() string {
	return fmt.Sprintf("Point2D(%v, %v)", p.X, p.Y)
}

// Point3D represents a position in 3D space.
type Point3D[T Scalar] struct {
	X, Y, Z T
}

// Pt3 is a convenience function to create a Point3D.
func Pt3[T Scalar](x, y, z T) Point3D[T] {
	return Point3D[T]{X: x, Y: y, Z: z}
}

// ConvertPoint3D converts each component of p to U using Go conversion
// rules.
func ConvertPoint3D[U, T Scalar](p Point3D[T]) Point3D[U] {
	return Point3D[U]{X: U(p.X), Y: U(p.Y), Z: U(p.Z)}
}

// At returns the component with index i (0 for X, 1 for Y, 2 for Z).
// It panics with ErrIndexOutOfRange for any other index.
func (p Point3D[T]) At(i int) T {
	return p.Vec().At(i)
}

// With returns a copy of p with component i replaced by x.
func (p Point3D[T]) With(i int, x T) Point3D[T] {
	return Point3D[T](p.Vec().With(i, x))
}

// Add returns p translated by v.
func (p Point3D[T]) Add(v Vector3D[T]) Point3D[T] {
	return Point3D[T]{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// SubVector returns p translated by -v.
func (p Point3D[T]) SubVector(v Vector3D[T]) Point3D[T] {
	return Point3D[T]{X: p.X - v.X, Y: p.Y - v.Y, Z: p.Z - v.Z}
}

// Sub returns the displacement p - q: the vector pointing from q to p.
func (p Point3D[T]) Sub(q Point3D[T]) Vector3D[T] {
	return Vector3D[T]{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// DistanceSquared returns the squared distance between two points.
func (p Point3D[T]) DistanceSquared(q Point3D[T]) T {
	return p.Sub(q).LengthSquared()
}

// Distance returns the distance between two points.
func (p Point3D[T]) Distance(q Point3D[T]) T {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
func (p Point3D[T]) Lerp(q Point3D[T], t T) Point3D[T] {
	return p.Add(q.Sub(p).Mul(t))
}

// Vec returns the position vector of p relative to the origin.
func (p Point3D[T]) Vec() Vector3D[T] {
	return Vector3D[T](p)
}

// Equal reports whether both points coincide according to AreEqual.
func (p Point3D[T]) Equal(q Point3D[T]) bool {
	return AreEqual(p.X, q.X) && AreEqual(p.Y, q.Y) && AreEqual(p.Z, q.Z)
}

// String returns the point formatted as "Point3D(x, y, z)".
func (p Point3D[T]) String() string {
	return fmt.Sprintf("Point3D(%v, %v, %v)", p.X, p.Y, p.Z)
}
