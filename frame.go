package geom

import "fmt"

// CoordinateFrame3D is a coordinate frame in 3D space: an origin P and three
// basis vectors U, V, W. Frames built by the Frame* constructors are
// right-handed and orthonormal.
type CoordinateFrame3D[T Scalar] struct {
	P       Point3D[T]
	U, V, W Vector3D[T]
}

// CanonicalFrame returns the Cartesian frame at the origin with the X, Y and
// Z axes as basis.
func CanonicalFrame[T Scalar]() CoordinateFrame3D[T] {
	return CoordinateFrame3D[T]{U: Xn3[T](), V: Yn3[T](), W: Zn3[T]()}
}

// FrameFromOneVector builds a right-handed orthonormal frame at p whose W
// axis points along a.
//
// A helper vector not collinear with a is derived from a normalized by
// setting its smallest-magnitude component to 1, or to 2 if it already is
// 1. U = helper × W and V = W × U.
func FrameFromOneVector[T Scalar](p Point3D[T], a Vector3D[T]) CoordinateFrame3D[T] {
	w := a.Normalize()

	smallest := 0
	for i := 1; i < 3; i++ {
		if abs(w.At(i)) < abs(w.At(smallest)) {
			smallest = i
		}
	}
	var bump T = 1
	if AreEqual(w.At(smallest), 1) {
		bump = 2
	}
	t := w.With(smallest, bump)

	u := t.Cross(w).Normalize()
	v := w.Cross(u)
	return CoordinateFrame3D[T]{P: p, U: u, V: v, W: w}
}

// FrameFromTwoVectors builds a right-handed orthonormal frame at p with W
// along a and V in the plane spanned by a and b. Collinear inputs fall back
// to FrameFromOneVector(p, a).
func FrameFromTwoVectors[T Scalar](p Point3D[T], a, b Vector3D[T]) CoordinateFrame3D[T] {
	if a.IsCollinear(b) {
		return FrameFromOneVector(p, a)
	}
	w := a.Normalize()
	u := b.Cross(w).Normalize()
	v := w.Cross(u)
	return CoordinateFrame3D[T]{P: p, U: u, V: v, W: w}
}

// IsOrthonormal reports whether U, V and W have unit length and are
// pairwise orthogonal, within Tolerance.
func (f CoordinateFrame3D[T]) IsOrthonormal() bool {
	for _, b := range [3]Vector3D[T]{f.U, f.V, f.W} {
		if !IsNearZero(b.LengthSquared()-1, 1) {
			return false
		}
	}
	return IsNearZero(f.U.Dot(f.V), 1) &&
		IsNearZero(f.V.Dot(f.W), 1) &&
		IsNearZero(f.W.Dot(f.U), 1)
}

// IsRightHanded reports whether the frame is orthonormal with U × V = W.
func (f CoordinateFrame3D[T]) IsRightHanded() bool {
	return f.IsOrthonormal() && f.U.Cross(f.V).Approx(f.W, Tolerance[T]())
}

// Reorthonormalize rebuilds the basis from W and V, removing drift that
// accumulates when a frame is updated incrementally.
func (f *CoordinateFrame3D[T]) Reorthonormalize() {
	*f = FrameFromTwoVectors(f.P, f.W, f.V)
}

// ToCanonical converts a vector given in frame coordinates to canonical
// coordinates.
func (f CoordinateFrame3D[T]) ToCanonical(v Vector3D[T]) Vector3D[T] {
	return f.U.Mul(v.X).Add(f.V.Mul(v.Y)).Add(f.W.Mul(v.Z))
}

// FromCanonical converts a vector given in canonical coordinates to frame
// coordinates.
func (f CoordinateFrame3D[T]) FromCanonical(v Vector3D[T]) Vector3D[T] {
	return Vector3D[T]{X: f.U.Dot(v), Y: f.V.Dot(v), Z: f.W.Dot(v)}
}

// PointToCanonical converts a point in frame coordinates to canonical
// coordinates.
func (f CoordinateFrame3D[T]) PointToCanonical(p Point3D[T]) Point3D[T] {
	return f.P.Add(f.ToCanonical(p.Vec()))
}

// PointFromCanonical converts a canonical point to frame coordinates.
func (f CoordinateFrame3D[T]) PointFromCanonical(p Point3D[T]) Point3D[T] {
	return Point3D[T](f.FromCanonical(p.Sub(f.P)))
}

// Equal reports whether origin and basis vectors are equal.
func (f CoordinateFrame3D[T]) Equal(o CoordinateFrame3D[T]) bool {
	return f.P.Equal(o.P) && f.U.Equal(o.U) && f.V.Equal(o.V) && f.W.Equal(o.W)
}

// String returns the frame formatted as "Frame(p, u, v, w)".
func (f CoordinateFrame3D[T]) String() string {
	return fmt.Sprintf("Frame(%v, %v, %v, %v)", f.P, f.U, f.V, f.W)
}
