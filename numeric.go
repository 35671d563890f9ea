package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the component types that geom types and
// functions can handle.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Machine epsilon per floating width: the distance from 1 to the next
// representable value.
var (
	epsilon32 = math.Nextafter32(1, 2) - 1
	epsilon64 = math.Nextafter(1, 2) - 1
)

// Epsilon returns the machine epsilon of T.
// Integer component types have no tolerance and return 0.
//
// The width is found by arithmetic on T, so named types such as
// type meters float64 get the epsilon of their underlying type.
func Epsilon[T Scalar]() T {
	if !IsFloat[T]() {
		return 0
	}
	// 1 + eps32/2 rounds back to 1 only at float32 width.
	if T(T(1)+T(epsilon32/2)) == 1 {
		return T(epsilon32)
	}
	return T(epsilon64)
}

// IsFloat reports whether T is a floating-point component type.
func IsFloat[T Scalar]() bool {
	half := T(1) / 2
	return half != 0
}

// AreEqual reports whether a and b are equal for the component type T.
//
// Floating-point types compare with a relative tolerance of one machine
// epsilon of their own width:
//
//	|a-b| <= eps * max(|a|, |b|)
//
// The tolerance shrinks with the operands, so a value is only equal to
// zero when it is exactly zero. Integer types compare exactly.
func AreEqual[T Scalar](a, b T) bool {
	eps := Epsilon[T]()
	if eps == 0 {
		return a == b
	}
	return abs(a-b) <= eps*max(abs(a), abs(b))
}

func abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// sqrt computes the square root in float64 and converts back to T.
// Integer results are truncated toward zero.
func sqrt[T Scalar](x T) T {
	return T(math.Sqrt(float64(x)))
}

// nearZeroULPs is the number of machine epsilons of slack IsNearZero allows
// relative to the scale of the computation.
const nearZeroULPs = 8

// IsNearZero reports whether x is zero relative to scale, the magnitude of
// the terms x was computed from.
//
// AreEqual(x, 0) only holds when x is exactly zero, which rounded results
// such as an implicit equation evaluated at a parametric point rarely are.
// IsNearZero instead accepts |x| <= 8 * eps * |scale|. Integer types
// require x == 0.
func IsNearZero[T Scalar](x, scale T) bool {
	eps := Epsilon[T]()
	if eps == 0 {
		return x == 0
	}
	return abs(x) <= nearZeroULPs*eps*abs(scale)
}

// Tolerance returns the absolute tolerance IsNearZero applies to values of
// unit scale. Integer types return 0.
func Tolerance[T Scalar]() T {
	return nearZeroULPs * Epsilon[T]()
}
