package analysis

import (
	"math"

	"github.com/gogpu/geom"
)

// NearestNeighbor returns the sample closest to position x. Positions
// outside the sequence are clamped; halves round away from zero.
func NearestNeighbor[T geom.Scalar](s *Sequence1D[T], x float64) (T, error) {
	return s.Get(int(math.Round(x)), Clamp)
}

// Linear interpolates between the two samples enclosing position x.
// Positions outside the sequence use the clamped end samples. For integer
// sequences the result is truncated toward zero.
func Linear[T geom.Scalar](s *Sequence1D[T], x float64) (T, error) {
	x1 := math.Floor(x)
	y1, err := s.Get(int(x1), Clamp)
	if err != nil {
		return y1, err
	}
	y2, err := s.Get(int(x1)+1, Clamp)
	if err != nil {
		return y2, err
	}
	f := x - x1
	return T((1-f)*float64(y1) + f*float64(y2)), nil
}
