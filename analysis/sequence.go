// Package analysis provides discrete one-dimensional sample sequences and
// interpolation between their samples.
package analysis

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gogpu/geom"
)

// ErrEmptySequence is returned when a value is requested from a sequence
// without samples.
var ErrEmptySequence = errors.New("analysis: empty sequence")

// IndexMode selects how out-of-range indices are mapped onto a sequence.
type IndexMode int

const (
	// Clamp maps indices below 0 to the first and indices past the end to
	// the last sample.
	Clamp IndexMode = iota

	// Wrap maps indices periodically, so -1 addresses the last sample.
	Wrap
)

// String returns the mode name.
func (m IndexMode) String() string {
	switch m {
	case Clamp:
		return "Clamp"
	case Wrap:
		return "Wrap"
	default:
		return fmt.Sprintf("IndexMode(%d)", int(m))
	}
}

// Sequence1D is an ordered list of samples taken at integer positions.
// The zero value is an empty sequence ready to use.
type Sequence1D[T geom.Scalar] struct {
	data []T
}

// NewSequence1D creates a sequence holding a copy of values.
func NewSequence1D[T geom.Scalar](values ...T) *Sequence1D[T] {
	return &Sequence1D[T]{data: slices.Clone(values)}
}

// ConvertSequence1D converts every sample to type U.
func ConvertSequence1D[U, T geom.Scalar](s *Sequence1D[T]) *Sequence1D[U] {
	out := &Sequence1D[U]{data: make([]U, len(s.data))}
	for i, v := range s.data {
		out.data[i] = U(v)
	}
	return out
}

// Add appends a sample.
func (s *Sequence1D[T]) Add(v T) {
	s.data = append(s.data, v)
}

// Len returns the number of samples.
func (s *Sequence1D[T]) Len() int {
	return len(s.data)
}

// index maps i onto [0, Len()) according to mode.
func (s *Sequence1D[T]) index(i int, mode IndexMode) (int, error) {
	n := len(s.data)
	if n == 0 {
		return 0, ErrEmptySequence
	}
	switch mode {
	case Wrap:
		return ((i % n) + n) % n, nil
	case Clamp:
		return min(max(i, 0), n-1), nil
	default:
		return 0, fmt.Errorf("analysis: unknown %v", mode)
	}
}

// Get returns the sample at index i mapped by mode.
func (s *Sequence1D[T]) Get(i int, mode IndexMode) (T, error) {
	j, err := s.index(i, mode)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.data[j], nil
}

// Set replaces the sample at index i mapped by mode.
func (s *Sequence1D[T]) Set(i int, v T, mode IndexMode) error {
	j, err := s.index(i, mode)
	if err != nil {
		return err
	}
	s.data[j] = v
	return nil
}

// Values returns a copy of the samples.
func (s *Sequence1D[T]) Values() []T {
	return slices.Clone(s.data)
}

// Sum returns the sum of all samples, 0 for an empty sequence.
func (s *Sequence1D[T]) Sum() T {
	var sum T
	for _, v := range s.data {
		sum += v
	}
	return sum
}

// SumOfSquares returns the sum of the squared samples.
func (s *Sequence1D[T]) SumOfSquares() T {
	var sum T
	for _, v := range s.data {
		sum += v * v
	}
	return sum
}

// Average returns the arithmetic mean of the samples. Integer sequences
// use integer division.
func (s *Sequence1D[T]) Average() (T, error) {
	if len(s.data) == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	return s.Sum() / T(len(s.data)), nil
}

// Equal reports whether both sequences hold the same samples according to
// geom.AreEqual.
func (s *Sequence1D[T]) Equal(o *Sequence1D[T]) bool {
	return slices.EqualFunc(s.data, o.data, geom.AreEqual[T])
}

// String returns the sequence formatted as "Sequence1D(a, b, ...)".
func (s *Sequence1D[T]) String() string {
	var b strings.Builder
	b.WriteString("Sequence1D(")
	for i, v := range s.data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(')')
	return b.String()
}
