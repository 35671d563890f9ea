// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package plot

import (
	"math"

	"github.com/gogpu/geom"
)

// Affine is the viewport transformation of a Canvas, stored in row-major
// order:
//
//	| a  b  c |
//	| d  e  f |
//
// It maps (x, y) to (a*x + b*y + c, d*x + e*y + f).
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Translate returns a translation by v.
func Translate(v geom.Vector2D[float64]) Affine {
	return Affine{A: 1, C: v.X, E: 1, F: v.Y}
}

// Scale returns a scaling by sx and sy.
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Rotate returns a counter-clockwise rotation by angle radians.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{A: cos, B: -sin, D: sin, E: cos}
}

// Viewport returns the transformation that maps window onto a width×height
// pixel grid with y pointing down. The window is scaled uniformly so that it
// fits and is centered, which keeps circles circular.
func Viewport(window geom.Rect2D[float64], width, height int) Affine {
	w := window.Canon()
	size := w.Size()
	s := min(float64(width)/size.X, float64(height)/size.Y)
	off := geom.V2((float64(width)-size.X*s)/2, (float64(height)-size.Y*s)/2)

	return Translate(off).
		Multiply(Scale(s, -s)).
		Multiply(Translate(geom.V2(-w.P1.X, -w.P2.Y)))
}

// Multiply returns m * o, the transformation that applies o first.
func (m Affine) Multiply(o Affine) Affine {
	return Affine{
		A: m.A*o.A + m.B*o.D,
		B: m.A*o.B + m.B*o.E,
		C: m.A*o.C + m.B*o.F + m.C,
		D: m.D*o.A + m.E*o.D,
		E: m.D*o.B + m.E*o.E,
		F: m.D*o.C + m.E*o.F + m.F,
	}
}

// Point transforms a point.
func (m Affine) Point(p geom.Point2D[float64]) geom.Point2D[float64] {
	return geom.Pt2(m.A*p.X+m.B*p.Y+m.C, m.D*p.X+m.E*p.Y+m.F)
}

// Vector transforms a vector, ignoring the translation.
func (m Affine) Vector(v geom.Vector2D[float64]) geom.Vector2D[float64] {
	return geom.V2(m.A*v.X+m.B*v.Y, m.D*v.X+m.E*v.Y)
}

// Determinant returns the determinant of the linear part.
func (m Affine) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transformation. It reports false if m is
// singular.
func (m Affine) Invert() (Affine, bool) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity(), false
	}
	inv := 1 / det
	return Affine{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}, true
}

// IsIdentity reports whether m is exactly the identity.
func (m Affine) IsIdentity() bool {
	return m == Identity()
}
