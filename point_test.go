package geom

import (
	"math"
	"testing"
)

func TestPoint2D_Translation(t *testing.T) {
	p := Pt2(2, 3)
	v := V2(9, 6)
	if got := p.Add(v); got != Pt2(11, 9) {
		t.Errorf("%v.Add(%v) = %v, want Point2D(11, 9)", p, v, got)
	}
	if got := p.SubVector(v); got != Pt2(-7, -3) {
		t.Errorf("%v.SubVector(%v) = %v, want Point2D(-7, -3)", p, v, got)
	}
	if got := p.Add(v).SubVector(v); got != p {
		t.Errorf("translate and back = %v, want %v", got, p)
	}
}

func TestPoint2D_Sub(t *testing.T) {
	p1 := Pt2(2, 3)
	p2 := Pt2(7, 6)
	if got := p2.Sub(p1); got != V2(5, 3) {
		t.Errorf("%v.Sub(%v) = %v, want Vector2D(5, 3)", p2, p1, got)
	}
	if got := p1.Sub(p2); got != V2(-5, -3) {
		t.Errorf("%v.Sub(%v) = %v, want Vector2D(-5, -3)", p1, p2, got)
	}
}

func TestPoint2D_RoundTrip(t *testing.T) {
	points := []Point2D[float64]{
		Pt2(2.0, 3), Pt2(4.0, 8), Pt2(-1.25, 7.5), Pt2(12.5, -3.75), Pt2(0.0, 0),
	}
	for _, a := range points {
		for _, b := range points {
			if got := a.Add(b.Sub(a)); !got.Equal(b) {
				t.Errorf("%v + (%v - %v) = %v, want %v", a, b, a, got, b)
			}
		}
	}

	ints := []Point2D[int]{Pt2(0, 0), Pt2(-4, 9), Pt2(13, 2)}
	for _, a := range ints {
		for _, b := range ints {
			if got := a.Add(b.Sub(a)); got != b {
				t.Errorf("%v + (%v - %v) = %v, want %v", a, b, a, got, b)
			}
		}
	}
}

func TestPoint2D_Distance(t *testing.T) {
	tests := []struct {
		name   string
		p, q   Point2D[float64]
		expect float64
	}{
		{"same", Pt2(1.0, 1), Pt2(1.0, 1), 0},
		{"3-4-5", Pt2(0.0, 0), Pt2(3.0, 4), 5},
		{"general", Pt2(2.0, 3), Pt2(4.0, 8), 5.3851648},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Distance(tt.q); math.Abs(got-tt.expect) > 1e-7 {
				t.Errorf("%v.Distance(%v) = %v, want %v", tt.p, tt.q, got, tt.expect)
			}
			if tt.p.Distance(tt.q) != tt.q.Distance(tt.p) {
				t.Error("Distance is not symmetric")
			}
		})
	}

	if got := Pt2(2.0, 3).DistanceSquared(Pt2(4.0, 8)); got != 29 {
		t.Errorf("DistanceSquared = %v, want 29", got)
	}
}

func TestPoint2D_ConversionAndAccess(t *testing.T) {
	d := Pt2(2.5, 3.5)
	if got := ConvertPoint2D[int](d); got != Pt2(2, 3) {
		t.Errorf("ConvertPoint2D[int](%v) = %v, want Point2D(2, 3)", d, got)
	}
	if d.At(0) != 2.5 || d.At(1) != 3.5 {
		t.Errorf("At() = (%v, %v)", d.At(0), d.At(1))
	}
	if got := d.With(1, 6.5); got != Pt2(2.5, 6.5) {
		t.Errorf("With(1, 6.5) = %v", got)
	}
	if d.Vec() != V2(2.5, 3.5) {
		t.Errorf("Vec() = %v", d.Vec())
	}
}

func TestPoint2D_Lerp(t *testing.T) {
	p, q := Pt2(0.0, 0), Pt2(4.0, -8)
	if got := p.Lerp(q, 0.25); !got.Equal(Pt2(1.0, -2)) {
		t.Errorf("Lerp(0.25) = %v, want Point2D(1, -2)", got)
	}
	if got := p.Lerp(q, 1); !got.Equal(q) {
		t.Errorf("Lerp(1) = %v, want %v", got, q)
	}
}

func TestPoint2D_EqualAndString(t *testing.T) {
	if !Pt2[float32](2.5, 3.5).Equal(Pt2[float32](2.5, 3.5)) {
		t.Error("equal points compared unequal")
	}
	if Pt2[float32](2.5, 3.5).Equal(Pt2[float32](4.5, 6.5)) {
		t.Error("different points compared equal")
	}
	if got := Pt2(2, 3).String(); got != "Point2D(2, 3)" {
		t.Errorf("String() = %q", got)
	}
}

func TestPoint3D(t *testing.T) {
	p := Pt3(2, 3, 4)
	q := Pt3(7, 6, 5)
	if got := q.Sub(p); got != V3(5, 3, 1) {
		t.Errorf("%v.Sub(%v) = %v, want Vector3D(5, 3, 1)", q, p, got)
	}
	if got := p.Add(q.Sub(p)); got != q {
		t.Errorf("round trip = %v, want %v", got, q)
	}
	if got := p.SubVector(V3(1, 1, 1)); got != Pt3(1, 2, 3) {
		t.Errorf("SubVector = %v", got)
	}
	if got := Pt3(1.0, 2, 2).Distance(Pt3(0.0, 0, 0)); got != 3 {
		t.Errorf("Distance = %v, want 3", got)
	}
	if got := Pt3(0.0, 0, 0).Lerp(Pt3(2.0, 4, 6), 0.5); !got.Equal(Pt3(1.0, 2, 3)) {
		t.Errorf("Lerp = %v", got)
	}
	if got := ConvertPoint3D[float32](p); got != Pt3[float32](2, 3, 4) {
		t.Errorf("ConvertPoint3D = %v", got)
	}
	if p.At(2) != 4 || p.With(2, 9).Z != 9 {
		t.Error("At/With on Z failed")
	}
	if got := p.String(); got != "Point3D(2, 3, 4)" {
		t.Errorf("String() = %q", got)
	}
}
