package geom

import (
	"errors"
	"math"
	"testing"
)

func TestVector2D_Arithmetic(t *testing.T) {
	v := V2(2, 3)
	w := V2(9, 6)

	tests := []struct {
		name   string
		got    Vector2D[int]
		expect Vector2D[int]
	}{
		{"neg", v.Neg(), V2(-2, -3)},
		{"add", v.Add(w), V2(11, 9)},
		{"sub", w.Sub(v), V2(7, 3)},
		{"mul", v.Mul(3), V2(6, 9)},
		{"div", w.Div(3), V2(3, 2)},
		{"div truncates", V2(7, -7).Div(2), V2(3, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expect {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestVector2D_Conversion(t *testing.T) {
	d := V2(2.5, 3.5)
	i := ConvertVector2D[int](d)
	if i != V2(2, 3) {
		t.Errorf("ConvertVector2D[int](%v) = %v, want Vector2D(2, 3)", d, i)
	}
	if n := ConvertVector2D[int](V2(-2.7, 0.9)); n != V2(-2, 0) {
		t.Errorf("conversion should truncate toward zero, got %v", n)
	}
	back := ConvertVector2D[float32](i)
	if back != V2[float32](2, 3) {
		t.Errorf("ConvertVector2D[float32](%v) = %v", i, back)
	}
}

func TestVector2D_At(t *testing.T) {
	v := V2[float32](2.5, 3.5)
	if v.At(0) != 2.5 || v.At(1) != 3.5 {
		t.Errorf("At() = (%v, %v), want (2.5, 3.5)", v.At(0), v.At(1))
	}
	v = v.With(0, 4.5).With(1, 6.5)
	if v != V2[float32](4.5, 6.5) {
		t.Errorf("With() = %v, want Vector2D(4.5, 6.5)", v)
	}

	for _, i := range []int{-1, 2, 3} {
		func() {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrIndexOutOfRange) {
					t.Errorf("At(%d) panicked with %v, want ErrIndexOutOfRange", i, r)
				}
			}()
			_ = v.At(i)
		}()
	}
}

func TestVector2D_Equal(t *testing.T) {
	a := V2[float32](2.5, 3.5)
	b := V2[float32](2.5, 3.5)
	c := V2[float32](4.5, 6.5)
	if !a.Equal(b) {
		t.Errorf("%v.Equal(%v) = false, want true", a, b)
	}
	if a.Equal(c) {
		t.Errorf("%v.Equal(%v) = true, want false", a, c)
	}
	x, y := 0.1, 0.2
	if !V2(x+y, 1.0).Equal(V2(0.3, 1.0)) {
		t.Error("Equal should absorb one-ulp rounding differences")
	}
}

func TestVector2D_ScalarProduct(t *testing.T) {
	a, b := V2(2, 3), V2(4, 6)
	if got := a.ScalarProduct(b); got != 26 {
		t.Errorf("ScalarProduct = %d, want 26", got)
	}
	if a.Dot(b) != a.ScalarProduct(b) {
		t.Error("Dot and ScalarProduct disagree")
	}
}

func TestVector2D_Normal(t *testing.T) {
	v := V2(2, 3)
	n := v.Normal()
	if n != V2(-3, 2) {
		t.Errorf("Normal() = %v, want Vector2D(-3, 2)", n)
	}
	if v.Dot(n) != 0 {
		t.Errorf("v·Normal() = %d, want 0", v.Dot(n))
	}
	if n.LengthSquared() != v.LengthSquared() {
		t.Error("Normal() must keep the length of v")
	}
}

func TestVector2D_OrthogonalityCollinearity(t *testing.T) {
	v := V2(2, 3)
	tests := []struct {
		name       string
		w          Vector2D[int]
		orthogonal bool
		collinear  bool
	}{
		{"swapped", V2(3, 2), false, false},
		{"normal", V2(-3, 2), true, false},
		{"negated normal", V2(3, -2), true, false},
		{"scaled normal", V2(6, -4), true, false},
		{"same", V2(2, 3), false, true},
		{"opposite", V2(-2, -3), false, true},
		{"scaled opposite", V2(-4, -6), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.IsOrthogonal(tt.w); got != tt.orthogonal {
				t.Errorf("%v.IsOrthogonal(%v) = %v, want %v", v, tt.w, got, tt.orthogonal)
			}
			if got := v.IsCollinear(tt.w); got != tt.collinear {
				t.Errorf("%v.IsCollinear(%v) = %v, want %v", v, tt.w, got, tt.collinear)
			}
		})
	}
}

func TestVector2D_CollinearSignIndependent(t *testing.T) {
	vectors := []Vector2D[float64]{V2(2.0, 3), V2(-1.5, 0.25), V2(0.0, 7), V2(1e3, -4e2)}
	scalars := []float64{1, -1, 2, -2, 0.5, -0.25, 8, -1024}
	for _, v := range vectors {
		for _, k := range scalars {
			if !v.IsCollinear(v.Mul(k)) {
				t.Errorf("%v.IsCollinear(%v) = false, want true", v, v.Mul(k))
			}
		}
	}
}

func TestVector2D_Length(t *testing.T) {
	vi := V2(2, 3)
	if vi.LengthSquared() != 13 {
		t.Errorf("LengthSquared() = %d, want 13", vi.LengthSquared())
	}
	if vi.Length() != 3 {
		t.Errorf("int Length() = %d, want 3 (truncated)", vi.Length())
	}

	vf := V2[float32](2, 3)
	if vf.LengthSquared() != 13 {
		t.Errorf("LengthSquared() = %v, want 13", vf.LengthSquared())
	}
	if !AreEqual(vf.Length(), 3.605551275) {
		t.Errorf("float32 Length() = %v, want 3.605551275", vf.Length())
	}
	if V2(3.0, 4.0).Length() != 5 {
		t.Errorf("Length(3, 4) = %v, want 5", V2(3.0, 4.0).Length())
	}
}

func TestVector2D_Normalize(t *testing.T) {
	v := V2[float32](2, 3)
	n := v.Normalize()
	if !n.Equal(V2[float32](0.5547001962, 0.83205029434)) {
		t.Errorf("Normalize() = %v, want Vector2D(0.5547002, 0.8320503)", n)
	}
	if !n.IsNormalized() {
		t.Errorf("Length(Normalize()) = %v, want 1", n.Length())
	}

	d := V2(2.0, 3.0).Normalize()
	if !d.Normalize().Equal(d) {
		t.Errorf("Normalize is not idempotent: %v vs %v", d.Normalize(), d)
	}
	if !d.IsNormalized() {
		t.Errorf("IsNormalized() = false for %v", d)
	}
	if V2(2.0, 3.0).IsNormalized() {
		t.Error("IsNormalized() = true for a non-unit vector")
	}
}

func TestVector2D_NormalizeZero(t *testing.T) {
	n := Vector2D[float64]{}.Normalize()
	if !math.IsNaN(n.X) || !math.IsNaN(n.Y) {
		t.Errorf("normalizing the zero vector = %v, want NaN components", n)
	}
}

func TestVector2D_ProjectOnto(t *testing.T) {
	v := V2[float32](2, 3)
	tests := []struct {
		name   string
		onto   Vector2D[float32]
		expect Vector2D[float32]
	}{
		{"x axis", V2[float32](1, 0), V2[float32](2, 0)},
		{"negative y", V2[float32](0, -1), V2[float32](0, 3)},
		{"scaled x", V2[float32](4, 0), V2[float32](2, 0)},
		{"itself", v, v},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.ProjectOnto(tt.onto); !got.Equal(tt.expect) {
				t.Errorf("%v.ProjectOnto(%v) = %v, want %v", v, tt.onto, got, tt.expect)
			}
		})
	}
}

func TestVector2D_Reflect(t *testing.T) {
	v := V2(1.0, -1.0)
	if got := v.Reflect(Yn2[float64]()); !got.Equal(V2(1.0, 1.0)) {
		t.Errorf("Reflect() = %v, want Vector2D(1, 1)", got)
	}
}

func TestVector2D_Factories(t *testing.T) {
	if Xn2[int]() != V2(1, 0) || Yn2[int]() != V2(0, 1) {
		t.Errorf("Xn2/Yn2 = %v/%v", Xn2[int](), Yn2[int]())
	}
	if !Xn2[float64]().IsOrthogonal(Yn2[float64]()) {
		t.Error("unit axes must be orthogonal")
	}
}

func TestVector2D_String(t *testing.T) {
	if got := V2(2, 3).String(); got != "Vector2D(2, 3)" {
		t.Errorf("String() = %q, want %q", got, "Vector2D(2, 3)")
	}
	if got := V2(2.5, -1.0).String(); got != "Vector2D(2.5, -1)" {
		t.Errorf("String() = %q, want %q", got, "Vector2D(2.5, -1)")
	}
}

func TestVector3D_Arithmetic(t *testing.T) {
	v := V3(2, 3, 8)
	w := V3(4, 6, 7)

	tests := []struct {
		name   string
		got    Vector3D[int]
		expect Vector3D[int]
	}{
		{"neg", v.Neg(), V3(-2, -3, -8)},
		{"add", v.Add(w), V3(6, 9, 15)},
		{"sub", w.Sub(v), V3(2, 3, -1)},
		{"mul", v.Mul(2), V3(4, 6, 16)},
		{"div", V3(9, 6, 3).Div(3), V3(3, 2, 1)},
		{"cross", v.Cross(w), V3(-27, 18, 0)},
		{"cross anticommutes", w.Cross(v), V3(27, -18, 0)},
		{"x cross y", Xn3[int]().Cross(Yn3[int]()), Zn3[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expect {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}

	if v.CrossProduct(w) != v.Cross(w) {
		t.Error("CrossProduct and Cross disagree")
	}
	if v.ScalarProduct(w) != 2*4+3*6+8*7 {
		t.Errorf("ScalarProduct = %d, want %d", v.ScalarProduct(w), 2*4+3*6+8*7)
	}
}

func TestVector3D_CrossOrthogonal(t *testing.T) {
	pairs := [][2]Vector3D[float64]{
		{V3(2.0, 3, 8), V3(4.0, 6, 7)},
		{V3(1.0, 0, 0), V3(0.0, 1, 0)},
		{V3(-3.0, 5, 0.5), V3(2.0, -1, 4)},
		{V3(10.0, 20, 30), V3(-7.0, 0.25, 1)},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		c := a.Cross(b)
		if !a.IsOrthogonal(c) || !b.IsOrthogonal(c) {
			t.Errorf("%v × %v = %v is not orthogonal to both operands", a, b, c)
		}
	}
}

func TestVector3D_OrthogonalityCollinearity(t *testing.T) {
	v := V3(2, 3, 4)
	tests := []struct {
		name       string
		w          Vector3D[int]
		orthogonal bool
		collinear  bool
	}{
		{"orthogonal", V3(-3, 2, 0), true, false},
		{"orthogonal 2", V3(0, 4, -3), true, false},
		{"oblique", V3(1, 1, 1), false, false},
		{"same", V3(2, 3, 4), false, true},
		{"opposite", V3(-4, -6, -8), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.IsOrthogonal(tt.w); got != tt.orthogonal {
				t.Errorf("%v.IsOrthogonal(%v) = %v, want %v", v, tt.w, got, tt.orthogonal)
			}
			if got := v.IsCollinear(tt.w); got != tt.collinear {
				t.Errorf("%v.IsCollinear(%v) = %v, want %v", v, tt.w, got, tt.collinear)
			}
		})
	}

	for _, k := range []float64{3, -3, 0.5, -0.5} {
		f := V3(1.0, -2, 0.5)
		if !f.IsCollinear(f.Mul(k)) {
			t.Errorf("%v.IsCollinear(%v) = false, want true", f, f.Mul(k))
		}
	}
}

func TestVector3D_Normalize(t *testing.T) {
	tests := []Vector3D[float64]{
		V3(2.0, 3, 8),
		V3(1.0, 1, 1),
		V3(0.0, 0, -4),
		V3(3.0, 4, 12),
	}
	for _, v := range tests {
		n := v.Normalize()
		if !n.IsNormalized() {
			t.Errorf("%v.Normalize() = %v has length %v", v, n, n.Length())
		}
		if !n.Normalize().Equal(n) {
			t.Errorf("Normalize(Normalize(%v)) = %v, want %v", v, n.Normalize(), n)
		}
		if !n.IsCollinear(v) {
			t.Errorf("%v.Normalize() changed direction", v)
		}
	}
	if got := V3(3.0, 4, 12).Normalize(); !got.Equal(V3(3.0/13, 4.0/13, 12.0/13)) {
		t.Errorf("Normalize(3, 4, 12) = %v", got)
	}
}

func TestVector3D_ProjectOnto(t *testing.T) {
	v := V3(2.0, 3, 4)
	if got := v.ProjectOnto(V3(0.0, 0, 2)); !got.Equal(V3(0.0, 0, 4)) {
		t.Errorf("ProjectOnto(z) = %v, want Vector3D(0, 0, 4)", got)
	}
	if got := v.ProjectOnto(V3(1.0, 1, 0)); !got.Equal(V3(2.5, 2.5, 0)) {
		t.Errorf("ProjectOnto(1,1,0) = %v, want Vector3D(2.5, 2.5, 0)", got)
	}
}

func TestVector3D_AtConversionString(t *testing.T) {
	v := V3(1.9, -2.9, 3.5)
	if v.At(2) != 3.5 {
		t.Errorf("At(2) = %v, want 3.5", v.At(2))
	}
	if got := ConvertVector3D[int](v); got != V3(1, -2, 3) {
		t.Errorf("ConvertVector3D[int] = %v, want Vector3D(1, -2, 3)", got)
	}
	if got := V3(1, 2, 3).String(); got != "Vector3D(1, 2, 3)" {
		t.Errorf("String() = %q", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("At(3) did not panic")
		}
	}()
	_ = v.At(3)
}
