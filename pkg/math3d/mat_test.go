package math3d

import (
	"math"
	"testing"
)

func vecNear(t *testing.T, got, want Vec3, tol float64) {
	t.Helper()
	if got.Sub(want).Len() > tol {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.7)).Mul(Scale(V3(2, 3, 4)))
	if m.Mul(Identity()) != m || Identity().Mul(m) != m {
		t.Error("identity multiplication changed the matrix")
	}
}

func TestMat4TranslatePoint(t *testing.T) {
	m := Translate(V3(5, -2, 3))
	vecNear(t, m.MulVec3(V3(1, 1, 1)), V3(6, -1, 4), 1e-12)

	// Directions ignore translation.
	vecNear(t, m.MulVec3Dir(V3(1, 1, 1)), V3(1, 1, 1), 1e-12)
}

func TestMat4RotateY(t *testing.T) {
	m := RotateY(math.Pi / 2)
	// +X rotates to -Z around Y.
	vecNear(t, m.MulVec3(V3(1, 0, 0)), V3(0, 0, -1), 1e-12)
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5)).Mul(Scale(V3(2, 2, 2)))
	inv := m.Inverse()

	p := V3(4, -7, 2)
	vecNear(t, inv.MulVec3(m.MulVec3(p)), p, 1e-9)
}

func TestViewportMapping(t *testing.T) {
	vp := Viewport(640, 480)

	tests := []struct {
		name string
		ndc  Vec3
		want Vec3
	}{
		{"center", V3(0, 0, 0.5), V3(320, 240, 0.5)},
		{"top left", V3(-1, 1, 0), V3(0, 0, 0)},
		{"bottom right", V3(1, -1, 1), V3(640, 480, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := vp.MulVec4(V4FromV3(tt.ndc, 1)).Vec3()
			vecNear(t, got, tt.want, 1e-12)
		})
	}
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	eye := V3(3, 4, 5)
	view := LookAt(eye, Zero3(), Up())
	vecNear(t, view.MulVec3(eye), Zero3(), 1e-12)

	// The look target lands on the -Z axis in view space.
	target := view.MulVec3(Zero3())
	if math.Abs(target.X) > 1e-12 || math.Abs(target.Y) > 1e-12 || target.Z >= 0 {
		t.Errorf("look target in view space: %v", target)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	proj := Perspective(math.Pi/3, 1, 0.1, 100)

	near := proj.MulVec4(V4(0, 0, -0.1, 1)).PerspectiveDivide()
	far := proj.MulVec4(V4(0, 0, -100, 1)).PerspectiveDivide()

	if math.Abs(near.Z+1) > 1e-9 {
		t.Errorf("near plane maps to NDC z=%v, want -1", near.Z)
	}
	if math.Abs(far.Z-1) > 1e-9 {
		t.Errorf("far plane maps to NDC z=%v, want 1", far.Z)
	}
}

func TestPerspectiveDivideZeroW(t *testing.T) {
	v := V4(2, 4, 6, 0)
	got := v.PerspectiveDivide()
	vecNear(t, got, V3(2, 4, 6), 0)
}

func TestMat3Inverse(t *testing.T) {
	m := RotateY(0.8).Mat3()
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("rotation block reported singular")
	}

	p := V3(1, 2, 3)
	vecNear(t, inv.MulVec3(m.MulVec3(p)), p, 1e-12)
}

func TestNormalMatrix(t *testing.T) {
	t.Run("rotation passes through", func(t *testing.T) {
		rot := RotateY(0.6)
		n := V3(0, 0, 1)
		vecNear(t, NormalMatrix(rot).MulVec3(n), rot.MulVec3Dir(n), 1e-12)
	})

	t.Run("non-uniform scale corrected", func(t *testing.T) {
		// A plane squashed in Y keeps its Y-up normal.
		nm := NormalMatrix(Scale(V3(1, 0.25, 1)))
		got := nm.MulVec3(Up()).Normalize()
		vecNear(t, got, Up(), 1e-12)
	})

	t.Run("singular falls back to identity", func(t *testing.T) {
		nm := NormalMatrix(Scale(V3(1, 1, 0)))
		if nm != Identity3() {
			t.Errorf("got %v", nm)
		}
	})
}

func TestMat3FromBasis(t *testing.T) {
	m := Mat3FromBasis(Right(), Up(), V3(0, 0, 1))
	vecNear(t, m.MulVec3(V3(2, 3, 4)), V3(2, 3, 4), 1e-12)
}
