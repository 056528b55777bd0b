package render

import (
	"testing"

	"github.com/solterm/planetarium/pkg/math3d"
)

func testFrustum() Frustum {
	cam := NewCamera(math3d.V3(0, 0, 10), math3d.Zero3(), math3d.Up())
	cam.SetAspectRatio(1)
	return cam.Frustum()
}

func TestFrustumContainsPoint(t *testing.T) {
	f := testFrustum()

	tests := []struct {
		name  string
		point math3d.Vec3
		want  bool
	}{
		{"look target", math3d.Zero3(), true},
		{"just in front of eye", math3d.V3(0, 0, 9), true},
		{"behind camera", math3d.V3(0, 0, 15), false},
		{"far left", math3d.V3(-100, 0, 0), false},
		{"beyond far plane", math3d.V3(0, 0, -1500), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.ContainsPoint(tt.point); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	f := testFrustum()

	tests := []struct {
		name   string
		center math3d.Vec3
		radius float64
		want   bool
	}{
		{"centered sphere", math3d.Zero3(), 1, true},
		{"outside but overlapping", math3d.V3(-100, 0, 0), 150, true},
		{"fully outside", math3d.V3(-100, 0, 0), 1, false},
		{"behind camera", math3d.V3(0, 0, 30), 5, false},
		{"surrounds the frustum", math3d.Zero3(), 5000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.IntersectsSphere(tt.center, tt.radius); got != tt.want {
				t.Errorf("IntersectsSphere(%v, %v) = %v, want %v", tt.center, tt.radius, got, tt.want)
			}
		})
	}
}

func TestFrustumPlanesNormalized(t *testing.T) {
	f := testFrustum()
	for i, p := range f.Planes {
		if l := p.Normal.Len(); l < 0.999 || l > 1.001 {
			t.Errorf("plane %d normal length %v", i, l)
		}
	}
}
