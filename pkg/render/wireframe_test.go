package render

import (
	"testing"

	"github.com/solterm/planetarium/pkg/math3d"
)

func overlayFixture() (*Overlay, *Framebuffer) {
	fb := NewFramebuffer(80, 60)
	fb.Clear()
	cam := NewCamera(math3d.V3(0, 20, 30), math3d.Zero3(), math3d.Up())
	cam.SetAspectRatio(float64(fb.Width) / float64(fb.Height))
	return NewOverlay(cam, fb), fb
}

func litPixels(fb *Framebuffer) int {
	n := 0
	for _, c := range fb.Pixels() {
		if c != (Color{}) {
			n++
		}
	}
	return n
}

func TestOverlayDrawOrbit(t *testing.T) {
	o, fb := overlayFixture()

	o.DrawOrbit(math3d.Zero3(), 10, ColorGray)
	if litPixels(fb) == 0 {
		t.Fatal("orbit ring drew nothing")
	}

	for _, c := range fb.Pixels() {
		if c != (Color{}) && c != ColorGray {
			t.Fatalf("ring pixel has color %v", c)
		}
	}
}

func TestOverlayDrawOrbitOverGeometry(t *testing.T) {
	o, fb := overlayFixture()

	// Near geometry everywhere; the ring still shows through because
	// overlay lines skip the depth test.
	for y := range fb.Height {
		for x := range fb.Width {
			fb.Point(x, y, -100, RGB(1, 1, 1))
		}
	}

	o.DrawOrbit(math3d.Zero3(), 10, ColorGray)

	found := false
	for _, c := range fb.Pixels() {
		if c == ColorGray {
			found = true
			break
		}
	}
	if !found {
		t.Error("orbit ring hidden by the depth buffer")
	}
}

func TestOverlayLineBehindCamera(t *testing.T) {
	o, fb := overlayFixture()

	// Both endpoints behind the camera: nothing to draw.
	o.DrawLine3D(math3d.V3(0, 20, 100), math3d.V3(5, 20, 120), ColorRed)
	if litPixels(fb) != 0 {
		t.Error("line fully behind the camera was drawn")
	}
}

func TestOverlayDrawGrid(t *testing.T) {
	o, fb := overlayFixture()

	o.DrawGrid(20, 5, ColorDarkGray)
	if litPixels(fb) == 0 {
		t.Fatal("grid drew nothing")
	}

	for _, c := range fb.Pixels() {
		if c != (Color{}) && c != ColorDarkGray {
			t.Fatalf("grid pixel has color %v", c)
		}
	}
}

func TestOverlayDrawPoint(t *testing.T) {
	o, fb := overlayFixture()

	o.DrawPoint(math3d.V3(3, 0, -2), 2, ColorRed)
	if litPixels(fb) == 0 {
		t.Fatal("point marker drew nothing")
	}

	// A point far outside the frustum draws nothing.
	before := litPixels(fb)
	o.DrawPoint(math3d.V3(0, 20, 500), 2, ColorBlue)
	if litPixels(fb) != before {
		t.Error("offscreen marker was drawn")
	}
}

func TestOverlayDrawAxes(t *testing.T) {
	o, fb := overlayFixture()

	o.DrawAxes(5)

	seen := map[Color]bool{}
	for _, c := range fb.Pixels() {
		if c != (Color{}) {
			seen[c] = true
		}
	}
	for _, want := range []Color{ColorRed, ColorGreen, ColorBlue} {
		if !seen[want] {
			t.Errorf("axis color %v missing", want)
		}
	}
}
