package render

import (
	"math/rand"
	"testing"

	"github.com/solterm/planetarium/pkg/math3d"
)

func skyUniforms(cam *Camera, width, height int) *Uniforms {
	return &Uniforms{
		View:       cam.ViewMatrix(),
		Projection: cam.ProjectionMatrix(),
		Viewport:   math3d.Viewport(float64(width), float64(height)),
	}
}

func TestSkyboxStarCount(t *testing.T) {
	sky := NewSkybox(500, rand.New(rand.NewSource(1)))
	if got := sky.StarCount(); got != 500 {
		t.Errorf("StarCount() = %d, want 500", got)
	}
}

func TestSkyboxDeterministic(t *testing.T) {
	const w, h = 64, 48
	cam := NewCamera(math3d.Zero3(), math3d.V3(0, 0, -1), math3d.Up())
	cam.SetAspectRatio(float64(w) / float64(h))

	render := func() []Color {
		fb := NewFramebuffer(w, h)
		fb.Clear()
		sky := NewSkybox(2000, rand.New(rand.NewSource(7)))
		sky.Render(fb, skyUniforms(cam, w, h), cam.Eye)
		out := make([]Color, len(fb.Pixels()))
		copy(out, fb.Pixels())
		return out
	}

	first := render()
	second := render()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("pixel %d differs between identically seeded skies", i)
		}
	}
}

func TestSkyboxDrawsStars(t *testing.T) {
	const w, h = 64, 48
	fb := NewFramebuffer(w, h)
	fb.Clear()

	cam := NewCamera(math3d.Zero3(), math3d.V3(0, 0, -1), math3d.Up())
	cam.SetAspectRatio(float64(w) / float64(h))

	sky := NewSkybox(5000, rand.New(rand.NewSource(3)))
	sky.Render(fb, skyUniforms(cam, w, h), cam.Eye)

	lit := 0
	for _, c := range fb.Pixels() {
		if c != (Color{}) {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("no stars landed in a 5000-star sky")
	}
}

func TestSkyboxSkipsStarsBehindCamera(t *testing.T) {
	const w, h = 64, 48
	fb := NewFramebuffer(w, h)
	fb.Clear()

	// Camera looks down -Z; a single star straight down +Z sits behind
	// it and must not mirror into view through the projection.
	cam := NewCamera(math3d.Zero3(), math3d.V3(0, 0, -1), math3d.Up())
	cam.SetAspectRatio(float64(w) / float64(h))

	sky := &Skybox{stars: []Star{{
		Position:   math3d.V3(0, 0, skyboxRadius),
		Brightness: 1,
		Size:       3,
	}}}
	sky.Render(fb, skyUniforms(cam, w, h), cam.Eye)

	for i, c := range fb.Pixels() {
		if c != (Color{}) {
			t.Fatalf("behind-camera star lit pixel %d", i)
		}
	}
}

func TestSkyboxStarsLoseDepthTest(t *testing.T) {
	const w, h = 64, 48
	fb := NewFramebuffer(w, h)
	fb.Clear()

	cam := NewCamera(math3d.Zero3(), math3d.V3(0, 0, -1), math3d.Up())
	cam.SetAspectRatio(float64(w) / float64(h))

	sky := NewSkybox(5000, rand.New(rand.NewSource(3)))
	sky.Render(fb, skyUniforms(cam, w, h), cam.Eye)

	// Find a star pixel and draw geometry over it; the geometry wins.
	for y := range h {
		for x := range w {
			if fb.At(x, y) == (Color{}) {
				continue
			}
			if fb.DepthAt(x, y) != starDepth {
				t.Fatalf("star pixel at depth %v, want %v", fb.DepthAt(x, y), starDepth)
			}
			fb.Point(x, y, 0.5, RGB(1, 2, 3))
			if fb.At(x, y) != RGB(1, 2, 3) {
				t.Fatal("scene geometry should cover a star")
			}
			return
		}
	}
	t.Fatal("no star pixel found")
}

func TestSkyboxRidesWithCamera(t *testing.T) {
	const w, h = 64, 48

	renderAt := func(eye math3d.Vec3) []Color {
		fb := NewFramebuffer(w, h)
		fb.Clear()
		cam := NewCamera(eye, eye.Add(math3d.V3(0, 0, -1)), math3d.Up())
		cam.SetAspectRatio(float64(w) / float64(h))
		sky := NewSkybox(2000, rand.New(rand.NewSource(11)))
		sky.Render(fb, skyUniforms(cam, w, h), cam.Eye)
		out := make([]Color, len(fb.Pixels()))
		copy(out, fb.Pixels())
		return out
	}

	// Translating the camera must not parallax the stars.
	home := renderAt(math3d.Zero3())
	moved := renderAt(math3d.V3(30, -12, 8))
	for i := range home {
		if home[i] != moved[i] {
			t.Fatalf("pixel %d parallaxed with camera translation", i)
		}
	}
}
