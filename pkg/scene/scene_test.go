package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/solterm/planetarium/pkg/math3d"
	"github.com/solterm/planetarium/pkg/render"
)

func testScene(bodies []*Body) *Scene {
	cam := render.NewCamera(math3d.V3(0, 10, 30), math3d.Zero3(), math3d.Up())
	cam.SetAspectRatio(4.0 / 3.0)
	sky := render.NewSkybox(1000, rand.New(rand.NewSource(1)))
	return New(bodies, nil, sky, cam)
}

func TestRenderFrameAdvancesTime(t *testing.T) {
	s := testScene(SolarSystem())
	fb := render.NewFramebuffer(80, 60)

	if s.Time() != 0 {
		t.Fatalf("fresh scene at tick %d", s.Time())
	}
	s.RenderFrame(fb)
	s.RenderFrame(fb)
	if s.Time() != 2 {
		t.Errorf("Time() = %d after two frames", s.Time())
	}
}

func TestRenderFrameDrawsBodies(t *testing.T) {
	// One sun filling the view, no stars to pollute the count.
	sun := NewBody("Sol", 6.0, 0, 0, 0, 0xFFFF00, render.MaterialSun)
	cam := render.NewCamera(math3d.V3(0, 0, 20), math3d.Zero3(), math3d.Up())
	cam.SetAspectRatio(4.0 / 3.0)
	s := New([]*Body{sun}, nil, render.NewSkybox(0, rand.New(rand.NewSource(1))), cam)

	fb := render.NewFramebuffer(80, 60)
	s.RenderFrame(fb)

	lit := 0
	for _, c := range fb.Pixels() {
		if c != (render.Color{}) {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("sun-filling frame rendered no pixels")
	}
	// The sun covers a disc, roughly a third of the frame, never all
	// of it.
	if lit == len(fb.Pixels()) {
		t.Error("body covered every pixel including the corners")
	}
}

func TestRenderFrameCullsOffscreenBodies(t *testing.T) {
	// The body orbits at radius 1000, always outside a frustum whose
	// far plane is closer than that.
	body := NewBody("Fantasma", 1, 1000, 0, 0, 0xFFFFFF, render.MaterialRocky)
	cam := render.NewCamera(math3d.V3(0, 0, 20), math3d.Zero3(), math3d.Up())
	cam.SetClipPlanes(0.1, 100)
	s := New([]*Body{body}, nil, render.NewSkybox(0, rand.New(rand.NewSource(1))), cam)

	fb := render.NewFramebuffer(40, 30)
	s.RenderFrame(fb)

	for i, c := range fb.Pixels() {
		if c != (render.Color{}) {
			t.Fatalf("culled body drew pixel %d", i)
		}
	}
}

func TestRenderFrameDrawsOrbitRings(t *testing.T) {
	// A tiny body on a large ring seen from above: the ring must show up
	// even though the frame already consumed the camera's view and
	// projection matrices for the uniforms.
	body := NewBody("Anillo", 0.1, 10, 0, 0, 0xFFFFFF, render.MaterialRocky)
	cam := render.NewCamera(math3d.V3(0, 40, 0.1), math3d.Zero3(), math3d.Up())
	cam.SetAspectRatio(4.0 / 3.0)
	s := New([]*Body{body}, nil, render.NewSkybox(0, rand.New(rand.NewSource(1))), cam)
	s.ShowOrbits = true

	fb := render.NewFramebuffer(80, 60)
	s.RenderFrame(fb)

	ring := 0
	for _, c := range fb.Pixels() {
		if c == render.ColorGray {
			ring++
		}
	}
	if ring == 0 {
		t.Fatal("orbit ring drew no pixels")
	}
}

func TestRenderFrameDrawsGrid(t *testing.T) {
	cam := render.NewCamera(math3d.V3(0, 40, 0.1), math3d.Zero3(), math3d.Up())
	cam.SetAspectRatio(4.0 / 3.0)
	s := New(nil, nil, render.NewSkybox(0, rand.New(rand.NewSource(1))), cam)
	s.ShowGrid = true

	fb := render.NewFramebuffer(80, 60)
	s.RenderFrame(fb)

	grid := 0
	for _, c := range fb.Pixels() {
		if c == render.ColorDarkGray {
			grid++
		}
	}
	if grid == 0 {
		t.Fatal("ecliptic grid drew no pixels")
	}
}

func TestBodyOrbit(t *testing.T) {
	b := NewBody("Prueba", 1, 10, 0.1, 0, 0xFFFFFF, render.MaterialRocky)

	if got := b.Position(); got.Sub(math3d.V3(10, 0, 0)).Len() > 1e-9 {
		t.Fatalf("initial position %v, want (10,0,0)", got)
	}

	b.Advance()
	got := b.Position()
	want := math3d.V3(10*math.Cos(0.1), 0, 10*math.Sin(0.1))
	if got.Sub(want).Len() > 1e-9 {
		t.Errorf("after one tick position %v, want %v", got, want)
	}
	if got.Y != 0 {
		t.Error("orbit left the ecliptic plane")
	}

	// The angle wraps instead of growing without bound.
	for range 1000 {
		b.Advance()
	}
	if r := b.Position().Len(); math.Abs(r-10) > 1e-6 {
		t.Errorf("orbit radius drifted to %v", r)
	}
}

func TestBodyModelMatrixScalesByRadius(t *testing.T) {
	b := NewBody("Prueba", 3, 0, 0, 0, 0xFFFFFF, render.MaterialRocky)

	// A unit-sphere surface point lands at radius 3.
	p := b.ModelMatrix().MulVec3(math3d.V3(1, 0, 0))
	if math.Abs(p.Len()-3) > 1e-9 {
		t.Errorf("surface point at %v, want radius 3", p)
	}
}

func TestSolarSystemStock(t *testing.T) {
	bodies := SolarSystem()
	if len(bodies) != 10 {
		t.Fatalf("SolarSystem() has %d bodies, want 10", len(bodies))
	}

	sun := bodies[0]
	if sun.OrbitRadius != 0 || sun.OrbitSpeed != 0 {
		t.Error("the sun should sit still at the origin")
	}

	for _, b := range bodies {
		if b.Noise == nil {
			t.Errorf("%s has no noise generator", b.Name)
		}
		if b.Radius <= 0 {
			t.Errorf("%s has radius %v", b.Name, b.Radius)
		}
	}

	// Orbits are ordered inner to outer after the sun.
	for i := 2; i < len(bodies); i++ {
		if bodies[i].OrbitRadius < bodies[i-1].OrbitRadius {
			t.Errorf("%s orbits inside %s", bodies[i].Name, bodies[i-1].Name)
		}
	}
}

func TestCraftMove(t *testing.T) {
	c := &Craft{Position: math3d.V3(1, 2, 3), Scale: 1}
	c.Move(math3d.V3(0.5, 0, -1))
	if c.Position != math3d.V3(1.5, 2, 2) {
		t.Errorf("Position = %v", c.Position)
	}
}
