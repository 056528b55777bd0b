package render

import (
	"testing"

	"github.com/solterm/planetarium/pkg/math3d"
	"github.com/solterm/planetarium/pkg/noise"
)

func testFragment() Fragment {
	return Fragment{
		X: 10, Y: 20,
		Depth:     0.5,
		Color:     RGB(10, 20, 30),
		Normal:    math3d.V3(0.2, 0.3, 0.9).Normalize(),
		Position:  math3d.V3(0.4, -0.7, 0.6),
		UV:        math3d.V2(0.25, 0.75),
		Intensity: 0.8,
	}
}

func TestShadeDeterministic(t *testing.T) {
	materials := []struct {
		name string
		mat  Material
	}{
		{"lava", MaterialLava},
		{"gas swirl", MaterialGasSwirl},
		{"sun", MaterialSun},
		{"rocky", MaterialRocky},
		{"gas giant", MaterialGasGiant},
		{"ice", MaterialIce},
		{"wave", MaterialWave},
		{"moon", MaterialMoon},
		{"atmosphere", MaterialAtmosphere},
		{"dynamic surface", MaterialDynamicSurface},
		{"earth", MaterialEarth},
	}

	u := &Uniforms{Time: 42, Noise: noise.Generic()}
	frag := testFragment()

	for _, tt := range materials {
		t.Run(tt.name, func(t *testing.T) {
			first := Shade(frag, u, tt.mat)
			second := Shade(frag, u, tt.mat)
			if first != second {
				t.Errorf("shading is not deterministic: %v != %v", first, second)
			}
		})
	}
}

func TestShadeUnknownMaterialPassthrough(t *testing.T) {
	u := &Uniforms{Time: 7, Noise: noise.Generic()}
	frag := testFragment()

	if got := Shade(frag, u, Material(99)); got != frag.Color {
		t.Errorf("unknown material should pass the vertex color through, got %v", got)
	}
}

func TestShadeTexturedWithoutTexture(t *testing.T) {
	u := &Uniforms{Time: 0, Noise: noise.Generic()}
	frag := testFragment()
	frag.Intensity = 0.5

	want := frag.Color.Scale(frag.Intensity)
	if got := Shade(frag, u, MaterialTextured); got != want {
		t.Errorf("nil texture should scale the vertex color, got %v want %v", got, want)
	}
}

func TestShadeTexturedSamplesTexture(t *testing.T) {
	u := &Uniforms{
		Time:    0,
		Noise:   noise.Generic(),
		Texture: NewCheckerTexture(8, 8, 4, ColorWhite, ColorBlack),
	}
	frag := testFragment()
	frag.Intensity = 1.0
	frag.Normal = math3d.V3(0, 0, 1)

	got := Shade(frag, u, MaterialTextured)
	if got != ColorWhite && got != ColorBlack {
		t.Errorf("expected a checker sample, got %v", got)
	}
}

func TestShadeZeroIntensityDarkens(t *testing.T) {
	// Materials that scale by the diffuse term must go black on an
	// unlit fragment.
	u := &Uniforms{Time: 3, Noise: noise.Generic()}
	frag := testFragment()
	frag.Intensity = 0

	for _, mat := range []Material{MaterialLava, MaterialRocky, MaterialWave, MaterialMoon, MaterialEarth} {
		if got := Shade(frag, u, mat); got != ColorBlack {
			t.Errorf("material %d with zero intensity produced %v", mat, got)
		}
	}
}
