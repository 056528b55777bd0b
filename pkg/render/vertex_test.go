package render

import (
	"math"
	"testing"

	"github.com/solterm/planetarium/pkg/math3d"
)

func identityUniforms(width, height float64) *Uniforms {
	return &Uniforms{
		Model:      math3d.Identity(),
		View:       math3d.Identity(),
		Projection: math3d.Identity(),
		Viewport:   math3d.Viewport(width, height),
	}
}

func TestTransformVertexCenterPixel(t *testing.T) {
	u := identityUniforms(80, 60)

	// With identity MVP the origin is already NDC (0,0,0) and must land
	// in the middle of the viewport.
	v := TransformVertex(Vertex{Position: math3d.Zero3()}, u)

	if math.Abs(v.ScreenPos.X-40) > 1e-9 || math.Abs(v.ScreenPos.Y-30) > 1e-9 {
		t.Errorf("NDC origin mapped to (%v,%v), want (40,30)", v.ScreenPos.X, v.ScreenPos.Y)
	}
	if v.ScreenPos.Z != 0 {
		t.Errorf("depth changed by viewport mapping: %v", v.ScreenPos.Z)
	}
}

func TestTransformVertexFlipsY(t *testing.T) {
	u := identityUniforms(80, 60)

	// NDC +Y is up; pixel +Y is down. A vertex above center must land
	// above the middle row.
	up := TransformVertex(Vertex{Position: math3d.V3(0, 0.5, 0)}, u)
	if up.ScreenPos.Y >= 30 {
		t.Errorf("NDC +Y mapped to pixel row %v, want above 30", up.ScreenPos.Y)
	}
}

func TestTransformVertexPreservesObjectSpace(t *testing.T) {
	u := identityUniforms(80, 60)
	u.Model = math3d.Translate(math3d.V3(5, 5, 5))

	in := Vertex{
		Position: math3d.V3(1, 2, 3),
		UV:       math3d.V2(0.3, 0.6),
		Color:    RGB(9, 8, 7),
	}
	out := TransformVertex(in, u)

	if out.Position != in.Position {
		t.Errorf("object-space position changed: %v", out.Position)
	}
	if out.UV != in.UV || out.Color != in.Color {
		t.Error("authored attributes should pass through untouched")
	}
}

func TestTransformVertexNormalMatrix(t *testing.T) {
	u := identityUniforms(80, 60)

	// Non-uniform scale must not shear normals: a Y-up normal on a
	// model squashed in Y stays Y-up after the inverse-transpose.
	u.Model = math3d.Scale(math3d.V3(1, 0.1, 1))
	v := TransformVertex(Vertex{Normal: math3d.Up()}, u)

	if math.Abs(v.WorldNormal.X) > 1e-9 || math.Abs(v.WorldNormal.Z) > 1e-9 {
		t.Errorf("normal picked up lateral components: %v", v.WorldNormal)
	}
	if math.Abs(v.WorldNormal.Len()-1) > 1e-9 {
		t.Errorf("normal not renormalized: |n| = %v", v.WorldNormal.Len())
	}
}

func TestTransformVertexSingularModel(t *testing.T) {
	u := identityUniforms(80, 60)

	// A singular model matrix has no inverse-transpose; the normal
	// passes through unrotated instead of going NaN.
	u.Model = math3d.Scale(math3d.V3(1, 1, 0))
	n := math3d.V3(0, 1, 0)
	v := TransformVertex(Vertex{Normal: n}, u)

	if v.WorldNormal != n {
		t.Errorf("singular model should leave the normal as %v, got %v", n, v.WorldNormal)
	}
}
