package render

import (
	"github.com/solterm/planetarium/pkg/math3d"
)

// Vertex is a single mesh vertex flowing through the pipeline. Position,
// Normal, UV and Color are authored attributes in object space; ScreenPos
// and WorldNormal are filled in by TransformVertex.
type Vertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2
	Color    Color

	// ScreenPos is the post-viewport position: X,Y in pixel space,
	// Z the depth carried into the rasterizer.
	ScreenPos math3d.Vec3

	// WorldNormal is the normal rotated into world space by the
	// normal matrix and renormalized.
	WorldNormal math3d.Vec3
}

// TransformVertex runs the vertex stage: object space through model, view
// and projection, perspective divide, then the viewport mapping into pixel
// coordinates. The object-space attributes are preserved so the shaders can
// sample procedural fields in the mesh's own frame.
//
// A clip-space w of zero skips the divide rather than producing infinities;
// the rasterizer rejects any such triangle by its degenerate screen area.
func TransformVertex(v Vertex, u *Uniforms) Vertex {
	clip := u.Projection.MulVec4(u.View.MulVec4(u.Model.MulVec4(math3d.V4FromV3(v.Position, 1))))
	ndc := clip.PerspectiveDivide()
	screen := u.Viewport.MulVec4(math3d.V4FromV3(ndc, 1))

	out := v
	out.ScreenPos = screen.Vec3()
	out.WorldNormal = math3d.NormalMatrix(u.Model).MulVec3(v.Normal).Normalize()
	return out
}
