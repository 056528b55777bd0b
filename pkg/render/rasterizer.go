package render

import (
	"iter"
	"math"

	"github.com/solterm/planetarium/pkg/math3d"
)

// Fragment is a candidate pixel produced by rasterizing a triangle.
// Attributes are interpolated barycentrically from the triangle's
// vertices; Intensity is a headlight diffuse term from the interpolated
// normal, available to shaders that want precomputed lighting.
type Fragment struct {
	X, Y  int
	Depth float64
	Color Color

	// Normal is the interpolated world-space normal, renormalized.
	Normal math3d.Vec3

	// Position is the interpolated object-space position, used by the
	// procedural shaders to sample noise in the mesh's own frame.
	Position math3d.Vec3

	UV        math3d.Vec2
	Intensity float64
}

// Rasterizer converts screen-space triangles into fragment streams.
// Width and Height bound the emitted pixel coordinates.
type Rasterizer struct {
	Width, Height int
}

// NewRasterizer creates a rasterizer for a target of the given size.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{Width: width, Height: height}
}

// edgeCoeffs returns the A, B, C coefficients of the edge function
// edge(x,y) = A*x + B*y + C for the directed edge (x0,y0)->(x1,y1).
func edgeCoeffs(x0, y0, x1, y1 float64) (A, B, C float64) {
	A = y0 - y1 // dy
	B = x1 - x0 // -dx
	C = x0*y1 - x1*y0
	return
}

// edgeFunc evaluates an edge function at point (x, y).
func edgeFunc(A, B, C, x, y float64) float64 {
	return A*x + B*y + C
}

// Triangle rasterizes one transformed triangle and yields its fragments.
// Vertices must have been through TransformVertex so ScreenPos holds
// pixel coordinates. The sequence is lazy and restartable; iterating it
// does not touch any framebuffer.
//
// Both windings are accepted (no backface culling), and a triangle with
// zero screen area yields nothing. Edge functions are evaluated
// incrementally across the clamped bounding box, stepping by A per
// column and B per row.
func (r *Rasterizer) Triangle(a, b, c Vertex) iter.Seq[Fragment] {
	return func(yield func(Fragment) bool) {
		x0, y0 := a.ScreenPos.X, a.ScreenPos.Y
		x1, y1 := b.ScreenPos.X, b.ScreenPos.Y
		x2, y2 := c.ScreenPos.X, c.ScreenPos.Y

		// Twice the signed screen area. Zero means collinear or
		// coincident vertices.
		area2 := (x1-x0)*(y2-y0) - (y1-y0)*(x2-x0)
		if area2 == 0 || math.IsNaN(area2) {
			return
		}

		minX := int(math.Max(0, math.Floor(min3(x0, x1, x2))))
		maxX := int(math.Min(float64(r.Width-1), math.Ceil(max3(x0, x1, x2))))
		minY := int(math.Max(0, math.Floor(min3(y0, y1, y2))))
		maxY := int(math.Min(float64(r.Height-1), math.Ceil(max3(y0, y1, y2))))
		if minX > maxX || minY > maxY {
			return
		}

		// Edge 0: v1 -> v2, Edge 1: v2 -> v0, Edge 2: v0 -> v1
		A0, B0, C0 := edgeCoeffs(x1, y1, x2, y2)
		A1, B1, C1 := edgeCoeffs(x2, y2, x0, y0)
		A2, B2, C2 := edgeCoeffs(x0, y0, x1, y1)

		// Flip a clockwise triangle's edges so the inside test stays
		// "all weights >= 0" for either winding.
		if area2 < 0 {
			A0, B0, C0 = -A0, -B0, -C0
			A1, B1, C1 = -A1, -B1, -C1
			A2, B2, C2 = -A2, -B2, -C2
			area2 = -area2
		}
		invArea := 1.0 / area2

		z0, z1, z2 := a.ScreenPos.Z, b.ScreenPos.Z, c.ScreenPos.Z

		px := float64(minX) + 0.5
		py := float64(minY) + 0.5
		w0Row := edgeFunc(A0, B0, C0, px, py)
		w1Row := edgeFunc(A1, B1, C1, px, py)
		w2Row := edgeFunc(A2, B2, C2, px, py)

		for y := minY; y <= maxY; y++ {
			w0 := w0Row
			w1 := w1Row
			w2 := w2Row

			for x := minX; x <= maxX; x++ {
				if w0 >= 0 && w1 >= 0 && w2 >= 0 {
					bc0 := w0 * invArea
					bc1 := w1 * invArea
					bc2 := w2 * invArea

					normal := a.WorldNormal.Scale(bc0).
						Add(b.WorldNormal.Scale(bc1)).
						Add(c.WorldNormal.Scale(bc2)).
						Normalize()

					frag := Fragment{
						X:      x,
						Y:      y,
						Depth:  bc0*z0 + bc1*z1 + bc2*z2,
						Color:  interpolateColor3(a.Color, b.Color, c.Color, bc0, bc1, bc2),
						Normal: normal,
						Position: a.Position.Scale(bc0).
							Add(b.Position.Scale(bc1)).
							Add(c.Position.Scale(bc2)),
						UV: math3d.V2(
							bc0*a.UV.X+bc1*b.UV.X+bc2*c.UV.X,
							bc0*a.UV.Y+bc1*b.UV.Y+bc2*c.UV.Y,
						),
						Intensity: math.Max(0, normal.Z),
					}
					if !yield(frag) {
						return
					}
				}

				w0 += A0
				w1 += A1
				w2 += A2
			}

			w0Row += B0
			w1Row += B1
			w2Row += B2
		}
	}
}

// interpolateColor3 blends three vertex colors with barycentric weights.
func interpolateColor3(c0, c1, c2 Color, bc0, bc1, bc2 float64) Color {
	return RGB(
		clampChannel(float64(c0.R)*bc0+float64(c1.R)*bc1+float64(c2.R)*bc2),
		clampChannel(float64(c0.G)*bc0+float64(c1.G)*bc1+float64(c2.G)*bc2),
		clampChannel(float64(c0.B)*bc0+float64(c1.B)*bc1+float64(c2.B)*bc2),
	)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
