package models

import (
	"math"

	"github.com/solterm/planetarium/pkg/math3d"
)

// NewUVSphere generates a unit sphere from latitude/longitude bands.
// rings is the number of latitude divisions, segments the number of
// longitude divisions. Normals point outward and UVs wrap the usual
// equirectangular way.
func NewUVSphere(rings, segments int) *Mesh {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}

	mesh := NewMesh("sphere")

	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		y := math.Cos(phi)
		ringRadius := math.Sin(phi)

		for s := 0; s <= segments; s++ {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			pos := math3d.V3(
				ringRadius*math.Cos(theta),
				y,
				ringRadius*math.Sin(theta),
			)

			mesh.Vertices = append(mesh.Vertices, MeshVertex{
				Position: pos,
				// Unit sphere: the normal is the position.
				Normal: pos,
				UV: math3d.V2(
					float64(s)/float64(segments),
					1-float64(r)/float64(rings),
				),
			})
		}
	}

	stride := segments + 1
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			i0 := r*stride + s
			i1 := i0 + 1
			i2 := i0 + stride
			i3 := i2 + 1

			// Degenerate triangles at the poles collapse to zero
			// area and rasterize to nothing, so both quads per cell
			// are always emitted.
			mesh.Faces = append(mesh.Faces,
				Face{V: [3]int{i0, i2, i1}},
				Face{V: [3]int{i1, i2, i3}},
			)
		}
	}

	mesh.CalculateBounds()
	return mesh
}
