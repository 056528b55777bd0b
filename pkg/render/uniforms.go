package render

import (
	"github.com/solterm/planetarium/pkg/math3d"
	"github.com/solterm/planetarium/pkg/noise"
)

// Uniforms is the read-only per-draw-call bundle: the transform matrices,
// the animation clock, and the collaborator handles the shaders sample
// from. A fresh value is built per rendered entity per frame; the noise
// generator (and texture/normal map, when set) is shared read-only across
// many Uniforms values and never mutated after construction.
type Uniforms struct {
	Model      math3d.Mat4
	View       math3d.Mat4
	Projection math3d.Mat4
	Viewport   math3d.Mat4

	// Time is the integer animation clock, incremented once per frame.
	Time int

	// Noise drives the procedural shaders. Must be non-nil for any
	// noise-driven material.
	Noise noise.Generator

	// Texture and NormalMap back the textured material. Nil for
	// procedural-only entities.
	Texture   *Texture
	NormalMap *NormalMap
}
