package scene

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/solterm/planetarium/pkg/math3d"
	"github.com/solterm/planetarium/pkg/models"
	"github.com/solterm/planetarium/pkg/noise"
	"github.com/solterm/planetarium/pkg/render"
)

// Craft is the player-steerable ship drifting through the system.
type Craft struct {
	Position math3d.Vec3
	Scale    float64
	Rotation math3d.Vec3
	Mesh     *models.Mesh
	Material render.Material
	Noise    noise.Generator

	// Texture is the model's own embedded texture, when the .glb file
	// carried one. An explicit scene texture takes precedence.
	Texture *render.Texture
}

// NewCraft loads the craft model from an .obj or .glb file and places
// it at position. A texture embedded in a .glb is picked up as the
// craft's default texture.
func NewCraft(modelPath string, position math3d.Vec3, scale float64, mat render.Material) (*Craft, error) {
	var (
		mesh *models.Mesh
		tex  *render.Texture
		err  error
	)
	switch strings.ToLower(filepath.Ext(modelPath)) {
	case ".glb", ".gltf":
		var img image.Image
		mesh, img, err = models.LoadGLBWithTexture(modelPath)
		if img != nil {
			tex = render.TextureFromImage(img)
		}
	default:
		mesh, err = models.LoadOBJ(modelPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load craft model: %w", err)
	}

	return &Craft{
		Position: position,
		Scale:    scale,
		Mesh:     mesh,
		Material: mat,
		Noise:    noiseForMaterial(mat),
		Texture:  tex,
	}, nil
}

// Move translates the craft by the given world-space delta.
func (c *Craft) Move(delta math3d.Vec3) {
	c.Position = c.Position.Add(delta)
}

// ModelMatrix returns the craft's model transform.
func (c *Craft) ModelMatrix() math3d.Mat4 {
	return math3d.Translate(c.Position).
		Mul(math3d.ScaleUniform(c.Scale)).
		Mul(math3d.RotateZ(c.Rotation.Z)).
		Mul(math3d.RotateY(c.Rotation.Y)).
		Mul(math3d.RotateX(c.Rotation.X))
}
