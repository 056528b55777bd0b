package render

import (
	"fmt"
	"image"
	"os"

	"github.com/solterm/planetarium/pkg/math3d"
)

// NormalMap holds a tangent-space normal texture. Channels are decoded
// from [0,255] to [-1,1] on sampling.
type NormalMap struct {
	tex *Texture
}

// LoadNormalMap loads a normal map from an image file.
func LoadNormalMap(path string) (*NormalMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open normal map: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode normal map: %w", err)
	}

	return &NormalMap{tex: TextureFromImage(img)}, nil
}

// NormalMapFromTexture wraps an already-loaded texture as a normal map.
func NormalMapFromTexture(tex *Texture) *NormalMap {
	return &NormalMap{tex: tex}
}

// Sample returns the decoded tangent-space normal at UV coordinates.
// A zero-length decoded normal falls back to the unperturbed +Z.
func (n *NormalMap) Sample(u, v float64) math3d.Vec3 {
	c := n.tex.Sample(u, v)
	decoded := math3d.V3(
		float64(c.R)/127.5-1,
		float64(c.G)/127.5-1,
		float64(c.B)/127.5-1,
	)
	if decoded.LenSq() == 0 {
		return math3d.V3(0, 0, 1)
	}
	return decoded.Normalize()
}
