package render

import (
	"math"
	"math/rand"

	"github.com/solterm/planetarium/pkg/math3d"
)

// skyboxRadius is the distance of every star from the camera. Stars
// ride along with the camera, so they never parallax against the scene.
const skyboxRadius = 100.0

// starDepth is far beyond any scene geometry, so anything drawn later
// wins the depth test against the stars.
const starDepth = 1000.0

// Star is a single point on the celestial sphere. Size 1 is one pixel,
// size 2 a 2x2 block, size 3 a plus shape.
type Star struct {
	Position   math3d.Vec3
	Brightness float64
	Size       int
}

// Skybox is a fixed field of stars on a sphere around the camera.
type Skybox struct {
	stars []Star
}

// NewSkybox scatters count stars uniformly over the sphere using the
// given RNG. Pass a seeded source for a reproducible sky.
func NewSkybox(count int, rng *rand.Rand) *Skybox {
	stars := make([]Star, 0, count)
	for range count {
		theta := rng.Float64() * 2 * math.Pi
		phi := rng.Float64() * math.Pi

		stars = append(stars, Star{
			Position: math3d.V3(
				skyboxRadius*math.Sin(phi)*math.Cos(theta),
				skyboxRadius*math.Cos(phi),
				skyboxRadius*math.Sin(phi)*math.Sin(theta),
			),
			Brightness: rng.Float64(),
			Size:       1 + rng.Intn(3),
		})
	}
	return &Skybox{stars: stars}
}

// StarCount returns the number of stars in the sky.
func (s *Skybox) StarCount() int {
	return len(s.stars)
}

// Render projects every star through the view, projection and viewport
// matrices and plots it into the framebuffer at the far star depth.
// Stars behind the camera (clip w <= 0) or with a negative screen depth
// are skipped; the framebuffer clips per-pixel footprints that straddle
// the edges.
func (s *Skybox) Render(fb *Framebuffer, u *Uniforms, cameraPos math3d.Vec3) {
	for _, star := range s.stars {
		world := star.Position.Add(cameraPos)

		clip := u.Projection.MulVec4(u.View.MulVec4(math3d.V4FromV3(world, 1)))
		if clip.W <= 0 {
			continue
		}
		ndc := clip.PerspectiveDivide()

		screen := u.Viewport.MulVec4(math3d.V4FromV3(ndc, 1))
		if screen.Z < 0 {
			continue
		}

		x := int(screen.X)
		y := int(screen.Y)
		if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
			continue
		}

		v := clampChannel(star.Brightness * 255)
		c := RGB(v, v, v)

		switch star.Size {
		case 1:
			fb.Point(x, y, starDepth, c)
		case 2:
			fb.Point(x, y, starDepth, c)
			fb.Point(x+1, y, starDepth, c)
			fb.Point(x, y+1, starDepth, c)
			fb.Point(x+1, y+1, starDepth, c)
		case 3:
			fb.Point(x, y, starDepth, c)
			fb.Point(x-1, y, starDepth, c)
			fb.Point(x+1, y, starDepth, c)
			fb.Point(x, y-1, starDepth, c)
			fb.Point(x, y+1, starDepth, c)
		}
	}
}
