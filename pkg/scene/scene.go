package scene

import (
	"github.com/solterm/planetarium/pkg/math3d"
	"github.com/solterm/planetarium/pkg/models"
	"github.com/solterm/planetarium/pkg/render"
)

// Scene owns the renderable world and drives one frame at a time:
// clear, skybox, every visible entity through the pipeline, overlays.
type Scene struct {
	Bodies []*Body
	Craft  *Craft
	Sky    *render.Skybox
	Camera *render.Camera

	// ShowOrbits draws the orbit rings overlay, with a marker at each
	// orbiting body so sub-pixel bodies stay locatable on their ring.
	ShowOrbits bool

	// ShowGrid draws a reference grid on the ecliptic plane.
	ShowGrid bool

	// Texture and NormalMap back any entity using MaterialTextured.
	Texture   *render.Texture
	NormalMap *render.NormalMap

	sphere       []models.MeshVertex
	sphereRadius float64
	craftVerts   []models.MeshVertex
	craftRadius  float64

	time int
}

// sphereRings and sphereSegments size the shared body mesh.
const (
	sphereRings    = 24
	sphereSegments = 48
)

// New builds a scene over the given bodies. The unit sphere shared by
// every body is generated once here.
func New(bodies []*Body, craft *Craft, sky *render.Skybox, camera *render.Camera) *Scene {
	sphere := models.NewUVSphere(sphereRings, sphereSegments)

	s := &Scene{
		Bodies:       bodies,
		Craft:        craft,
		Sky:          sky,
		Camera:       camera,
		sphere:       sphere.FlatVertices(),
		sphereRadius: sphere.BoundingRadius(),
	}
	if craft != nil {
		s.craftVerts = craft.Mesh.FlatVertices()
		s.craftRadius = craft.Mesh.BoundingRadius()
	}
	return s
}

// Time returns the current animation tick.
func (s *Scene) Time() int {
	return s.time
}

// RenderFrame advances the simulation one tick and renders it into the
// framebuffer. Bodies outside the view frustum are culled by bounding
// sphere before any vertex work.
func (s *Scene) RenderFrame(fb *render.Framebuffer) {
	fb.Clear()

	viewport := math3d.Viewport(float64(fb.Width), float64(fb.Height))
	base := render.Uniforms{
		View:       s.Camera.ViewMatrix(),
		Projection: s.Camera.ProjectionMatrix(),
		Viewport:   viewport,
		Time:       s.time,
	}

	s.Sky.Render(fb, &base, s.Camera.Eye)

	raster := render.NewRasterizer(fb.Width, fb.Height)
	frustum := s.Camera.Frustum()

	for _, body := range s.Bodies {
		body.Advance()

		if !frustum.IntersectsSphere(body.Position(), body.Radius*s.sphereRadius) {
			continue
		}

		u := base
		u.Model = body.ModelMatrix()
		u.Noise = body.Noise
		s.drawVertices(fb, raster, s.sphere, &u, body.Material, body.Color)
	}

	if s.Craft != nil {
		worldRadius := s.craftRadius * s.Craft.Scale
		if frustum.IntersectsSphere(s.Craft.Position, worldRadius) {
			u := base
			u.Model = s.Craft.ModelMatrix()
			u.Noise = s.Craft.Noise
			u.Texture = s.Texture
			if u.Texture == nil {
				u.Texture = s.Craft.Texture
			}
			u.NormalMap = s.NormalMap
			s.drawVertices(fb, raster, s.craftVerts, &u, s.Craft.Material, render.ColorGray)
		}
	}

	if s.ShowOrbits || s.ShowGrid {
		overlay := render.NewOverlay(s.Camera, fb)
		if s.ShowGrid {
			overlay.DrawGrid(2*s.outermostOrbit(), 5, render.ColorDarkGray)
		}
		if s.ShowOrbits {
			for _, body := range s.Bodies {
				if body.OrbitRadius > 0 {
					overlay.DrawOrbit(math3d.Zero3(), body.OrbitRadius, render.ColorGray)
					overlay.DrawPoint(body.Position(), body.Radius*2, body.Color)
				}
			}
		}
	}

	s.time++
}

// outermostOrbit returns the largest orbit radius in the scene, used to
// size the ecliptic grid. At least 30, so an empty scene still gets a
// usable grid.
func (s *Scene) outermostOrbit() float64 {
	max := 30.0
	for _, body := range s.Bodies {
		if body.OrbitRadius > max {
			max = body.OrbitRadius
		}
	}
	return max
}

// drawVertices runs a flat vertex list through the pipeline: vertex
// transform, triangle assembly in threes (a trailing one or two
// vertices are dropped), rasterization and shading into the depth
// buffer.
func (s *Scene) drawVertices(fb *render.Framebuffer, raster *render.Rasterizer, verts []models.MeshVertex, u *render.Uniforms, mat render.Material, flat render.Color) {
	transformed := make([]render.Vertex, len(verts))
	for i, mv := range verts {
		transformed[i] = render.TransformVertex(render.Vertex{
			Position: mv.Position,
			Normal:   mv.Normal,
			UV:       mv.UV,
			Color:    flat,
		}, u)
	}

	for i := 0; i+2 < len(transformed); i += 3 {
		for frag := range raster.Triangle(transformed[i], transformed[i+1], transformed[i+2]) {
			fb.Point(frag.X, frag.Y, frag.Depth, render.Shade(frag, u, mat))
		}
	}
}
