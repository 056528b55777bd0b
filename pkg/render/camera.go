package render

import (
	"math"

	"github.com/solterm/planetarium/pkg/math3d"
)

// Camera is an orbit camera: the eye circles a center point at a fixed
// up vector. Orbit, Zoom and Pan mutate it; matrices are cached and
// rebuilt lazily when something changed.
type Camera struct {
	Eye    math3d.Vec3
	Center math3d.Vec3
	Up     math3d.Vec3

	// Projection parameters
	FOV         float64 // Vertical field of view in radians
	AspectRatio float64 // Width / Height
	Near        float64 // Near clipping plane
	Far         float64 // Far clipping plane

	// Cached matrices (computed on demand)
	viewMatrix     math3d.Mat4
	projMatrix     math3d.Mat4
	viewProjMatrix math3d.Mat4
	viewDirty      bool
	projDirty      bool
	viewProjDirty  bool
}

// NewCamera creates a camera at eye looking at center.
func NewCamera(eye, center, up math3d.Vec3) *Camera {
	return &Camera{
		Eye:           eye,
		Center:        center,
		Up:            up,
		FOV:           math.Pi / 3, // 60 degrees
		AspectRatio:   4.0 / 3.0,
		Near:          0.1,
		Far:           1000,
		viewDirty:     true,
		projDirty:     true,
		viewProjDirty: true,
	}
}

// SetEye moves the eye without touching the center.
func (c *Camera) SetEye(eye math3d.Vec3) {
	c.Eye = eye
	c.viewDirty = true
	c.viewProjDirty = true
}

// SetCenter retargets the camera without moving the eye.
func (c *Camera) SetCenter(center math3d.Vec3) {
	c.Center = center
	c.viewDirty = true
	c.viewProjDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.projDirty = true
	c.viewProjDirty = true
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
	c.projDirty = true
	c.viewProjDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
	c.projDirty = true
	c.viewProjDirty = true
}

// Orbit rotates the eye around the center by the given yaw and pitch
// deltas (radians). Pitch is clamped just short of the poles so the up
// vector never degenerates.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64) {
	offset := c.Eye.Sub(c.Center)
	radius := offset.Len()
	if radius == 0 {
		return
	}

	yaw := math.Atan2(offset.X, offset.Z) + deltaYaw
	pitch := math.Asin(offset.Y/radius) + deltaPitch

	const maxPitch = math.Pi/2 - 0.01
	pitch = math.Max(-maxPitch, math.Min(maxPitch, pitch))

	c.Eye = c.Center.Add(math3d.V3(
		radius*math.Cos(pitch)*math.Sin(yaw),
		radius*math.Sin(pitch),
		radius*math.Cos(pitch)*math.Cos(yaw),
	))
	c.viewDirty = true
	c.viewProjDirty = true
}

// Zoom moves the eye toward the center (negative amounts move away).
// The eye never crosses the center.
func (c *Camera) Zoom(amount float64) {
	offset := c.Eye.Sub(c.Center)
	dist := offset.Len()
	if dist == 0 {
		return
	}

	const minDistance = 0.5
	newDist := math.Max(minDistance, dist-amount)
	c.Eye = c.Center.Add(offset.Scale(newDist / dist))
	c.viewDirty = true
	c.viewProjDirty = true
}

// Pan translates both eye and center by the world-space movement, so
// the viewing direction is preserved.
func (c *Camera) Pan(movement math3d.Vec3) {
	c.Eye = c.Eye.Add(movement)
	c.Center = c.Center.Add(movement)
	c.viewDirty = true
	c.viewProjDirty = true
}

// Distance returns the eye-to-center distance.
func (c *Camera) Distance() float64 {
	return c.Eye.Sub(c.Center).Len()
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.viewMatrix = math3d.LookAt(c.Eye, c.Center, c.Up)
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
	}
	return c.projMatrix
}

// ViewProjectionMatrix returns the combined view-projection matrix.
// It carries its own dirty bit: fetching the view or projection matrix
// on its own must not leave the combined matrix stale.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	if c.viewProjDirty {
		c.viewProjMatrix = c.ProjectionMatrix().Mul(c.ViewMatrix())
		c.viewProjDirty = false
	}
	return c.viewProjMatrix
}

// WorldToScreen transforms a world point to screen coordinates.
// Returns (screenX, screenY, depth, visible).
func (c *Camera) WorldToScreen(worldPos math3d.Vec3, screenWidth, screenHeight int) (x, y, depth float64, visible bool) {
	// Transform to clip space
	clipPos := c.ViewProjectionMatrix().MulVec4(math3d.V4FromV3(worldPos, 1))

	// Check if behind camera
	if clipPos.W <= 0 {
		return 0, 0, 0, false
	}

	// Perspective divide to NDC (-1 to 1)
	ndc := clipPos.PerspectiveDivide()

	// Check if in view frustum
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, 0, false
	}

	// Convert to screen coordinates
	x = (ndc.X + 1) * 0.5 * float64(screenWidth)
	y = (1 - ndc.Y) * 0.5 * float64(screenHeight) // Y is flipped
	depth = ndc.Z

	return x, y, depth, true
}
