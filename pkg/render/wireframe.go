package render

import (
	"math"

	"github.com/solterm/planetarium/pkg/math3d"
)

// Overlay draws line art (orbit rings, axes, markers) on top of the
// shaded scene. Lines bypass the depth buffer.
type Overlay struct {
	camera *Camera
	fb     *Framebuffer
}

// NewOverlay creates an overlay renderer.
func NewOverlay(camera *Camera, fb *Framebuffer) *Overlay {
	return &Overlay{
		camera: camera,
		fb:     fb,
	}
}

// DrawLine3D draws a line in 3D space.
func (o *Overlay) DrawLine3D(p1, p2 math3d.Vec3, color Color) {
	// Project both endpoints
	x1, y1, _, vis1 := o.camera.WorldToScreen(p1, o.fb.Width, o.fb.Height)
	x2, y2, _, vis2 := o.camera.WorldToScreen(p2, o.fb.Width, o.fb.Height)

	// Simple clipping: only draw if at least one point is visible
	// (proper line clipping would be more complex)
	if !vis1 && !vis2 {
		return
	}

	// Draw the line
	o.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), color)
}

// DrawOrbit draws a circular orbit ring of the given radius on the XZ
// plane around center, approximated with short line segments.
func (o *Overlay) DrawOrbit(center math3d.Vec3, radius float64, color Color) {
	const segments = 64

	prev := center.Add(math3d.V3(radius, 0, 0))
	for i := 1; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		next := center.Add(math3d.V3(radius*math.Cos(angle), 0, radius*math.Sin(angle)))
		o.DrawLine3D(prev, next, color)
		prev = next
	}
}

// DrawAxes draws the coordinate axes at the origin.
func (o *Overlay) DrawAxes(length float64) {
	origin := math3d.Zero3()
	o.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)   // X axis
	o.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen) // Y axis
	o.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)  // Z axis
}

// DrawGrid draws a grid on the XZ plane at y=0.
func (o *Overlay) DrawGrid(size, step float64, color Color) {
	half := size / 2
	for x := -half; x <= half; x += step {
		o.DrawLine3D(math3d.V3(x, 0, -half), math3d.V3(x, 0, half), color)
	}
	for z := -half; z <= half; z += step {
		o.DrawLine3D(math3d.V3(-half, 0, z), math3d.V3(half, 0, z), color)
	}
}

// DrawPoint draws a point as a small cross.
func (o *Overlay) DrawPoint(pos math3d.Vec3, size float64, color Color) {
	halfSize := size / 2
	o.DrawLine3D(
		math3d.V3(pos.X-halfSize, pos.Y, pos.Z),
		math3d.V3(pos.X+halfSize, pos.Y, pos.Z),
		color,
	)
	o.DrawLine3D(
		math3d.V3(pos.X, pos.Y-halfSize, pos.Z),
		math3d.V3(pos.X, pos.Y+halfSize, pos.Z),
		color,
	)
	o.DrawLine3D(
		math3d.V3(pos.X, pos.Y, pos.Z-halfSize),
		math3d.V3(pos.X, pos.Y, pos.Z+halfSize),
		color,
	)
}
