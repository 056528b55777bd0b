// Package render implements the software rendering pipeline for planetarium:
// vertex transformation, triangle rasterization, procedural shading, and
// depth-tested compositing into a pixel buffer.
package render

import (
	"image"
	"image/png"
	"math"
	"os"
)

// Framebuffer owns a pixel color buffer and a matching per-pixel depth
// buffer. Compositing is nearest-wins depth testing only; there is no
// blending. Both buffers are row-major and always width*height long.
type Framebuffer struct {
	Width  int
	Height int

	pixels     []Color
	depth      []float64
	background Color
}

// NewFramebuffer creates a framebuffer with zeroed color and depth buffers.
// Call Clear before the first frame to initialize depth to the empty
// sentinel.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]Color, width*height),
		depth:  make([]float64, width*height),
	}
}

// SetBackground sets the color Clear fills with.
func (fb *Framebuffer) SetBackground(c Color) {
	fb.background = c
}

// Clear fills every pixel with the background color and resets every depth
// entry to +Inf ("nothing drawn yet").
func (fb *Framebuffer) Clear() {
	n := len(fb.pixels)
	if n == 0 {
		return
	}
	// Copy-doubling fill for both buffers.
	fb.pixels[0] = fb.background
	fb.depth[0] = math.Inf(1)
	for i := 1; i < n; i *= 2 {
		copy(fb.pixels[i:], fb.pixels[:i])
		copy(fb.depth[i:], fb.depth[:i])
	}
}

// Point plots a depth-tested pixel. Writes happen only when (x, y) is in
// bounds and depth is strictly closer than what is stored; everything else
// is silently dropped.
func (fb *Framebuffer) Point(x, y int, depth float64, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	idx := y*fb.Width + x
	if !(depth < fb.depth[idx]) { // NaN depth also fails the test
		return
	}
	fb.depth[idx] = depth
	fb.pixels[idx] = c
}

// At returns the color at (x, y), or the zero color out of bounds.
func (fb *Framebuffer) At(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return fb.pixels[y*fb.Width+x]
}

// DepthAt returns the stored depth at (x, y), or +Inf out of bounds.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math.Inf(1)
	}
	return fb.depth[y*fb.Width+x]
}

// Pixels returns the row-major pixel buffer. The caller must treat it as
// read-only; it is the renderer's output boundary.
func (fb *Framebuffer) Pixels() []Color {
	return fb.pixels
}

// DrawLine draws a depth-less line using Bresenham's algorithm, for overlay
// graphics (orbit rings, axes). Overlay writes bypass the depth test.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.setOverlay(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// setOverlay writes a pixel without touching the depth buffer.
func (fb *Framebuffer) setOverlay(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.pixels[y*fb.Width+x] = c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.pixels[y*fb.Width+x].ToRGBA())
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
