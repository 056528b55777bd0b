package render

import (
	"image/color"
	"math"
)

// Color is an 8-bit RGB color. All arithmetic saturates: a channel that
// would overflow clamps to 255, one that would underflow clamps to 0.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// FromHex creates a color from a packed 0xRRGGBB value.
func FromHex(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// Hex packs the color as 0xRRGGBB for the raw output boundary.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Scale multiplies every channel by f, saturating.
func (c Color) Scale(f float64) Color {
	return Color{
		R: clampChannel(float64(c.R) * f),
		G: clampChannel(float64(c.G) * f),
		B: clampChannel(float64(c.B) * f),
	}
}

// Add returns the channel-wise sum, saturating at 255.
func (c Color) Add(other Color) Color {
	return Color{
		R: clampChannel(float64(c.R) + float64(other.R)),
		G: clampChannel(float64(c.G) + float64(other.G)),
		B: clampChannel(float64(c.B) + float64(other.B)),
	}
}

// Lerp linearly interpolates toward other by t, with t clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	if t != t || t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Color{
		R: clampChannel(float64(c.R) + (float64(other.R)-float64(c.R))*t),
		G: clampChannel(float64(c.G) + (float64(other.G)-float64(c.G))*t),
		B: clampChannel(float64(c.B) + (float64(other.B)-float64(c.B))*t),
	}
}

// ToRGBA converts to the stdlib color type (alpha fully opaque) for image
// export and terminal presentation.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// clampChannel rounds v into a valid 8-bit channel. NaN clamps to 0.
func clampChannel(v float64) uint8 {
	if v != v || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// Named colors used by the viewer.
var (
	ColorBlack    = Color{0, 0, 0}
	ColorWhite    = Color{255, 255, 255}
	ColorGray     = Color{128, 128, 128}
	ColorDarkGray = Color{64, 64, 64}
	ColorRed      = Color{255, 0, 0}
	ColorGreen    = Color{0, 255, 0}
	ColorBlue     = Color{0, 0, 255}
)
