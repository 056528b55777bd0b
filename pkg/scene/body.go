// Package scene assembles the solar system: celestial bodies, the
// player craft, and the per-frame render orchestration.
package scene

import (
	"math"

	"github.com/solterm/planetarium/pkg/math3d"
	"github.com/solterm/planetarium/pkg/noise"
	"github.com/solterm/planetarium/pkg/render"
)

// Body is a celestial body on a circular orbit in the ecliptic plane.
type Body struct {
	Name          string
	Radius        float64
	OrbitRadius   float64
	OrbitSpeed    float64
	RotationSpeed float64
	Color         render.Color
	Material      render.Material

	// Noise is the body's procedural field, built once at scene setup
	// and shared read-only with the shaders.
	Noise noise.Generator

	angle    float64
	rotation float64
}

// NewBody creates a body at orbit angle zero.
func NewBody(name string, radius, orbitRadius, orbitSpeed, rotationSpeed float64, color uint32, mat render.Material) *Body {
	return &Body{
		Name:          name,
		Radius:        radius,
		OrbitRadius:   orbitRadius,
		OrbitSpeed:    orbitSpeed,
		RotationSpeed: rotationSpeed,
		Color:         render.FromHex(color),
		Material:      mat,
		Noise:         noiseForMaterial(mat),
	}
}

// Advance steps the body's orbit and spin by one tick.
func (b *Body) Advance() {
	b.angle += b.OrbitSpeed
	if b.angle > 2*math.Pi {
		b.angle -= 2 * math.Pi
	}
	b.rotation += b.RotationSpeed
}

// Position returns the body's current world position on its orbit.
func (b *Body) Position() math3d.Vec3 {
	return math3d.V3(
		b.OrbitRadius*math.Cos(b.angle),
		0,
		b.OrbitRadius*math.Sin(b.angle),
	)
}

// ModelMatrix returns the body's model transform: spin, then uniform
// scale by radius, then translation onto the orbit.
func (b *Body) ModelMatrix() math3d.Mat4 {
	return math3d.Translate(b.Position()).
		Mul(math3d.ScaleUniform(b.Radius)).
		Mul(math3d.RotateY(b.rotation))
}

// noiseForMaterial picks the noise preset matching a material.
func noiseForMaterial(mat render.Material) noise.Generator {
	switch mat {
	case render.MaterialLava:
		return noise.Lava()
	case render.MaterialGasSwirl:
		return noise.GasGiant()
	case render.MaterialRocky:
		return noise.Ground()
	case render.MaterialGasGiant:
		return noise.Cloud()
	case render.MaterialIce:
		return noise.Icy()
	case render.MaterialEarth:
		return noise.Plain()
	default:
		return noise.Generic()
	}
}

// SolarSystem returns the ten stock bodies, inner orbits first.
func SolarSystem() []*Body {
	return []*Body{
		NewBody("Sol", 6.0, 0, 0, 0, 0xFFFF00, render.MaterialSun),
		NewBody("Mercurio", 0.7, 5.0, 0.04, 0.1, 0xFFC300, render.MaterialGasSwirl),
		NewBody("Venus", 1.0, 6.5, 0.03, 0.08, 0xE24E42, render.MaterialLava),
		NewBody("Tierra", 1.2, 8.0, 0.02, 0.07, 0x0077BE, render.MaterialEarth),
		NewBody("Luna", 0.3, 8.2, 0.1, 0.1, 0xAAAAAA, render.MaterialMoon),
		NewBody("Marte", 0.8, 9.8, 0.01, 0.05, 0xD95D39, render.MaterialRocky),
		NewBody("Júpiter", 5.0, 14.0, 0.005, 0.03, 0xFFF9A6, render.MaterialIce),
		NewBody("Saturno", 4.0, 20.0, 0.004, 0.02, 0xC49C48, render.MaterialWave),
		NewBody("Urano", 3.0, 25.0, 0.003, 0.01, 0x7EC8F7, render.MaterialDynamicSurface),
		NewBody("Neptuno", 3.0, 29.0, 0.002, 0.009, 0x4A6DCD, render.MaterialAtmosphere),
	}
}
