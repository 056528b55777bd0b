// Package noise provides the deterministic noise generators that drive the
// procedural planet shaders. Generators are built once at scene setup and
// shared read-only across frames; all of them return values in [-1, 1] and
// reproduce the same output for the same inputs and seed.
package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Generator is the sampling interface the render core consumes.
type Generator interface {
	// Noise2 samples 2D noise at (x, y), returning a value in [-1, 1].
	Noise2(x, y float64) float64
	// Noise3 samples 3D noise at (x, y, z), returning a value in [-1, 1].
	Noise3(x, y, z float64) float64
}

// Simplex wraps an OpenSimplex generator with a frequency applied to the
// input coordinates before sampling.
type Simplex struct {
	noise     opensimplex.Noise
	frequency float64
}

// NewSimplex creates a simplex generator with the given seed and frequency.
func NewSimplex(seed int64, frequency float64) *Simplex {
	return &Simplex{
		noise:     opensimplex.New(seed),
		frequency: frequency,
	}
}

// Noise2 implements Generator.
func (s *Simplex) Noise2(x, y float64) float64 {
	f := s.frequency
	return clamp(s.noise.Eval2(x*f, y*f))
}

// Noise3 implements Generator.
func (s *Simplex) Noise3(x, y, z float64) float64 {
	f := s.frequency
	return clamp(s.noise.Eval3(x*f, y*f, z*f))
}

// Perlin wraps a Perlin generator, optionally with fractal layering
// (multiple octaves summed with halving amplitude and doubling frequency).
type Perlin struct {
	noise     *perlin.Perlin
	frequency float64
	octaves   int
}

// Perlin fractal defaults matching the classic fBm parameters: gain 0.5
// (alpha 2) and lacunarity 2 (beta 2).
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
)

// NewPerlin creates a plain single-octave Perlin generator.
func NewPerlin(seed int64, frequency float64) *Perlin {
	return &Perlin{
		noise:     perlin.NewPerlin(perlinAlpha, perlinBeta, 1, seed),
		frequency: frequency,
		octaves:   1,
	}
}

// NewPerlinFBm creates a fractal-Brownian-motion Perlin generator with the
// given number of octaves.
func NewPerlinFBm(seed int64, frequency float64, octaves int) *Perlin {
	if octaves < 1 {
		octaves = 1
	}
	return &Perlin{
		noise:     perlin.NewPerlin(perlinAlpha, perlinBeta, 1, seed),
		frequency: frequency,
		octaves:   octaves,
	}
}

// Noise2 implements Generator.
func (p *Perlin) Noise2(x, y float64) float64 {
	return clamp(p.fbm(func(f float64) float64 {
		return p.noise.Noise2D(x*f, y*f)
	}))
}

// Noise3 implements Generator.
func (p *Perlin) Noise3(x, y, z float64) float64 {
	return clamp(p.fbm(func(f float64) float64 {
		return p.noise.Noise3D(x*f, y*f, z*f)
	}))
}

// fbm sums octaves of the sampler, halving amplitude and doubling frequency
// each layer, normalized so the result stays within the single-octave range.
func (p *Perlin) fbm(sample func(frequency float64) float64) float64 {
	freq := p.frequency
	amp := 1.0
	var sum, norm float64
	for range p.octaves {
		sum += sample(freq) * amp
		norm += amp
		freq *= 2
		amp *= 0.5
	}
	return sum / norm
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 || v != v { // NaN guards to the low end
		return -1
	}
	return v
}
