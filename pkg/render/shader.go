package render

import (
	"math"
	"math/rand"

	"github.com/solterm/planetarium/pkg/math3d"
)

// Material selects which procedural surface a fragment is shaded with.
// Values outside the known set fall through to the flat vertex color.
type Material int

const (
	MaterialLava Material = iota
	MaterialGasSwirl
	MaterialSun
	MaterialRocky
	MaterialGasGiant
	MaterialIce
	MaterialWave
	MaterialMoon
	MaterialAtmosphere
	MaterialDynamicSurface
	MaterialEarth
	MaterialTextured
)

// Shade computes the final color of a fragment for the given material.
// Same fragment, uniforms and material always produce the same color;
// the only randomness (the gas swirl speckle) is reseeded per fragment
// from its position and the frame clock.
func Shade(frag Fragment, u *Uniforms, mat Material) Color {
	switch mat {
	case MaterialLava:
		return shadeLava(frag, u)
	case MaterialGasSwirl:
		return shadeGasSwirl(frag, u)
	case MaterialSun:
		return shadeSun(frag, u)
	case MaterialRocky:
		return shadeRocky(frag, u)
	case MaterialGasGiant:
		return shadeGasGiant(frag, u)
	case MaterialIce:
		return shadeIce(frag, u)
	case MaterialWave:
		return shadeWave(frag, u)
	case MaterialMoon:
		return shadeMoon(frag, u)
	case MaterialAtmosphere:
		return shadeAtmosphere(frag, u)
	case MaterialDynamicSurface:
		return shadeDynamicSurface(frag, u)
	case MaterialEarth:
		return shadeEarth(frag, u)
	case MaterialTextured:
		return shadeTextured(frag, u)
	default:
		return frag.Color
	}
}

// shadeLava renders molten rock: two offset noise fields averaged for
// smoother transitions, with the sample depth pulsating slowly so the
// bright spots grow and shrink.
func shadeLava(frag Fragment, u *Uniforms) Color {
	bright := RGB(255, 240, 0)
	dark := RGB(130, 20, 0)

	pos := math3d.V3(frag.Position.X, frag.Position.Y, frag.Depth)

	const (
		baseFrequency    = 0.2
		pulsateAmplitude = 0.5
		zoom             = 1000.0
	)
	t := float64(u.Time) * 0.01
	pulsate := math.Sin(t*baseFrequency) * pulsateAmplitude

	n1 := u.Noise.Noise3(pos.X*zoom, pos.Y*zoom, (pos.Z+pulsate)*zoom)
	n2 := u.Noise.Noise3((pos.X+1000)*zoom, (pos.Y+1000)*zoom, (pos.Z+1000+pulsate)*zoom)
	n := (n1 + n2) * 0.5

	return dark.Lerp(bright, n).Scale(frag.Intensity)
}

// shadeGasSwirl renders a cloud-banded gas planet with a per-fragment
// speckle. The speckle RNG is seeded from |time * y * x| truncated to
// an integer, so a given fragment flickers deterministically with the
// frame clock.
func shadeGasSwirl(frag Fragment, u *Uniforms) Color {
	seed := float64(u.Time) * frag.Position.Y * frag.Position.X
	rng := rand.New(rand.NewSource(int64(math.Abs(seed))))
	speckle := rng.Intn(101)

	base := RGB(70, 130, 180)
	cloud := RGB(255, 255, 255)
	shadow := RGB(50, 50, 100)

	n := u.Noise.Noise2(frag.Position.X*5, frag.Position.Z*5)
	cloudFactor := (n*0.5 + 0.5) * (n*0.5 + 0.5)

	var planet Color
	if speckle < 50 {
		planet = base.Scale(1 - cloudFactor).Add(cloud.Scale(cloudFactor))
	} else {
		planet = cloud.Scale(cloudFactor)
	}

	shadowFactor := math.Max(0, 1-n)
	final := planet.Add(shadow.Scale(shadowFactor * 0.3))

	glow := RGB(200, 200, 255)
	glowFactor := 1 - clampf(frag.Position.Y/10, 0, 1)
	return final.Add(glow.Scale(glowFactor * 0.1))
}

func shadeSun(frag Fragment, u *Uniforms) Color {
	const zoom = 50.0
	t := float64(u.Time) * 0.01
	pos := frag.Position

	n := u.Noise.Noise2(pos.X*zoom+t, pos.Y*zoom+t)

	bright := RGB(255, 255, 102)
	darkSpot := RGB(139, 0, 0)
	base := RGB(255, 69, 0)

	const spotThreshold = 0.6
	spot := bright
	if n >= spotThreshold {
		spot = darkSpot
	}

	glow := RGB(255, 69, 0)
	glowFactor := clampf(1-pos.Len()/10, 0, 1)

	final := base.Lerp(spot, clampf(n, 0, 1))
	return final.Add(glow.Scale(glowFactor * 0.1 * frag.Intensity))
}

func shadeRocky(frag Fragment, u *Uniforms) Color {
	pos := frag.Position

	base := RGB(139, 69, 19)
	crater := RGB(105, 105, 105)

	craterNoise := math.Abs(u.Noise.Noise3(pos.X*10, pos.Y*10, pos.Z*10))
	craterFactor := clampf(craterNoise-0.5, 0, 1)
	craterFactor *= craterFactor

	return base.Lerp(crater, craterFactor).Scale(frag.Intensity)
}

// shadeGasGiant renders horizontal latitude bands modulated by
// turbulence noise, with a faint atmospheric glow near the core.
func shadeGasGiant(frag Fragment, u *Uniforms) Color {
	pos := frag.Position

	base := RGB(70, 130, 180)
	band := RGB(255, 255, 255)

	bandFactor := math.Abs(math.Sin(pos.Y * 10))
	turbulence := math.Abs(u.Noise.Noise3(pos.X*5, pos.Y*5, float64(u.Time)*0.01))

	gas := base.Lerp(band, bandFactor*turbulence)

	glow := RGB(200, 200, 255)
	glowFactor := clampf(1-pos.Len()/10, 0, 1)
	return gas.Add(glow.Scale(glowFactor * 0.1))
}

func shadeIce(frag Fragment, u *Uniforms) Color {
	pos := frag.Position

	base := RGB(240, 248, 255)
	ice := RGB(173, 216, 230)

	n := u.Noise.Noise3(pos.X*5, pos.Y*5, pos.Z*5)
	iceFactor := (n*0.5 + 0.5) * (n*0.5 + 0.5)

	iced := base.Lerp(ice, iceFactor)

	glow := RGB(200, 200, 255)
	glowFactor := clampf(1-pos.Len()/10, 0, 1)
	return iced.Add(glow.Scale(glowFactor * 0.1))
}

// shadeWave renders concentric ripples expanding from the origin of the
// fragment's XY plane.
func shadeWave(frag Fragment, u *Uniforms) Color {
	pos := frag.Position

	const (
		waveSpeed     = 0.3
		waveFrequency = 10.0
		waveAmplitude = 0.07
	)
	t := float64(u.Time) * waveSpeed

	distance := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y)
	ripple := math.Sin(waveFrequency*(distance-t)) * waveAmplitude

	base := RGB(70, 130, 180)
	rippleColor := RGB(173, 216, 230)

	return base.Lerp(rippleColor, clampf(ripple, 0, 1)).Scale(frag.Intensity)
}

func shadeMoon(frag Fragment, u *Uniforms) Color {
	const zoom = 50.0
	t := float64(u.Time) * 0.1
	pulsate := math.Sin(t*0.5) * 0.05

	n := u.Noise.Noise2(frag.Position.X*zoom+t, frag.Position.Y*zoom+t)

	gray := RGB(200, 200, 200)
	brightCrater := RGB(220, 220, 220)
	dynamic := RGB(250, 250, 250)

	craterThreshold := 0.4 + pulsate

	base := dynamic
	switch {
	case n > craterThreshold:
		base = gray
	case n > craterThreshold-0.1:
		base = brightCrater
	}

	return base.Scale(frag.Intensity)
}

func shadeAtmosphere(frag Fragment, u *Uniforms) Color {
	n := u.Noise.Noise3(frag.Position.X*5, frag.Position.Y*5, float64(u.Time)*0.02)

	base := RGB(70, 130, 180)
	cloud := RGB(255, 255, 255)

	return base.Lerp(cloud, (n+1)/2)
}

func shadeDynamicSurface(frag Fragment, u *Uniforms) Color {
	n := u.Noise.Noise3(frag.Position.X*3, frag.Position.Z*3, float64(u.Time)*0.01)

	land := RGB(34, 139, 34)
	water := RGB(30, 144, 255)

	return land.Lerp(water, (n+1)/2)
}

// shadeEarth layers a biome map (ocean, desert, land, polar snow) under
// drifting clouds. Both layers scroll with the frame clock.
func shadeEarth(frag Fragment, u *Uniforms) Color {
	const zoom = 80.0
	x, y := frag.Position.X, frag.Position.Y
	t := float64(u.Time) * 0.1

	surfaceNoise := u.Noise.Noise2(x*zoom+t, y*zoom)

	ocean := RGB(0, 105, 148)
	land := RGB(34, 139, 34)
	desert := RGB(210, 180, 140)
	snow := RGB(255, 250, 250)

	const (
		snowThreshold   = 0.7
		landThreshold   = 0.4
		desertThreshold = 0.3
	)

	base := ocean
	switch {
	case math.Abs(y) > snowThreshold:
		base = snow
	case surfaceNoise > landThreshold:
		base = land
	case surfaceNoise > desertThreshold:
		base = desert
	}

	const cloudZoom = 100.0
	cloudNoise := u.Noise.Noise2(x*cloudZoom+t*0.5, y*cloudZoom+t*0.5)

	cloud := RGB(255, 255, 255)
	sky := RGB(135, 206, 250)

	cloudIntensity := clampf(cloudNoise, 0.4, 0.7) - 0.4
	final := base.Lerp(sky, 0.1)
	if cloudNoise > 0.6 {
		final = base.Lerp(cloud, cloudIntensity*0.5)
	}

	return final.Scale(frag.Intensity)
}

// shadeTextured samples the bound texture and lights it with the normal
// map when one is present. With no texture bound it degrades to the
// flat vertex color.
func shadeTextured(frag Fragment, u *Uniforms) Color {
	if u.Texture == nil {
		return frag.Color.Scale(frag.Intensity)
	}
	intensity := frag.Intensity
	if u.NormalMap != nil {
		intensity = tangentLighting(frag, u.NormalMap)
	}
	return u.Texture.Sample(frag.UV.X, frag.UV.Y).Scale(intensity)
}

// tangentLighting perturbs the surface normal with a tangent-space
// normal map and returns the diffuse term against the view-axis light.
// The tangent basis is derived from the world up axis, falling back to
// the forward axis near the poles where up and normal align.
func tangentLighting(frag Fragment, nm *NormalMap) float64 {
	tangentNormal := nm.Sample(frag.UV.X, frag.UV.Y)

	normal := frag.Normal.Normalize()

	var tangent math3d.Vec3
	if math.Abs(normal.Y) < 0.999 {
		tangent = math3d.Up().Cross(normal).Normalize()
	} else {
		tangent = math3d.V3(0, 0, 1).Cross(normal).Normalize()
	}
	bitangent := normal.Cross(tangent).Normalize()

	tbn := math3d.Mat3FromBasis(tangent, bitangent, normal)
	worldNormal := tbn.MulVec3(tangentNormal).Normalize()

	return math.Max(0, worldNormal.Z)
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
