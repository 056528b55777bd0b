package noise

// Per-body presets. Seeds and parameters are part of each body's look and
// are fixed so renders are reproducible.

// Generic returns the default Perlin generator used by bodies without a
// dedicated preset.
func Generic() Generator {
	return NewPerlin(1337, 0.05)
}

// Plain returns an unscaled simplex generator (frequency 1), used by the
// earth shader's surface and cloud layers.
func Plain() Generator {
	return NewSimplex(1337, 1)
}

// Lava returns a low-frequency, heavily layered Perlin generator. The many
// octaves give the molten surface its turbulent feel.
func Lava() Generator {
	return NewPerlinFBm(42, 0.002, 6)
}

// GasGiant returns a low-frequency simplex generator producing large, soft
// band features.
func GasGiant() Generator {
	return NewSimplex(4242, 0.02)
}

// Ground returns a layered generator for cracked rocky terrain.
func Ground() Generator {
	return NewPerlinFBm(1337, 0.05, 5)
}

// Cloud returns a simplex generator for cloud cover.
func Cloud() Generator {
	return NewSimplex(1337, 1)
}

// Icy returns a higher-frequency layered generator for ice sheets.
func Icy() Generator {
	return NewPerlinFBm(7890, 0.08, 3)
}
