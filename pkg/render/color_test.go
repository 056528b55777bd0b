package render

import (
	"math"
	"testing"
)

func TestColorSaturation(t *testing.T) {
	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"add overflow", RGB(200, 200, 200).Add(RGB(200, 200, 200)), RGB(255, 255, 255)},
		{"add partial", RGB(100, 250, 0).Add(RGB(50, 10, 5)), RGB(150, 255, 5)},
		{"scale overflow", RGB(128, 128, 128).Scale(3), RGB(255, 255, 255)},
		{"scale negative", RGB(128, 128, 128).Scale(-1), RGB(0, 0, 0)},
		{"scale nan", RGB(128, 128, 128).Scale(math.NaN()), RGB(0, 0, 0)},
		{"scale identity", RGB(10, 20, 30).Scale(1), RGB(10, 20, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestColorLerp(t *testing.T) {
	a := RGB(0, 0, 0)
	b := RGB(200, 100, 50)

	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"t=0", 0, a},
		{"t=1", 1, b},
		{"midpoint", 0.5, RGB(100, 50, 25)},
		{"clamped low", -5, a},
		{"clamped high", 5, b},
		{"nan", math.NaN(), a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Lerp(b, tt.t); got != tt.want {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	tests := []uint32{0x000000, 0xFFFFFF, 0x0077BE, 0xD95D39, 0xFFC300}
	for _, hex := range tests {
		if got := FromHex(hex).Hex(); got != hex {
			t.Errorf("FromHex(%06X).Hex() = %06X", hex, got)
		}
	}
}

func TestColorToRGBA(t *testing.T) {
	rgba := RGB(10, 20, 30).ToRGBA()
	if rgba.R != 10 || rgba.G != 20 || rgba.B != 30 || rgba.A != 255 {
		t.Errorf("unexpected RGBA %v", rgba)
	}
}
