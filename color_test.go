package caricon

import (
	"image/color"
	"testing"
)

// Verify at compile time that RGBA implements color.Color.
var _ color.Color = RGBA{}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want color.NRGBA
	}{
		{"six digits", "#0f172a", color.NRGBA{0x0f, 0x17, 0x2a, 0xff}},
		{"no hash", "6366f1", color.NRGBA{0x63, 0x66, 0xf1, 0xff}},
		{"upper case", "#1E293B", color.NRGBA{0x1e, 0x29, 0x3b, 0xff}},
		{"three digits", "#fa0", color.NRGBA{0xff, 0xaa, 0x00, 0xff}},
		{"four digits", "#fa08", color.NRGBA{0xff, 0xaa, 0x00, 0x88}},
		{"eight digits", "#47556980", color.NRGBA{0x47, 0x55, 0x69, 0x80}},
		{"bad length", "#12345", color.NRGBA{0, 0, 0, 0xff}},
		{"bad digit", "#zz0000", color.NRGBA{0, 0, 0, 0xff}},
		{"empty", "", color.NRGBA{0, 0, 0, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex).NRGBA(); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          RGBA
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 65535},
		{"opaque white", White, 65535, 65535, 65535, 65535},
		{"transparent", Transparent, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestNRGBARoundsAndClamps(t *testing.T) {
	c := RGBA{R: 15.0 / 255, G: -0.5, B: 2, A: 0.5}
	got := c.NRGBA()
	want := color.NRGBA{R: 15, G: 0, B: 255, A: 128}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	for _, c := range []RGBA{BackgroundColor, BodyColor, WindowColor, TireColor, HubColor} {
		n := c.NRGBA()
		if got := FromColor(n).NRGBA(); got != n {
			t.Errorf("FromColor(%v).NRGBA() = %v", n, got)
		}
	}
}
