package palette

import (
	"image/color"
	"math/rand/v2"
	"testing"
)

func TestHueRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 1000; i++ {
		h := Hue(230, 50, rng)
		if h < 230 || h >= 280 {
			t.Fatalf("hue %v outside [230,280)", h)
		}
	}
	if h := Hue(120, 0, rng); h != 120 {
		t.Fatalf("zero factor hue=%v", h)
	}
}

func TestLightness(t *testing.T) {
	tests := []struct {
		fraction float64
		want     float64
	}{
		{0, 50},
		{0.5, 33},
		{0.9, 26},
		{1, 25},
	}
	for _, tt := range tests {
		if got := Lightness(tt.fraction); got != tt.want {
			t.Fatalf("Lightness(%v)=%v, want %v", tt.fraction, got, tt.want)
		}
	}
}

func TestFadeNewestIsPureHue(t *testing.T) {
	if got := Fade(0, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Fatalf("Fade(0,0)=%v", got)
	}
	if got := Fade(360, 0); got != Fade(0, 0) {
		t.Fatalf("hue 360 did not wrap: %v", got)
	}
}

func TestFadeDarkensAlongTrail(t *testing.T) {
	prev := Fade(240, 0)
	for _, f := range []float64{0.25, 0.5, 0.75, 0.99} {
		c := Fade(240, f)
		if c.B > prev.B {
			t.Fatalf("fraction %v brighter than previous: %v > %v", f, c, prev)
		}
		prev = c
	}
}

func TestAlpha(t *testing.T) {
	base := color.NRGBA{R: 0xc6, G: 0x8f, B: 0xff, A: 0xff}
	tests := []struct {
		progress float64
		want     uint8
	}{
		{0, 0},
		{0.5, 128},
		{1, 255},
		{2, 255},
		{-1, 0},
	}
	for _, tt := range tests {
		got := Alpha(base, tt.progress)
		if got.A != tt.want || got.R != base.R || got.G != base.G || got.B != base.B {
			t.Fatalf("Alpha(%v)=%v, want alpha %d", tt.progress, got, tt.want)
		}
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		w, p, want float64
	}{
		{8, 0, 1},
		{8, 0.5, 5},
		{8, 1, 9},
		{0, 1, 1},
	}
	for _, tt := range tests {
		if got := Width(tt.w, tt.p); got != tt.want {
			t.Fatalf("Width(%v,%v)=%v, want %v", tt.w, tt.p, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#C68FFF")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if c != (color.NRGBA{R: 0xc6, G: 0x8f, B: 0xff, A: 0xff}) {
		t.Fatalf("ParseHex=%v", c)
	}
	if got := Hex(c); got != "#c68fff" {
		t.Fatalf("Hex=%q", got)
	}
	if _, err := ParseHex("purple"); err == nil {
		t.Fatalf("ParseHex accepted a name")
	}
}
