// Package palette maps trail progress to colors and widths.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Hue draws a hue seed in [start, start+factor).
func Hue(start, factor float64, rng *rand.Rand) float64 {
	return start + rng.Float64()*factor
}

// Lightness returns the HSL lightness in percent used at fraction along a
// newest-first trail: round(50/(fraction+1)).
func Lightness(fraction float64) float64 {
	return math.Round(50 / (fraction + 1))
}

// Fade returns the fully saturated color for hue at fraction along a
// newest-first trail. Fraction 0 is the newest slot.
func Fade(hue, fraction float64) color.NRGBA {
	c := colorful.Hsl(wrapHue(hue), 1, Lightness(fraction)/100)
	return toNRGBA(c, 0xff)
}

// Alpha returns base with its alpha scaled by progress, where progress 0 is
// the oldest point of an oldest-first trail.
func Alpha(base color.NRGBA, progress float64) color.NRGBA {
	base.A = unit8(progress * float64(base.A) / 255)
	return base
}

// Width returns the stroke width at progress: round(width*progress)+1.
func Width(width, progress float64) float64 {
	return math.Round(width*progress) + 1
}

// ParseHex parses "#rrggbb" into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("palette: bad color %q: %w", s, err)
	}
	return toNRGBA(c, 0xff), nil
}

// Hex formats c as "#rrggbb", dropping alpha.
func Hex(c color.NRGBA) string {
	cf, _ := colorful.MakeColor(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	return cf.Hex()
}

func toNRGBA(c colorful.Color, a uint8) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func unit8(f float64) uint8 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= 1:
		return 0xff
	}
	return uint8(math.Round(f * 255))
}
