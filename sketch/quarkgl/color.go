package quarkgl

import "image/color"

// Color is an RGBA color in 8-bit channels, not premultiplied.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// FromNRGBA converts a palette color.
func FromNRGBA(c color.NRGBA) Color { return Color{R: c.R, G: c.G, B: c.B, A: c.A} }

// Over composites c over dst and returns an opaque result.
func (c Color) Over(dst Color) Color {
	a := uint32(c.A)
	ia := 255 - a
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*ia + 127) / 255)
	}
	return Color{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: 0xFF}
}
