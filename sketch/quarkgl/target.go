package quarkgl

// Target is a minimal pixel target for software rendering.
//
// Implementations clip out-of-bounds coordinates and blend colors whose alpha
// is below 255 over the existing pixel.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}
