package quarkgl

import (
	"math"

	"fieldviz/sketch/vmath"
)

// Canvas maps planar field coordinates to pixels: the origin sits at the
// center of the target, y points up, and span field units fill each axis.
type Canvas struct {
	W, H int
	// M takes pixel offsets from the center to field units.
	M vmath.Mat2
}

func NewCanvas(w, h int, span float64) Canvas {
	if w <= 0 || h <= 0 {
		return Canvas{W: w, H: h}
	}
	return Canvas{W: w, H: h, M: vmath.Diag(span/float64(w), span/float64(h))}
}

// ToScreen returns the pixel for p. ok is false for non-finite or far
// off-screen points.
func (c Canvas) ToScreen(p vmath.Vec2) (x, y int, ok bool) {
	q := c.M.InverseTransform(p)
	sx := q.X + float64(c.W)/2
	sy := float64(c.H)/2 - q.Y
	limit := 64 * float64(max(c.W, c.H))
	if math.IsNaN(sx) || math.IsNaN(sy) || math.Abs(sx) > limit || math.Abs(sy) > limit {
		return 0, 0, false
	}
	return int(math.Round(sx)), int(math.Round(sy)), true
}

// ToField is the inverse of ToScreen.
func (c Canvas) ToField(x, y int) vmath.Vec2 {
	return c.M.Transform(vmath.V2(float64(x)-float64(c.W)/2, float64(c.H)/2-float64(y)))
}

// PixelsPerUnit returns the horizontal scale.
func (c Canvas) PixelsPerUnit() float64 {
	if c.M.A == 0 {
		return 0
	}
	return 1 / c.M.A
}
