package quarkgl

// Renderer rasterizes points and lines through a camera.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Depth      bool
	ClearColor Color

	depthBuf []float32

	t    Target
	w, h int
	mvp  Mat4
	// focal is the projection's vertical scale, used to size points.
	focal Scalar
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on {
		r.depthBuf = nil
		return
	}
	if w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Begin clears t and prepares to draw through cam. Draw calls before Begin are
// ignored.
func (r *Renderer) Begin(t Target, cam Camera) {
	r.t = nil
	if t == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)
	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}
	aspect := Scalar(float32(w) / float32(h))
	proj := cam.Projection(aspect)
	r.t, r.w, r.h = t, w, h
	r.mvp = Mat4Mul(proj, cam.View())
	r.focal = proj[5]
}

// Project maps a world point to screen coordinates and NDC depth. ok is false
// for points behind the camera or with non-finite coordinates.
func (r *Renderer) Project(p Vec3) (x, y int, z float32, ok bool) {
	c := Mat4MulV4(r.mvp, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	if c.W <= 0 {
		return 0, 0, 0, false
	}
	ndc, ok := clipToNDC(c)
	if !ok || !finite(ndc.X) || !finite(ndc.Y) {
		return 0, 0, 0, false
	}
	// Keep wildly off-screen points from overflowing int conversion.
	if ndc.X < -64 || ndc.X > 64 || ndc.Y < -64 || ndc.Y > 64 {
		return 0, 0, 0, false
	}
	x, y = ndcToScreen(ndc, r.w, r.h)
	return x, y, ndc.Z, true
}

// Point draws a square splat of world-space size around p.
func (r *Renderer) Point(p Vec3, size Scalar, c Color) {
	if r.t == nil {
		return
	}
	x, y, z, ok := r.Project(p)
	if !ok {
		return
	}
	cw := Mat4MulV4(r.mvp, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1}).W
	px := size * r.focal / cw * Scalar(r.h) / 2
	r.splat(x, y, z, int(px+0.5), c)
}

// Line draws a segment between two world points with a pixel width.
func (r *Renderer) Line(a, b Vec3, width Scalar, c Color) {
	r.LineGradient(a, b, width, c, c)
}

// LineGradient is Line with colors interpolated from ca to cb.
func (r *Renderer) LineGradient(a, b Vec3, width Scalar, ca, cb Color) {
	if r.t == nil {
		return
	}
	x0, y0, z0, ok0 := r.Project(a)
	x1, y1, z1, ok1 := r.Project(b)
	if !ok0 || !ok1 {
		return
	}
	r.drawLine(x0, y0, z0, x1, y1, z1, int(width+0.5), ca, cb)
}

// Polyline draws consecutive segments of pts. colors and widths are per vertex;
// each segment uses the values of its first vertex blended toward the second.
// A nil widths slice draws one-pixel lines.
func (r *Renderer) Polyline(pts []Vec3, colors []Color, widths []Scalar) {
	if r.t == nil || len(pts) < 2 || len(colors) < len(pts) {
		return
	}
	for i := 0; i+1 < len(pts); i++ {
		w := Scalar(1)
		if i < len(widths) {
			w = widths[i]
		}
		r.LineGradient(pts[i], pts[i+1], w, colors[i], colors[i+1])
	}
}

// ScreenLine draws a segment in pixel coordinates, bypassing the camera.
func (r *Renderer) ScreenLine(x0, y0, x1, y1 int, width Scalar, c Color) {
	if r.t == nil {
		return
	}
	r.drawLine(x0, y0, 0, x1, y1, 0, int(width+0.5), c, c)
}

// ScreenPoint draws a square of the given pixel radius, bypassing the camera.
func (r *Renderer) ScreenPoint(x, y, radius int, c Color) {
	if r.t == nil {
		return
	}
	r.splat(x, y, 0, radius, c)
}

// BeginScreen clears t and prepares for screen-space drawing only.
func (r *Renderer) BeginScreen(t Target) {
	r.t = nil
	if t == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)
	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}
	r.t, r.w, r.h = t, w, h
	r.mvp = Mat4Identity()
	r.focal = 1
}

type ndcPoint struct {
	X, Y, Z float32
}

func clipToNDC(p Vec4) (ndcPoint, bool) {
	if p.W == 0 {
		return ndcPoint{}, false
	}
	invW := 1.0 / p.W
	return ndcPoint{
		X: p.X * invW,
		Y: p.Y * invW,
		Z: p.Z * invW,
	}, true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func finite(f float32) bool { return f == f && f-f == 0 }

func (r *Renderer) depthTest(x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= r.w {
		return false
	}
	idx := y*r.w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := z*0.5 + 0.5
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	if d > r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) plot(x, y int, z float32, c Color) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	if !r.depthTest(x, y, z) {
		return
	}
	r.t.SetPixel(x, y, c)
}

func (r *Renderer) splat(x, y int, z float32, radius int, c Color) {
	if radius <= 0 {
		r.plot(x, y, z, c)
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			r.plot(x+dx, y+dy, z, c)
		}
	}
}

func (r *Renderer) drawLine(x0, y0 int, z0 float32, x1, y1 int, z1 float32, width int, c0, c1 Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	steps := max(dx, -dy)
	half := (width - 1) / 2
	err := dx + dy
	for i := 0; ; i++ {
		t := float32(0)
		if steps > 0 {
			t = float32(i) / float32(steps)
		}
		c := c0
		if c0 != c1 {
			c = lerpColor(c0, c1, t)
		}
		r.splat(x0, y0, z0+(z1-z0)*t, half, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func lerpColor(a, b Color, t float32) Color {
	l := func(x, y uint8) uint8 {
		return uint8(clampF32(float32(x)+(float32(y)-float32(x))*t+0.5, 0, 255))
	}
	return Color{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
