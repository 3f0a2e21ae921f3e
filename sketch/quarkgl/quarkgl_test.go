package quarkgl

import (
	"math"
	"testing"

	"fieldviz/sketch/vmath"
)

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4RotateY(0.5)
	if got := Mat4Mul(a, b); got != b {
		t.Fatalf("identity*a mismatch")
	}
	if got := Mat4Mul(b, a); got != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestLookAtNotIdentity(t *testing.T) {
	m := Mat4LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	if m == Mat4Identity() {
		t.Fatalf("lookAt unexpectedly identity")
	}
}

func near3(a, b Vec3) bool {
	d := a.Sub(b)
	return Dot(d, d) < 1e-10
}

func TestRotationsFollowRightHand(t *testing.T) {
	const quarter = math.Pi / 2
	tests := []struct {
		m        Mat4
		in, want Vec3
	}{
		{Mat4RotateX(quarter), V3(0, 1, 0), V3(0, 0, 1)},
		{Mat4RotateY(quarter), V3(0, 0, 1), V3(1, 0, 0)},
		{Mat4RotateZ(quarter), V3(1, 0, 0), V3(0, 1, 0)},
	}
	for i, tt := range tests {
		if got := Mat4MulDir(tt.m, tt.in); !near3(got, tt.want) {
			t.Fatalf("%d: got %v want %v", i, got, tt.want)
		}
	}
}

func TestLookAtMovesTargetDownZ(t *testing.T) {
	m := Mat4LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	p := Mat4MulV4(m, Vec4{W: 1})
	if !near3(V3(p.X, p.Y, p.Z), V3(0, 0, -3)) || p.W != 1 {
		t.Fatalf("target in view space %v", p)
	}
	m = Mat4LookAt(V3(5, 0, 0), V3(0, 0, 0), V3(0, 1, 0))
	if got := Mat4MulDir(m, V3(0, 1, 0)); !near3(got, V3(0, 1, 0)) {
		t.Fatalf("up in view space %v", got)
	}
}

func newTarget(w, h int) *RGB565Target {
	return &RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func TestProjectOriginToCenter(t *testing.T) {
	tg := newTarget(101, 101)
	r := NewRenderer(101, 101, false)
	r.Begin(tg, DefaultCamera(20))

	x, y, _, ok := r.Project(V3(0, 0, 0))
	if !ok || x != 50 || y != 50 {
		t.Fatalf("origin projected to (%d,%d,%v)", x, y, ok)
	}
	if _, _, _, ok := r.Project(V3(0, 0, 30)); ok {
		t.Fatalf("point behind the camera projected")
	}
	nan := Scalar(math.NaN())
	if _, _, _, ok := r.Project(V3(nan, 0, 0)); ok {
		t.Fatalf("NaN point projected")
	}
}

func TestPointDrawsAtCenter(t *testing.T) {
	tg := newTarget(64, 64)
	r := NewRenderer(64, 64, true)
	r.Begin(tg, DefaultCamera(20))
	r.Point(V3(0, 0, 0), 0, RGB(255, 255, 255))
	x, y, _, _ := r.Project(V3(0, 0, 0))
	if got := tg.pixel(x, y); got != RGB(255, 255, 255) {
		t.Fatalf("center pixel=%v", got)
	}
	if got := tg.pixel(0, 0); got != RGB(0, 0, 0) {
		t.Fatalf("corner pixel=%v", got)
	}
}

func TestScreenLineEndpoints(t *testing.T) {
	tg := newTarget(16, 16)
	r := NewRenderer(16, 16, false)
	r.BeginScreen(tg)
	r.ScreenLine(1, 1, 10, 6, 1, RGB(255, 0, 0))
	for _, p := range [][2]int{{1, 1}, {10, 6}} {
		if got := tg.pixel(p[0], p[1]); got.R != 255 {
			t.Fatalf("endpoint %v not drawn: %v", p, got)
		}
	}
}

func TestBlendOverBlack(t *testing.T) {
	tg := newTarget(2, 1)
	tg.Clear(RGB(0, 0, 0))
	tg.SetPixel(0, 0, RGBA(255, 255, 255, 128))
	got := tg.pixel(0, 0)
	if got.R < 120 || got.R > 136 {
		t.Fatalf("half white over black=%v", got)
	}
	tg.SetPixel(1, 0, RGBA(255, 255, 255, 0))
	if got := tg.pixel(1, 0); got != RGB(0, 0, 0) {
		t.Fatalf("transparent write changed pixel: %v", got)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	for _, c := range []Color{RGB(0, 0, 0), RGB(255, 255, 255), RGB(132, 0, 0), RGB(0, 130, 0)} {
		r, g, b := rgb888From565(rgb565From888(c.R, c.G, c.B))
		if RGB(r, g, b) != c {
			t.Fatalf("round trip %v -> %v", c, RGB(r, g, b))
		}
	}
}

func TestFlyControllerMoves(t *testing.T) {
	fc := FlyController{Position: V3(0, 0, 20), MovementSpeed: 5, RollSpeed: 0.3}
	fc.Move(1, 0, 0, 1)
	if p := fc.Position; math.Abs(float64(p.Z-15)) > 1e-5 || p.X != 0 {
		t.Fatalf("forward move ended at %v", p)
	}
	fc.Look(1, 0, 0, 1)
	if math.Abs(float64(fc.Yaw-0.3)) > 1e-6 {
		t.Fatalf("yaw=%v", fc.Yaw)
	}
	var cam Camera
	fc.Apply(&cam)
	if cam.Position != fc.Position || cam.Target == cam.Position {
		t.Fatalf("apply produced %+v", cam)
	}
}

func TestOrbitControllerClamps(t *testing.T) {
	oc := OrbitController{Radius: 10, MinRadius: 2, MaxRadius: 30}
	oc.Zoom(-20)
	if oc.Radius != 2 {
		t.Fatalf("radius=%v", oc.Radius)
	}
	var cam Camera
	oc.Apply(&cam)
	if cam.Position != V3(0, 0, 2) {
		t.Fatalf("position=%v", cam.Position)
	}
}

func TestCanvasRoundTrip(t *testing.T) {
	c := NewCanvas(200, 100, 20)
	x, y, ok := c.ToScreen(vmath.V2(0, 0))
	if !ok || x != 100 || y != 50 {
		t.Fatalf("origin at (%d,%d)", x, y)
	}
	x, y, _ = c.ToScreen(vmath.V2(5, 5))
	if x != 150 || y != 25 {
		t.Fatalf("(5,5) at (%d,%d)", x, y)
	}
	if p := c.ToField(150, 25); p != vmath.V2(5, 5) {
		t.Fatalf("ToField=%v", p)
	}
	if c.PixelsPerUnit() != 10 {
		t.Fatalf("scale=%v", c.PixelsPerUnit())
	}
	if _, _, ok := c.ToScreen(vmath.V2(math.Inf(1), 0)); ok {
		t.Fatalf("infinite point mapped")
	}
}
