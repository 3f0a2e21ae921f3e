package grid

import (
	"math"
	"reflect"
	"testing"

	"fieldviz/sketch/vmath"
)

func TestGenerateEightPointCube(t *testing.T) {
	pts := Generate(8, 2, 3)
	want := []vmath.Vec3{
		{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 0},
		{X: -1, Y: 0, Z: -1}, {X: -1, Y: 0, Z: 0},
		{X: 0, Y: -1, Z: -1}, {X: 0, Y: -1, Z: 0},
		{X: 0, Y: 0, Z: -1}, {X: 0, Y: 0, Z: 0},
	}
	if !reflect.DeepEqual(pts, want) {
		t.Fatalf("grid=%v\nwant %v", pts, want)
	}
}

func TestGenerateCardinality(t *testing.T) {
	tests := []struct {
		n    int
		span float64
		dims int
	}{
		{n: 1000, span: 10, dims: 3},
		{n: 1000, span: 20, dims: 2},
		{n: 10, span: 10, dims: 3},
		{n: 50, span: 3, dims: 2},
		{n: 27, span: 0.5, dims: 3},
		{n: 1, span: 4, dims: 3},
	}
	for _, tt := range tests {
		pts := Generate(tt.n, tt.span, tt.dims)
		d := tt.span / vmath.NthRoot(float64(tt.n), tt.dims)
		k := int(math.Floor(tt.span/d + eps))
		want := int(math.Pow(float64(k), float64(tt.dims)))
		if len(pts) != want {
			t.Fatalf("Generate(%d,%v,%d) len=%d, want %d", tt.n, tt.span, tt.dims, len(pts), want)
		}
		if got := Count(tt.n, tt.span, tt.dims); got != want {
			t.Fatalf("Count(%d,%v,%d)=%d, want %d", tt.n, tt.span, tt.dims, got, want)
		}
	}
}

func TestGenerateKnownCounts(t *testing.T) {
	if got := len(Generate(1000, 10, 3)); got != 1000 {
		t.Fatalf("1000 points in 3D gave %d", got)
	}
	if got := len(Generate(10, 10, 3)); got != 8 {
		t.Fatalf("10 points in 3D gave %d, want 8", got)
	}
	if got := len(Generate(1000, 20, 2)); got != 961 {
		t.Fatalf("1000 points in 2D gave %d, want 961", got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(343, 7, 3)
	b := Generate(343, 7, 3)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("grid not deterministic")
	}
}

func TestGenerateStaysInsideDomain(t *testing.T) {
	span := 10.0
	for _, p := range Generate(1000, span, 3) {
		for _, c := range []float64{p.X, p.Y, p.Z} {
			if c < -span/2 || c >= span/2 {
				t.Fatalf("coordinate %v outside [-%v,%v)", c, span/2, span/2)
			}
		}
	}
	for _, p := range Generate(100, span, 2) {
		if p.Z != 0 {
			t.Fatalf("planar grid point has z=%v", p.Z)
		}
	}
}

func TestGenerateDegenerate(t *testing.T) {
	tests := []struct {
		n    int
		span float64
	}{
		{n: 0, span: 10},
		{n: -5, span: 10},
		{n: 100, span: 0},
		{n: 100, span: -4},
		{n: 100, span: math.NaN()},
	}
	for _, tt := range tests {
		if pts := Generate(tt.n, tt.span, 3); len(pts) != 0 {
			t.Fatalf("Generate(%d,%v) len=%d, want 0", tt.n, tt.span, len(pts))
		}
		if c := Count(tt.n, tt.span, 3); c != 0 {
			t.Fatalf("Count(%d,%v)=%d, want 0", tt.n, tt.span, c)
		}
	}
}
