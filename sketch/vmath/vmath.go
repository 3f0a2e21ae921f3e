// Package vmath holds the small float64 vector and 2x2 transform types used by the
// field engine. All operations are value-based: nothing here mutates its operands.
package vmath

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector. Planar sketches keep Z at zero.
type Vec3 struct {
	X, Y, Z float64
}

func V2(x, y float64) Vec2    { return Vec2{X: x, Y: y} }
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Abs() float64         { return math.Hypot(v.X, v.Y) }

// XY0 lifts v into the z=0 plane.
func (v Vec2) XY0() Vec3 { return Vec3{X: v.X, Y: v.Y} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Abs() float64         { return math.Sqrt(v.Dot(v)) }

// XY drops the Z component.
func (v Vec3) XY() Vec2 { return Vec2{X: v.X, Y: v.Y} }

// IsFinite reports whether every component is neither NaN nor infinite.
func (v Vec3) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Mat2 is a 2x2 linear transform in row-major order:
//
//	| A B |
//	| C D |
type Mat2 struct {
	A, B, C, D float64
}

// Diag returns the scaling transform diag(sx, sy).
func Diag(sx, sy float64) Mat2 { return Mat2{A: sx, D: sy} }

func (m Mat2) Det() float64 { return m.A*m.D - m.B*m.C }

// Transform applies m to v.
func (m Mat2) Transform(v Vec2) Vec2 {
	return Vec2{X: m.A*v.X + m.B*v.Y, Y: m.C*v.X + m.D*v.Y}
}

// Inverse returns the inverse of m and false when m is singular.
func (m Mat2) Inverse() (Mat2, bool) {
	det := m.Det()
	if det == 0 || !finite(det) {
		return Mat2{}, false
	}
	inv := 1 / det
	return Mat2{A: m.D * inv, B: -m.B * inv, C: -m.C * inv, D: m.A * inv}, true
}

// InverseTransform applies the inverse of m to v. A singular m maps every
// vector to the zero vector.
func (m Mat2) InverseTransform(v Vec2) Vec2 {
	inv, ok := m.Inverse()
	if !ok {
		return Vec2{}
	}
	return inv.Transform(v)
}

// NthRoot returns the real n-th root of x for x >= 0.
func NthRoot(x float64, n int) float64 {
	switch n {
	case 1:
		return x
	case 2:
		return math.Sqrt(x)
	case 3:
		return math.Cbrt(x)
	}
	return math.Pow(x, 1/float64(n))
}
