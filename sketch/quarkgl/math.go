package quarkgl

import (
	"math"

	"fieldviz/sketch/vmath"
)

// Scalar is the numeric type used by the render math. Simulation state stays in
// float64; it is narrowed only on its way to the screen.
type Scalar = float32

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec4 is a 4D vector.
type Vec4 struct {
	X, Y, Z, W Scalar
}

// Mat4 is a column-major 4x4 matrix: m[col*4+row].
type Mat4 [16]Scalar

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// FromVec narrows a simulation vector.
func FromVec(v vmath.Vec3) Vec3 { return Vec3{X: Scalar(v.X), Y: Scalar(v.Y), Z: Scalar(v.Z)} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Len(v Vec3) Scalar {
	return Scalar(math.Sqrt(float64(Dot(v, v))))
}

func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

func Mat4Identity() Mat4 {
	var m Mat4
	for i := 0; i < 16; i += 5 {
		m[i] = 1
	}
	return m
}

// Mat4Mul returns a*b: each column of b transformed by a.
func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 16; col += 4 {
		c := Mat4MulV4(a, Vec4{X: b[col], Y: b[col+1], Z: b[col+2], W: b[col+3]})
		out[col], out[col+1], out[col+2], out[col+3] = c.X, c.Y, c.Z, c.W
	}
	return out
}

func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Mat4MulDir rotates v by the upper 3x3 block of m.
func Mat4MulDir(m Mat4, v Vec3) Vec3 {
	p := Mat4MulV4(m, Vec4{X: v.X, Y: v.Y, Z: v.Z})
	return Vec3{X: p.X, Y: p.Y, Z: p.Z}
}

// planeRotation turns axis a toward axis b by rad, leaving the others fixed.
func planeRotation(a, b int, rad Scalar) Mat4 {
	sin, cos := math.Sincos(float64(rad))
	m := Mat4Identity()
	m[a*4+a], m[b*4+b] = Scalar(cos), Scalar(cos)
	m[a*4+b], m[b*4+a] = Scalar(sin), -Scalar(sin)
	return m
}

func Mat4RotateX(rad Scalar) Mat4 { return planeRotation(1, 2, rad) }
func Mat4RotateY(rad Scalar) Mat4 { return planeRotation(2, 0, rad) }
func Mat4RotateZ(rad Scalar) Mat4 { return planeRotation(0, 1, rad) }

// Mat4LookAt builds a right-handed view matrix looking from eye at target.
func Mat4LookAt(eye, target, up Vec3) Mat4 {
	back := Normalize(eye.Sub(target))
	right := Normalize(Cross(up, back))
	up = Cross(back, right)

	var m Mat4
	for i, axis := range [3]Vec3{right, up, back} {
		m[i], m[4+i], m[8+i] = axis.X, axis.Y, axis.Z
		m[12+i] = -Dot(axis, eye)
	}
	m[15] = 1
	return m
}

// Mat4Perspective maps the view frustum to clip space with depth in -1..1.
func Mat4Perspective(fovY, aspect, near, far Scalar) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	f := Scalar(1 / math.Tan(float64(fovY)/2))
	depth := 1 / (near - far)

	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) * depth
	m[11] = -1
	m[14] = 2 * far * near * depth
	return m
}

func Mat4Ortho(left, right, bottom, top, near, far Scalar) Mat4 {
	w := nonZero(right - left)
	h := nonZero(top - bottom)
	d := nonZero(far - near)

	m := Mat4Identity()
	m[0], m[5], m[10] = 2/w, 2/h, -2/d
	m[12] = -(right + left) / w
	m[13] = -(top + bottom) / h
	m[14] = -(far + near) / d
	return m
}

func nonZero(v Scalar) Scalar {
	if v == 0 {
		return 1
	}
	return v
}
