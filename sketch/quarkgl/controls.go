package quarkgl

// OrbitController orbits a camera around a target point.
type OrbitController struct {
	Target Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar
}

func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.Radius
	if r == 0 {
		r = Scalar(3)
	}
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}

	m := Mat4Mul(Mat4RotateY(c.Yaw), Mat4RotateX(c.Pitch))
	p := Mat4MulV4(m, Vec4{X: 0, Y: 0, Z: r, W: 1})

	cam.Position = c.Target.Add(V3(p.X, p.Y, p.Z))
	cam.Target = c.Target
	cam.Up = V3(0, 1, 0)
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
}

func (c *OrbitController) Zoom(delta Scalar) {
	c.Radius += delta
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}

// FlyController moves a free camera. Translation is scaled by MovementSpeed
// and rotation by RollSpeed, both per second of dt.
type FlyController struct {
	Position Vec3
	Yaw      Scalar
	Pitch    Scalar
	Roll     Scalar

	MovementSpeed Scalar
	RollSpeed     Scalar
}

func (c *FlyController) orientation() Mat4 {
	return Mat4Mul(Mat4RotateY(c.Yaw), Mat4Mul(Mat4RotateX(c.Pitch), Mat4RotateZ(c.Roll)))
}


// Move translates along the camera's own axes. Each argument is -1..1.
func (c *FlyController) Move(forward, right, up, dt Scalar) {
	o := c.orientation()
	step := c.MovementSpeed * dt
	d := Mat4MulDir(o, V3(0, 0, -1)).Mul(forward).
		Add(Mat4MulDir(o, V3(1, 0, 0)).Mul(right)).
		Add(Mat4MulDir(o, V3(0, 1, 0)).Mul(up))
	c.Position = c.Position.Add(d.Mul(step))
}

// Look turns the camera. Each argument is -1..1.
func (c *FlyController) Look(yaw, pitch, roll, dt Scalar) {
	step := c.RollSpeed * dt
	c.Yaw += yaw * step
	c.Pitch += pitch * step
	c.Roll += roll * step
}

func (c *FlyController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	o := c.orientation()
	cam.Position = c.Position
	cam.Target = c.Position.Add(Mat4MulDir(o, V3(0, 0, -1)))
	cam.Up = Mat4MulDir(o, V3(0, 1, 0))
}
