package app

import (
	"math"

	"fieldviz/sketch/quarkgl"
	"fieldviz/sketch/sim"
)

// Fly keys move the camera as if held for this long.
const flyImpulse = 0.1

const orbitStep = 0.05

type cameraMode uint8

const (
	cameraFly cameraMode = iota
	cameraOrbit
)

func (m cameraMode) String() string {
	if m == cameraOrbit {
		return "orbit"
	}
	return "fly"
}

type cameraRig struct {
	mode  cameraMode
	base  quarkgl.Camera
	fly   quarkgl.FlyController
	orbit quarkgl.OrbitController
}

func newCameraRig(cfg sim.Config) cameraRig {
	const distance = 20
	r := cameraRig{
		base:  quarkgl.DefaultCamera(distance),
		fly:   quarkgl.FlyController{Position: quarkgl.V3(0, 0, distance)},
		orbit: quarkgl.OrbitController{Radius: distance, MinRadius: 1, MaxRadius: 200},
	}
	// Orthographic view frames what the perspective view shows at the origin.
	r.base.OrthoSize = quarkgl.Scalar(distance * math.Tan(float64(r.base.FOVYRad)/2))
	r.sync(cfg)
	return r
}

// sync forwards the navigation settings to the fly controller.
func (r *cameraRig) sync(cfg sim.Config) {
	r.fly.MovementSpeed = quarkgl.Scalar(cfg.MovementSpeed)
	r.fly.RollSpeed = quarkgl.Scalar(cfg.RollSpeed)
}

func (r *cameraRig) toggle() {
	if r.mode == cameraFly {
		r.mode = cameraOrbit
	} else {
		r.mode = cameraFly
	}
}

func (r *cameraRig) toggleProjection() {
	if r.base.Type == quarkgl.CameraOrtho {
		r.base.Type = quarkgl.CameraPerspective
	} else {
		r.base.Type = quarkgl.CameraOrtho
	}
}

func (r *cameraRig) String() string {
	if r.base.Type == quarkgl.CameraOrtho {
		return r.mode.String() + " ortho"
	}
	return r.mode.String()
}

func (r *cameraRig) camera() quarkgl.Camera {
	cam := r.base
	if r.mode == cameraOrbit {
		r.orbit.Apply(&cam)
	} else {
		r.fly.Apply(&cam)
	}
	return cam
}

// look handles arrow keys: orbit rotates around the origin, fly turns the
// camera in place.
func (r *cameraRig) look(dx, dy quarkgl.Scalar) {
	if r.mode == cameraOrbit {
		r.orbit.Rotate(dx*orbitStep, dy*orbitStep)
		return
	}
	r.fly.Look(-dx, dy, 0, flyImpulse)
}

// move handles w/a/s/d/q/e. In orbit mode only forward and back apply, as zoom.
func (r *cameraRig) move(forward, right, roll quarkgl.Scalar) {
	if r.mode == cameraOrbit {
		r.orbit.Zoom(-forward)
		return
	}
	if roll != 0 {
		r.fly.Look(0, 0, roll, flyImpulse)
	}
	r.fly.Move(forward, right, 0, flyImpulse)
}
