// Package app wires the simulation, renderer and HUD to a host.
package app

import (
	"fmt"
	"strings"

	"fieldviz/hal"
	"fieldviz/internal/buildinfo"
	"fieldviz/sketch/hud"
	"fieldviz/sketch/quarkgl"
	"fieldviz/sketch/sim"
)

// Notices stay on screen for this many frames.
const noticeFrames = 180

type Config struct {
	Sketch sim.Config
	// Sets are "name=value" assignments applied after startup, in order.
	Sets []string
}

// App is one running sketch.
type App struct {
	h   hal.HAL
	log hal.Logger
	fb  hal.Framebuffer
	sim *sim.Simulation

	target   quarkgl.RGB565Target
	renderer *quarkgl.Renderer
	cam      cameraRig
	hud      hud.HUD

	// Scratch buffers for converting trails to render types.
	pts    []quarkgl.Vec3
	colors []quarkgl.Color
	widths []quarkgl.Scalar

	// showSettings lists every setting under the status lines.
	showSettings bool
	panicked     bool
}

// New builds the app and returns its per-frame step.
func New(h hal.HAL, cfg Config) (func() error, error) {
	a, err := newApp(h, cfg)
	if err != nil {
		return nil, err
	}
	return a.Step, nil
}

func newApp(h hal.HAL, cfg Config) (*App, error) {
	if h == nil || h.Display() == nil || h.Display().Framebuffer() == nil {
		return nil, fmt.Errorf("app: host has no framebuffer")
	}
	fb := h.Display().Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", fb.Format())
	}

	s, err := sim.New(cfg.Sketch)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	a := &App{
		h:        h,
		log:      h.Logger(),
		fb:       fb,
		sim:      s,
		renderer: quarkgl.NewRenderer(fb.Width(), fb.Height(), false),
		target: quarkgl.RGB565Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		},
	}
	a.cam = newCameraRig(s.Config())
	a.hud.Line.Names = sim.SettingNames()

	a.logf("%s", buildinfo.Long())
	a.logf("sketch %s: %d samples, path length %d", cfg.Sketch.Name, s.Len(), cfg.Sketch.PathLength)
	for _, set := range cfg.Sets {
		a.apply(set)
	}
	return a, nil
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}

// Step runs one frame: input, simulation, rendering, present. A panic inside
// the frame is reported on screen and returned as an error.
func (a *App) Step() (err error) {
	if a.panicked {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = a.recovered(r)
		}
	}()

	a.drainKeys()
	snap := a.sim.Tick()
	a.draw(snap)
	a.hud.Tick()
	return a.fb.Present()
}

// apply runs one command line assignment. Failures are logged and shown but
// never stop the sketch.
func (a *App) apply(line string) {
	name, value := hud.ParseAssignment(line)
	if name == "" {
		return
	}
	if name != "resetField" && !strings.Contains(line, "=") {
		a.query(name)
		return
	}
	before := a.sim.Len()
	if err := a.sim.Set(name, value); err != nil {
		a.logf("set %s: %v", line, err)
		a.hud.Notify(err.Error(), noticeFrames)
		return
	}
	cfg := a.sim.Config()
	a.cam.sync(cfg)
	if n := a.sim.Len(); n != before || name == "resetField" || name == "pathLength" {
		a.logf("%s: %d samples, path length %d", line, n, cfg.PathLength)
		return
	}
	a.logf("%s", line)
}

// query shows the current value of a setting named without "=".
func (a *App) query(name string) {
	v, err := a.sim.Get(name)
	if err != nil {
		a.logf("get %s: %v", name, err)
		a.hud.Notify(err.Error(), noticeFrames)
		return
	}
	a.hud.Notify(name+"="+v, noticeFrames)
}
