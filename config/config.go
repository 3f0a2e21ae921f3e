// Package config loads sketch settings from an INI-style file:
//
//	[sketch]
//	kind = volume
//	nPoints = 512
//	pathLength = 20
//	baseColor = "#c68fff"
//
//	[field]
//	vx = -y
//	vy = x
//	vz = 0.1*sin(z)
//
//	[view]
//	showPoints = false
//	width = 480
//	height = 320
//
// Every value is optional; unset values keep the preset's default. Colors must
// be quoted because '#' starts a comment. [field] only applies to the volume
// sketch; the planar sketch's field is fixed.
package config

import (
	"errors"
	"fmt"
	"strconv"

	"fieldviz/sketch/palette"
	"fieldviz/sketch/sim"

	"gopkg.in/gcfg.v1"
)

var ErrInvalid = errors.New("invalid config value")

// File mirrors the config file. Values stay as text until Apply so an unset
// key can be told apart from a zero.
type File struct {
	Sketch struct {
		Kind        string
		NPoints     string
		Span        string
		PathLength  string
		Speed       string
		PointSize   string
		StartHue    string
		HueFactor   string
		BaseColor   string
		PathWidth   string
		Guides      string
		Seed        string
		MaxVertices string
	}
	Field struct {
		VX, VY, VZ string
	}
	View struct {
		MovementSpeed string
		RollSpeed     string
		ShowPoints    string
		ShowPaths     string
		Width         string
		Height        string
	}
}

// Load reads and validates the file at path.
func Load(path string) (*File, error) {
	f := &File{}
	if err := gcfg.ReadFileInto(f, path); err != nil {
		return nil, err
	}
	if err := f.CheckInit(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse reads and validates config text.
func Parse(text string) (*File, error) {
	f := &File{}
	if err := gcfg.ReadStringInto(f, text); err != nil {
		return nil, err
	}
	if err := f.CheckInit(); err != nil {
		return nil, err
	}
	return f, nil
}

type entry struct {
	key   string
	value *string
	apply func(c *sim.Config, v string) error
}

func (f *File) entries() []entry {
	s, fl, v := &f.Sketch, &f.Field, &f.View
	return []entry{
		{"sketch.nPoints", &s.NPoints, intTo(func(c *sim.Config, n int) { c.NPoints = n })},
		{"sketch.span", &s.Span, floatTo(func(c *sim.Config, x float64) { c.Span = x })},
		{"sketch.pathLength", &s.PathLength, intTo(func(c *sim.Config, n int) { c.PathLength = n })},
		{"sketch.speed", &s.Speed, floatTo(func(c *sim.Config, x float64) { c.Speed = x })},
		{"sketch.pointSize", &s.PointSize, floatTo(func(c *sim.Config, x float64) { c.PointSize = x })},
		{"sketch.startHue", &s.StartHue, floatTo(func(c *sim.Config, x float64) { c.StartHue = x })},
		{"sketch.hueFactor", &s.HueFactor, floatTo(func(c *sim.Config, x float64) { c.HueFactor = x })},
		{"sketch.baseColor", &s.BaseColor, func(c *sim.Config, v string) error {
			col, err := palette.ParseHex(v)
			if err != nil {
				return err
			}
			c.BaseColor = col
			return nil
		}},
		{"sketch.pathWidth", &s.PathWidth, floatTo(func(c *sim.Config, x float64) { c.PathWidth = x })},
		{"sketch.guides", &s.Guides, intTo(func(c *sim.Config, n int) { c.Guides = n })},
		{"sketch.seed", &s.Seed, func(c *sim.Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return err
			}
			c.Seed = n
			return nil
		}},
		{"sketch.maxVertices", &s.MaxVertices, intTo(func(c *sim.Config, n int) { c.MaxVertices = n })},
		{"field.vx", &fl.VX, exprTo(func(c *sim.Config, e string) { c.Exprs.VX = e })},
		{"field.vy", &fl.VY, exprTo(func(c *sim.Config, e string) { c.Exprs.VY = e })},
		{"field.vz", &fl.VZ, exprTo(func(c *sim.Config, e string) { c.Exprs.VZ = e })},
		{"view.movementSpeed", &v.MovementSpeed, floatTo(func(c *sim.Config, x float64) { c.MovementSpeed = x })},
		{"view.rollSpeed", &v.RollSpeed, floatTo(func(c *sim.Config, x float64) { c.RollSpeed = x })},
		{"view.showPoints", &v.ShowPoints, boolTo(func(c *sim.Config, b bool) { c.ShowPoints = b })},
		{"view.showPaths", &v.ShowPaths, boolTo(func(c *sim.Config, b bool) { c.ShowPaths = b })},
	}
}

func intTo(set func(*sim.Config, int)) func(*sim.Config, string) error {
	return func(c *sim.Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		set(c, n)
		return nil
	}
}

func floatTo(set func(*sim.Config, float64)) func(*sim.Config, string) error {
	return func(c *sim.Config, v string) error {
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		set(c, x)
		return nil
	}
}

func boolTo(set func(*sim.Config, bool)) func(*sim.Config, string) error {
	return func(c *sim.Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		set(c, b)
		return nil
	}
}

func exprTo(set func(*sim.Config, string)) func(*sim.Config, string) error {
	return func(c *sim.Config, v string) error {
		set(c, v)
		return nil
	}
}

// CheckInit validates every value that is set.
func (f *File) CheckInit() error {
	if k := f.Sketch.Kind; k != "" {
		preset, err := sim.Preset(k)
		if err != nil {
			return fmt.Errorf("%w: sketch.kind=%q", ErrInvalid, k)
		}
		if err := f.checkField(preset); err != nil {
			return err
		}
	}
	var scratch sim.Config
	for _, e := range f.entries() {
		if *e.value == "" {
			continue
		}
		if err := e.apply(&scratch, *e.value); err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, e.key, *e.value)
		}
	}
	for _, dim := range []struct {
		key, v string
	}{{"view.width", f.View.Width}, {"view.height", f.View.Height}} {
		if dim.v == "" {
			continue
		}
		if n, err := strconv.Atoi(dim.v); err != nil || n <= 0 {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, dim.key, dim.v)
		}
	}
	return nil
}

// Kind returns the sketch preset named by the file, or "".
func (f *File) Kind() string { return f.Sketch.Kind }

// checkField rejects [field] expressions for sketches whose field is fixed.
func (f *File) checkField(c sim.Config) error {
	if c.Field == nil {
		return nil
	}
	if fl := f.Field; fl.VX != "" || fl.VY != "" || fl.VZ != "" {
		return fmt.Errorf("%w: [field] expressions need a volume sketch, %s has a fixed field", ErrInvalid, c.Name)
	}
	return nil
}

// Apply overlays every set value onto c. Field expressions are an error when
// c has a fixed field.
func (f *File) Apply(c *sim.Config) error {
	if err := f.checkField(*c); err != nil {
		return err
	}
	for _, e := range f.entries() {
		if *e.value == "" {
			continue
		}
		if err := e.apply(c, *e.value); err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, e.key, *e.value)
		}
	}
	return nil
}

// Size returns the framebuffer size from [view], zero when unset.
func (f *File) Size() (w, h int) {
	w, _ = strconv.Atoi(f.View.Width)
	h, _ = strconv.Atoi(f.View.Height)
	return w, h
}
