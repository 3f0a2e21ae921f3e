package sim

import (
	"fmt"
	"image/color"

	"fieldviz/sketch/field"
	"fieldviz/sketch/trail"
)

// DefaultMaxVertices bounds grid.Count*PathLength when Config.MaxVertices is
// left at zero.
const DefaultMaxVertices = 4 << 20

// Config is the full parameter set of a sketch. The Simulation owns its copy
// and is the only writer.
type Config struct {
	Name string
	Dims int

	NPoints    int
	Span       float64
	PathLength int
	Discipline trail.Discipline

	// Speed scales the field velocity per tick.
	Speed     float64
	PointSize float64

	StartHue  float64
	HueFactor float64
	BaseColor color.NRGBA
	PathWidth float64

	// Guides is the approximate number of field arrows drawn by planar
	// sketches. Zero disables them.
	Guides int

	// Field, when set, is a fixed field; Exprs are ignored and expression
	// setters fail.
	Field field.Func
	Exprs field.Expressions

	ShowPoints bool
	ShowPaths  bool

	MovementSpeed float64
	RollSpeed     float64

	Seed        uint64
	MaxVertices int
}

// Planar is the 2D swirl sketch: a thousand particles drawing fading
// lilac trails through a fixed trigonometric field.
func Planar() Config {
	return Config{
		Name:          "planar",
		Dims:          2,
		NPoints:       1000,
		Span:          20,
		PathLength:    100,
		Discipline:    trail.TailAppend,
		Speed:         0.05,
		PointSize:     0.05,
		BaseColor:     color.NRGBA{R: 0xc6, G: 0x8f, B: 0xff, A: 0xff},
		PathWidth:     8,
		Guides:        10,
		Field:         field.Planar(field.Swirl),
		ShowPoints:    false,
		ShowPaths:     true,
		MovementSpeed: 5,
		RollSpeed:     0.3,
		Seed:          1,
	}
}

// Volume is the 3D sketch whose field is typed in at runtime.
func Volume() Config {
	return Config{
		Name:          "volume",
		Dims:          3,
		NPoints:       1000,
		Span:          10,
		PathLength:    10,
		Discipline:    trail.HeadInsert,
		Speed:         0.01,
		PointSize:     0.1,
		StartHue:      230,
		HueFactor:     50,
		BaseColor:     color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Exprs:         field.Expressions{VX: "0", VY: "0", VZ: "0"},
		ShowPoints:    true,
		ShowPaths:     true,
		MovementSpeed: 5,
		RollSpeed:     0.3,
		Seed:          1,
	}
}

// Preset returns the named preset.
func Preset(name string) (Config, error) {
	switch name {
	case "planar", "2d":
		return Planar(), nil
	case "volume", "3d":
		return Volume(), nil
	}
	return Config{}, fmt.Errorf("%w: unknown sketch %q", ErrBadValue, name)
}

func (c Config) maxVertices() int {
	if c.MaxVertices <= 0 {
		return DefaultMaxVertices
	}
	return c.MaxVertices
}

func (c Config) validate() error {
	if c.Dims != 2 && c.Dims != 3 {
		return fmt.Errorf("%w: dims must be 2 or 3, got %d", ErrBadValue, c.Dims)
	}
	return nil
}
