// Package sim runs the particle simulation: it owns the configuration, the
// field, and the sample set, and rebuilds them whenever a structural
// parameter changes.
package sim

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"

	"fieldviz/sketch/field"
	"fieldviz/sketch/grid"
	"fieldviz/sketch/palette"
	"fieldviz/sketch/trail"
	"fieldviz/sketch/vmath"
)

var (
	ErrTooLarge       = errors.New("sample set too large")
	ErrUnknownSetting = errors.New("unknown setting")
	ErrBadValue       = errors.New("bad value")
)

// Sample is one simulated point and its history.
type Sample struct {
	Pos  vmath.Vec3
	Path trail.Path
	Hue  float64
}

// Simulation is not safe for concurrent use.
type Simulation struct {
	cfg   Config
	field *field.Evaluator
	rng   *rand.Rand

	samples []Sample
	frame   uint64

	// Snapshot storage, sized on rebuild and rewritten every tick.
	points  []vmath.Vec3
	views   []PathView
	origins []vmath.Vec3
	guides  []Guide
}

// New builds a simulation from cfg.
func New(cfg Config) (*Simulation, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)),
	}
	if cfg.Field != nil {
		s.field = field.NewFixed(cfg.Field)
	} else {
		ev, err := field.NewExpr(cfg.Exprs)
		if err != nil {
			return nil, err
		}
		s.field = ev
	}
	if err := s.rebuild(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

// Config returns a copy of the active configuration.
func (s *Simulation) Config() Config { return s.cfg }

// Expressions returns the active field sources. Fixed fields have none.
func (s *Simulation) Expressions() field.Expressions { return s.field.Expressions() }

// FixedField reports whether the field ignores expression settings.
func (s *Simulation) FixedField() bool { return s.field.Fixed() }

// Len returns the number of samples.
func (s *Simulation) Len() int { return len(s.samples) }

// Frame returns the number of ticks since construction.
func (s *Simulation) Frame() uint64 { return s.frame }

// rebuild lays out a fresh sample set for next and swaps it in only once it is
// complete. On error nothing changes. A path length below 1 is stored as 1,
// the capacity every path actually gets.
func (s *Simulation) rebuild(next Config) error {
	count := grid.Count(next.NPoints, next.Span, next.Dims)
	pathLen := max(next.PathLength, 1)
	if limit := next.maxVertices(); count > limit/pathLen {
		return fmt.Errorf("%w: %d samples x %d path points exceeds %d", ErrTooLarge, count, pathLen, limit)
	}

	spawn := grid.Generate(next.NPoints, next.Span, next.Dims)
	samples := make([]Sample, len(spawn))
	views := make([]PathView, len(spawn))
	for i, p := range spawn {
		samples[i] = Sample{
			Pos:  p,
			Path: trail.New(next.Discipline, pathLen, p),
			Hue:  palette.Hue(next.StartHue, next.HueFactor, s.rng),
		}
		views[i] = PathView{
			Colors: make([]color.NRGBA, pathLen),
			Widths: make([]float64, pathLen),
			Order:  samples[i].Path.Order(),
		}
	}

	var origins []vmath.Vec3
	if next.Dims == 2 && next.Guides > 0 {
		origins = grid.Generate(next.Guides, next.Span, 2)
	}

	next.PathLength = pathLen
	s.cfg = next
	s.samples = samples
	s.views = views
	s.points = make([]vmath.Vec3, len(samples))
	s.origins = origins
	s.guides = make([]Guide, len(origins))
	s.refresh()
	return nil
}

func (s *Simulation) SetMovementSpeed(v float64) { s.cfg.MovementSpeed = v }
func (s *Simulation) SetRollSpeed(v float64)     { s.cfg.RollSpeed = v }
func (s *Simulation) SetShowPoints(b bool)       { s.cfg.ShowPoints = b }
func (s *Simulation) SetShowPaths(b bool)        { s.cfg.ShowPaths = b }
func (s *Simulation) SetSpeed(v float64)         { s.cfg.Speed = v }

func (s *Simulation) SetNPoints(n int) error {
	next := s.cfg
	next.NPoints = n
	return s.rebuild(next)
}

func (s *Simulation) SetPointSize(v float64) error {
	next := s.cfg
	next.PointSize = v
	return s.rebuild(next)
}

func (s *Simulation) SetPathLength(n int) error {
	next := s.cfg
	next.PathLength = n
	return s.rebuild(next)
}

func (s *Simulation) SetSpan(v float64) error {
	next := s.cfg
	next.Span = v
	return s.rebuild(next)
}

func (s *Simulation) SetStartHue(v float64) error {
	next := s.cfg
	next.StartHue = v
	return s.rebuild(next)
}

func (s *Simulation) SetHueFactor(v float64) error {
	next := s.cfg
	next.HueFactor = v
	return s.rebuild(next)
}

func (s *Simulation) SetVX(src string) error {
	return s.SetField(src, s.cfg.Exprs.VY, s.cfg.Exprs.VZ)
}

func (s *Simulation) SetVY(src string) error {
	return s.SetField(s.cfg.Exprs.VX, src, s.cfg.Exprs.VZ)
}

func (s *Simulation) SetVZ(src string) error {
	return s.SetField(s.cfg.Exprs.VX, s.cfg.Exprs.VY, src)
}

// SetField recompiles all three axes at once. On error the previous field and
// expressions stay active.
func (s *Simulation) SetField(vx, vy, vz string) error {
	if err := s.field.Reconfigure(vx, vy, vz); err != nil {
		return err
	}
	s.cfg.Exprs = field.Expressions{VX: vx, VY: vy, VZ: vz}
	return nil
}

// ResetField respawns every sample on the grid, keeping the field.
func (s *Simulation) ResetField() error {
	return s.rebuild(s.cfg)
}

// Setting is one name=value pair as shown to the operator.
type Setting struct {
	Name, Value string
}

func (kv Setting) String() string { return kv.Name + "=" + kv.Value }

type setting struct {
	name string
	get  func(s *Simulation) string
	set  func(s *Simulation, v string) error
}

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func parseFloat(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrBadValue, name, v)
	}
	return f, nil
}

func parseInt(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrBadValue, name, v)
	}
	return n, nil
}

func parseBool(name, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrBadValue, name, v)
	}
	return b, nil
}

func floatSetting(name string, get func(Config) float64, set func(*Simulation, float64) error) setting {
	return setting{
		name: name,
		get:  func(s *Simulation) string { return fmtFloat(get(s.cfg)) },
		set: func(s *Simulation, v string) error {
			f, err := parseFloat(name, v)
			if err != nil {
				return err
			}
			return set(s, f)
		},
	}
}

func intSetting(name string, get func(Config) int, set func(*Simulation, int) error) setting {
	return setting{
		name: name,
		get:  func(s *Simulation) string { return strconv.Itoa(get(s.cfg)) },
		set: func(s *Simulation, v string) error {
			n, err := parseInt(name, v)
			if err != nil {
				return err
			}
			return set(s, n)
		},
	}
}

func boolSetting(name string, get func(Config) bool, set func(*Simulation, bool)) setting {
	return setting{
		name: name,
		get:  func(s *Simulation) string { return strconv.FormatBool(get(s.cfg)) },
		set: func(s *Simulation, v string) error {
			b, err := parseBool(name, v)
			if err != nil {
				return err
			}
			set(s, b)
			return nil
		},
	}
}

func exprSetting(name string, get func(field.Expressions) string, set func(*Simulation, string) error) setting {
	return setting{
		name: name,
		get:  func(s *Simulation) string { return get(s.cfg.Exprs) },
		set:  set,
	}
}

func noErr(fn func(*Simulation, float64)) func(*Simulation, float64) error {
	return func(s *Simulation, v float64) error {
		fn(s, v)
		return nil
	}
}

// settings is ordered as the operator sees it.
var settings = []setting{
	floatSetting("movementSpeed", func(c Config) float64 { return c.MovementSpeed }, noErr((*Simulation).SetMovementSpeed)),
	floatSetting("rollSpeed", func(c Config) float64 { return c.RollSpeed }, noErr((*Simulation).SetRollSpeed)),
	boolSetting("showPoints", func(c Config) bool { return c.ShowPoints }, (*Simulation).SetShowPoints),
	boolSetting("showPaths", func(c Config) bool { return c.ShowPaths }, (*Simulation).SetShowPaths),
	intSetting("nPoints", func(c Config) int { return c.NPoints }, (*Simulation).SetNPoints),
	floatSetting("pointSize", func(c Config) float64 { return c.PointSize }, (*Simulation).SetPointSize),
	intSetting("pathLength", func(c Config) int { return c.PathLength }, (*Simulation).SetPathLength),
	floatSetting("span", func(c Config) float64 { return c.Span }, (*Simulation).SetSpan),
	floatSetting("startHue", func(c Config) float64 { return c.StartHue }, (*Simulation).SetStartHue),
	floatSetting("hueFactor", func(c Config) float64 { return c.HueFactor }, (*Simulation).SetHueFactor),
	floatSetting("speed", func(c Config) float64 { return c.Speed }, noErr((*Simulation).SetSpeed)),
	exprSetting("vx", func(e field.Expressions) string { return e.VX }, (*Simulation).SetVX),
	exprSetting("vy", func(e field.Expressions) string { return e.VY }, (*Simulation).SetVY),
	exprSetting("vz", func(e field.Expressions) string { return e.VZ }, (*Simulation).SetVZ),
}

// Set applies a setting by name, the way the command line and config file
// address them. "resetField" ignores its value.
func (s *Simulation) Set(name, value string) error {
	if name == "resetField" {
		return s.ResetField()
	}
	for _, st := range settings {
		if st.name == name {
			return st.set(s, value)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownSetting, name)
}

// Get returns the current value of a named setting.
func (s *Simulation) Get(name string) (string, error) {
	for _, st := range settings {
		if st.name == name {
			return st.get(s), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSetting, name)
}

// Settings lists every setting with its current value. Expression settings
// are omitted when the field is fixed.
func (s *Simulation) Settings() []Setting {
	out := make([]Setting, 0, len(settings))
	for _, st := range settings {
		if s.field.Fixed() && (st.name == "vx" || st.name == "vy" || st.name == "vz") {
			continue
		}
		out = append(out, Setting{Name: st.name, Value: st.get(s)})
	}
	return out
}

// SettingNames returns every name accepted by Set.
func SettingNames() []string {
	names := make([]string, 0, len(settings)+1)
	for _, st := range settings {
		names = append(names, st.name)
	}
	return append(names, "resetField")
}
