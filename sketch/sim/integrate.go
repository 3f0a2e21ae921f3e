package sim

import (
	"image/color"

	"fieldviz/sketch/palette"
	"fieldviz/sketch/trail"
	"fieldviz/sketch/vmath"
)

// PathView is one trail ready for drawing. Colors and Widths are per vertex
// and parallel to Points.
type PathView struct {
	Points []vmath.Vec3
	Colors []color.NRGBA
	Widths []float64
	Order  trail.Order
}

// Guide is a field-direction arrow.
type Guide struct {
	From, To vmath.Vec3
}

// Snapshot is the renderable state after a tick. Its slices alias simulation
// storage: treat them as read-only and do not keep them past the next Tick or
// setter call.
type Snapshot struct {
	Frame      uint64
	Points     []vmath.Vec3
	Paths      []PathView
	Guides     []Guide
	ShowPoints bool
	ShowPaths  bool
	PointSize  float64
	Dims       int
}

// Step advances p by one explicit Euler step of fn.
func Step(fn func(vmath.Vec3) vmath.Vec3, p vmath.Vec3, speed float64) vmath.Vec3 {
	return p.Add(fn(p).Scale(speed))
}

// Tick integrates every sample once, records the new positions in their
// trails, and returns the resulting snapshot.
func (s *Simulation) Tick() Snapshot {
	eval := s.field.Evaluate
	speed := s.cfg.Speed
	for i := range s.samples {
		sm := &s.samples[i]
		sm.Pos = Step(eval, sm.Pos, speed)
		sm.Path.Push(sm.Pos)
	}
	s.frame++
	s.refresh()
	return s.Snapshot()
}

// Snapshot returns the current state without advancing it.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Frame:      s.frame,
		Points:     s.points,
		Paths:      s.views,
		Guides:     s.guides,
		ShowPoints: s.cfg.ShowPoints,
		ShowPaths:  s.cfg.ShowPaths,
		PointSize:  s.cfg.PointSize,
		Dims:       s.cfg.Dims,
	}
}

// refresh recomputes positions, colors, widths and guides from the samples.
func (s *Simulation) refresh() {
	cfg := &s.cfg
	for i := range s.samples {
		sm := &s.samples[i]
		s.points[i] = sm.Pos

		pts := sm.Path.Points()
		v := &s.views[i]
		v.Points = pts
		v.Colors = v.Colors[:len(pts)]
		v.Widths = v.Widths[:len(pts)]
		n := float64(len(pts))
		switch v.Order {
		case trail.NewestFirst:
			capacity := float64(sm.Path.Cap())
			for j := range pts {
				f := float64(j) / capacity
				v.Colors[j] = palette.Fade(sm.Hue, f)
				v.Widths[j] = palette.Width(cfg.PathWidth, 1-f)
			}
		default:
			for j := range pts {
				progress := float64(j) / n
				v.Colors[j] = palette.Alpha(cfg.BaseColor, progress)
				v.Widths[j] = palette.Width(cfg.PathWidth, progress)
			}
		}
	}

	for i, o := range s.origins {
		s.guides[i] = Guide{From: o, To: Step(s.field.Evaluate, o, cfg.Speed)}
	}
}
