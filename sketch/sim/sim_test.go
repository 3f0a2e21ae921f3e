package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldviz/sketch/field"
	"fieldviz/sketch/grid"
	"fieldviz/sketch/trail"
	"fieldviz/sketch/vmath"
)

func volume(t *testing.T, mutate func(*Config)) *Simulation {
	t.Helper()
	cfg := Volume()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func TestScenarioGridOfEight(t *testing.T) {
	s := volume(t, func(c *Config) { c.NPoints = 8; c.Span = 2 })
	snap := s.Snapshot()
	require.Len(t, snap.Points, 8)
	for _, p := range snap.Points {
		for _, c := range []float64{p.X, p.Y, p.Z} {
			assert.Contains(t, []float64{-1, 0}, c)
		}
	}
}

func TestScenarioZeroFieldHeadPaths(t *testing.T) {
	s := volume(t, func(c *Config) { c.NPoints = 27; c.Span = 3; c.PathLength = 5 })
	spawn := append([]vmath.Vec3(nil), s.Snapshot().Points...)

	var snap Snapshot
	for i := 0; i < 10; i++ {
		snap = s.Tick()
	}
	require.Equal(t, uint64(10), snap.Frame)
	require.Len(t, snap.Paths, len(spawn))
	for i, pv := range snap.Paths {
		require.Len(t, pv.Points, 5)
		for _, p := range pv.Points {
			assert.Equal(t, spawn[i], p)
		}
	}
}

func TestScenarioDivisionByZero(t *testing.T) {
	s := volume(t, func(c *Config) { c.NPoints = 8; c.Span = 2 })
	require.NoError(t, s.SetVX("1/0"))
	for i := 0; i < 3; i++ {
		snap := s.Tick()
		for _, p := range snap.Points {
			assert.True(t, math.IsInf(p.X, 1), "x=%v", p.X)
			assert.False(t, math.IsNaN(p.Y))
		}
	}
	assert.Equal(t, "1/0", s.Config().Exprs.VX)
}

func TestScenarioShrinkPathLength(t *testing.T) {
	s := volume(t, func(c *Config) { c.NPoints = 27; c.Span = 3 })
	require.NoError(t, s.SetVX("1"))
	for i := 0; i < 12; i++ {
		s.Tick()
	}
	require.NoError(t, s.SetPathLength(3))
	snap := s.Tick()
	for _, pv := range snap.Paths {
		require.Len(t, pv.Points, 3)
		require.Len(t, pv.Colors, 3)
		require.Len(t, pv.Widths, 3)
	}
	assert.Equal(t, 3, s.Config().PathLength)
}

func TestHeadPathsStayFull(t *testing.T) {
	s := volume(t, func(c *Config) { c.NPoints = 8; c.Span = 2; c.PathLength = 4 })
	require.NoError(t, s.SetField("-y", "x", "0.1"))
	for i := 0; i < 20; i++ {
		for _, pv := range s.Tick().Paths {
			require.Len(t, pv.Points, 4)
		}
	}
}

func TestTailPathsConverge(t *testing.T) {
	cfg := Planar()
	cfg.NPoints = 16
	cfg.PathLength = 6
	s, err := New(cfg)
	require.NoError(t, err)
	for _, pv := range s.Snapshot().Paths {
		require.Empty(t, pv.Points)
	}
	for i := 1; i <= 10; i++ {
		snap := s.Tick()
		for _, pv := range snap.Paths {
			require.Len(t, pv.Points, min(i, 6))
		}
	}
}

func TestTickMatchesIndependentSteps(t *testing.T) {
	exprs := field.Expressions{VX: "sin(y)", VY: "x*z", VZ: "-x"}
	s := volume(t, func(c *Config) { c.Exprs = exprs; c.Speed = 0.5 })
	spawn := append([]vmath.Vec3(nil), s.Snapshot().Points...)

	fn, err := field.Compile(exprs)
	require.NoError(t, err)
	snap := s.Tick()
	for i := len(spawn) - 1; i >= 0; i-- {
		assert.Equal(t, Step(fn, spawn[i], 0.5), snap.Points[i])
	}
}

func TestRebuildTooLargeKeepsState(t *testing.T) {
	s := volume(t, func(c *Config) { c.MaxVertices = 20000 })
	s.Tick()
	before := append([]vmath.Vec3(nil), s.Snapshot().Points...)
	n := s.Len()

	err := s.SetNPoints(1_000_000)
	require.ErrorIs(t, err, ErrTooLarge)
	assert.Equal(t, 1000, s.Config().NPoints)
	assert.Equal(t, n, s.Len())
	assert.Equal(t, before, s.Snapshot().Points)

	err = s.SetPathLength(100)
	require.ErrorIs(t, err, ErrTooLarge)
	assert.Equal(t, 10, s.Config().PathLength)

	require.NoError(t, s.SetPathLength(20))
	assert.Equal(t, 20, s.Config().PathLength)
}

func TestRebuildResetsSamples(t *testing.T) {
	s := volume(t, func(c *Config) { c.NPoints = 8; c.Span = 2 })
	require.NoError(t, s.SetVX("1"))
	s.Tick()
	require.NoError(t, s.SetSpan(4))
	want := grid.Generate(8, 4, 3)
	assert.Equal(t, want, s.Snapshot().Points)

	s.Tick()
	require.NoError(t, s.ResetField())
	assert.Equal(t, want, s.Snapshot().Points)
	assert.Equal(t, "1", s.Expressions().VX)
}

func TestExpressionRollback(t *testing.T) {
	s := volume(t, func(c *Config) { c.NPoints = 8; c.Span = 2 })
	require.NoError(t, s.SetField("1", "2", "3"))

	err := s.SetVY("2 +")
	require.Error(t, err)
	assert.Equal(t, "2", s.Config().Exprs.VY)
	assert.Equal(t, "2", s.Expressions().VY)

	start := s.Snapshot().Points[0]
	p := s.Tick().Points[0]
	assert.InDelta(t, start.X+0.01, p.X, 1e-12)
	assert.InDelta(t, start.Y+0.02, p.Y, 1e-12)
	assert.InDelta(t, start.Z+0.03, p.Z, 1e-12)
}

func TestNonRebuildSettersKeepSamples(t *testing.T) {
	s := volume(t, func(c *Config) { c.NPoints = 8; c.Span = 2 })
	require.NoError(t, s.SetVX("1"))
	s.Tick()
	pos := s.Snapshot().Points[0]

	s.SetShowPoints(false)
	s.SetShowPaths(false)
	s.SetMovementSpeed(9)
	s.SetRollSpeed(1)
	s.SetSpeed(0.1)

	snap := s.Snapshot()
	assert.Equal(t, pos, snap.Points[0])
	assert.False(t, snap.ShowPoints)
	assert.False(t, snap.ShowPaths)
	assert.Equal(t, uint64(1), snap.Frame)
}

func TestFixedFieldRejectsExpressions(t *testing.T) {
	s, err := New(Planar())
	require.NoError(t, err)
	require.ErrorIs(t, s.SetVX("x"), field.ErrFixed)
	assert.True(t, s.FixedField())
	for _, kv := range s.Settings() {
		assert.NotEqual(t, "vx", kv.Name)
	}
}

func TestPlanarGuides(t *testing.T) {
	s, err := New(Planar())
	require.NoError(t, err)
	snap := s.Tick()
	require.Len(t, snap.Guides, grid.Count(10, 20, 2))
	for _, g := range snap.Guides {
		assert.Zero(t, g.From.Z)
		assert.Zero(t, g.To.Z)
		assert.NotEqual(t, g.From, g.To)
	}
	assert.Equal(t, 2, snap.Dims)
}

func TestVolumeHasNoGuides(t *testing.T) {
	s := volume(t, nil)
	assert.Empty(t, s.Tick().Guides)
}

func TestColorsAndWidths(t *testing.T) {
	s := volume(t, func(c *Config) { c.NPoints = 8; c.Span = 2; c.PathLength = 4 })
	for _, pv := range s.Snapshot().Paths {
		assert.Equal(t, trail.NewestFirst, pv.Order)
		// Newest slot is the brightest.
		assert.GreaterOrEqual(t, int(pv.Colors[0].B), int(pv.Colors[3].B))
		for _, w := range pv.Widths {
			assert.Equal(t, 1.0, w)
		}
	}

	cfg := Planar()
	cfg.NPoints = 4
	cfg.PathLength = 4
	p, err := New(cfg)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		p.Tick()
	}
	pv := p.Snapshot().Paths[0]
	require.Len(t, pv.Colors, 4)
	assert.Equal(t, uint8(0), pv.Colors[0].A)
	assert.Less(t, pv.Colors[1].A, pv.Colors[3].A)
	assert.Equal(t, 1.0, pv.Widths[0])
	assert.Equal(t, 7.0, pv.Widths[3])
}

func TestHueSeedsInRange(t *testing.T) {
	s := volume(t, func(c *Config) { c.StartHue = 10; c.HueFactor = 5 })
	for _, sm := range s.samples {
		assert.GreaterOrEqual(t, sm.Hue, 10.0)
		assert.Less(t, sm.Hue, 15.0)
	}
	require.NoError(t, s.SetStartHue(200))
	for _, sm := range s.samples {
		assert.GreaterOrEqual(t, sm.Hue, 200.0)
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := volume(t, nil)
	b := volume(t, nil)
	for i := range a.samples {
		require.Equal(t, a.samples[i].Hue, b.samples[i].Hue)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := Volume()
	cfg.Dims = 4
	_, err := New(cfg)
	require.ErrorIs(t, err, ErrBadValue)

	cfg = Volume()
	cfg.Exprs.VZ = "nope"
	_, err = New(cfg)
	require.Error(t, err)
}

func TestDegenerateGridIsEmpty(t *testing.T) {
	s := volume(t, nil)
	require.NoError(t, s.SetNPoints(0))
	snap := s.Tick()
	assert.Empty(t, snap.Points)
	assert.Empty(t, snap.Paths)
}
