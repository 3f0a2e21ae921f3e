package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldviz/sketch/sim"
)

const sample = `
[sketch]
kind = volume
nPoints = 512
pathLength = 20
baseColor = "#102030"
seed = 7

[field]
vx = -y
vy = x
vz = 0.1*sin(z)

[view]
showPoints = false
width = 480
height = 240
`

func TestParseAndApply(t *testing.T) {
	f, err := Parse(sample)
	require.NoError(t, err)
	assert.Equal(t, "volume", f.Kind())

	cfg := sim.Volume()
	require.NoError(t, f.Apply(&cfg))
	assert.Equal(t, 512, cfg.NPoints)
	assert.Equal(t, 20, cfg.PathLength)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, cfg.BaseColor)
	assert.Equal(t, "-y", cfg.Exprs.VX)
	assert.Equal(t, "0.1*sin(z)", cfg.Exprs.VZ)
	assert.False(t, cfg.ShowPoints)

	// Unset values keep the preset.
	assert.Equal(t, 10.0, cfg.Span)
	assert.True(t, cfg.ShowPaths)

	w, h := f.Size()
	assert.Equal(t, 480, w)
	assert.Equal(t, 240, h)

	_, err = sim.New(cfg)
	require.NoError(t, err)
}

func TestCheckInitRejects(t *testing.T) {
	tests := []string{
		"[sketch]\nkind = torus\n",
		"[sketch]\nnPoints = many\n",
		"[sketch]\nbaseColor = lilac\n",
		"[view]\nshowPaths = sometimes\n",
		"[view]\nwidth = -3\n",
		"[sketch]\nkind = planar\n[field]\nvx = -y\n",
	}
	for _, text := range tests {
		_, err := Parse(text)
		require.ErrorIs(t, err, ErrInvalid, text)
	}
}

func TestFieldNeedsExpressionSketch(t *testing.T) {
	// Without a kind the file is fine until it meets a fixed-field preset.
	f, err := Parse("[field]\nvy = x\n")
	require.NoError(t, err)

	planar := sim.Planar()
	require.ErrorIs(t, f.Apply(&planar), ErrInvalid)
	assert.Equal(t, "", planar.Exprs.VY)

	volume := sim.Volume()
	require.NoError(t, f.Apply(&volume))
	assert.Equal(t, "x", volume.Exprs.VY)
}

func TestUnknownKeysFail(t *testing.T) {
	_, err := Parse("[sketch]\ngravity = 9.8\n")
	require.Error(t, err)
	_, err = Parse("[audio]\nvolume = 1\n")
	require.Error(t, err)
}

func TestEmptyFileIsNoop(t *testing.T) {
	f, err := Parse("")
	require.NoError(t, err)
	cfg := sim.Planar()
	require.NoError(t, f.Apply(&cfg))
	assert.Equal(t, sim.Planar().NPoints, cfg.NPoints)
	assert.Equal(t, "", f.Kind())
	w, h := f.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldviz.ini")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "512", f.Sketch.NPoints)

	_, err = Load(filepath.Join(t.TempDir(), "missing.ini"))
	require.Error(t, err)
}
