//go:build cgo

package hal

import (
	"os"

	"fieldviz/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Screen Screen
	// Scale is the window size multiplier over the framebuffer.
	Scale int
	TPS   int
}

// RunWindow opens a desktop window that displays the framebuffer and forwards
// keyboard input. It blocks until the window closes.
func RunWindow(newApp NewApp, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "fieldviz"
	}

	h := newHost(cfg.Screen, os.Stdout)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h    *hostHAL
	step func() error

	img     *ebiten.Image
	rgba    []byte
	scratch []byte
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.t.step()
	return g.step()
}

// Draw shows the last presented frame. Frames the app has not presented yet
// never reach the window.
func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || len(g.rgba) != fb.width*fb.height*4 {
		g.rgba = make([]byte, fb.width*fb.height*4)
		g.scratch = make([]byte, len(fb.buf))
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(fb.width, fb.height)
	}
	fb.snapshotRGB565(g.scratch)
	expandRGB565(g.rgba, g.scratch)
	g.img.WritePixels(g.rgba)
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
