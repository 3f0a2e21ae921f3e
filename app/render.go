package app

import (
	"fmt"
	"time"

	"fieldviz/internal/buildinfo"
	"fieldviz/sketch/quarkgl"
	"fieldviz/sketch/sim"
)

// Path widths are tuned for a 2000 pixel wide canvas.
const referenceWidth = 2000

var (
	guideColor = quarkgl.RGBA(255, 255, 255, 128)
	pointColor = quarkgl.RGB(255, 255, 255)
)

func (a *App) draw(snap sim.Snapshot) {
	if snap.Dims == 2 {
		a.drawPlanar(snap)
	} else {
		a.drawVolume(snap)
	}
	a.hud.Draw(a.fb, a.status(snap))
}

func (a *App) widthScale() quarkgl.Scalar {
	return quarkgl.Scalar(float64(a.fb.Width()) / referenceWidth)
}

func (a *App) drawVolume(snap sim.Snapshot) {
	a.renderer.Begin(&a.target, a.cam.camera())

	if snap.ShowPaths {
		scale := a.widthScale()
		for _, p := range snap.Paths {
			a.pts = a.pts[:0]
			a.colors = a.colors[:0]
			a.widths = a.widths[:0]
			for i, v := range p.Points {
				a.pts = append(a.pts, quarkgl.FromVec(v))
				a.colors = append(a.colors, quarkgl.FromNRGBA(p.Colors[i]))
				a.widths = append(a.widths, max(quarkgl.Scalar(p.Widths[i])*scale, 1))
			}
			a.renderer.Polyline(a.pts, a.colors, a.widths)
		}
	}
	if snap.ShowPoints {
		size := quarkgl.Scalar(snap.PointSize)
		for _, p := range snap.Points {
			if !p.IsFinite() {
				continue
			}
			a.renderer.Point(quarkgl.FromVec(p), size, pointColor)
		}
	}
}

func (a *App) drawPlanar(snap sim.Snapshot) {
	a.renderer.BeginScreen(&a.target)
	c := quarkgl.NewCanvas(a.fb.Width(), a.fb.Height(), a.sim.Config().Span)

	for _, g := range snap.Guides {
		x0, y0, ok0 := c.ToScreen(g.From.XY())
		x1, y1, ok1 := c.ToScreen(g.To.XY())
		if ok0 && ok1 {
			a.renderer.ScreenLine(x0, y0, x1, y1, 1, guideColor)
		}
	}

	if snap.ShowPaths {
		scale := a.widthScale()
		for _, p := range snap.Paths {
			for i := 0; i+1 < len(p.Points); i++ {
				x0, y0, ok0 := c.ToScreen(p.Points[i].XY())
				x1, y1, ok1 := c.ToScreen(p.Points[i+1].XY())
				if !ok0 || !ok1 {
					continue
				}
				w := max(quarkgl.Scalar(p.Widths[i+1])*scale, 1)
				a.renderer.ScreenLine(x0, y0, x1, y1, w, quarkgl.FromNRGBA(p.Colors[i+1]))
			}
		}
	}
	if snap.ShowPoints {
		r := max(int(snap.PointSize*c.PixelsPerUnit()+0.5), 0)
		for _, p := range snap.Points {
			if !p.IsFinite() {
				continue
			}
			if x, y, ok := c.ToScreen(p.XY()); ok {
				a.renderer.ScreenPoint(x, y, r, pointColor)
			}
		}
	}
}

func (a *App) status(snap sim.Snapshot) []string {
	cfg := a.sim.Config()
	lines := []string{
		fmt.Sprintf("%s %s  frame %d  samples %d  speed %g", cfg.Name, buildinfo.Short(), snap.Frame, a.sim.Len(), cfg.Speed),
	}
	if t := a.h.Time(); t != nil {
		if d := t.Delta(); d > 0 {
			lines[0] += fmt.Sprintf("  %.0f fps", float64(time.Second)/float64(d))
		}
	}
	if !a.sim.FixedField() {
		e := a.sim.Expressions()
		lines = append(lines, "v = ("+e.VX+", "+e.VY+", "+e.VZ+")")
	}
	if snap.Dims == 3 {
		lines = append(lines, "camera "+a.cam.String())
	} else {
		c := quarkgl.NewCanvas(a.fb.Width(), a.fb.Height(), cfg.Span)
		lo, hi := c.ToField(0, c.H), c.ToField(c.W, 0)
		lines = append(lines, fmt.Sprintf("view x %.3g..%.3g  y %.3g..%.3g", lo.X, hi.X, lo.Y, hi.Y))
	}
	if a.showSettings {
		for _, st := range a.sim.Settings() {
			lines = append(lines, st.String())
		}
	}
	return lines
}
