package app

import (
	"strconv"

	"fieldviz/hal"
)

func (a *App) drainKeys() {
	in := a.h.Input()
	if in == nil || in.Keyboard() == nil {
		return
	}
	events := in.Keyboard().Events()
	for {
		select {
		case ev := <-events:
			if ev.Press {
				a.handleKey(ev)
			}
		default:
			return
		}
	}
}

func (a *App) handleKey(ev hal.KeyEvent) {
	if a.hud.Line.Active() {
		a.handleLineKey(ev)
		return
	}

	switch ev.Code {
	case hal.KeyUp:
		a.cam.look(0, 1)
		return
	case hal.KeyDown:
		a.cam.look(0, -1)
		return
	case hal.KeyLeft:
		a.cam.look(-1, 0)
		return
	case hal.KeyRight:
		a.cam.look(1, 0)
		return
	}

	cfg := a.sim.Config()
	switch ev.Rune {
	case ':':
		a.hud.Line.Open()
	case 'p':
		a.apply("showPoints=" + strconv.FormatBool(!cfg.ShowPoints))
	case 't':
		a.apply("showPaths=" + strconv.FormatBool(!cfg.ShowPaths))
	case '+', '=':
		a.apply("nPoints=" + strconv.Itoa(max(cfg.NPoints*2, 1)))
	case '-':
		a.apply("nPoints=" + strconv.Itoa(cfg.NPoints/2))
	case ']':
		a.apply("pathLength=" + strconv.Itoa(cfg.PathLength+1))
	case '[':
		a.apply("pathLength=" + strconv.Itoa(max(cfg.PathLength-1, 1)))
	case 'r':
		a.apply("resetField")
	case 'h':
		a.hud.Hidden = !a.hud.Hidden
	case 'i':
		a.showSettings = !a.showSettings
	case 'f':
		if cfg.Dims != 3 {
			return
		}
		a.cam.toggle()
		a.logf("camera: %s", &a.cam)
	case 'o':
		if cfg.Dims != 3 {
			return
		}
		a.cam.toggleProjection()
		a.logf("camera: %s", &a.cam)
	case 'w':
		a.cam.move(1, 0, 0)
	case 's':
		a.cam.move(-1, 0, 0)
	case 'a':
		a.cam.move(0, -1, 0)
	case 'd':
		a.cam.move(0, 1, 0)
	case 'q':
		a.cam.move(0, 0, 1)
	case 'e':
		a.cam.move(0, 0, -1)
	}
}

func (a *App) handleLineKey(ev hal.KeyEvent) {
	l := &a.hud.Line
	switch ev.Code {
	case hal.KeyEnter:
		if line := l.Submit(); line != "" {
			a.apply(line)
		}
	case hal.KeyEscape:
		l.Close()
	case hal.KeyBackspace:
		l.Backspace()
	case hal.KeyLeft:
		l.Left()
	case hal.KeyRight:
		l.Right()
	case hal.KeyUp:
		l.HistUp()
	case hal.KeyDown:
		l.HistDown()
	case hal.KeyTab:
		l.Complete()
	default:
		if ev.Rune >= ' ' {
			l.Insert(ev.Rune)
		}
	}
}
