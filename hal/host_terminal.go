package hal

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Hz    int
	Ticks uint64
}

// RunTerminal renders the framebuffer into the terminal with half-block cells,
// two pixels per cell, and forwards key presses. Ctrl-C quits. Log lines are
// held back and written to stderr once the terminal is restored.
func RunTerminal(ctx context.Context, newApp NewApp, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid terminal hz: %d", cfg.Hz)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	var logs bytes.Buffer
	cols, rows := screen.Size()
	h := newHost(Screen{Width: cols, Height: rows * 2}, &logs)
	defer func() {
		screen.Fini()
		h.logger.redirect(os.Stderr)
		os.Stderr.Write(logs.Bytes())
	}()

	step, err := newApp(h)
	if err != nil {
		return err
	}
	return runTerminalLoop(ctx, screen, h, step, d, cfg.Ticks)
}

func runTerminalLoop(ctx context.Context, screen tcell.Screen, h *hostHAL, step func() error, d time.Duration, ticks uint64) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t := time.NewTicker(d)
	defer t.Stop()

	scratch := make([]byte, len(h.fb.buf))
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if ke, ok := keyEventFromTerminal(ev); ok {
					h.kbd.push(ke)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			h.fb.snapshotRGB565(scratch)
			blitHalfBlocks(screen, h.fb, scratch)
			screen.Show()
			tick++
			if ticks > 0 && tick >= ticks {
				return nil
			}
		}
	}
}

func keyEventFromTerminal(ev *tcell.EventKey) (KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return KeyEvent{Press: true, Rune: ev.Rune()}, true
	case tcell.KeyUp:
		return KeyEvent{Code: KeyUp, Press: true}, true
	case tcell.KeyDown:
		return KeyEvent{Code: KeyDown, Press: true}, true
	case tcell.KeyLeft:
		return KeyEvent{Code: KeyLeft, Press: true}, true
	case tcell.KeyRight:
		return KeyEvent{Code: KeyRight, Press: true}, true
	case tcell.KeyEnter:
		return KeyEvent{Code: KeyEnter, Press: true}, true
	case tcell.KeyEscape:
		return KeyEvent{Code: KeyEscape, Press: true}, true
	case tcell.KeyTab:
		return KeyEvent{Code: KeyTab, Press: true}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Code: KeyBackspace, Press: true}, true
	}
	return KeyEvent{}, false
}

// blitHalfBlocks draws pixel rows 2y and 2y+1 into terminal row y using an
// upper half block: foreground is the top pixel, background the bottom.
func blitHalfBlocks(screen tcell.Screen, fb *hostFramebuffer, src []byte) {
	cols, rows := screen.Size()
	cols = min(cols, fb.width)
	rows = min(rows, fb.height/2)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			tr, tg, tb := fb.pixelRGB(src, x, 2*y)
			br, bg, bb := fb.pixelRGB(src, x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(tr), int32(tg), int32(tb))).
				Background(tcell.NewRGBColor(int32(br), int32(bg), int32(bb)))
			screen.SetContent(x, y, '▀', nil, style)
		}
	}
}
