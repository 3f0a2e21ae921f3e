//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Held arrow keys repeat after repeatDelay ticks, every repeatEvery ticks.
const (
	repeatDelay = 15
	repeatEvery = 3
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) push(ev KeyEvent) {
	select {
	case k.ch <- ev:
	default:
	}
}

var hostKeys = []struct {
	key    ebiten.Key
	code   KeyCode
	repeat bool
}{
	{ebiten.KeyArrowUp, KeyUp, true},
	{ebiten.KeyArrowDown, KeyDown, true},
	{ebiten.KeyArrowLeft, KeyLeft, true},
	{ebiten.KeyArrowRight, KeyRight, true},
	{ebiten.KeyEnter, KeyEnter, false},
	{ebiten.KeyEscape, KeyEscape, false},
	{ebiten.KeyBackspace, KeyBackspace, true},
	{ebiten.KeyTab, KeyTab, false},
}

func (k *hostKeyboard) poll() {
	// Printable keys, including OS key repeat, arrive as text input.
	for _, r := range ebiten.AppendInputChars(nil) {
		k.push(KeyEvent{Press: true, Rune: r})
	}

	for _, hk := range hostKeys {
		switch {
		case inpututil.IsKeyJustPressed(hk.key):
			k.push(KeyEvent{Code: hk.code, Press: true})
		case inpututil.IsKeyJustReleased(hk.key):
			k.push(KeyEvent{Code: hk.code, Press: false})
		case hk.repeat:
			if d := inpututil.KeyPressDuration(hk.key); d > repeatDelay && (d-repeatDelay)%repeatEvery == 0 {
				k.push(KeyEvent{Code: hk.code, Press: true})
			}
		}
	}
}
