package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"fieldviz/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	panicLineHeight = 10
	panicBaseline   = 8
)

// recovered reports a panic from Step to the log and the screen. The app
// stops drawing after this; the returned error ends the host loop.
func (a *App) recovered(v any) error {
	a.panicked = true
	stack := debug.Stack()

	a.logf("panic: %v", v)
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			a.logf("%s", line)
		}
	}

	if fb := a.fb; fb != nil {
		drawPanic(fb, v, stack)
		_ = fb.Present()
	}
	return fmt.Errorf("app: panic: %v", v)
}

func drawPanic(fb hal.Framebuffer, v any, stack []byte) {
	fb.ClearRGB(255, 255, 255)

	font := &proggy.TinySZ8pt7b
	_, outbox := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outbox)
	if fontWidth <= 0 {
		return
	}

	lines := []string{"fieldviz panic:", fmt.Sprintf("%v", v), "stack:"}
	for _, line := range strings.Split(string(stack), "\n") {
		if line != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	d := panicDisplay{fb: fb}
	fg := color.RGBA{A: 255}
	cols := max(int16(fb.Width())/fontWidth, 1)
	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y)+panicLineHeight > fb.Height() {
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, font, fontWidth, 0, y, chunk, fg)
			y += panicLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func drawTextLine(d panicDisplay, font tinyfont.Fonter, fontWidth, x0, y0 int16, s string, fg color.RGBA) {
	x := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, x, y0+panicBaseline, r, fg)
		x += fontWidth
	}
}

type panicDisplay struct {
	fb hal.Framebuffer
}

func (d panicDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d panicDisplay) SetPixel(x, y int16, c color.RGBA) {
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if buf == nil || ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	pixel := hal.RGB565(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d panicDisplay) Display() error { return nil }

// takeRunes splits s after at most n runes.
func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	i := 0
	for count := int16(0); i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}
