// Package hud draws the text overlay: status lines, the command line and
// short-lived notices.
package hud

import (
	"image/color"

	"fieldviz/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	lineHeight = 10
	baseline   = 8
	margin     = 2
)

var (
	textColor   = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	noticeColor = color.RGBA{R: 0xff, G: 0x80, B: 0x60, A: 0xff}
	promptColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	barColor    = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}
)

// HUD is the overlay state. The zero value is ready to use.
type HUD struct {
	Line CommandLine

	notice     string
	noticeLeft int
	// Hidden suppresses status lines; the command line and notices still show.
	Hidden bool
}

// Notify shows msg for the next frames frames.
func (h *HUD) Notify(msg string, frames int) {
	h.notice = msg
	h.noticeLeft = frames
}

// Notice returns the active notice, if any.
func (h *HUD) Notice() string {
	if h.noticeLeft <= 0 {
		return ""
	}
	return h.notice
}

// Tick ages the notice by one frame.
func (h *HUD) Tick() {
	if h.noticeLeft > 0 {
		h.noticeLeft--
	}
}

// Draw renders status lines at the top and the command line or notice at the
// bottom of fb.
func (h *HUD) Draw(fb hal.Framebuffer, status []string) {
	if fb == nil {
		return
	}
	d := &fbDisplay{fb: fb}
	font := &proggy.TinySZ8pt7b

	if !h.Hidden {
		y := int16(margin)
		for _, s := range status {
			if int(y)+lineHeight > fb.Height() {
				break
			}
			tinyfont.WriteLine(d, font, margin, y+baseline, s, textColor)
			y += lineHeight
		}
	}

	bottom := int16(fb.Height() - lineHeight - margin)
	switch {
	case h.Line.Active():
		d.FillRectangle(0, bottom-1, int16(fb.Width()), lineHeight+margin+1, barColor)
		text := ":" + h.Line.Text()
		tinyfont.WriteLine(d, font, margin, bottom+baseline, text, promptColor)
		// Cursor bar under the insertion point.
		prefix := ":" + string([]rune(h.Line.Text())[:h.Line.Cursor()])
		_, w := tinyfont.LineWidth(font, prefix)
		d.FillRectangle(int16(margin+int(w)), bottom+baseline+1, 5, 1, promptColor)
	case h.Notice() != "":
		d.FillRectangle(0, bottom-1, int16(fb.Width()), lineHeight+margin+1, barColor)
		tinyfont.WriteLine(d, font, margin, bottom+baseline, h.Notice(), noticeColor)
	}
}
