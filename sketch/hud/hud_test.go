package hud

import (
	"testing"

	"fieldviz/hal"
)

type testFB struct {
	w, h int
	buf  []byte
}

func newTestFB(w, h int) *testFB { return &testFB{w: w, h: h, buf: make([]byte, w*h*2)} }

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) ClearRGB(r, g, b uint8)  {}
func (f *testFB) Present() error          { return nil }

func (f *testFB) litRows() (top, bottom bool) {
	for y := 0; y < f.h; y++ {
		for x := 0; x < f.w; x++ {
			off := y*f.w*2 + x*2
			if f.buf[off] != 0 || f.buf[off+1] != 0 {
				if y < f.h/2 {
					top = true
				} else {
					bottom = true
				}
			}
		}
	}
	return top, bottom
}

func TestDrawStatus(t *testing.T) {
	fb := newTestFB(120, 60)
	var h HUD
	h.Draw(fb, []string{"frame 1"})
	top, bottom := fb.litRows()
	if !top || bottom {
		t.Fatalf("status drew top=%v bottom=%v", top, bottom)
	}
}

func TestDrawHiddenStatus(t *testing.T) {
	fb := newTestFB(120, 60)
	h := HUD{Hidden: true}
	h.Draw(fb, []string{"frame 1"})
	if top, bottom := fb.litRows(); top || bottom {
		t.Fatalf("hidden HUD drew pixels")
	}
}

func TestNoticeExpires(t *testing.T) {
	var h HUD
	h.Notify("vx: bad", 2)
	if h.Notice() != "vx: bad" {
		t.Fatalf("notice=%q", h.Notice())
	}
	fb := newTestFB(120, 60)
	h.Draw(fb, nil)
	if _, bottom := fb.litRows(); !bottom {
		t.Fatalf("notice not drawn")
	}
	h.Tick()
	h.Tick()
	if h.Notice() != "" {
		t.Fatalf("notice still active: %q", h.Notice())
	}
	h.Tick()
}

func TestDrawCommandLine(t *testing.T) {
	var h HUD
	h.Line.Open()
	for _, r := range "span=4" {
		h.Line.Insert(r)
	}
	fb := newTestFB(120, 60)
	h.Draw(fb, nil)
	if _, bottom := fb.litRows(); !bottom {
		t.Fatalf("command line not drawn")
	}
}
