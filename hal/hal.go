package hal

import "time"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier. Printable keys arrive as runes with
// KeyUnknown.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each host).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time reports host frame timing. The host advances it once per step.
type Time interface {
	Frame() uint64
	// Delta is the time covered by the current step.
	Delta() time.Duration
}

// HAL is the only contact point between the app and the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}

// NewApp builds an app against h and returns the function the host calls once
// per frame.
type NewApp func(h HAL) (step func() error, err error)

// Screen is the framebuffer geometry requested by the caller.
type Screen struct {
	Width  int
	Height int
}

func (s Screen) orDefault() Screen {
	if s.Width <= 0 {
		s.Width = 320
	}
	if s.Height <= 0 {
		s.Height = 320
	}
	return s
}
