package hal

import "time"

type hostTime struct {
	frame uint64
	last  time.Time
	delta time.Duration
	// fixed, when set, replaces wall-clock deltas.
	fixed time.Duration
}

func (t *hostTime) Frame() uint64        { return t.frame }
func (t *hostTime) Delta() time.Duration { return t.delta }

func (t *hostTime) step() {
	t.frame++
	if t.fixed > 0 {
		t.delta = t.fixed
		return
	}
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.delta = 0
		return
	}
	t.delta = now.Sub(t.last)
	t.last = now
}
