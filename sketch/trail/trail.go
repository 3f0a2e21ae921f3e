// Package trail keeps the bounded position history drawn behind each sample.
//
// Two disciplines exist. Head paths are always full: they start with every slot
// at the spawn position and each push shifts the history one slot toward the
// tail. Tail paths start empty and grow until they reach capacity, after which
// the oldest point falls off the front.
package trail

import "fieldviz/sketch/vmath"

// Discipline selects how a path records new points.
type Discipline uint8

const (
	HeadInsert Discipline = iota
	TailAppend
)

func (d Discipline) String() string {
	switch d {
	case HeadInsert:
		return "head"
	case TailAppend:
		return "tail"
	default:
		return "unknown"
	}
}

// Order describes how Points is arranged.
type Order uint8

const (
	NewestFirst Order = iota
	OldestFirst
)

// Path is a bounded history of positions. Len never exceeds Cap.
type Path interface {
	Push(p vmath.Vec3)
	// Points returns the live history. The slice aliases the path's storage and
	// is only valid until the next Push.
	Points() []vmath.Vec3
	Len() int
	Cap() int
	Order() Order
}

// New builds a path with the given discipline. A capacity below one is
// raised to one.
func New(d Discipline, capacity int, spawn vmath.Vec3) Path {
	if d == TailAppend {
		return NewTail(capacity)
	}
	return NewHead(capacity, spawn)
}

// Head is a fixed-length, newest-first history.
type Head struct {
	buf []vmath.Vec3
}

// NewHead returns a head path whose every slot holds spawn.
func NewHead(capacity int, spawn vmath.Vec3) *Head {
	if capacity < 1 {
		capacity = 1
	}
	buf := make([]vmath.Vec3, capacity)
	for i := range buf {
		buf[i] = spawn
	}
	return &Head{buf: buf}
}

func (h *Head) Push(p vmath.Vec3) {
	copy(h.buf[1:], h.buf[:len(h.buf)-1])
	h.buf[0] = p
}

func (h *Head) Points() []vmath.Vec3 { return h.buf }
func (h *Head) Len() int             { return len(h.buf) }
func (h *Head) Cap() int             { return len(h.buf) }
func (h *Head) Order() Order         { return NewestFirst }

// Tail is a growing, oldest-first history capped at a fixed length.
type Tail struct {
	buf []vmath.Vec3
	n   int
}

// NewTail returns an empty tail path. Its storage is allocated once here.
func NewTail(capacity int) *Tail {
	if capacity < 1 {
		capacity = 1
	}
	return &Tail{buf: make([]vmath.Vec3, capacity)}
}

func (t *Tail) Push(p vmath.Vec3) {
	if t.n == len(t.buf) {
		copy(t.buf, t.buf[1:])
		t.buf[t.n-1] = p
		return
	}
	t.buf[t.n] = p
	t.n++
}

func (t *Tail) Points() []vmath.Vec3 { return t.buf[:t.n] }
func (t *Tail) Len() int             { return t.n }
func (t *Tail) Cap() int             { return len(t.buf) }
func (t *Tail) Order() Order         { return OldestFirst }

