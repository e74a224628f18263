// Package layout places the tap target inside the practice arena.
package layout

import (
	"math/rand"
	"time"
)

// Rect is a cell rectangle on screen.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Placer positions the target. With shuffle off the target is centred.
type Placer struct {
	rnd     *rand.Rand
	shuffle bool
}

// New returns a Placer seeded with the current time.
func New(shuffle bool) *Placer {
	return NewSeeded(shuffle, time.Now().UnixNano())
}

// NewSeeded returns a Placer with a fixed seed.
func NewSeeded(shuffle bool, seed int64) *Placer {
	return &Placer{rnd: rand.New(rand.NewSource(seed)), shuffle: shuffle}
}

// Place returns the target rectangle of size w x h inside arena. The target
// is clipped to the arena when it does not fit.
func (p *Placer) Place(arena Rect, w, h int) Rect {
	if w > arena.W {
		w = arena.W
	}
	if h > arena.H {
		h = arena.H
	}
	if w <= 0 || h <= 0 {
		return Rect{X: arena.X, Y: arena.Y}
	}
	freeX := arena.W - w
	freeY := arena.H - h
	x, y := freeX/2, freeY/2
	if p.shuffle {
		x = p.rnd.Intn(freeX + 1)
		y = p.rnd.Intn(freeY + 1)
	}
	return Rect{X: arena.X + x, Y: arena.Y + y, W: w, H: h}
}
