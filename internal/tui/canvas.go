package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuitap/internal/layout"
)

type hitID int

const (
	hitNone hitID = iota
	hitTarget
	hitReset
	hitStart
)

// canvas stacks rendered blocks top to bottom and remembers where the
// clickable ones landed.
type canvas struct {
	width int
	lines []string
	hits  map[hitID]layout.Rect
}

func newCanvas(width int) *canvas {
	return &canvas{width: width, hits: map[hitID]layout.Rect{}}
}

func (c *canvas) blank(n int) {
	for i := 0; i < n; i++ {
		c.lines = append(c.lines, "")
	}
}

// center appends block horizontally centred and returns its rectangle.
func (c *canvas) center(block string) layout.Rect {
	x := (c.width - lipgloss.Width(block)) / 2
	if x < 0 {
		x = 0
	}
	return c.at(x, block)
}

// at appends block starting at column x.
func (c *canvas) at(x int, block string) layout.Rect {
	pad := strings.Repeat(" ", x)
	rows := strings.Split(block, "\n")
	r := layout.Rect{X: x, Y: len(c.lines), W: lipgloss.Width(block), H: len(rows)}
	for _, row := range rows {
		c.lines = append(c.lines, pad+row)
	}
	return r
}

func (c *canvas) hit(id hitID, r layout.Rect) {
	c.hits[id] = r
}

// hitAt returns the clickable region under the cell (x, y).
func (c *canvas) hitAt(x, y int) hitID {
	for id, r := range c.hits {
		if r.Contains(x, y) {
			return id
		}
	}
	return hitNone
}

// padTo grows the canvas with blank rows until it is height rows tall.
func (c *canvas) padTo(height int) {
	if len(c.lines) < height {
		c.blank(height - len(c.lines))
	}
}

// middle shifts everything down so the content is vertically centred.
func (c *canvas) middle(height int) {
	top := (height - len(c.lines)) / 2
	if top <= 0 {
		return
	}
	c.lines = append(make([]string, top), c.lines...)
	for id, r := range c.hits {
		r.Y += top
		c.hits[id] = r
	}
}

func (c *canvas) String() string {
	return strings.Join(c.lines, "\n")
}
