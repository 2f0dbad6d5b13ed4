package pixedit

import (
	"fmt"
	"image"
)

// StrokeState is the state of a StrokeController.
type StrokeState uint8

const (
	// StrokeIdle means no pointer is held down.
	StrokeIdle StrokeState = iota

	// StrokeDragging means a stroke is in progress.
	StrokeDragging
)

// String returns a string representation of the state.
func (s StrokeState) String() string {
	switch s {
	case StrokeIdle:
		return "Idle"
	case StrokeDragging:
		return "Dragging"
	default:
		return fmt.Sprintf("StrokeState(%d)", uint8(s))
	}
}

// StrokeTarget receives the effects of a stroke.
type StrokeTarget interface {
	// Bounds returns the area in which strokes may start and apply.
	Bounds() image.Rectangle

	// BeginStroke is called once per stroke, before the first ApplyAt.
	BeginStroke()

	// ApplyAt applies the active tool at a pixel inside Bounds.
	ApplyAt(x, y int)
}

// StrokeController turns pointer events into brush applications.
//
// A stroke starts on a pointer-down inside the target bounds and ends on
// pointer-up or pointer-leave. Moves are joined to the previous position
// with a Bresenham line so fast drags leave no gaps. Moves outside the
// bounds are dropped without ending the stroke.
//
// StrokeController is not safe for concurrent use.
type StrokeController struct {
	target StrokeTarget
	state  StrokeState
	last   image.Point
}

// NewStrokeController creates an idle controller driving target.
func NewStrokeController(target StrokeTarget) *StrokeController {
	return &StrokeController{target: target}
}

// State returns the current state.
func (c *StrokeController) State() StrokeState {
	return c.state
}

// Last returns the last applied position. Only meaningful while dragging.
func (c *StrokeController) Last() image.Point {
	return c.last
}

// Down handles a pointer-down at pixel p. It reports whether a stroke began.
func (c *StrokeController) Down(p image.Point) bool {
	if c.state == StrokeDragging || !p.In(c.target.Bounds()) {
		return false
	}
	c.state = StrokeDragging
	c.last = p
	c.target.BeginStroke()
	c.target.ApplyAt(p.X, p.Y)
	return true
}

// Move handles a pointer-move to pixel p and returns the number of brush
// applications it caused.
func (c *StrokeController) Move(p image.Point) int {
	if c.state != StrokeDragging || !p.In(c.target.Bounds()) || p == c.last {
		return 0
	}
	n := 0
	Line(c.last.X, c.last.Y, p.X, p.Y, func(x, y int) {
		c.target.ApplyAt(x, y)
		n++
	})
	c.last = p
	return n
}

// Up handles a pointer-up. It reports whether a stroke ended.
func (c *StrokeController) Up() bool {
	if c.state != StrokeDragging {
		return false
	}
	c.state = StrokeIdle
	c.last = image.Point{}
	return true
}

// Leave handles the pointer leaving the widget while captured.
// It ends the stroke exactly like Up.
func (c *StrokeController) Leave() bool {
	return c.Up()
}
