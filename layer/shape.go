package layer

import (
	"sync/atomic"

	"github.com/gogpu/ggkit"
)

// ID uniquely identifies a shape layer.
type ID uint32

var nextID atomic.Uint32

func newID() ID {
	return ID(nextID.Add(1))
}

// Shape is a retained stroked outline.
// The zero value is not usable; create shapes with NewShape.
type Shape struct {
	id     ID
	frame  ggkit.Rect
	path   *ggkit.Path
	stroke ggkit.Stroke
	hidden bool

	// revision counts effective mutations so hosts can skip redundant repaints.
	revision uint64
}

// NewShape creates an empty, visible shape with a 1-unit transparent stroke.
func NewShape() *Shape {
	return &Shape{
		id:     newID(),
		path:   ggkit.NewPath(),
		stroke: ggkit.Stroke{Width: 1, Color: ggkit.Transparent},
	}
}

// ID returns the shape's identifier.
func (s *Shape) ID() ID {
	return s.id
}

// Revision returns a counter bumped by every mutation that changed the shape.
func (s *Shape) Revision() uint64 {
	return s.revision
}

// Frame returns the shape's frame in its host's coordinate space.
func (s *Shape) Frame() ggkit.Rect {
	return s.frame
}

// SetFrame places the shape inside its host.
func (s *Shape) SetFrame(r ggkit.Rect) {
	if s.frame != r {
		s.frame = r
		s.revision++
	}
}

// Path returns the outline. Callers must not modify it.
func (s *Shape) Path() *ggkit.Path {
	return s.path
}

// SetPath replaces the outline. A nil path clears it.
func (s *Shape) SetPath(p *ggkit.Path) {
	if p == nil {
		p = ggkit.NewPath()
	}
	if s.path.Equal(p) {
		return
	}
	s.path = p
	s.revision++
}

// StrokeColor returns the stroke color.
func (s *Shape) StrokeColor() ggkit.RGBA {
	return s.stroke.Color
}

// SetStrokeColor sets the stroke color.
func (s *Shape) SetStrokeColor(c ggkit.RGBA) {
	if s.stroke.Color != c {
		s.stroke.Color = c
		s.revision++
	}
}

// LineWidth returns the stroke width.
func (s *Shape) LineWidth() float64 {
	return s.stroke.Width
}

// SetLineWidth sets the stroke width. Non-positive widths draw nothing.
func (s *Shape) SetLineWidth(w float64) {
	if s.stroke.Width != w {
		s.stroke.Width = w
		s.revision++
	}
}

// Dash returns the dash pattern, or nil for a solid stroke.
func (s *Shape) Dash() *ggkit.Dash {
	return s.stroke.Dash.Clone()
}

// SetDash sets the dash pattern. Pass nil for a solid stroke.
func (s *Shape) SetDash(d *ggkit.Dash) {
	if s.stroke.Dash.Equal(d) {
		return
	}
	s.stroke.Dash = d.Clone()
	s.revision++
}

// Hidden reports whether the shape is skipped when rendering.
func (s *Shape) Hidden() bool {
	return s.hidden
}

// SetHidden shows or hides the shape.
func (s *Shape) SetHidden(hidden bool) {
	if s.hidden != hidden {
		s.hidden = hidden
		s.revision++
	}
}
