package border

import (
	"slices"

	"github.com/gogpu/ggkit"
	"github.com/gogpu/ggkit/layer"
)

// Border draws selected edges of a host view with one shape layer.
//
// Every setter that changes the style recomputes the geometry before it
// returns, and the border recomputes again on each host layout pass, so
// the layer always matches the current style and bounds.
//
// A Border belongs to its host's goroutine and is not safe for concurrent use.
type Border struct {
	host   Host
	remove func()

	style Style
	shape *layer.Shape

	bounds   ggkit.Size
	segments []Segment
	detached bool
}

// Attach decorates host with a border and hooks it into the host's layout pass.
// The border starts with DefaultStyle unless options say otherwise.
func Attach(host Host, opts ...Option) *Border {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	b := &Border{
		host:   host,
		style:  o.initialStyle(),
		bounds: host.Bounds(),
	}
	b.remove = host.OnLayout(b.layout)
	b.invalidate()
	return b
}

// Detach unhooks the border from its host and removes its layer.
// Setters keep working on the style but no longer touch the host.
func (b *Border) Detach() {
	if b.detached {
		return
	}
	b.detached = true
	if b.remove != nil {
		b.remove()
		b.remove = nil
	}
	if b.shape != nil {
		b.host.RemoveSublayer(b.shape)
	}
}

// Layer returns the shape layer holding every border segment, creating it
// on first use. The same layer is returned for the border's whole life.
// Hosts may adjust properties the border does not own; stroke, path and
// dash are overwritten on the next recompute.
func (b *Border) Layer() *layer.Shape {
	return b.ensureLayer()
}

func (b *Border) ensureLayer() *layer.Shape {
	if b.shape == nil {
		b.shape = layer.NewShape()
		b.shape.SetStrokeColor(b.style.Color)
		b.shape.SetLineWidth(b.style.Width)
		if !b.detached {
			b.host.AddSublayer(b.shape)
		}
	}
	return b.shape
}

// Segments returns the segments committed by the last recompute.
func (b *Border) Segments() []Segment {
	return slices.Clone(b.segments)
}

// Bounds returns the host bounds used by the last recompute.
func (b *Border) Bounds() ggkit.Size {
	return b.bounds
}

// invalidate recomputes against the host's current bounds.
func (b *Border) invalidate() {
	if b.detached {
		return
	}
	b.layout(b.host.Bounds())
}

// layout is the host layout hook.
func (b *Border) layout(bounds ggkit.Size) {
	if b.detached {
		return
	}
	b.bounds = bounds
	b.segments = b.style.Segments(bounds)

	// Nothing requested and nothing drawn yet: keep the layer tree untouched.
	if b.shape == nil && len(b.segments) == 0 {
		return
	}

	out := b.style.Outline(bounds)
	s := b.ensureLayer()
	s.SetFrame(ggkit.Rect{Size: bounds})
	s.SetPath(out.Path)
	s.SetDash(out.Dash)
	s.SetLineWidth(b.style.Width)
	s.SetStrokeColor(b.style.Color)

	ggkit.Logger().Debug("border: recompute",
		"layer", s.ID(),
		"edges", b.style.Edges,
		"bounds", bounds,
		"segments", len(b.segments),
		"dashed", out.Dash != nil,
	)
}

// Style returns a copy of the current style.
func (b *Border) Style() Style {
	return b.style.Clone()
}

// SetStyle replaces the whole style at once.
func (b *Border) SetStyle(s Style) {
	if b.style.Equal(s) {
		return
	}
	b.style = s.Clone()
	b.invalidate()
}

// Location returns where the stroke sits relative to the edges.
func (b *Border) Location() Location {
	return b.style.Location
}

// SetLocation sets where the stroke sits relative to the edges.
func (b *Border) SetLocation(l Location) {
	if b.style.Location != l {
		b.style.Location = l
		b.invalidate()
	}
}

// Edges returns the edges being drawn.
func (b *Border) Edges() EdgeSet {
	return b.style.Edges
}

// SetEdges sets the edges to draw, e.g. EdgeTop | EdgeBottom.
func (b *Border) SetEdges(e EdgeSet) {
	if b.style.Edges != e {
		b.style.Edges = e
		b.invalidate()
	}
}

// Width returns the stroke width.
func (b *Border) Width() float64 {
	return b.style.Width
}

// SetWidth sets the stroke width. A non-positive width hides the border.
func (b *Border) SetWidth(w float64) {
	if b.style.Width != w {
		b.style.Width = w
		b.invalidate()
	}
}

// Insets returns the edge-relative insets.
func (b *Border) Insets() ggkit.EdgeInsets {
	return b.style.Insets
}

// SetInsets sets the edge-relative insets; see Resolve for their meaning.
func (b *Border) SetInsets(in ggkit.EdgeInsets) {
	if b.style.Insets != in {
		b.style.Insets = in
		b.invalidate()
	}
}

// Color returns the stroke color.
func (b *Border) Color() ggkit.RGBA {
	return b.style.Color
}

// SetColor sets the stroke color. Geometry is not recomputed.
func (b *Border) SetColor(c ggkit.RGBA) {
	if b.style.Color == c {
		return
	}
	b.style.Color = c
	if b.shape != nil {
		b.shape.SetStrokeColor(c)
	}
}

// DashPattern returns a copy of the dash pattern, nil for a solid line.
func (b *Border) DashPattern() []float64 {
	return slices.Clone(b.style.DashPattern)
}

// SetDashPattern sets alternating stroke and gap lengths. Fewer than two
// entries draw a solid line.
func (b *Border) SetDashPattern(p []float64) {
	if slices.Equal(b.style.DashPattern, p) {
		return
	}
	b.style.DashPattern = slices.Clone(p)
	b.invalidate()
}

// DashPhase returns the dash phase.
func (b *Border) DashPhase() float64 {
	return b.style.DashPhase
}

// SetDashPhase sets how far into the pattern each edge starts.
// It has no visible effect without a dash pattern.
func (b *Border) SetDashPhase(phase float64) {
	if b.style.DashPhase != phase {
		b.style.DashPhase = phase
		b.invalidate()
	}
}
