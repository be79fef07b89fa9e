package border

import "github.com/gogpu/ggkit"

// Segment is the line one edge's border follows, in the view's coordinates.
// Start and End follow the edge's drawing direction:
//
//	Top     left to right
//	Left    bottom to top
//	Bottom  right to left
//	Right   top to bottom
type Segment struct {
	Edge       Edge
	Start, End ggkit.Point
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Inverted reports whether insets pushed End behind Start along the edge's
// drawing direction.
func (s Segment) Inverted() bool {
	switch s.Edge {
	case Top:
		return s.End.X < s.Start.X
	case Left:
		return s.End.Y > s.Start.Y
	case Bottom:
		return s.End.X > s.Start.X
	case Right:
		return s.End.Y < s.Start.Y
	}
	return false
}

// Degenerate reports whether the segment strokes nothing.
func (s Segment) Degenerate() bool {
	return s.Inverted() || s.Start == s.End
}

// Resolve computes one segment per requested edge, in Top, Left, Bottom,
// Right order. It is a pure function of its arguments.
//
// Insets are read relative to each edge's drawing direction: Left always
// moves the start point inward, Right the end point, and Top/Bottom shift
// the whole line across the edge (Top toward the interior, Bottom away from
// it). Negative values displace the other way. Insets that cross the
// endpoints over produce inverted segments, not errors.
//
// A non-positive width resolves to no segments.
func Resolve(edges EdgeSet, width float64, insets ggkit.EdgeInsets, loc Location, bounds ggkit.Size) []Segment {
	if width <= 0 || edges&edgeMask == 0 {
		return nil
	}

	w, h := bounds.Width, bounds.Height
	off := loc.Offset(width)
	shift := insets.Top - insets.Bottom

	segs := make([]Segment, 0, edges.Count())
	for _, e := range edges.Edges() {
		var s Segment
		switch e {
		case Top:
			y := off + shift
			s = Segment{Edge: Top, Start: ggkit.Pt(insets.Left, y), End: ggkit.Pt(w-insets.Right, y)}
		case Left:
			x := off + shift
			s = Segment{Edge: Left, Start: ggkit.Pt(x, h-insets.Left), End: ggkit.Pt(x, insets.Right)}
		case Bottom:
			y := h - off - shift
			s = Segment{Edge: Bottom, Start: ggkit.Pt(w-insets.Left, y), End: ggkit.Pt(insets.Right, y)}
		case Right:
			x := w - off - shift
			s = Segment{Edge: Right, Start: ggkit.Pt(x, insets.Left), End: ggkit.Pt(x, h-insets.Right)}
		}
		segs = append(segs, s)
	}
	return segs
}
