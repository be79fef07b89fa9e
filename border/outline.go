package border

import "github.com/gogpu/ggkit"

// Outline is what a shape layer needs to stroke a set of segments.
type Outline struct {
	// Path holds one open sub-path per segment. Sub-paths are never
	// connected or closed.
	Path *ggkit.Path

	// Dash is the dash configuration, or nil for a solid stroke.
	Dash *ggkit.Dash
}

// BuildOutline turns resolved segments into an outline.
//
// Segments keep their order. An inverted segment becomes a zero-length
// sub-path at its start point so it strokes nothing.
//
// A pattern with fewer than two entries means a solid stroke. Longer
// patterns are passed through unchanged; odd-length patterns repeat twice
// per cycle when stroked.
func BuildOutline(segments []Segment, pattern []float64, phase float64) Outline {
	b := ggkit.BuildPath()
	for _, s := range segments {
		end := s.End
		if s.Inverted() {
			end = s.Start
		}
		b.Line(s.Start, end)
	}

	var dash *ggkit.Dash
	if len(pattern) >= 2 {
		dash = ggkit.NewDash(pattern...).WithOffset(phase)
	}
	return Outline{Path: b.Build(), Dash: dash}
}
