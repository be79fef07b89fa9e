package border

import (
	"slices"

	"github.com/gogpu/ggkit"
	"github.com/gogpu/ggkit/theme"
)

// Style fully describes a border's appearance.
type Style struct {
	Location    Location
	Edges       EdgeSet
	Width       float64
	Insets      ggkit.EdgeInsets
	Color       ggkit.RGBA
	DashPattern []float64
	DashPhase   float64
}

// DefaultStyle returns the style a border starts with: inside location, no
// edges, a hairline width, zero insets, the separator color and a solid line.
func DefaultStyle() Style {
	return StyleFromTheme(theme.Default())
}

// StyleFromTheme returns the default style for th.
func StyleFromTheme(th theme.Theme) Style {
	loc, ok := ParseLocation(th.BorderLocation)
	if !ok {
		ggkit.Logger().Warn("border: unknown theme location, using inside", "location", th.BorderLocation)
	}
	return Style{
		Location: loc,
		Edges:    EdgeNone,
		Width:    th.Hairline(),
		Color:    th.SeparatorColor,
	}
}

// Segments resolves the style against bounds.
func (s Style) Segments(bounds ggkit.Size) []Segment {
	return Resolve(s.Edges, s.Width, s.Insets, s.Location, bounds)
}

// Outline resolves the style against bounds and builds its outline.
func (s Style) Outline(bounds ggkit.Size) Outline {
	return BuildOutline(s.Segments(bounds), s.DashPattern, s.DashPhase)
}

// Clone returns a copy that shares no memory with s.
func (s Style) Clone() Style {
	s.DashPattern = slices.Clone(s.DashPattern)
	return s
}

// Equal reports whether both styles describe the same border.
func (s Style) Equal(o Style) bool {
	return s.Location == o.Location &&
		s.Edges == o.Edges &&
		s.Width == o.Width &&
		s.Insets == o.Insets &&
		s.Color == o.Color &&
		slices.Equal(s.DashPattern, o.DashPattern) &&
		s.DashPhase == o.DashPhase
}
