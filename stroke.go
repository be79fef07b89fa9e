package ggkit

// Stroke defines how an outline is painted.
type Stroke struct {
	// Width is the line width in view units.
	Width float64

	// Color is the stroke color.
	Color RGBA

	// Dash is the dash pattern for the stroke.
	// nil means a solid line (no dashing).
	Dash *Dash
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithColor returns a copy of the Stroke with the given color.
func (s Stroke) WithColor(c RGBA) Stroke {
	s.Color = c
	return s
}

// WithDash returns a copy of the Stroke with the given dash pattern.
// Pass nil to return to solid lines.
func (s Stroke) WithDash(dash *Dash) Stroke {
	s.Dash = dash.Clone()
	return s
}

// IsDashed returns true if this stroke has a dash pattern.
func (s Stroke) IsDashed() bool {
	return s.Dash.IsDashed()
}

// IsVisible reports whether painting this stroke can change any pixel.
func (s Stroke) IsVisible() bool {
	return s.Width > 0 && !s.Color.IsTransparent()
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	s.Dash = s.Dash.Clone()
	return s
}
