package textview

import "github.com/gogpu/ggkit"

// Placeholder returns the text shown while the view is empty.
func (tv *TextView) Placeholder() string {
	return tv.placeholder
}

// SetPlaceholder sets the text shown while the view is empty.
func (tv *TextView) SetPlaceholder(s string) {
	tv.placeholder = s
}

// PlaceholderColor returns the placeholder color.
func (tv *TextView) PlaceholderColor() ggkit.RGBA {
	return tv.placeholderColor
}

// SetPlaceholderColor sets the placeholder color.
func (tv *TextView) SetPlaceholderColor(c ggkit.RGBA) {
	tv.placeholderColor = c
}

// TextColor returns the text color.
func (tv *TextView) TextColor() ggkit.RGBA {
	return tv.textColor
}

// SetTextColor sets the text color.
func (tv *TextView) SetTextColor(c ggkit.RGBA) {
	tv.textColor = c
}

// PlaceholderMargins returns the extra inset of the placeholder, applied on
// top of TextContainerInset.
func (tv *TextView) PlaceholderMargins() ggkit.EdgeInsets {
	return tv.placeholderMargins
}

// SetPlaceholderMargins sets the extra inset of the placeholder.
func (tv *TextView) SetPlaceholderMargins(m ggkit.EdgeInsets) {
	tv.placeholderMargins = m
}

// PlaceholderVisible reports whether the placeholder should be drawn.
func (tv *TextView) PlaceholderVisible() bool {
	return tv.text == "" && tv.placeholder != ""
}

// PlaceholderRect returns where the placeholder is drawn, in bounds coordinates.
func (tv *TextView) PlaceholderRect() ggkit.Rect {
	b := tv.Bounds()
	return ggkit.R(0, 0, b.Width, b.Height).Inset(tv.inset).Inset(tv.placeholderMargins)
}
