package textview

import (
	"math"

	"github.com/gogpu/ggkit"
)

// TextContainerInset returns the padding between the bounds and the text.
func (tv *TextView) TextContainerInset() ggkit.EdgeInsets {
	return tv.inset
}

// SetTextContainerInset sets the padding between the bounds and the text.
func (tv *TextView) SetTextContainerInset(in ggkit.EdgeInsets) {
	if tv.inset == in {
		return
	}
	tv.inset = in
	tv.SetNeedsLayout()
}

// MaximumHeight returns the height cap. The default is +Inf.
func (tv *TextView) MaximumHeight() float64 {
	return tv.maxHeight
}

// SetMaximumHeight caps the fitting height and the frame height.
// Non-positive values remove the cap.
func (tv *TextView) SetMaximumHeight(h float64) {
	if h <= 0 {
		h = math.Inf(1)
	}
	tv.maxHeight = h
	tv.SetFrame(tv.Frame())
}

// MaximumTextLength returns the length limit, or Unlimited.
func (tv *TextView) MaximumTextLength() int {
	return tv.maxLength
}

// SetMaximumTextLength sets the length limit. Negative values mean Unlimited.
// Text already stored is not truncated.
func (tv *TextView) SetMaximumTextLength(n int) {
	if n < 0 {
		n = Unlimited
	}
	tv.maxLength = n
}

// CountNonASCIIAsTwo reports whether non-ASCII runes count twice.
func (tv *TextView) CountNonASCIIAsTwo() bool {
	return tv.nonASCIIAsTwo
}

// SetCountNonASCIIAsTwo sets whether non-ASCII runes count twice.
func (tv *TextView) SetCountNonASCIIAsTwo(v bool) {
	tv.nonASCIIAsTwo = v
}

// TextLength returns the length of the text as the limit counts it.
func (tv *TextView) TextLength() int {
	return lengthOf(tv.text, tv.nonASCIIAsTwo)
}

// Measurer returns the text measurer.
func (tv *TextView) Measurer() Measurer {
	return tv.measurer
}

// Lines returns the text wrapped to the current bounds.
func (tv *TextView) Lines() []string {
	return wrapLines(tv.text, tv.Bounds().Width-tv.inset.Horizontal(), tv.measurer)
}

// SizeThatFits returns the size the text needs at the given width. An empty
// view is one line tall. The height is capped at MaximumHeight.
func (tv *TextView) SizeThatFits(width float64) ggkit.Size {
	lines := wrapLines(tv.text, width-tv.inset.Horizontal(), tv.measurer)
	h := float64(len(lines))*tv.measurer.LineHeight() + tv.inset.Vertical()
	h = math.Min(math.Ceil(h), tv.maxHeight)
	return ggkit.Sz(width, h)
}

// updateHeight tells the HeightObserver when the fitting height differs from
// the frame height.
func (tv *TextView) updateHeight() {
	o, ok := tv.delegate.(HeightObserver)
	if !ok {
		return
	}
	b := tv.Bounds()
	h := tv.SizeThatFits(b.Width).Height
	if h == b.Height {
		return
	}
	ggkit.Logger().Debug("textview: height changed", "from", b.Height, "to", h)
	o.TextViewHeightChanged(tv, h)
}
