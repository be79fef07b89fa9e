package textview

import (
	"math"
	"unicode/utf8"

	"github.com/gogpu/ggkit"
	"github.com/gogpu/ggkit/view"
)

// Range is a span of the text in rune offsets.
type Range struct {
	Location int
	Length   int
}

// End returns the offset just past the range.
func (r Range) End() int {
	return r.Location + r.Length
}

// TextView is a multi-line editable text view.
// It is not safe for concurrent use.
type TextView struct {
	*view.View

	text      string
	selection Range

	placeholder        string
	placeholderColor   ggkit.RGBA
	placeholderMargins ggkit.EdgeInsets
	textColor          ggkit.RGBA
	inset              ggkit.EdgeInsets

	maxLength     int
	nonASCIIAsTwo bool
	programmatic  bool
	maxHeight     float64

	measurer Measurer
	delegate any
	paste    func(text string) bool
	canPaste func() bool
}

// New creates an empty text view.
func New(opts ...Option) *TextView {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m := o.measurer
	if m == nil {
		m = themeMeasurer(o.theme.FontSize)
	}
	tv := &TextView{
		View:             view.New(ggkit.Rect{}),
		placeholderColor: o.theme.PlaceholderColor,
		textColor:        o.theme.TextColor,
		inset:            o.theme.TextInset,
		maxLength:        Unlimited,
		programmatic:     true,
		maxHeight:        math.Inf(1),
		measurer:         m,
		delegate:         o.delegate,
	}
	tv.SetFrame(o.frame)
	return tv
}

// SetFrame sets the frame with its height clamped to MaximumHeight.
func (tv *TextView) SetFrame(r ggkit.Rect) {
	r.Size.Height = math.Min(r.Size.Height, tv.maxHeight)
	tv.View.SetFrame(r)
}

// Delegate returns the delegate.
func (tv *TextView) Delegate() any {
	return tv.delegate
}

// SetDelegate sets the object that receives callbacks.
func (tv *TextView) SetDelegate(d any) {
	tv.delegate = d
}

// Text returns the current text.
func (tv *TextView) Text() string {
	return tv.text
}

// SetText replaces the whole text. When RespondsToProgrammaticChanges is
// true the edit goes through the length limit and the delegate like user
// input; otherwise the text is stored as is and nobody is notified.
func (tv *TextView) SetText(s string) {
	whole := Range{Length: utf8.RuneCountInString(tv.text)}
	if !tv.programmatic {
		tv.apply(whole, s, false)
		return
	}
	tv.edit(whole, s)
}

// RespondsToProgrammaticChanges reports whether SetText behaves like input.
func (tv *TextView) RespondsToProgrammaticChanges() bool {
	return tv.programmatic
}

// SetRespondsToProgrammaticChanges sets whether SetText behaves like input.
// The default is true.
func (tv *TextView) SetRespondsToProgrammaticChanges(v bool) {
	tv.programmatic = v
}

// Selection returns the selected range. An empty range is a caret.
func (tv *TextView) Selection() Range {
	return tv.selection
}

// SetSelection sets the selection, clamped to the text.
func (tv *TextView) SetSelection(r Range) {
	tv.selection = tv.clamp(r)
}

// ReplaceRange delivers a user edit that replaces r with s. It returns
// whether the edit was applied unchanged. A truncated edit is applied in part
// and reports false.
func (tv *TextView) ReplaceRange(r Range, s string) bool {
	r = tv.clamp(r)
	if s == "\n" {
		if h, ok := tv.delegate.(ReturnHandler); ok && h.TextViewShouldReturn(tv) {
			return false
		}
	}
	return tv.edit(r, s)
}

// Insert replaces the selection with s.
func (tv *TextView) Insert(s string) bool {
	return tv.ReplaceRange(tv.selection, s)
}

// SetPasteFunc sets a hook run before Paste. Returning false cancels the paste.
func (tv *TextView) SetPasteFunc(fn func(text string) bool) {
	tv.paste = fn
}

// SetCanPasteFunc sets a hook deciding whether pasting is offered at all.
// A nil func restores the default, which always offers it.
func (tv *TextView) SetCanPasteFunc(fn func() bool) {
	tv.canPaste = fn
}

// CanPaste reports whether the paste action should be offered.
func (tv *TextView) CanPaste() bool {
	return tv.canPaste == nil || tv.canPaste()
}

// Paste inserts text at the selection unless pasting is not offered or the
// paste hook refuses it.
func (tv *TextView) Paste(text string) bool {
	if !tv.CanPaste() {
		return false
	}
	if tv.paste != nil && !tv.paste(text) {
		return false
	}
	return tv.Insert(text)
}

// edit runs the length limit and the change filter, then applies.
func (tv *TextView) edit(r Range, s string) bool {
	if tv.maxLength != Unlimited {
		kept := tv.lengthWithout(r)
		next := kept + lengthOf(s, tv.nonASCIIAsTwo)
		// Edits that do not grow the text always pass, so text stored over
		// the limit can still be shortened.
		if next > tv.maxLength && next > tv.TextLength() {
			allowed := truncate(s, tv.maxLength-kept, tv.nonASCIIAsTwo)
			if allowed != "" {
				tv.apply(r, allowed, true)
			}
			ggkit.Logger().Debug("textview: input truncated",
				"limit", tv.maxLength, "kept", len(allowed), "requested", len(s))
			if p, ok := tv.delegate.(PreventObserver); ok {
				p.TextViewDidPreventChange(tv, r, s)
			}
			return false
		}
	}
	if f, ok := tv.delegate.(ChangeFilter); ok && !f.TextViewShouldChange(tv, r, s, true) {
		return false
	}
	tv.apply(r, s, true)
	return true
}

// apply performs the replacement and moves the caret after it.
func (tv *TextView) apply(r Range, s string, notify bool) {
	start, end := tv.byteOffset(r.Location), tv.byteOffset(r.End())
	tv.text = tv.text[:start] + s + tv.text[end:]
	tv.selection = Range{Location: r.Location + utf8.RuneCountInString(s)}
	if !notify {
		return
	}
	if o, ok := tv.delegate.(ChangeObserver); ok {
		o.TextViewDidChange(tv)
	}
	tv.updateHeight()
}

// lengthWithout returns the text length after removing r.
func (tv *TextView) lengthWithout(r Range) int {
	start, end := tv.byteOffset(r.Location), tv.byteOffset(r.End())
	return lengthOf(tv.text[:start]+tv.text[end:], tv.nonASCIIAsTwo)
}

func (tv *TextView) clamp(r Range) Range {
	n := utf8.RuneCountInString(tv.text)
	loc := min(max(r.Location, 0), n)
	length := min(max(r.Length, 0), n-loc)
	return Range{Location: loc, Length: length}
}

// byteOffset converts a rune offset into the text to a byte offset.
func (tv *TextView) byteOffset(runes int) int {
	i := 0
	for n := 0; n < runes && i < len(tv.text); n++ {
		_, size := utf8.DecodeRuneInString(tv.text[i:])
		i += size
	}
	return i
}
