package textview

// A delegate passed to SetDelegate may implement any subset of the
// interfaces below. Each one is discovered with a type assertion.

// ChangeFilter vetoes edits that already passed the length limit.
type ChangeFilter interface {
	// TextViewShouldChange reports whether replacing r with replacement
	// should go ahead. original is the text view's own verdict, which is
	// always true when this is called.
	TextViewShouldChange(tv *TextView, r Range, replacement string, original bool) bool
}

// ChangeObserver is told after the text has changed.
type ChangeObserver interface {
	TextViewDidChange(tv *TextView)
}

// HeightObserver is told when the fitting height differs from the current
// frame height. The observer usually resizes the view in response.
type HeightObserver interface {
	TextViewHeightChanged(tv *TextView, height float64)
}

// ReturnHandler intercepts a return key press. Returning true swallows the
// newline.
type ReturnHandler interface {
	TextViewShouldReturn(tv *TextView) bool
}

// PreventObserver is told when an edit was cut short by the maximum length.
type PreventObserver interface {
	TextViewDidPreventChange(tv *TextView, r Range, replacement string)
}
