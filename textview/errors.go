package textview

import "errors"

// Sentinel errors for the textview package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("textview: empty font data")

	// ErrInvalidFontSize is returned for a non-positive font size.
	ErrInvalidFontSize = errors.New("textview: font size must be positive")
)
