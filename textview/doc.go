// Package textview implements a multi-line text view with a placeholder,
// a maximum text length and automatic height.
//
// The view keeps its own text storage and reacts to edits delivered through
// ReplaceRange, Insert and Paste. Key handling and text rendering belong to
// the host; the view decides which edits are accepted and what height the
// content needs.
//
// # Length limit
//
// Lengths are counted in runes of the NFC normalized text. With
// SetCountNonASCIIAsTwo every non-ASCII rune counts twice. An edit that would
// exceed the limit is truncated at a normalization boundary and the delegate
// is told through PreventObserver.
//
// # Delegates
//
// The delegate may implement any of ChangeFilter, ChangeObserver,
// HeightObserver, ReturnHandler and PreventObserver.
package textview
