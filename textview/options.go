package textview

import (
	"github.com/gogpu/ggkit"
	"github.com/gogpu/ggkit/theme"
)

// Option configures a TextView during New.
type Option func(*options)

type options struct {
	frame    ggkit.Rect
	theme    theme.Theme
	measurer Measurer
	delegate any
}

func defaultOptions() options {
	return options{theme: theme.Default()}
}

// WithFrame sets the initial frame. The height is clamped like SetFrame.
func WithFrame(r ggkit.Rect) Option {
	return func(o *options) {
		o.frame = r
	}
}

// WithTheme takes colors and insets from th.
func WithTheme(th theme.Theme) Option {
	return func(o *options) {
		o.theme = th
	}
}

// WithMeasurer sets the text measurer. The default measures Go Regular at
// the theme's FontSize.
func WithMeasurer(m Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// WithDelegate sets the initial delegate. See SetDelegate.
func WithDelegate(d any) Option {
	return func(o *options) {
		o.delegate = d
	}
}
