package border

import "github.com/gogpu/ggkit/theme"

// Option configures a Border during Attach.
//
// Example:
//
//	b := border.Attach(v,
//	    border.WithTheme(th),
//	    border.WithStyle(border.Style{Edges: border.EdgeBottom, Width: 1}),
//	)
type Option func(*options)

type options struct {
	style    *Style
	theme    theme.Theme
	hasTheme bool
}

// WithTheme derives the default style from th instead of theme.Default.
func WithTheme(th theme.Theme) Option {
	return func(o *options) {
		o.theme = th
		o.hasTheme = true
	}
}

// WithStyle sets the initial style. It takes precedence over WithTheme.
func WithStyle(s Style) Option {
	return func(o *options) {
		c := s.Clone()
		o.style = &c
	}
}

func (o options) initialStyle() Style {
	if o.style != nil {
		return *o.style
	}
	if o.hasTheme {
		return StyleFromTheme(o.theme)
	}
	return DefaultStyle()
}
