package border

import (
	"github.com/gogpu/ggkit"
	"github.com/gogpu/ggkit/layer"
)

// Host is the view a Border decorates.
//
// The host reports its bounds, runs layout hooks synchronously at the end of
// every layout pass, and owns the layer tree the border's shape joins.
// view.View implements Host.
type Host interface {
	// Bounds returns the view's size in its own coordinate space.
	Bounds() ggkit.Size

	// OnLayout registers fn to run after each layout pass with the new bounds.
	// The returned function unregisters it.
	OnLayout(fn func(bounds ggkit.Size)) (remove func())

	// AddSublayer adds a shape on top of the view's content.
	AddSublayer(s *layer.Shape)

	// RemoveSublayer removes a shape added by AddSublayer.
	RemoveSublayer(s *layer.Shape)
}
