// Package view provides a minimal retained view tree: frames, sublayers,
// subviews and a synchronous layout pass with hooks.
//
// It is the reference host for the border and textview packages.
package view

import (
	"image"
	"image/draw"
	"slices"

	"github.com/gogpu/ggkit"
	"github.com/gogpu/ggkit/layer"
)

type layoutHook struct {
	id uint64
	fn func(ggkit.Size)
}

// View is a rectangular node in a view tree.
// A View belongs to one goroutine and is not safe for concurrent use.
type View struct {
	frame      ggkit.Rect
	background ggkit.RGBA

	superview *View
	subviews  []*View
	sublayers []*layer.Shape

	hooks       []layoutHook
	nextHookID  uint64
	needsLayout bool
	destroyed   bool
}

// New creates a view with the given frame. The first LayoutIfNeeded runs
// its layout hooks.
func New(frame ggkit.Rect) *View {
	return &View{frame: frame, needsLayout: true}
}

// Frame returns the view's rectangle in its superview's coordinates.
func (v *View) Frame() ggkit.Rect {
	return v.frame
}

// SetFrame moves or resizes the view. A size change schedules layout.
func (v *View) SetFrame(r ggkit.Rect) {
	if v.frame == r {
		return
	}
	if v.frame.Size != r.Size {
		v.needsLayout = true
	}
	v.frame = r
}

// Bounds returns the view's size in its own coordinate space.
func (v *View) Bounds() ggkit.Size {
	return v.frame.Size
}

// BackgroundColor returns the fill color.
func (v *View) BackgroundColor() ggkit.RGBA {
	return v.background
}

// SetBackgroundColor sets the fill color. Transparent means no fill.
func (v *View) SetBackgroundColor(c ggkit.RGBA) {
	v.background = c
}

// SetNeedsLayout schedules a layout pass.
func (v *View) SetNeedsLayout() {
	v.needsLayout = true
}

// NeedsLayout reports whether a layout pass is pending.
func (v *View) NeedsLayout() bool {
	return v.needsLayout
}

// LayoutIfNeeded runs the pending layout pass for v and its subviews.
// Hooks run synchronously in registration order.
func (v *View) LayoutIfNeeded() {
	if v.destroyed {
		return
	}
	if v.needsLayout {
		v.needsLayout = false
		bounds := v.Bounds()
		// Hooks may unregister themselves while running.
		for _, h := range slices.Clone(v.hooks) {
			h.fn(bounds)
		}
	}
	for _, sub := range v.subviews {
		sub.LayoutIfNeeded()
	}
}

// OnLayout registers fn to run at the end of every layout pass.
func (v *View) OnLayout(fn func(bounds ggkit.Size)) (remove func()) {
	v.nextHookID++
	id := v.nextHookID
	v.hooks = append(v.hooks, layoutHook{id: id, fn: fn})
	return func() {
		v.hooks = slices.DeleteFunc(v.hooks, func(h layoutHook) bool { return h.id == id })
	}
}

// AddSublayer adds s above the view's existing layers. Adding a layer twice
// moves it to the top.
func (v *View) AddSublayer(s *layer.Shape) {
	v.RemoveSublayer(s)
	v.sublayers = append(v.sublayers, s)
}

// RemoveSublayer removes s if present.
func (v *View) RemoveSublayer(s *layer.Shape) {
	v.sublayers = slices.DeleteFunc(v.sublayers, func(l *layer.Shape) bool { return l == s })
}

// Sublayers returns the layers in paint order.
func (v *View) Sublayers() []*layer.Shape {
	return slices.Clone(v.sublayers)
}

// AddSubview adds sub on top of v's subviews, removing it from any previous superview.
func (v *View) AddSubview(sub *View) {
	sub.RemoveFromSuperview()
	sub.superview = v
	v.subviews = append(v.subviews, sub)
}

// RemoveFromSuperview detaches v from its parent.
func (v *View) RemoveFromSuperview() {
	if v.superview == nil {
		return
	}
	parent := v.superview
	parent.subviews = slices.DeleteFunc(parent.subviews, func(c *View) bool { return c == v })
	v.superview = nil
}

// Superview returns the parent view, or nil.
func (v *View) Superview() *View {
	return v.superview
}

// Subviews returns the children in paint order.
func (v *View) Subviews() []*View {
	return slices.Clone(v.subviews)
}

// Destroy tears down the view and its subviews: hooks are dropped and layers
// released. A destroyed view ignores layout and draws nothing.
func (v *View) Destroy() {
	if v.destroyed {
		return
	}
	for _, sub := range slices.Clone(v.subviews) {
		sub.Destroy()
	}
	v.RemoveFromSuperview()
	v.hooks = nil
	v.sublayers = nil
	v.subviews = nil
	v.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (v *View) Destroyed() bool {
	return v.destroyed
}

// Draw paints the tree rooted at v onto dst. Frames are interpreted in
// dst's coordinate space.
func (v *View) Draw(dst draw.Image) {
	v.drawAt(dst, ggkit.Point{})
}

func (v *View) drawAt(dst draw.Image, parentOrigin ggkit.Point) {
	if v.destroyed {
		return
	}
	origin := parentOrigin.Add(v.frame.Origin)

	if !v.background.IsTransparent() {
		abs := ggkit.Rect{Origin: origin, Size: v.frame.Size}
		r := image.Rect(int(abs.MinX()), int(abs.MinY()), int(abs.MaxX()), int(abs.MaxY()))
		draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(v.background), image.Point{}, draw.Over)
	}
	for _, s := range v.sublayers {
		s.Render(dst, origin)
	}
	for _, sub := range v.subviews {
		sub.drawAt(dst, origin)
	}
}
