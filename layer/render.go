package layer

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/ggkit"
)

// Lines returns the straight pieces the shape paints, in its own coordinates.
// Hidden shapes and invisible strokes yield nothing.
func (s *Shape) Lines() []Line {
	if s.hidden || s.path.IsEmpty() || s.stroke.Width <= 0 {
		return nil
	}
	return strokeLines(s.path, s.stroke.Dash)
}

// Render strokes the shape onto dst. origin is the position of the host's
// coordinate origin in dst; the shape's frame is applied on top of it.
// Every piece is painted with butt caps.
func (s *Shape) Render(dst draw.Image, origin ggkit.Point) {
	if !s.stroke.IsVisible() {
		return
	}
	lines := s.Lines()
	if len(lines) == 0 {
		return
	}
	b := dst.Bounds()
	if b.Empty() {
		return
	}

	off := origin.Add(s.frame.Origin).Sub(ggkit.Pt(float64(b.Min.X), float64(b.Min.Y)))
	half := s.stroke.Width / 2

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	for _, l := range lines {
		a, c := l.Start.Add(off), l.End.Add(off)
		length := a.Distance(c)
		// Unit direction rotated a quarter turn, scaled to half the width.
		n := ggkit.Pt(-(c.Y-a.Y)/length, (c.X-a.X)/length).Mul(half)

		p0, p1, p2, p3 := a.Add(n), c.Add(n), c.Sub(n), a.Sub(n)
		z.MoveTo(float32(p0.X), float32(p0.Y))
		z.LineTo(float32(p1.X), float32(p1.Y))
		z.LineTo(float32(p2.X), float32(p2.Y))
		z.LineTo(float32(p3.X), float32(p3.Y))
		z.ClosePath()
	}

	ggkit.Logger().Debug("layer: render", "id", s.id, "pieces", len(lines), "width", s.stroke.Width)
	z.Draw(dst, b, image.NewUniform(s.stroke.Color), image.Point{})
}
