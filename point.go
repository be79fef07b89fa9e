package ggkit

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Size is a width and height pair in view coordinates.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// IsEmpty reports whether either dimension is non-positive.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	Origin Point
	Size   Size
}

// R is a convenience function to create a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{Origin: Pt(x, y), Size: Sz(w, h)}
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.Origin.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// Inset returns r shrunk by the given insets. Negative insets grow it.
func (r Rect) Inset(in EdgeInsets) Rect {
	return Rect{
		Origin: Pt(r.Origin.X+in.Left, r.Origin.Y+in.Top),
		Size:   Sz(r.Size.Width-in.Horizontal(), r.Size.Height-in.Vertical()),
	}
}

// EdgeInsets holds one scalar per side of a rectangle.
type EdgeInsets struct {
	Top, Left, Bottom, Right float64
}

// Insets is a convenience function to create EdgeInsets.
func Insets(top, left, bottom, right float64) EdgeInsets {
	return EdgeInsets{Top: top, Left: left, Bottom: bottom, Right: right}
}

// Horizontal returns Left + Right.
func (in EdgeInsets) Horizontal() float64 {
	return in.Left + in.Right
}

// Vertical returns Top + Bottom.
func (in EdgeInsets) Vertical() float64 {
	return in.Top + in.Bottom
}

// IsZero reports whether all four values are zero.
func (in EdgeInsets) IsZero() bool {
	return in == EdgeInsets{}
}
