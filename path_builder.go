// path_builder.go

package ggkit

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// Line adds a disconnected open sub-path from p0 to p1.
func (b *PathBuilder) Line(p0, p1 Point) *PathBuilder {
	b.path.MoveTo(p0.X, p0.Y)
	b.path.LineTo(p1.X, p1.Y)
	return b
}

// Close closes the current sub-path.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}
