package ggkit

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new sub-path at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current sub-path back to its start point.
type Close struct{}

func (Close) isPathElement() {}

// Subpath is a polyline produced by one MoveTo and the LineTo elements after it.
type Subpath struct {
	Points []Point
	Closed bool
}

// Path is a retained outline made of straight-line sub-paths.
// Sub-paths are independent: a MoveTo never connects to the previous point.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current sub-path
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 8),
	}
}

// MoveTo starts a new sub-path.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point. Without a current point it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.HasCurrentPoint() {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Close closes the current sub-path by drawing a line to the start point.
func (p *Path) Close() {
	if !p.HasCurrentPoint() {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Subpaths splits the path at every MoveTo.
func (p *Path) Subpaths() []Subpath {
	if p == nil {
		return nil
	}
	var out []Subpath
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, Subpath{Points: []Point{e.Point}})
		case LineTo:
			last := &out[len(out)-1]
			last.Points = append(last.Points, e.Point)
		case Close:
			out[len(out)-1].Closed = true
		}
	}
	return out
}

// Bounds returns the smallest rectangle containing every point of the path.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	var minX, minY, maxX, maxY float64
	first := true
	for _, elem := range p.elements {
		var pt Point
		switch e := elem.(type) {
		case MoveTo:
			pt = e.Point
		case LineTo:
			pt = e.Point
		default:
			continue
		}
		if first {
			minX, minY, maxX, maxY = pt.X, pt.Y, pt.X, pt.Y
			first = false
			continue
		}
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}
	return R(minX, minY, maxX-minX, maxY-minY)
}

// Equal reports whether both paths hold the same elements.
func (p *Path) Equal(q *Path) bool {
	if p.IsEmpty() || q.IsEmpty() {
		return p.IsEmpty() && q.IsEmpty()
	}
	if len(p.elements) != len(q.elements) {
		return false
	}
	for i := range p.elements {
		if p.elements[i] != q.elements[i] {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	if p == nil {
		return result
	}
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
