package border

import "strings"

// Edge is one side of a rectangular view.
type Edge uint8

// Edges in drawing order.
const (
	Top Edge = iota
	Left
	Bottom
	Right
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case Top:
		return "Top"
	case Left:
		return "Left"
	case Bottom:
		return "Bottom"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Set returns the EdgeSet holding only e.
func (e Edge) Set() EdgeSet {
	return EdgeSet(1) << e
}

// EdgeSet is a combination of edges, e.g. EdgeTop | EdgeBottom.
//
// No constant covers all four edges; closed rectangles belong to the
// host's native full border.
type EdgeSet uint8

// Edge set flags.
const (
	EdgeNone   EdgeSet = 0
	EdgeTop    EdgeSet = 1 << 0
	EdgeLeft   EdgeSet = 1 << 1
	EdgeBottom EdgeSet = 1 << 2
	EdgeRight  EdgeSet = 1 << 3

	edgeMask = EdgeTop | EdgeLeft | EdgeBottom | EdgeRight
)

// allEdges lists the edges in the order segments are emitted.
var allEdges = [...]Edge{Top, Left, Bottom, Right}

// Has reports whether e is in the set.
func (s EdgeSet) Has(e Edge) bool {
	return s&e.Set() != 0
}

// Count returns the number of edges in the set.
func (s EdgeSet) Count() int {
	n := 0
	for _, e := range allEdges {
		if s.Has(e) {
			n++
		}
	}
	return n
}

// Edges returns the edges in the set in Top, Left, Bottom, Right order.
func (s EdgeSet) Edges() []Edge {
	out := make([]Edge, 0, 4)
	for _, e := range allEdges {
		if s.Has(e) {
			out = append(out, e)
		}
	}
	return out
}

// String returns the set as "Top|Left", or "None".
func (s EdgeSet) String() string {
	if s&edgeMask == 0 {
		return "None"
	}
	names := make([]string, 0, 4)
	for _, e := range s.Edges() {
		names = append(names, e.String())
	}
	return strings.Join(names, "|")
}

// Location positions the stroke relative to the view's true edge.
type Location uint8

// Stroke locations.
const (
	// Inside keeps the whole stroke within the view, like a native layer border.
	Inside Location = iota

	// Center centers the stroke on the edge.
	Center

	// Outside keeps the whole stroke outside the view.
	Outside
)

// String returns the location name.
func (l Location) String() string {
	switch l {
	case Inside:
		return "Inside"
	case Center:
		return "Center"
	case Outside:
		return "Outside"
	default:
		return "Unknown"
	}
}

// ParseLocation parses "inside", "center" or "outside" (case-insensitive).
func ParseLocation(s string) (Location, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inside":
		return Inside, true
	case "center":
		return Center, true
	case "outside":
		return Outside, true
	default:
		return Inside, false
	}
}

// Offset returns the distance from the true edge to the stroke centerline,
// positive toward the view's interior.
func (l Location) Offset(width float64) float64 {
	switch l {
	case Center:
		return 0
	case Outside:
		return -width / 2
	default:
		return width / 2
	}
}
