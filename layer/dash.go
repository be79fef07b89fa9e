package layer

import "github.com/gogpu/ggkit"

// zeroLength is the distance under which a piece is treated as a point.
const zeroLength = 1e-9

// Line is one straight piece of a stroked outline.
type Line struct {
	Start, End ggkit.Point
}

// Length returns the distance between the endpoints.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// dasher walks a dash cycle across consecutive segments of one sub-path.
type dasher struct {
	cycle     []float64
	idx       int
	remaining float64
}

// newDasher returns nil when d does not describe a dashed line.
func newDasher(d *ggkit.Dash) *dasher {
	if !d.IsDashed() {
		return nil
	}
	ds := &dasher{cycle: d.Cycle()}
	ds.reset(d.NormalizedOffset())
	return ds
}

// reset positions the dasher at phase, which must lie in [0, patternLength).
func (ds *dasher) reset(phase float64) {
	ds.idx = 0
	for phase >= ds.cycle[ds.idx] {
		phase -= ds.cycle[ds.idx]
		ds.idx = (ds.idx + 1) % len(ds.cycle)
	}
	ds.remaining = ds.cycle[ds.idx] - phase
}

func (ds *dasher) on() bool {
	return ds.idx%2 == 0
}

func (ds *dasher) advance() {
	ds.idx = (ds.idx + 1) % len(ds.cycle)
	ds.remaining = ds.cycle[ds.idx]
}

// split emits the "on" pieces of the segment a→b and keeps its position
// in the cycle for the next segment of the same sub-path.
func (ds *dasher) split(a, b ggkit.Point, emit func(Line)) {
	segLen := a.Distance(b)
	if segLen <= zeroLength {
		return
	}
	pos := 0.0
	for segLen-pos > zeroLength {
		step := min(ds.remaining, segLen-pos)
		if ds.on() && step > zeroLength {
			emit(Line{Start: a.Lerp(b, pos/segLen), End: a.Lerp(b, (pos+step)/segLen)})
		}
		pos += step
		ds.remaining -= step
		if ds.remaining <= zeroLength {
			ds.advance()
		}
	}
}

// DashSegments splits the line p0→p1 into the pieces drawn by dash.
// A nil or solid dash returns the whole line; a zero-length line returns nothing.
func DashSegments(p0, p1 ggkit.Point, dash *ggkit.Dash) []Line {
	if p0.Distance(p1) <= zeroLength {
		return nil
	}
	ds := newDasher(dash)
	if ds == nil {
		return []Line{{Start: p0, End: p1}}
	}
	var out []Line
	ds.split(p0, p1, func(l Line) { out = append(out, l) })
	return out
}

// strokeLines flattens an outline into the straight pieces a stroke paints.
// The dash cycle restarts at every sub-path.
func strokeLines(p *ggkit.Path, dash *ggkit.Dash) []Line {
	var out []Line
	emit := func(l Line) { out = append(out, l) }
	for _, sp := range p.Subpaths() {
		pts := sp.Points
		if sp.Closed && len(pts) > 1 {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		ds := newDasher(dash)
		for i := 1; i < len(pts); i++ {
			a, b := pts[i-1], pts[i]
			if ds == nil {
				if a.Distance(b) > zeroLength {
					emit(Line{Start: a, End: b})
				}
				continue
			}
			ds.split(a, b, emit)
		}
	}
	return out
}
