package ggkit

import "math"

// Dash describes a broken stroke as alternating on/off lengths.
// For example, [5, 3] draws 5 units, skips 3 units, and repeats.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// An odd-length array is repeated twice to form one cycle,
	// so [5] behaves like [5, 5] and [4, 2, 1] like [4, 2, 1, 4, 2, 1].
	Array []float64

	// Offset is the distance into the pattern at which each sub-path starts.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken as their absolute value.
//
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	normalized := make([]float64, len(lengths))
	positive := false
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		if normalized[i] > 0 {
			positive = true
		}
	}
	if !positive {
		return nil
	}

	return &Dash{Array: normalized}
}

// WithOffset returns a new Dash with the given offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{
		Array:  d.Array,
		Offset: offset,
	}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the repeated half.
func (d *Dash) PatternLength() float64 {
	if d == nil || len(d.Array) == 0 {
		return 0
	}

	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}

	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)

	return &Dash{
		Array:  arrayCopy,
		Offset: d.Offset,
	}
}

// NormalizedOffset returns the offset wrapped into [0, PatternLength).
func (d *Dash) NormalizedOffset() float64 {
	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}

	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// Cycle returns one full on/off cycle, with odd-length arrays repeated.
func (d *Dash) Cycle() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}

	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}

// Equal reports whether d and o describe the same pattern and offset.
// Two nil dashes are equal.
func (d *Dash) Equal(o *Dash) bool {
	if d == nil || o == nil {
		return d == nil && o == nil
	}
	if d.Offset != o.Offset || len(d.Array) != len(o.Array) {
		return false
	}
	for i := range d.Array {
		if d.Array[i] != o.Array[i] {
			return false
		}
	}
	return true
}
