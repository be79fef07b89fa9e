package textview

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Measurer reports the metrics the text view needs to compute its height.
type Measurer interface {
	// Advance returns the width of s laid out on one line.
	Advance(s string) float64

	// LineHeight returns the distance between consecutive baselines.
	LineHeight() float64
}

// FaceMeasurer measures text with a golang.org/x/image font face.
type FaceMeasurer struct {
	face font.Face
}

// NewFaceMeasurer wraps face. The face must not be used concurrently.
func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	return &FaceMeasurer{face: face}
}

// NewFontMeasurer parses TrueType or OpenType data and measures it at size,
// at 72 DPI with full hinting.
func NewFontMeasurer(data []byte, size float64) (*FaceMeasurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFontSize, size)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textview: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("textview: create face: %w", err)
	}
	return NewFaceMeasurer(face), nil
}

// DefaultMeasurer returns a measurer over the built-in 7x13 bitmap face.
func DefaultMeasurer() *FaceMeasurer {
	return NewFaceMeasurer(basicfont.Face7x13)
}

// themeMeasurer measures Go Regular at size, falling back to DefaultMeasurer.
func themeMeasurer(size float64) *FaceMeasurer {
	m, err := NewFontMeasurer(goregular.TTF, size)
	if err != nil {
		return DefaultMeasurer()
	}
	return m
}

// Face returns the wrapped face.
func (m *FaceMeasurer) Face() font.Face {
	return m.face
}

// Advance implements Measurer.
func (m *FaceMeasurer) Advance(s string) float64 {
	return fixedToFloat(font.MeasureString(m.face, s))
}

// LineHeight implements Measurer.
func (m *FaceMeasurer) LineHeight() float64 {
	return fixedToFloat(m.face.Metrics().Height)
}

// floatToFixed converts a float64 to fixed.Int26_6 (6 fractional bits).
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
