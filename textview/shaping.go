package textview

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapingMeasurer measures text with HarfBuzz shaping from go-text/typesetting,
// so kerning and ligatures are reflected in line widths.
//
// A ShapingMeasurer is not safe for concurrent use.
type ShapingMeasurer struct {
	face       *gtfont.Face
	size       fixed.Int26_6
	shaper     shaping.HarfbuzzShaper
	lang       language.Language
	lineHeight float64
}

// NewShapingMeasurer parses TrueType or OpenType data and measures at size.
func NewShapingMeasurer(data []byte, size float64) (*ShapingMeasurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFontSize, size)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textview: parse font: %w", err)
	}

	m := &ShapingMeasurer{
		face: face,
		size: floatToFixed(size),
		lang: language.NewLanguage("en"),
	}
	// Line bounds come from the font's extents, which any shaped run reports.
	b := m.shape([]rune("Hg")).LineBounds
	m.lineHeight = fixedToFloat(b.Ascent - b.Descent + b.Gap)
	return m, nil
}

// Advance implements Measurer.
func (m *ShapingMeasurer) Advance(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	return fixedToFloat(m.shape(runes).Advance)
}

// LineHeight implements Measurer.
func (m *ShapingMeasurer) LineHeight() float64 {
	return m.lineHeight
}

func (m *ShapingMeasurer) shape(runes []rune) shaping.Output {
	return m.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      m.face,
		Size:      m.size,
		Script:    detectScript(runes),
		Language:  m.lang,
	})
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
