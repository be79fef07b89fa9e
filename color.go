package ggkit

import (
	"image/color"
	"math"
)

// RGBA represents a non-premultiplied color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(clampUnit(c.A) * 65535)
	r = uint32(clampUnit(c.R) * clampUnit(c.A) * 65535)
	g = uint32(clampUnit(c.G) * clampUnit(c.A) * 65535)
	b = uint32(clampUnit(c.B) * clampUnit(c.A) * 65535)
	return r, g, b, a
}

// Color converts c to a color.NRGBA.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(math.Round(clampUnit(c.R) * 255)),
		G: uint8(math.Round(clampUnit(c.G) * 255)),
		B: uint8(math.Round(clampUnit(c.B) * 255)),
		A: uint8(math.Round(clampUnit(c.A) * 255)),
	}
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// IsTransparent reports whether c has zero alpha.
func (c RGBA) IsTransparent() bool {
	return c.A <= 0
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from components in [0, 1].
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// RGB255 creates an opaque color from 8-bit components.
func RGB255(r, g, b uint8) RGBA {
	return RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// Hex creates a color from a hex string.
// Supports "RGB", "RGBA", "RRGGBB" and "RRGGBBAA", with or without a leading '#'.
// Malformed input yields opaque black and ok == false.
func Hex(hex string) (c RGBA, ok bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255
	ok = true

	switch len(hex) {
	case 3:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return Black, false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

// MustHex is like Hex but panics on malformed input.
// It is meant for package-level color tables.
func MustHex(hex string) RGBA {
	c, ok := Hex(hex)
	if !ok {
		panic("ggkit: malformed hex color " + hex)
	}
	return c
}

// String returns the color as "#RRGGBBAA".
func (c RGBA) String() string {
	n := c.Color().(color.NRGBA)
	const digits = "0123456789abcdef"
	buf := []byte{'#', 0, 0, 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{n.R, n.G, n.B, n.A} {
		buf[1+i*2] = digits[v>>4]
		buf[2+i*2] = digits[v&0x0f]
	}
	return string(buf)
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

func clampUnit(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}

	// SeparatorColor is the standard hairline separator color.
	SeparatorColor = RGB255(222, 224, 226)

	// PlaceholderColor is the default color of placeholder text.
	PlaceholderColor = RGB255(196, 200, 208)
)
