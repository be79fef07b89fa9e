// Package theme holds the appearance defaults shared by ggkit components and
// loads them from TOML files.
//
// A theme file looks like:
//
//	scale = 2.0
//
//	[border]
//	color = "#dee0e2"
//	location = "inside"
//
//	[textview]
//	placeholder_color = "#c4c8d0"
//	text_color = "#333333"
//	font_size = 16.0
//	inset = [7.0, 0.0, 7.0, 0.0]
package theme

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/ggkit"
)

// Sentinel errors for theme loading.
var (
	// ErrInvalidScale is returned when the display scale is not positive.
	ErrInvalidScale = errors.New("theme: scale must be positive")

	// ErrInvalidColor is returned when a color is not a hex string.
	ErrInvalidColor = errors.New("theme: invalid color")

	// ErrInvalidLocation is returned for an unknown border location name.
	ErrInvalidLocation = errors.New("theme: invalid border location")

	// ErrInvalidFontSize is returned when the text size is not positive.
	ErrInvalidFontSize = errors.New("theme: font size must be positive")
)

// Theme is the resolved set of defaults.
type Theme struct {
	// Scale is the number of device pixels per view unit.
	Scale float64

	// SeparatorColor is the default border stroke color.
	SeparatorColor ggkit.RGBA

	// BorderLocation is the default stroke location name:
	// "inside", "center" or "outside".
	BorderLocation string

	// PlaceholderColor is the default text view placeholder color.
	PlaceholderColor ggkit.RGBA

	// TextColor is the default text color.
	TextColor ggkit.RGBA

	// FontSize is the default text size in view units. Text views without an
	// explicit measurer measure Go Regular at this size.
	FontSize float64

	// TextInset is the default text container inset of a text view.
	TextInset ggkit.EdgeInsets
}

// Default returns the built-in theme: scale 1, standard separator color,
// inside borders and a 16 unit font.
func Default() Theme {
	return Theme{
		Scale:            1,
		SeparatorColor:   ggkit.SeparatorColor,
		BorderLocation:   "inside",
		PlaceholderColor: ggkit.PlaceholderColor,
		TextColor:        ggkit.RGB255(51, 51, 51),
		FontSize:         16,
		TextInset:        ggkit.Insets(7, 0, 7, 0),
	}
}

// Hairline returns the thinnest visible stroke width: one device pixel.
func (t Theme) Hairline() float64 {
	if t.Scale <= 0 {
		return 1
	}
	return 1 / t.Scale
}

// file mirrors the TOML layout. Pointers distinguish absent keys from zero values.
type file struct {
	Scale *float64 `toml:"scale"`

	Border struct {
		Color    *string `toml:"color"`
		Location *string `toml:"location"`
	} `toml:"border"`

	TextView struct {
		PlaceholderColor *string    `toml:"placeholder_color"`
		TextColor        *string    `toml:"text_color"`
		FontSize         *float64   `toml:"font_size"`
		Inset            *[4]float64 `toml:"inset"` // top, left, bottom, right
	} `toml:"textview"`
}

// Load reads a TOML theme from r. Keys that are absent keep their Default values.
// Unknown keys are rejected so typos surface early.
func Load(r io.Reader) (Theme, error) {
	var f file
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Theme{}, fmt.Errorf("theme: decode: %w", err)
	}
	return f.resolve()
}

// LoadFile reads a TOML theme from path.
func LoadFile(path string) (Theme, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: open: %w", err)
	}
	defer fh.Close()

	t, err := Load(fh)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (f *file) resolve() (Theme, error) {
	t := Default()

	if f.Scale != nil {
		if *f.Scale <= 0 {
			return Theme{}, fmt.Errorf("%w: %v", ErrInvalidScale, *f.Scale)
		}
		t.Scale = *f.Scale
	}

	colors := []struct {
		key string
		src *string
		dst *ggkit.RGBA
	}{
		{"border.color", f.Border.Color, &t.SeparatorColor},
		{"textview.placeholder_color", f.TextView.PlaceholderColor, &t.PlaceholderColor},
		{"textview.text_color", f.TextView.TextColor, &t.TextColor},
	}
	for _, c := range colors {
		if c.src == nil {
			continue
		}
		v, ok := ggkit.Hex(*c.src)
		if !ok {
			return Theme{}, fmt.Errorf("%w: %s = %q", ErrInvalidColor, c.key, *c.src)
		}
		*c.dst = v
	}

	if f.Border.Location != nil {
		loc := strings.ToLower(strings.TrimSpace(*f.Border.Location))
		switch loc {
		case "inside", "center", "outside":
			t.BorderLocation = loc
		default:
			return Theme{}, fmt.Errorf("%w: %q", ErrInvalidLocation, *f.Border.Location)
		}
	}

	if f.TextView.FontSize != nil {
		if *f.TextView.FontSize <= 0 {
			return Theme{}, fmt.Errorf("%w: %v", ErrInvalidFontSize, *f.TextView.FontSize)
		}
		t.FontSize = *f.TextView.FontSize
	}
	if in := f.TextView.Inset; in != nil {
		t.TextInset = ggkit.Insets(in[0], in[1], in[2], in[3])
	}
	return t, nil
}
