package ggkit

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in     string
		want   RGBA
		wantOK bool
	}{
		{"#fff", White, true},
		{"000", Black, true},
		{"#ff000080", RGBA{R: 1, A: 128.0 / 255}, true},
		{"#0000ff", RGB(0, 0, 1), true},
		{"#f00f", RGB(1, 0, 0), true},
		{"#12", Black, false},
		{"#gggggg", Black, false},
		{"", Black, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Hex(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Hex(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMustHex_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex did not panic on malformed input")
		}
	}()
	MustHex("nope")
}

func TestRGBA_String(t *testing.T) {
	if got := RGB255(222, 224, 226).String(); got != "#dee0e2ff" {
		t.Errorf("String() = %q", got)
	}
	if got := Transparent.String(); got != "#00000000" {
		t.Errorf("Transparent.String() = %q", got)
	}
}

func TestRGBA_ColorInterop(t *testing.T) {
	c := RGB255(10, 20, 30).WithAlpha(0.5)
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A != 127 && n.A != 128 {
		t.Errorf("alpha = %d, want about half", n.A)
	}

	back := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	if back != RGB(1, 0, 0) {
		t.Errorf("FromColor = %v", back)
	}

	if !Transparent.IsTransparent() || Black.IsTransparent() {
		t.Error("IsTransparent wrong")
	}

	// Premultiplied output never exceeds alpha.
	r, g, b, a := RGBA{R: 2, G: 1, B: 1, A: 0.25}.RGBA()
	if r > a || g > a || b > a {
		t.Errorf("RGBA() = %d %d %d %d, components exceed alpha", r, g, b, a)
	}
}
