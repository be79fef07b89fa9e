package ggkit

import (
	"math"
	"testing"
)

func TestPoint(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, 1)
	if p.Add(q) != Pt(4, 5) || p.Sub(q) != Pt(2, 3) || p.Mul(2) != Pt(6, 8) {
		t.Error("arithmetic wrong")
	}
	if p.Length() != 5 {
		t.Errorf("Length = %v, want 5", p.Length())
	}
	if d := Pt(0, 0).Distance(p); math.Abs(d-5) > 1e-12 {
		t.Errorf("Distance = %v, want 5", d)
	}
	if Pt(0, 0).Lerp(Pt(10, 20), 0.25) != Pt(2.5, 5) {
		t.Error("Lerp wrong")
	}
}

func TestRect_Inset(t *testing.T) {
	r := R(10, 20, 100, 50)
	if r.MaxX() != 110 || r.MaxY() != 70 {
		t.Errorf("MaxX, MaxY = %v, %v", r.MaxX(), r.MaxY())
	}
	got := r.Inset(Insets(1, 2, 3, 4))
	if want := R(12, 21, 94, 46); got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
	if !Sz(0, 5).IsEmpty() || Sz(1, 1).IsEmpty() {
		t.Error("IsEmpty wrong")
	}
	if !(EdgeInsets{}).IsZero() || Insets(0, 1, 0, 0).IsZero() {
		t.Error("IsZero wrong")
	}
}

func TestStroke(t *testing.T) {
	s := Stroke{Width: 1, Color: Black}
	if !s.IsVisible() || s.IsDashed() {
		t.Errorf("solid black stroke: visible %v dashed %v", s.IsVisible(), s.IsDashed())
	}
	if s.WithWidth(0).IsVisible() || s.WithColor(Transparent).IsVisible() {
		t.Error("zero width or transparent stroke reported visible")
	}

	d := NewDash(2, 1)
	ds := s.WithDash(d)
	d.Array[0] = 7
	if !ds.IsDashed() || ds.Dash.Array[0] != 2 {
		t.Error("WithDash must copy the pattern")
	}
	c := ds.Clone()
	c.Dash.Array[0] = 9
	if ds.Dash.Array[0] != 2 {
		t.Error("Clone shares the dash")
	}
}
