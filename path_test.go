package ggkit

import "testing"

func TestPath_Subpaths(t *testing.T) {
	p := BuildPath().
		Line(Pt(0, 0), Pt(10, 0)).
		MoveTo(0, 5).LineTo(5, 5).LineTo(5, 10).Close().
		Build()

	subs := p.Subpaths()
	if len(subs) != 2 {
		t.Fatalf("len(Subpaths) = %d, want 2", len(subs))
	}
	if subs[0].Closed || len(subs[0].Points) != 2 {
		t.Errorf("first sub-path = %+v", subs[0])
	}
	if !subs[1].Closed || len(subs[1].Points) != 3 {
		t.Errorf("second sub-path = %+v", subs[1])
	}
	if p.CurrentPoint() != Pt(0, 5) {
		t.Errorf("CurrentPoint after Close = %v, want start of sub-path", p.CurrentPoint())
	}
}

func TestPath_LineToWithoutCurrentPoint(t *testing.T) {
	p := NewPath()
	p.Close()
	if !p.IsEmpty() {
		t.Error("Close on empty path added an element")
	}
	p.LineTo(3, 4)
	if _, ok := p.Elements()[0].(MoveTo); !ok {
		t.Errorf("first element = %T, want MoveTo", p.Elements()[0])
	}
}

func TestPath_Bounds(t *testing.T) {
	p := BuildPath().Line(Pt(5, 1), Pt(-2, 8)).Line(Pt(4, 3), Pt(6, 3)).Build()
	if got, want := p.Bounds(), R(-2, 1, 8, 7); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if NewPath().Bounds() != (Rect{}) {
		t.Error("empty path has non-zero bounds")
	}
}

func TestPath_EqualAndClone(t *testing.T) {
	a := BuildPath().Line(Pt(0, 0), Pt(1, 1)).Build()
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone not equal")
	}
	b.LineTo(2, 2)
	if a.Equal(b) || a.Len() != 2 {
		t.Error("Clone shares storage")
	}

	var nilPath *Path
	if !nilPath.Equal(NewPath()) || !NewPath().Equal(nilPath) {
		t.Error("nil and empty paths should be equal")
	}
	if nilPath.Clone() == nil || !nilPath.IsEmpty() {
		t.Error("nil Clone should return an empty path")
	}
}
