package border

import (
	"image"
	"testing"

	"github.com/gogpu/ggkit"
	"github.com/gogpu/ggkit/layer"
	"github.com/gogpu/ggkit/theme"
	"github.com/gogpu/ggkit/view"
)

// countingHost wraps a view and counts layer tree mutations.
type countingHost struct {
	*view.View
	added, removed int
}

func (h *countingHost) AddSublayer(s *layer.Shape) {
	h.added++
	h.View.AddSublayer(s)
}

func (h *countingHost) RemoveSublayer(s *layer.Shape) {
	h.removed++
	h.View.RemoveSublayer(s)
}

func newHost(w, h float64) *countingHost {
	return &countingHost{View: view.New(ggkit.R(0, 0, w, h))}
}

func TestAttach_Defaults(t *testing.T) {
	h := newHost(100, 50)
	b := Attach(h)

	if b.Location() != Inside || b.Edges() != EdgeNone || b.Width() != 1 {
		t.Errorf("defaults = %v %v %v, want Inside None 1", b.Location(), b.Edges(), b.Width())
	}
	if b.Color() != ggkit.SeparatorColor {
		t.Errorf("Color() = %v, want separator color", b.Color())
	}
	if b.DashPattern() != nil || b.DashPhase() != 0 || !b.Insets().IsZero() {
		t.Error("defaults should have no dash and zero insets")
	}
	if h.added != 0 {
		t.Errorf("layer added %d times before anything was drawn", h.added)
	}
}

func TestAttach_WithTheme(t *testing.T) {
	th := theme.Default()
	th.Scale = 2
	th.BorderLocation = "outside"
	th.SeparatorColor = ggkit.RGB(0, 1, 0)

	b := Attach(newHost(10, 10), WithTheme(th))
	if b.Width() != 0.5 || b.Location() != Outside || b.Color() != th.SeparatorColor {
		t.Errorf("themed defaults = %v %v %v", b.Width(), b.Location(), b.Color())
	}
}

func TestAttach_WithStyle(t *testing.T) {
	h := newHost(100, 50)
	b := Attach(h, WithStyle(Style{Edges: EdgeBottom, Width: 2, Color: ggkit.Black}))

	if h.added != 1 {
		t.Fatalf("layer added %d times, want 1", h.added)
	}
	want := []Segment{seg(Bottom, 100, 49, 0, 49)}
	got := b.Segments()
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestBorder_Scenario(t *testing.T) {
	h := newHost(100, 50)
	b := Attach(h)
	b.SetWidth(1)
	b.SetEdges(EdgeTop | EdgeLeft)

	got := b.Segments()
	want := []Segment{seg(Top, 0, 0.5, 100, 0.5), seg(Left, 0.5, 50, 0.5, 0)}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Segments() = %v, want %v", got, want)
	}

	// The Top segment is the first sub-path of the layer.
	sps := b.Layer().Path().Subpaths()
	if len(sps) != 2 || sps[0].Points[0] != ggkit.Pt(0, 0.5) || sps[0].Points[1] != ggkit.Pt(100, 0.5) {
		t.Errorf("layer path = %v", sps)
	}

	b.SetInsets(ggkit.EdgeInsets{Left: 10})
	if got := b.Segments()[0]; got.Start != ggkit.Pt(10, 0.5) || got.End != ggkit.Pt(100, 0.5) {
		t.Errorf("top segment with left inset = %v, want (10,0.5)→(100,0.5)", got)
	}

	b.SetWidth(0)
	if got := b.Segments(); len(got) != 0 {
		t.Errorf("zero width produced %v", got)
	}
	if !b.Layer().Path().IsEmpty() {
		t.Error("zero width should leave an empty layer path")
	}
}

func TestBorder_LayerIsStable(t *testing.T) {
	h := newHost(40, 40)
	b := Attach(h)
	l := b.Layer()

	b.SetEdges(EdgeTop)
	b.SetEdges(EdgeNone)
	b.SetEdges(EdgeRight | EdgeBottom)
	h.SetFrame(ggkit.R(0, 0, 60, 60))
	h.LayoutIfNeeded()

	if b.Layer() != l {
		t.Error("Layer() returned a different layer")
	}
	if h.added != 1 {
		t.Errorf("layer added %d times, want 1", h.added)
	}
	if layers := h.Sublayers(); len(layers) != 1 || layers[0] != l {
		t.Errorf("host sublayers = %v, want the border layer", layers)
	}
}

func TestBorder_FollowsHostLayout(t *testing.T) {
	h := newHost(100, 50)
	b := Attach(h)
	b.SetEdges(EdgeBottom)
	b.SetLocation(Center)

	h.SetFrame(ggkit.R(0, 0, 200, 80))
	if got := b.Segments()[0]; got.Start.Y != 50 {
		t.Fatalf("segments changed before the layout pass: %v", got)
	}
	h.LayoutIfNeeded()

	want := seg(Bottom, 200, 80, 0, 80)
	if got := b.Segments()[0]; got != want {
		t.Errorf("after layout Segments()[0] = %v, want %v", got, want)
	}
	if b.Bounds() != ggkit.Sz(200, 80) {
		t.Errorf("Bounds() = %v, want 200x80", b.Bounds())
	}
	if b.Layer().Frame().Size != ggkit.Sz(200, 80) {
		t.Errorf("layer frame = %v, want 200x80", b.Layer().Frame())
	}
}

func TestBorder_SettersCommitToLayer(t *testing.T) {
	h := newHost(100, 50)
	b := Attach(h)
	b.SetEdges(EdgeTop)
	l := b.Layer()

	rev := l.Revision()
	path := l.Path()
	b.SetColor(ggkit.RGB(1, 0, 0))
	if l.StrokeColor() != ggkit.RGB(1, 0, 0) {
		t.Errorf("StrokeColor() = %v, want red", l.StrokeColor())
	}
	if l.Path() != path {
		t.Error("color change replaced the path")
	}
	if l.Revision() != rev+1 {
		t.Errorf("color change bumped revision by %d, want 1", l.Revision()-rev)
	}

	b.SetWidth(3)
	if l.LineWidth() != 3 {
		t.Errorf("LineWidth() = %v, want 3", l.LineWidth())
	}
	if got := l.Path().Subpaths()[0].Points[0].Y; got != 1.5 {
		t.Errorf("path y = %v after width change, want 1.5", got)
	}

	b.SetDashPattern([]float64{4, 2})
	b.SetDashPhase(1)
	if d := l.Dash(); d == nil || d.Offset != 1 || len(d.Array) != 2 {
		t.Errorf("Dash() = %v, want [4 2] offset 1", d)
	}

	b.SetDashPattern([]float64{4})
	if d := l.Dash(); d != nil {
		t.Errorf("single-entry pattern committed dash %v, want nil", d)
	}

	b.SetLocation(Outside)
	if got := l.Path().Subpaths()[0].Points[0].Y; got != -1.5 {
		t.Errorf("path y = %v after location change, want -1.5", got)
	}
}

func TestBorder_NoOpSettersSkipRecompute(t *testing.T) {
	h := newHost(100, 50)
	b := Attach(h)
	b.SetEdges(EdgeTop | EdgeLeft)
	l := b.Layer()
	rev := l.Revision()

	b.SetEdges(EdgeTop | EdgeLeft)
	b.SetWidth(b.Width())
	b.SetColor(b.Color())
	b.SetInsets(b.Insets())
	b.SetLocation(b.Location())
	b.SetDashPattern(nil)
	b.SetDashPhase(0)
	b.SetStyle(b.Style())

	h.SetNeedsLayout()
	h.LayoutIfNeeded()
	if l.Revision() != rev {
		t.Errorf("unchanged style bumped layer revision by %d", l.Revision()-rev)
	}
}

func TestBorder_DashPatternIsCopied(t *testing.T) {
	b := Attach(newHost(10, 10))
	p := []float64{3, 1}
	b.SetDashPattern(p)
	p[0] = 9
	if got := b.DashPattern(); got[0] != 3 {
		t.Errorf("DashPattern()[0] = %v after caller mutation, want 3", got[0])
	}
	got := b.DashPattern()
	got[1] = 9
	if b.DashPattern()[1] != 1 {
		t.Error("DashPattern() exposed internal storage")
	}
}

func TestBorder_Detach(t *testing.T) {
	h := newHost(100, 50)
	b := Attach(h)
	b.SetEdges(EdgeTop)
	l := b.Layer()
	rev := l.Revision()

	b.Detach()
	b.Detach()
	if h.removed != 1 || len(h.Sublayers()) != 0 {
		t.Errorf("Detach removed the layer %d times, sublayers = %v", h.removed, h.Sublayers())
	}

	b.SetWidth(5)
	h.SetFrame(ggkit.R(0, 0, 10, 10))
	h.LayoutIfNeeded()
	if l.Revision() != rev {
		t.Error("detached border still updated its layer")
	}
	if b.Width() != 5 {
		t.Errorf("Width() = %v, want 5", b.Width())
	}
}

func TestBorder_Render(t *testing.T) {
	h := newHost(20, 10)
	b := Attach(h)
	b.SetColor(ggkit.RGB(1, 0, 0))
	b.SetWidth(2)
	b.SetEdges(EdgeTop | EdgeRight)
	h.LayoutIfNeeded()

	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	h.Draw(img)

	probes := []struct {
		x, y  int
		drawn bool
	}{
		{x: 5, y: 0, drawn: true},  // top
		{x: 5, y: 1, drawn: true},  // top, second row
		{x: 19, y: 5, drawn: true}, // right
		{x: 18, y: 5, drawn: true}, // right, second column
		{x: 0, y: 5, drawn: false}, // left not requested
		{x: 5, y: 9, drawn: false}, // bottom not requested
		{x: 5, y: 5, drawn: false}, // interior
	}
	for _, p := range probes {
		a := img.RGBAAt(p.x, p.y).A
		if p.drawn && a < 250 {
			t.Errorf("pixel (%d,%d) alpha = %d, want opaque", p.x, p.y, a)
		}
		if !p.drawn && a != 0 {
			t.Errorf("pixel (%d,%d) alpha = %d, want 0", p.x, p.y, a)
		}
	}
}

func TestBorder_LayerMatchesStyleOutline(t *testing.T) {
	h := newHost(100, 50)
	b := Attach(h)
	b.SetEdges(EdgeTop | EdgeRight)
	b.SetInsets(ggkit.Insets(0, 4, 0, 6))
	b.SetDashPattern([]float64{3, 1})

	want := b.Style().Outline(b.Bounds())
	l := b.Layer()
	if !l.Path().Equal(want.Path) {
		t.Errorf("layer path = %v, want %v", l.Path().Elements(), want.Path.Elements())
	}
	if !l.Dash().Equal(want.Dash) {
		t.Errorf("layer dash = %v, want %v", l.Dash(), want.Dash)
	}
}
