// Command borderdemo renders a settings-style screen with edge borders and a
// text view to a PNG file.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggkit"
	"github.com/gogpu/ggkit/border"
	"github.com/gogpu/ggkit/textview"
	"github.com/gogpu/ggkit/theme"
	"github.com/gogpu/ggkit/view"
)

func main() {
	var (
		width     = flag.Int("width", 320, "image width")
		height    = flag.Int("height", 240, "image height")
		output    = flag.String("output", "borders.png", "output file")
		themeFile = flag.String("theme", "", "optional TOML theme file")
		verbose   = flag.Bool("v", false, "log layout and render events")
	)
	flag.Parse()

	if *verbose {
		ggkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	th := theme.Default()
	if *themeFile != "" {
		var err error
		if th, err = theme.LoadFile(*themeFile); err != nil {
			log.Fatalf("Failed to load theme: %v", err)
		}
	}

	w, h := float64(*width), float64(*height)
	root := view.New(ggkit.R(0, 0, w, h))
	root.SetBackgroundColor(ggkit.RGB(0.96, 0.96, 0.97))

	// A list of rows separated by bottom borders inset on the leading side.
	rowHeight := 44.0
	for i := 0; i < 3; i++ {
		row := view.New(ggkit.R(0, 16+float64(i)*rowHeight, w, rowHeight))
		row.SetBackgroundColor(ggkit.White)
		root.AddSubview(row)

		b := border.Attach(row, border.WithTheme(th))
		edges := border.EdgeBottom
		if i == 0 {
			edges |= border.EdgeTop
		}
		b.SetEdges(edges)
		if i < 2 {
			// On the bottom edge the right inset trims the left end.
			b.SetInsets(ggkit.Insets(0, 0, 0, 16))
		}
	}

	// A dashed, thick left rule next to a text view.
	tv := textview.New(
		textview.WithFrame(ggkit.R(16, 16+3*rowHeight+12, w-32, 0)),
		textview.WithTheme(th),
		textview.WithDelegate(autoHeight{}),
	)
	tv.SetBackgroundColor(ggkit.White)
	tv.SetTextContainerInset(ggkit.Insets(7, 10, 7, 4))
	tv.SetPlaceholder("Leave a note")
	tv.SetMaximumTextLength(120)
	tv.SetText("Edge borders follow the view as it resizes; this note grows with its text.")
	root.AddSubview(tv.View)

	rule := border.Attach(tv, border.WithTheme(th))
	rule.SetEdges(border.EdgeLeft | border.EdgeBottom)
	rule.SetWidth(3)
	rule.SetColor(ggkit.RGB(0.2, 0.5, 0.9))
	rule.SetDashPattern([]float64{6, 3})

	root.LayoutIfNeeded()

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	root.Draw(img)
	drawText(img, tv)

	if err := savePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// autoHeight resizes the text view to fit its content.
type autoHeight struct{}

func (autoHeight) TextViewHeightChanged(tv *textview.TextView, height float64) {
	f := tv.Frame()
	f.Size.Height = height
	tv.SetFrame(f)
}

// drawText paints the wrapped lines, or the placeholder, with the measurer's face.
func drawText(img *image.RGBA, tv *textview.TextView) {
	m, ok := tv.Measurer().(*textview.FaceMeasurer)
	if !ok {
		return
	}
	in := tv.TextContainerInset()
	lines, col := tv.Lines(), tv.TextColor()
	origin := tv.Frame().Origin.Add(ggkit.Pt(in.Left, in.Top))
	if tv.PlaceholderVisible() {
		r := tv.PlaceholderRect()
		lines, col = []string{tv.Placeholder()}, tv.PlaceholderColor()
		origin = tv.Frame().Origin.Add(r.Origin)
	}

	face := m.Face()
	ascent := face.Metrics().Ascent
	d := &font.Drawer{Dst: img, Src: image.NewUniform(col), Face: face}
	for i, line := range lines {
		y := origin.Y + float64(i)*m.LineHeight()
		d.Dot = fixed.Point26_6{
			X: fixed.Int26_6(origin.X * 64),
			Y: fixed.Int26_6(y*64) + ascent,
		}
		d.DrawString(line)
	}
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
