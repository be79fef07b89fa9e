// Package ggkit provides the 2D value types shared by the ggkit widget packages.
//
// # Overview
//
// ggkit augments a retained-mode view tree with two components:
//
//   - border: selective per-edge borders (any subset of top, left, bottom and right)
//     with stroke location, direction-aware insets and dash patterns.
//   - textview: a multiline text input with a placeholder, height reporting and
//     input length limiting.
//
// This package holds what they share: [Point], [Size], [Rect], [EdgeInsets],
// open-path outlines ([Path]), [Dash] patterns, [Stroke] descriptions and [RGBA] colors.
//
// # Quick Start
//
//	v := view.New(ggkit.R(0, 0, 100, 50))
//	b := border.Attach(v)
//	b.SetEdges(border.EdgeTop | border.EdgeLeft)
//	b.SetWidth(1)
//	v.LayoutIfNeeded()
//
//	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
//	v.Draw(img)
//
// # Coordinate System
//
// Every view has its own coordinate space:
//   - Origin (0,0) at the top-left corner of the view
//   - X increases right
//   - Y increases down
//
// # Threading
//
// Views, borders and layers are owned by the goroutine that drives layout and
// painting. They are not safe for concurrent use; only the logger is.
package ggkit
