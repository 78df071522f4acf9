// seehuhn.de/go/dashrect - dashed rounded rectangles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases provides a catalogue of dashed rounded rectangles,
// used for tests, benchmarks and the export command.
package testcases

import (
	"image/color"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dashrect"
)

// TestCase defines a single widget configuration.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // bounding box width in pixels
	Height int    // bounding box height in pixels

	CornerRadius float64
	StrokeWidth  float64

	// Dash is the nominal dash pattern.  Nil keeps the widget default
	// [3, 3, 0, 0].
	Dash  []float64
	Phase float64

	// Fill enables a gray fill inside the outline.
	Fill bool
}

// Box returns the bounding box of the test case, with the origin at (0, 0).
func (tc *TestCase) Box() rect.Rect {
	return rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)}
}

// Widget returns a widget configured for the test case.  The outline is
// stroked in white.
func (tc *TestCase) Widget() *dashrect.Widget {
	w := dashrect.NewWidget()
	w.SetCornerRadius(tc.CornerRadius)
	w.SetStrokeWidth(tc.StrokeWidth)
	w.SetStrokeColor(color.White)
	if tc.Dash != nil {
		w.SetDashPattern(tc.Dash)
	}
	w.SetPhase(tc.Phase)
	if tc.Fill {
		w.SetFilled(true)
		w.SetFillColor(FillColor)
	}
	return w
}

// FillColor is the fill color used by test cases with Fill set.
var FillColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
