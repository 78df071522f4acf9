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

package raster

import (
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dashrect"
	"seehuhn.de/go/dashrect/testcases"
)

func TestImageRendererOutline(t *testing.T) {
	w := dashrect.NewWidget()
	w.SetStrokeColor(color.White)
	w.SetStrokeWidth(2)
	w.SetDashPattern(nil)

	img := image.NewNRGBA(image.Rect(0, 0, 100, 50))
	err := w.Draw(rect.Rect{URx: 100, URy: 50}, NewImageRenderer(img))
	if err != nil {
		t.Fatal(err)
	}

	// The outline runs along y = 2, the stroke covers rows 1 and 2.
	for _, pt := range []image.Point{{50, 1}, {50, 2}, {2, 25}, {97, 25}, {50, 47}} {
		if a := img.NRGBAAt(pt.X, pt.Y).A; a < 250 {
			t.Errorf("pixel %v: alpha %d, expected opaque", pt, a)
		}
	}
	for _, pt := range []image.Point{{50, 0}, {50, 25}, {0, 0}, {99, 49}} {
		if a := img.NRGBAAt(pt.X, pt.Y).A; a != 0 {
			t.Errorf("pixel %v: alpha %d, expected transparent", pt, a)
		}
	}
}

func TestImageRendererFill(t *testing.T) {
	fill := color.NRGBA{R: 200, G: 100, B: 0, A: 255}

	w := dashrect.NewWidget()
	w.SetFilled(true)
	w.SetFillColor(fill)

	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	err := w.Draw(rect.Rect{URx: 40, URy: 40}, NewImageRenderer(img))
	if err != nil {
		t.Fatal(err)
	}

	if got := img.NRGBAAt(20, 20); got != fill {
		t.Errorf("center pixel is %v, expected %v", got, fill)
	}
	if got := img.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner pixel is %v, expected transparent", got)
	}
}

func TestImageRendererBlend(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}

	f := &dashrect.Frame{
		Outline: dashrect.Build(rect.Rect{LLx: -10, LLy: -10, URx: 14, URy: 14}, 0, 0),
		Fill:    color.NRGBA{A: 128},
	}
	if err := f.Draw(NewImageRenderer(img)); err != nil {
		t.Fatal(err)
	}

	got := img.NRGBAAt(1, 1)
	if got.A != 255 || got.R < 126 || got.R > 128 {
		t.Errorf("blended pixel is %v, expected half gray", got)
	}
}

func TestImageRendererScale(t *testing.T) {
	w := dashrect.NewWidget()
	w.SetStrokeColor(color.Black)
	w.SetDashPattern([]float64{0})

	box := rect.Rect{URx: 30, URy: 20}
	img := image.NewNRGBA(image.Rect(0, 0, 60, 40))
	ir := NewImageRenderer(img)
	ir.CTM = matrix.Matrix{2, 0, 0, 2, 0, 0}
	if err := w.Draw(box, ir); err != nil {
		t.Fatal(err)
	}

	// with stroke width 1 the outline is at x = 2 in user space
	if a := img.NRGBAAt(30, 3).A; a < 250 {
		t.Errorf("scaled outline missing, alpha %d", a)
	}
	if a := img.NRGBAAt(30, 20).A; a != 0 {
		t.Errorf("unexpected paint inside outline, alpha %d", a)
	}
}

func BenchmarkImageRenderer(b *testing.B) {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		cases = append(cases, testcases.All[category]...)
	}

	img := image.NewNRGBA(image.Rect(0, 0, 200, 200))
	ir := NewImageRenderer(img)

	b.ResetTimer()
	for b.Loop() {
		for _, tc := range cases {
			w := tc.Widget()
			if err := w.Draw(tc.Box(), ir); err != nil {
				b.Fatal(err)
			}
		}
	}
}
