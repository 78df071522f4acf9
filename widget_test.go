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

package dashrect

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWidgetDefaults(t *testing.T) {
	w := NewWidget()

	if w.CornerRadius() != 10 || w.StrokeWidth() != 1 {
		t.Errorf("radius %g, width %g", w.CornerRadius(), w.StrokeWidth())
	}
	if w.StrokeColor() != nil || w.FillColor() != nil || w.Filled() {
		t.Error("unexpected default colors")
	}
	if d := cmp.Diff([]float64{3, 3, 0, 0}, w.DashPattern()); d != "" {
		t.Errorf("default pattern (-want +got):\n%s", d)
	}
	if w.FirstDash() != 3 || w.FirstGap() != 3 || w.SecondDash() != 0 || w.SecondGap() != 0 {
		t.Error("unexpected dash scalars")
	}
	if w.Phase() != 0 {
		t.Errorf("phase %g", w.Phase())
	}
	if !w.Dirty() {
		t.Error("new widget is not dirty")
	}
}

func TestWidgetDirty(t *testing.T) {
	setters := map[string]func(w *Widget){
		"CornerRadius": func(w *Widget) { w.SetCornerRadius(4) },
		"StrokeWidth":  func(w *Widget) { w.SetStrokeWidth(2) },
		"StrokeColor":  func(w *Widget) { w.SetStrokeColor(color.White) },
		"Filled":       func(w *Widget) { w.SetFilled(true) },
		"FillColor":    func(w *Widget) { w.SetFillColor(color.Black) },
		"FirstDash":    func(w *Widget) { w.SetFirstDash(1) },
		"FirstGap":     func(w *Widget) { w.SetFirstGap(1) },
		"SecondDash":   func(w *Widget) { w.SetSecondDash(1) },
		"SecondGap":    func(w *Widget) { w.SetSecondGap(1) },
		"DashPattern":  func(w *Widget) { w.SetDashPattern([]float64{1, 2}) },
		"Phase":        func(w *Widget) { w.SetPhase(1) },
	}
	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			w := NewWidget()
			w.Frame(testBox)
			if w.Dirty() {
				t.Fatal("Frame did not clear the dirty flag")
			}
			set(w)
			if !w.Dirty() {
				t.Error("setter did not mark the widget dirty")
			}
		})
	}
}

func TestWidgetPatternLastWriteWins(t *testing.T) {
	w := NewWidget()

	w.SetDashPattern([]float64{5, 1, 2, 1, 1, 1})
	if d := cmp.Diff([]float64{5, 1, 2, 1, 1, 1}, w.DashPattern()); d != "" {
		t.Errorf("raw pattern (-want +got):\n%s", d)
	}

	// a scalar setter overwrites the raw pattern
	w.SetSecondDash(7)
	if d := cmp.Diff([]float64{3, 3, 7, 0}, w.DashPattern()); d != "" {
		t.Errorf("pattern after SetSecondDash (-want +got):\n%s", d)
	}

	// the raw pattern overwrites the scalars' pattern, but not the scalars
	w.SetDashPattern([]float64{2, 2})
	if d := cmp.Diff([]float64{2, 2}, w.DashPattern()); d != "" {
		t.Errorf("pattern after SetDashPattern (-want +got):\n%s", d)
	}
	if w.SecondDash() != 7 {
		t.Errorf("second dash = %g, expected 7", w.SecondDash())
	}

	w.SetFirstGap(4)
	if d := cmp.Diff([]float64{3, 4, 7, 0}, w.DashPattern()); d != "" {
		t.Errorf("pattern after SetFirstGap (-want +got):\n%s", d)
	}
}

func TestWidgetPatternCopy(t *testing.T) {
	w := NewWidget()

	pattern := []float64{4, -2}
	w.SetDashPattern(pattern)
	pattern[0] = 100
	if d := cmp.Diff([]float64{4, 0}, w.DashPattern()); d != "" {
		t.Errorf("pattern (-want +got):\n%s", d)
	}

	got := w.DashPattern()
	got[0] = 100
	if w.DashPattern()[0] != 4 {
		t.Error("DashPattern returned the internal slice")
	}
}

func TestWidgetNegativeScalars(t *testing.T) {
	w := NewWidget()
	w.SetFirstDash(-3)
	if w.FirstDash() != 0 {
		t.Errorf("first dash = %g, expected 0", w.FirstDash())
	}
	if d := cmp.Diff([]float64{0, 3, 0, 0}, w.DashPattern()); d != "" {
		t.Errorf("pattern (-want +got):\n%s", d)
	}
}
