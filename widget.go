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
	"slices"
)

// Widget holds the configuration of a dashed rounded rectangle.
//
// The dash pattern can be set in two ways.  The four scalar setters
// SetFirstDash, SetFirstGap, SetSecondDash and SetSecondGap rebuild the
// pattern as [dash1, gap1, dash2, gap2], discarding any pattern set by
// SetDashPattern.  SetDashPattern replaces the pattern wholesale, without
// changing the four scalars.  Whichever is called last wins.
//
// Every setter marks the widget as dirty; [Widget.Frame] clears the flag.
// A Widget is not safe for concurrent use.
type Widget struct {
	cornerRadius float64
	strokeWidth  float64
	strokeColor  color.Color

	filled    bool
	fillColor color.Color

	dash1, gap1, dash2, gap2 float64
	dashPattern              []float64
	phase                    float64

	dirty bool
}

// NewWidget returns a widget with corner radius 10, stroke width 1 and the
// dash pattern [3, 3, 0, 0].  No stroke or fill color is set, so nothing is
// drawn until a color is chosen.
func NewWidget() *Widget {
	w := &Widget{
		cornerRadius: 10,
		strokeWidth:  1,
		dash1:        3,
		gap1:         3,
	}
	w.updateDashPattern()
	return w
}

// Dirty reports whether the configuration changed since the last call to
// [Widget.Frame].
func (w *Widget) Dirty() bool {
	return w.dirty
}

// CornerRadius returns the nominal corner radius.
func (w *Widget) CornerRadius() float64 { return w.cornerRadius }

// SetCornerRadius sets the nominal corner radius.  Radii which do not fit
// the box are reduced when the outline is built.
func (w *Widget) SetCornerRadius(r float64) {
	w.cornerRadius = r
	w.dirty = true
}

// StrokeWidth returns the outline width.
func (w *Widget) StrokeWidth() float64 { return w.strokeWidth }

// SetStrokeWidth sets the outline width.  Negative values and NaN are
// replaced by zero.
func (w *Widget) SetStrokeWidth(width float64) {
	w.strokeWidth = nonNegative(width)
	w.dirty = true
}

// StrokeColor returns the outline color, or nil if stroking is disabled.
func (w *Widget) StrokeColor() color.Color { return w.strokeColor }

// SetStrokeColor sets the outline color.  Nil disables stroking.
func (w *Widget) SetStrokeColor(c color.Color) {
	w.strokeColor = c
	w.dirty = true
}

// Filled reports whether filling is enabled.
func (w *Widget) Filled() bool { return w.filled }

// SetFilled enables or disables filling.  The outline is filled only if
// this is true and a fill color is set.
func (w *Widget) SetFilled(filled bool) {
	w.filled = filled
	w.dirty = true
}

// FillColor returns the fill color, or nil if none is set.
func (w *Widget) FillColor() color.Color { return w.fillColor }

// SetFillColor sets the fill color.
func (w *Widget) SetFillColor(c color.Color) {
	w.fillColor = c
	w.dirty = true
}

// FirstDash returns the length of the first dash.
func (w *Widget) FirstDash() float64 { return w.dash1 }

// SetFirstDash sets the length of the first dash and rebuilds the pattern.
func (w *Widget) SetFirstDash(l float64) {
	w.dash1 = nonNegative(l)
	w.updateDashPattern()
}

// FirstGap returns the length of the first gap.
func (w *Widget) FirstGap() float64 { return w.gap1 }

// SetFirstGap sets the length of the first gap and rebuilds the pattern.
func (w *Widget) SetFirstGap(l float64) {
	w.gap1 = nonNegative(l)
	w.updateDashPattern()
}

// SecondDash returns the length of the second dash.
func (w *Widget) SecondDash() float64 { return w.dash2 }

// SetSecondDash sets the length of the second dash and rebuilds the pattern.
func (w *Widget) SetSecondDash(l float64) {
	w.dash2 = nonNegative(l)
	w.updateDashPattern()
}

// SecondGap returns the length of the second gap.
func (w *Widget) SecondGap() float64 { return w.gap2 }

// SetSecondGap sets the length of the second gap and rebuilds the pattern.
func (w *Widget) SetSecondGap(l float64) {
	w.gap2 = nonNegative(l)
	w.updateDashPattern()
}

// DashPattern returns a copy of the current nominal dash pattern.
func (w *Widget) DashPattern() []float64 {
	return slices.Clone(w.dashPattern)
}

// SetDashPattern replaces the nominal dash pattern.  This allows for more
// than two dash/gap pairs.  The pattern is copied, and negative entries are
// replaced by zero.  A pattern without positive entries gives a solid line.
func (w *Widget) SetDashPattern(pattern []float64) {
	w.dashPattern = make([]float64, len(pattern))
	for i, l := range pattern {
		w.dashPattern[i] = nonNegative(l)
	}
	w.dirty = true
}

// Phase returns the dash phase.
func (w *Widget) Phase() float64 { return w.phase }

// SetPhase sets the offset into the dash pattern at which drawing starts.
func (w *Widget) SetPhase(phase float64) {
	w.phase = phase
	w.dirty = true
}

// updateDashPattern rebuilds the dash pattern from the four scalars.
func (w *Widget) updateDashPattern() {
	w.dashPattern = []float64{w.dash1, w.gap1, w.dash2, w.gap2}
	w.dirty = true
}
