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
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

// Renderer paints closed paths.  Implementations are provided by the
// sub-packages raster and pdfout.
type Renderer interface {
	// Fill fills the path using the nonzero winding rule.
	Fill(p *path.Data, c color.Color) error

	// Stroke strokes the path.
	Stroke(p *path.Data, s *StrokeStyle, c color.Color) error
}

// StrokeStyle describes how an outline is stroked.
type StrokeStyle struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64

	// Dash lists alternating on/off lengths.  Nil means a solid line.
	Dash []float64

	// Phase is the offset into the dash pattern at the start of the path.
	Phase float64
}

// Frame holds everything needed to draw one rounded rectangle.
// Frames are computed by [Widget.Frame] and are not updated when the
// widget changes.
type Frame struct {
	Outline *Outline

	// Fill is the fill color, or nil if the outline is not filled.
	Fill color.Color

	// Stroke is the stroke color, or nil if the outline is not stroked.
	Stroke color.Color

	Style StrokeStyle

	// Repetitions is the number of times the dash pattern repeats along
	// the outline, or 0 for a solid line.
	Repetitions int
}

// Draw fills and then strokes the outline.
func (f *Frame) Draw(r Renderer) error {
	if f.Fill == nil && f.Stroke == nil {
		return nil
	}

	data := f.Outline.Path.Data()
	if f.Fill != nil {
		if err := r.Fill(data, f.Fill); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}
	if f.Stroke != nil {
		if err := r.Stroke(data, &f.Style, f.Stroke); err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
	}
	return nil
}

// Frame computes the outline and the fitted dash pattern for the given
// bounding box, and clears the dirty flag.
func (w *Widget) Frame(box rect.Rect) *Frame {
	w.dirty = false

	o := Build(box, w.cornerRadius, w.strokeWidth)

	f := &Frame{
		Outline: o,
		Style: StrokeStyle{
			Width:      w.strokeWidth,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: defaultMiterLimit,
			Phase:      w.phase,
		},
	}
	if w.filled && w.fillColor != nil {
		f.Fill = w.fillColor
	}
	if w.strokeColor != nil {
		f.Stroke = w.strokeColor
	}

	pattern := w.dashPattern
	if len(pattern)%2 == 1 {
		// Renderers repeat odd-length patterns twice per cycle.
		pattern = append(pattern[:len(pattern):len(pattern)], pattern...)
	}
	dash, n := Fit(pattern, o.Perimeter)
	if !Solid(dash) {
		f.Style.Dash = dash
		f.Repetitions = n
	}

	return f
}

// Draw computes the frame for the given bounding box and renders it.
func (w *Widget) Draw(box rect.Rect, r Renderer) error {
	return w.Frame(box).Draw(r)
}

// defaultMiterLimit matches the PDF and UIKit default.
const defaultMiterLimit = 10.0
