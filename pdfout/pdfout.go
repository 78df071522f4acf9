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

// Package pdfout renders dashed rounded rectangles into PDF files.
package pdfout

import (
	"fmt"
	gocolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/dashrect"
)

// Canvas is the part of a PDF content stream writer used by [Renderer].
// The page returned by [document.CreateSinglePage] implements it.
type Canvas interface {
	SetFillColor(color.Color)
	SetStrokeColor(color.Color)
	SetLineWidth(float64)
	SetLineCap(graphics.LineCapStyle)
	SetLineJoin(graphics.LineJoinStyle)
	SetMiterLimit(float64)
	SetLineDash(pattern []float64, phase float64)
	SetExtGState(*graphics.ExtGState)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()

	Fill()
	Stroke()
}

// Renderer draws onto a PDF content stream.  It implements
// [dashrect.Renderer].
//
// Dashing is left to the PDF viewer, which uses the same rules as the
// raster package: the pattern starts at the first point of the path.
type Renderer struct {
	W Canvas

	transparent bool
}

var _ dashrect.Renderer = (*Renderer)(nil)

// Fill implements [dashrect.Renderer].
func (r *Renderer) Fill(p *path.Data, c gocolor.Color) error {
	col, alpha := convertColor(c)
	r.setAlpha(alpha)
	r.W.SetFillColor(col)
	r.writePath(p)
	r.W.Fill()
	return nil
}

// Stroke implements [dashrect.Renderer].
func (r *Renderer) Stroke(p *path.Data, s *dashrect.StrokeStyle, c gocolor.Color) error {
	col, alpha := convertColor(c)
	r.setAlpha(alpha)
	r.W.SetStrokeColor(col)
	r.W.SetLineWidth(s.Width)
	r.W.SetLineCap(s.Cap)
	r.W.SetLineJoin(s.Join)
	if s.MiterLimit >= 1 {
		r.W.SetMiterLimit(s.MiterLimit)
	}
	if s.Dash != nil {
		r.W.SetLineDash(s.Dash, s.Phase)
	} else {
		r.W.SetLineDash([]float64{}, 0)
	}
	r.writePath(p)
	r.W.Stroke()
	return nil
}

// setAlpha selects the constant opacity for fill and stroke operations.
func (r *Renderer) setAlpha(alpha float64) {
	if alpha >= 1 && !r.transparent {
		return
	}
	r.W.SetExtGState(&graphics.ExtGState{
		Set:         graphics.StateStrokeAlpha | graphics.StateFillAlpha,
		StrokeAlpha: alpha,
		FillAlpha:   alpha,
		SingleUse:   true,
	})
	r.transparent = alpha < 1
}

func (r *Renderer) writePath(p *path.Data) {
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			r.W.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			r.W.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			r.W.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			r.W.ClosePath()
		}
	}
}

// convertColor maps a Go color to a DeviceRGB color and an opacity.
func convertColor(c gocolor.Color) (color.Color, float64) {
	n := gocolor.NRGBAModel.Convert(c).(gocolor.NRGBA)
	rgb := color.DeviceRGB{float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255}
	return rgb, float64(n.A) / 255
}

// WriteFile writes a single-page PDF file of the given size (in PDF
// points), showing the frame.  The frame uses screen coordinates with the
// origin at the top-left corner of the page.
func WriteFile(fileName string, width, height float64, f *dashrect.Frame) error {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left, frames use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	err = f.Draw(&Renderer{W: page})
	if cerr := page.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	dashrect.Logger().Debug("PDF written", "file", fileName,
		"width", width, "height", height)
	return nil
}
