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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dashrect"
)

// ImageRenderer paints into an NRGBA image, using source-over compositing.
// It implements [dashrect.Renderer].
type ImageRenderer struct {
	Dst *image.NRGBA

	// CTM maps user space to image pixels.  Use a scaling matrix to render
	// at higher resolution.
	CTM matrix.Matrix

	// Flatness is the curve flattening tolerance in pixels.
	Flatness float64

	ras *Rasteriser
}

// NewImageRenderer returns a renderer which paints into dst, with user
// space mapped one-to-one to pixels.
func NewImageRenderer(dst *image.NRGBA) *ImageRenderer {
	return &ImageRenderer{
		Dst:      dst,
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
	}
}

var _ dashrect.Renderer = (*ImageRenderer)(nil)

// Fill implements [dashrect.Renderer].
func (ir *ImageRenderer) Fill(p *path.Data, c color.Color) error {
	r := ir.rasteriser()
	r.FillNonZero(p, ir.painter(c))
	return nil
}

// Stroke implements [dashrect.Renderer].
func (ir *ImageRenderer) Stroke(p *path.Data, s *dashrect.StrokeStyle, c color.Color) error {
	r := ir.rasteriser()
	r.Width = s.Width
	r.Cap = s.Cap
	r.Join = s.Join
	if s.MiterLimit >= 1 {
		r.MiterLimit = s.MiterLimit
	}
	r.Dash = s.Dash
	r.DashPhase = s.Phase
	r.Stroke(p, ir.painter(c))
	return nil
}

func (ir *ImageRenderer) rasteriser() *Rasteriser {
	b := ir.Dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	if ir.ras == nil {
		ir.ras = NewRasteriser(clip)
	} else {
		ir.ras.Reset(clip)
	}
	if ir.CTM != (matrix.Matrix{}) {
		ir.ras.CTM = ir.CTM
	}
	if ir.Flatness > 0 {
		ir.ras.Flatness = ir.Flatness
	}
	return ir.ras
}

// painter returns an emit callback which blends c into the destination
// image, weighted by coverage.
func (ir *ImageRenderer) painter(c color.Color) func(y, xMin int, coverage []float32) {
	src := color.NRGBAModel.Convert(c).(color.NRGBA)
	sa := float32(src.A) / 255
	sr, sg, sb := float32(src.R), float32(src.G), float32(src.B)

	dst := ir.Dst
	return func(y, xMin int, coverage []float32) {
		i := dst.PixOffset(xMin, y)
		for _, cov := range coverage {
			a := sa * min(cov, 1)
			if a > 0 {
				pix := dst.Pix[i : i+4 : i+4]
				da := float32(pix[3]) / 255
				outA := a + da*(1-a)
				w := da * (1 - a)
				pix[0] = uint8((sr*a+float32(pix[0])*w)/outA + 0.5)
				pix[1] = uint8((sg*a+float32(pix[1])*w)/outA + 0.5)
				pix[2] = uint8((sb*a+float32(pix[2])*w)/outA + 0.5)
				pix[3] = uint8(outA*255 + 0.5)
			}
			i += 4
		}
	}
}
