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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outline is the geometry of a rounded rectangle, as computed by [Build].
type Outline struct {
	// Path is the closed outline, starting left of the top-left corner
	// and running clockwise on screen.
	Path Path

	// Perimeter is the exact length of Path.
	Perimeter float64

	// DrawBox is the bounding box shrunk by Inset on all sides.
	// Its width and height are never negative.
	DrawBox rect.Rect

	// Inset is the distance between the bounding box and DrawBox.
	Inset float64

	// Radius is the corner radius after clamping.
	Radius float64

	// A, B, C and D are the centers of the top-left, top-right,
	// bottom-right and bottom-left corner arcs.
	A, B, C, D vec.Vec2
}

// Build computes the outline of a rounded rectangle inside box.
//
// The coordinates of box use a y-down convention: LLx and LLy give the
// top-left corner.  The outline is inset by ceil(1 + strokeWidth/2), so
// that a stroke of the given width stays inside box.  The corner radius is
// reduced where necessary, so that corners never overlap.
//
// Every point of the outline is visited exactly once.  This is not the case
// for all rounded-rectangle constructions, and matters when the outline is
// dashed.
func Build(box rect.Rect, cornerRadius, strokeWidth float64) *Outline {
	cornerRadius = nonNegative(cornerRadius)
	strokeWidth = nonNegative(strokeWidth)

	inset := math.Ceil(1 + strokeWidth/2)

	x0 := box.LLx + inset
	y0 := box.LLy + inset
	w := box.URx - box.LLx - 2*inset
	h := box.URy - box.LLy - 2*inset
	if w < 0 || h < 0 || math.IsNaN(w) || math.IsNaN(h) {
		Logger().Debug("outline clamped",
			"width", w, "height", h, "inset", inset)
		w = nonNegative(w)
		h = nonNegative(h)
	}

	smaller := min(w, h)
	var radius float64
	if cornerRadius*2 < smaller {
		radius = cornerRadius
	} else {
		radius = smaller / 2
	}

	x1 := x0 + w
	y1 := y0 + h
	o := &Outline{
		DrawBox: rect.Rect{LLx: x0, LLy: y0, URx: x1, URy: y1},
		Inset:   inset,
		Radius:  radius,
		A:       vec.Vec2{X: x0 + radius, Y: y0 + radius},
		B:       vec.Vec2{X: x1 - radius, Y: y0 + radius},
		C:       vec.Vec2{X: x1 - radius, Y: y1 - radius},
		D:       vec.Vec2{X: x0 + radius, Y: y1 - radius},
	}

	o.Path = Path{
		{Cmd: CmdMoveTo, To: vec.Vec2{X: o.A.X - radius, Y: o.A.Y}},
		corner(o.A, radius, math.Pi),
		{Cmd: CmdLineTo, To: vec.Vec2{X: o.B.X, Y: o.B.Y - radius}},
		corner(o.B, radius, 3*math.Pi/2),
		{Cmd: CmdLineTo, To: vec.Vec2{X: o.C.X + radius, Y: o.C.Y}},
		corner(o.C, radius, 0),
		{Cmd: CmdLineTo, To: vec.Vec2{X: o.D.X, Y: o.D.Y + radius}},
		corner(o.D, radius, math.Pi/2),
		{Cmd: CmdClose},
	}

	// The four quarter circles add up to one full circle.  Each straight
	// side loses one radius at either end.
	o.Perimeter = 2*math.Pi*radius + 2*w + 2*h - 8*radius

	return o
}

// corner returns the quarter-circle arc around c which starts at angle
// start and runs clockwise on screen.
func corner(c vec.Vec2, r, start float64) Segment {
	end := start + math.Pi/2

	// Use exact end points, so that the following line segment starts
	// precisely where the arc ends.
	var to vec.Vec2
	switch {
	case start == math.Pi: // top-left, ends at the top
		to = vec.Vec2{X: c.X, Y: c.Y - r}
	case start == 3*math.Pi/2: // top-right, ends at the right
		to = vec.Vec2{X: c.X + r, Y: c.Y}
	case start == 0: // bottom-right, ends at the bottom
		to = vec.Vec2{X: c.X, Y: c.Y + r}
	default: // bottom-left, ends at the left
		to = vec.Vec2{X: c.X - r, Y: c.Y}
	}

	return Segment{
		Cmd:       CmdArc,
		To:        to,
		Center:    c,
		Radius:    r,
		Start:     start,
		End:       end,
		Clockwise: true,
	}
}

// nonNegative maps negative values and NaN to zero.
func nonNegative(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return x
}
