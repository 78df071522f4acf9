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

// Package raster converts paths to pixel coverage values, following the
// PDF imaging model for fills and strokes.
package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Rasteriser converts vector paths to pixel coverage values: the fraction
// of each pixel's area covered by the filled or stroked path, from 0
// (outside) to 1 (inside).  Create one instance and reuse it for multiple
// paths; internal buffers grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM transforms from user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls curve approximation accuracy in device pixels.
	// Must be positive.
	Flatness float64

	// Width sets stroke thickness in user-space units.
	// Strokes with non-positive width produce no output.
	Width float64

	// Cap sets the style for stroke endpoints (butt, round, or square).
	Cap graphics.LineCapStyle

	// Join sets the style for stroke corners (miter, round, or bevel).
	Join graphics.LineJoinStyle

	// MiterLimit caps miter join length. Must be at least 1.0.
	MiterLimit float64

	// Dash specifies alternating on/off lengths in user-space units.
	// Odd-length patterns are repeated twice per cycle.
	// Nil, or a pattern without positive entries, means solid.
	Dash []float64

	// DashPhase offsets into the dash pattern in user-space units.
	DashPhase float64

	// polygons to be filled, in user space, all subpaths contiguous
	poly        []vec.Vec2
	polyOffsets []int // start index of each polygon in poly

	// flattened subpaths for stroking
	segs             []strokeSegment
	segsOffsets      []int
	subpathClosed    []bool
	degeneratePoints []vec.Vec2

	// dashed subpaths
	dashedSegs []strokeSegment
	dashes     []dashSpan

	acc   *vector.Rasterizer
	mask  *image.Alpha
	cover []float32
}

// NewRasteriser returns a Rasteriser with the given clip rectangle and
// PDF default values for the other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1.0,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Reset restores all parameters to their defaults and sets a new clip
// rectangle.  Internal buffers are kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1.0
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
}

// FillNonZero fills the path using the nonzero winding rule. The emit
// callback receives coverage row-by-row; its slice argument is valid only
// during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.poly = r.poly[:0]
	r.polyOffsets = r.polyOffsets[:0]

	var subpath vec.Vec2
	open := false
	reopen := func() {
		// drawing after closepath starts a new subpath at the old start
		if !open {
			r.beginPolygon()
			r.poly = append(r.poly, subpath)
			open = true
		}
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.endPolygon()
			subpath = p.Coords[coordIdx]
			r.beginPolygon()
			r.poly = append(r.poly, subpath)
			open = true
			coordIdx++

		case path.CmdLineTo:
			reopen()
			r.poly = append(r.poly, p.Coords[coordIdx])
			coordIdx++

		case path.CmdQuadTo:
			reopen()
			current := r.poly[len(r.poly)-1]
			r.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], r.addPolygonPoint)
			coordIdx += 2

		case path.CmdCubeTo:
			reopen()
			current := r.poly[len(r.poly)-1]
			r.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], r.addPolygonPoint)
			coordIdx += 3

		case path.CmdClose:
			if open {
				r.endPolygon()
				open = false
			}
		}
	}
	r.endPolygon()

	r.rasterise(emit)
}

func (r *Rasteriser) addPolygonPoint(_, to vec.Vec2) {
	r.poly = append(r.poly, to)
}

// endPolygon discards the last polygon if it cannot enclose any area.
func (r *Rasteriser) endPolygon() {
	n := len(r.polyOffsets)
	if n == 0 {
		return
	}
	if len(r.poly)-r.polyOffsets[n-1] < 3 {
		r.poly = r.poly[:r.polyOffsets[n-1]]
		r.polyOffsets = r.polyOffsets[:n-1]
	}
}

// beginPolygon starts a new polygon in the poly buffer.
func (r *Rasteriser) beginPolygon() {
	r.polyOffsets = append(r.polyOffsets, len(r.poly))
}

// getPolygon returns the vertices of polygon i.
func (r *Rasteriser) getPolygon(i int) []vec.Vec2 {
	start := r.polyOffsets[i]
	end := len(r.poly)
	if i+1 < len(r.polyOffsets) {
		end = r.polyOffsets[i+1]
	}
	return r.poly[start:end]
}

// transform maps a point from user space to device space.
func (r *Rasteriser) transform(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y + r.CTM[4],
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y + r.CTM[5],
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// rasterise accumulates the coverage of all polygons in r.poly and passes
// the non-zero parts of each row to emit.
//
// Coverage of overlapping polygons is added up and clamped to 1, so all
// polygons must have the same orientation.
func (r *Rasteriser) rasterise(emit func(y, xMin int, coverage []float32)) {
	if len(r.polyOffsets) == 0 {
		return
	}

	first := true
	var bbox rect.Rect
	for _, pt := range r.poly {
		d := r.transform(pt)
		if first {
			bbox = rect.Rect{LLx: d.X, LLy: d.Y, URx: d.X, URy: d.Y}
			first = false
			continue
		}
		bbox.LLx = min(bbox.LLx, d.X)
		bbox.LLy = min(bbox.LLy, d.Y)
		bbox.URx = max(bbox.URx, d.X)
		bbox.URy = max(bbox.URy, d.Y)
	}

	xMin := max(int(math.Floor(bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	w := xMax - xMin
	h := yMax - yMin

	if r.acc == nil {
		r.acc = vector.NewRasterizer(w, h)
	} else {
		r.acc.Reset(w, h)
	}
	r.acc.DrawOp = draw.Src

	ox, oy := float64(xMin), float64(yMin)
	for i := range r.polyOffsets {
		poly := r.getPolygon(i)
		d := r.transform(poly[0])
		r.acc.MoveTo(float32(d.X-ox), float32(d.Y-oy))
		for _, pt := range poly[1:] {
			d = r.transform(pt)
			r.acc.LineTo(float32(d.X-ox), float32(d.Y-oy))
		}
		r.acc.ClosePath()
	}

	if r.mask == nil || cap(r.mask.Pix) < w*h {
		r.mask = image.NewAlpha(image.Rect(0, 0, w, h))
	} else {
		r.mask.Pix = r.mask.Pix[:w*h]
		r.mask.Stride = w
		r.mask.Rect = image.Rect(0, 0, w, h)
	}
	r.acc.Draw(r.mask, r.mask.Rect, image.Opaque, image.Point{})

	if cap(r.cover) < w {
		r.cover = make([]float32, w)
	}
	cover := r.cover[:w]
	for y := range h {
		row := r.mask.Pix[y*w : (y+1)*w]
		for x, a := range row {
			cover[x] = float32(a) / 255
		}
		trimmed, offset := trimZeros(cover)
		if len(trimmed) > 0 {
			emit(y+yMin, xMin+offset, trimmed)
		}
	}
}

// trimZeros returns the sub-slice of coverage without leading and trailing
// zeros, together with the offset of its first element.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	start := 0
	for start < len(coverage) && coverage[start] == 0 {
		start++
	}
	end := len(coverage)
	for end > start && coverage[end-1] == 0 {
		end--
	}
	return coverage[start:end], start
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit is the default miter limit, matching PDF/PostScript.
	defaultMiterLimit = 10.0
)

const (
	// zeroLengthThreshold is the length below which segments are treated
	// as degenerate.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the |sin θ| below which two segments are
	// treated as collinear.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold is the cos θ below which a corner is treated as
	// a cusp, where the path reverses direction.
	cuspCosineThreshold = -0.9999
)
