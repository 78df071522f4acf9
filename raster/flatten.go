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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// strokeSegment is a line segment in user coordinates.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent, pointing from A to B
	N    vec.Vec2 // unit normal, 90° counter-clockwise from T
}

func (s *strokeSegment) length() float64 {
	return s.B.Sub(s.A).Length()
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
// The tolerance is measured in device space.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// maximal deviation from the chord is |P0 - 2P1 + P2| / 4
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()

	n := 1
	if e > r.Flatness {
		n = int(math.Ceil(math.Sqrt(e / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)).Length()

	n := 1
	if m := max(d1, d2); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenPath splits the path into subpaths of line segments.  The results
// are stored in r.segs, r.segsOffsets and r.subpathClosed.  Subpaths
// without any non-degenerate segment are collected in r.degeneratePoints.
func (r *Rasteriser) flattenPath(p *path.Data) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.degeneratePoints = r.degeneratePoints[:0]

	var current, start vec.Vec2
	startIdx := 0
	inSubpath := false
	drawn := false // a drawing command was seen in the current subpath

	finish := func(closed bool) {
		if !inSubpath || !drawn && !closed {
			return
		}
		if len(r.segs) == startIdx {
			r.degeneratePoints = append(r.degeneratePoints, start)
		} else {
			r.segsOffsets = append(r.segsOffsets, startIdx)
			r.subpathClosed = append(r.subpathClosed, closed)
		}
	}
	begin := func(pt vec.Vec2) {
		current, start = pt, pt
		startIdx = len(r.segs)
		inSubpath = true
		drawn = false
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			begin(p.Coords[coordIdx])
			coordIdx++

		case path.CmdLineTo:
			if !inSubpath {
				begin(current)
			}
			drawn = true
			r.addStrokeSegment(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			coordIdx++

		case path.CmdQuadTo:
			if !inSubpath {
				begin(current)
			}
			drawn = true
			r.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], r.addStrokeSegment)
			current = p.Coords[coordIdx+1]
			coordIdx += 2

		case path.CmdCubeTo:
			if !inSubpath {
				begin(current)
			}
			drawn = true
			r.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], r.addStrokeSegment)
			current = p.Coords[coordIdx+2]
			coordIdx += 3

		case path.CmdClose:
			if inSubpath {
				r.addStrokeSegment(current, start)
				finish(true)
				current = start
				inSubpath = false
			}
		}
	}
	finish(false)
}

// addStrokeSegment appends a line segment to r.segs, skipping segments of
// (almost) zero length.
func (r *Rasteriser) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	length := d.Length()
	if length < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / length)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// getSubpathSegments returns the segments of flattened subpath i.
func (r *Rasteriser) getSubpathSegments(i int) []strokeSegment {
	start := r.segsOffsets[i]
	end := len(r.segs)
	if i+1 < len(r.segsOffsets) {
		end = r.segsOffsets[i+1]
	}
	return r.segs[start:end]
}
