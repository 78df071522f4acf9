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
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the path as a stroked outline using Width, Cap, Join,
// MiterLimit, Dash, and DashPhase. The emit callback receives coverage
// row-by-row; its slice argument is valid only during the call.
//
// The outline is built from pieces (one quadrilateral per segment, plus
// joins and caps) which are filled together, so that overlaps are painted
// only once.
func (r *Rasteriser) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.poly = r.poly[:0]
	r.polyOffsets = r.polyOffsets[:0]
	if !(r.Width > 0) {
		return
	}

	r.flattenPath(p)
	if len(r.segsOffsets) == 0 && len(r.degeneratePoints) == 0 {
		return
	}

	d := r.Width / 2

	// Subpaths without orientation only show up with round caps.
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.degeneratePoints {
			r.addDisc(pt, d)
		}
	}

	if isDashed(r.Dash) {
		r.applyDashPattern()
		for i, span := range r.dashes {
			segs := r.getDashSegments(i)
			if len(segs) == 1 && segs[0].A == segs[0].B {
				r.addDot(&segs[0], d)
				continue
			}
			r.strokeSegments(segs, span.closed, d)
		}
	} else {
		for i, closed := range r.subpathClosed {
			r.strokeSegments(r.getSubpathSegments(i), closed, d)
		}
	}

	r.rasterise(emit)
}

// isDashed reports whether the pattern leads to a dashed line.
func isDashed(dash []float64) bool {
	cycle := dashCycle(dash)
	return cycle > 0 && !math.IsInf(cycle, 0)
}

// strokeSegments adds the outline pieces for a connected run of segments.
func (r *Rasteriser) strokeSegments(segs []strokeSegment, closed bool, d float64) {
	if len(segs) == 0 {
		return
	}

	for i := range segs {
		seg := &segs[i]
		r.addPolygon(
			seg.A.Add(seg.N.Mul(d)),
			seg.B.Add(seg.N.Mul(d)),
			seg.B.Sub(seg.N.Mul(d)),
			seg.A.Sub(seg.N.Mul(d)),
		)
	}
	for i := 1; i < len(segs); i++ {
		r.addJoin(segs[i-1].B, segs[i-1].T, segs[i].T, d)
	}

	first := &segs[0]
	last := &segs[len(segs)-1]
	if closed {
		r.addJoin(last.B, last.T, first.T, d)
	} else {
		r.addCap(first.A, first.T.Mul(-1), d)
		r.addCap(last.B, last.T, d)
	}
}

// addJoin adds a line join at point P where the tangent changes from T1
// to T2.  d is half the stroke width.
func (r *Rasteriser) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X

	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		return
	}
	if cosTheta < cuspCosineThreshold {
		// The path doubles back on itself: draw two caps instead.
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	// The join is drawn on the outer side of the corner.  For a turn
	// towards +N (sinTheta > 0), this is the -N side.
	side := 1.0
	if sinTheta > 0 {
		side = -1.0
	}
	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}
	o1 := P.Add(N1.Mul(side * d))
	o2 := P.Add(N2.Mul(side * d))

	switch r.Join {
	case graphics.LineJoinRound:
		r.addDisc(P, d)
		return

	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/cos(θ/2),
		// where θ is the angle between the tangents.
		cosHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		if cosHalf > 0 && 1/cosHalf <= r.MiterLimit+miterEpsilon {
			bisector := N1.Add(N2).Mul(side)
			if l := bisector.Length(); l > zeroLengthThreshold {
				tip := P.Add(bisector.Mul(d / (cosHalf * l)))
				r.addPolygon(P, o1, tip, o2)
				return
			}
		}
	}

	// bevel, also used when the miter limit is exceeded
	r.addPolygon(P, o1, o2)
}

// addCap adds a line cap at point P.  T is the unit tangent pointing away
// from the line, d is half the stroke width.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}
		ext := P.Add(T.Mul(d))
		r.addPolygon(P.Add(N.Mul(d)), ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)), P.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addDisc(P, d)
	}
	// butt caps need no extra geometry
}

// addDot handles a zero-length dash.  Only round and square caps produce
// output; the square is oriented along the tangent of the underlying path.
func (r *Rasteriser) addDot(seg *strokeSegment, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(seg.A, d)
	case graphics.LineCapSquare:
		c, T, N := seg.A, seg.T.Mul(d), seg.N.Mul(d)
		r.addPolygon(c.Add(T).Add(N), c.Sub(T).Add(N), c.Sub(T).Sub(N), c.Add(T).Sub(N))
	}
}

// addDisc adds a polygon approximating the disc with the given center and
// radius.  The number of vertices is chosen so that the error is below the
// flatness tolerance in device space.
func (r *Rasteriser) addDisc(center vec.Vec2, radius float64) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	n := 4
	if devRadius > r.Flatness {
		// The chord for angle θ deviates from the circle by r(1 - cos(θ/2)).
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	r.beginPolygon()
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		r.poly = append(r.poly, vec.Vec2{X: center.X + radius*cos, Y: center.Y + radius*sin})
	}
	r.orientPolygon()
}

// addPolygon adds a convex polygon to the fill buffer.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	r.beginPolygon()
	r.poly = append(r.poly, pts...)
	r.orientPolygon()
}

// orientPolygon makes sure the last polygon has positive orientation.
// Polygons without area are dropped.
func (r *Rasteriser) orientPolygon() {
	i := len(r.polyOffsets) - 1
	poly := r.getPolygon(i)

	area := 0.0
	for j := range poly {
		a, b := poly[j], poly[(j+1)%len(poly)]
		area += a.X*b.Y - b.X*a.Y
	}
	switch {
	case area == 0 || math.IsNaN(area):
		r.poly = r.poly[:r.polyOffsets[i]]
		r.polyOffsets = r.polyOffsets[:i]
	case area < 0:
		for lo, hi := 0, len(poly)-1; lo < hi; lo, hi = lo+1, hi-1 {
			poly[lo], poly[hi] = poly[hi], poly[lo]
		}
	}
}
