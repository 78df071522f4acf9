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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// dashSpan is a range of r.dashedSegs which forms one dash.
type dashSpan struct {
	start, end int

	// closed is set if the dash covers a whole closed subpath.
	closed bool
}

// dashCycle returns the length of one full cycle of the dash pattern.
// Odd-length patterns are repeated twice per cycle.
func dashCycle(dash []float64) float64 {
	total := 0.0
	for _, l := range dash {
		total += max(l, 0)
	}
	if len(dash)%2 == 1 {
		total *= 2
	}
	return total
}

// applyDashPattern splits the flattened subpaths into dashes.  The result
// is stored in r.dashedSegs and r.dashes.
//
// On closed subpaths, a dash which is still "on" when the end of the
// subpath is reached is joined with the first dash, if that one starts at
// the beginning of the subpath.  This way the closing point is not visible
// in the stroked result.
func (r *Rasteriser) applyDashPattern() {
	r.dashedSegs = r.dashedSegs[:0]
	r.dashes = r.dashes[:0]

	dash := r.Dash
	n := len(dash)
	cycle := dashCycle(dash)
	if !(cycle > 0) || math.IsInf(cycle, 0) {
		return
	}

	phase := math.Mod(r.DashPhase, cycle)
	if phase < 0 {
		phase += cycle
	}

	for i := range r.segsOffsets {
		segments := r.getSubpathSegments(i)
		closed := r.subpathClosed[i]

		// find the pattern element at the start of the subpath
		idx := 0
		dist := phase
		for {
			l := max(dash[idx%n], 0)
			if dist == 0 || dist < l {
				break
			}
			dist -= l
			idx++
		}
		remaining := max(dash[idx%n], 0) - dist
		isOn := idx%2 == 0

		startedOn := isOn
		firstDash := -1 // index into r.dashes of the dash starting at the subpath start
		dashStart := len(r.dashedSegs)

		segIdx := 0
		segDist := 0.0 // distance already consumed on the current segment
		for segIdx < len(segments) {
			seg := &segments[segIdx]
			segLen := seg.length()
			left := segLen - segDist

			if remaining >= left {
				// the current pattern element extends beyond this segment
				if isOn {
					r.addDashPiece(seg, segDist, segLen, dashStart)
				}
				remaining -= left
				segIdx++
				segDist = 0
				continue
			}

			// the current pattern element ends within this segment
			endDist := segDist + remaining
			if isOn {
				r.addDashPiece(seg, segDist, endDist, dashStart)
				if len(r.dashedSegs) > dashStart {
					if startedOn && firstDash < 0 {
						firstDash = len(r.dashes)
					}
					r.dashes = append(r.dashes, dashSpan{start: dashStart, end: len(r.dashedSegs)})
				}
			}
			dashStart = len(r.dashedSegs)

			segDist = endDist
			idx++
			remaining = max(dash[idx%n], 0)
			isOn = idx%2 == 0
		}

		if !isOn || len(r.dashedSegs) == dashStart {
			continue
		}

		// The last dash is still open at the end of the subpath.
		switch {
		case closed && startedOn && firstDash < 0:
			// A single dash covers the whole subpath.
			r.dashes = append(r.dashes, dashSpan{start: dashStart, end: len(r.dashedSegs), closed: true})
		case closed && startedOn:
			first := r.dashes[firstDash]
			for j := first.start; j < first.end; j++ {
				if seg := r.dashedSegs[j]; seg.A != seg.B {
					r.dashedSegs = append(r.dashedSegs, seg)
				}
			}
			r.dashes = slices.Delete(r.dashes, firstDash, firstDash+1)
			r.dashes = append(r.dashes, dashSpan{start: dashStart, end: len(r.dashedSegs)})
		default:
			r.dashes = append(r.dashes, dashSpan{start: dashStart, end: len(r.dashedSegs)})
		}
	}
}

// addDashPiece adds the part of seg between distances from and to (measured
// from seg.A) to the dash which starts at index dashStart of r.dashedSegs.
// If the piece has zero length and the dash is still empty, a zero-length
// segment is added which keeps the tangent of seg, so that caps can be
// drawn.
func (r *Rasteriser) addDashPiece(seg *strokeSegment, from, to float64, dashStart int) {
	d := seg.B.Sub(seg.A)
	segLen := d.Length()

	var a, b vec.Vec2
	if from <= 0 {
		a = seg.A
	} else {
		a = seg.A.Add(d.Mul(from / segLen))
	}
	if to >= segLen {
		b = seg.B
	} else {
		b = seg.A.Add(d.Mul(to / segLen))
	}

	if to-from > zeroLengthThreshold {
		r.dashedSegs = append(r.dashedSegs, strokeSegment{A: a, B: b, T: seg.T, N: seg.N})
	} else if len(r.dashedSegs) == dashStart {
		r.dashedSegs = append(r.dashedSegs, strokeSegment{A: a, B: a, T: seg.T, N: seg.N})
	}
}

// getDashSegments returns the segments of dash i.
func (r *Rasteriser) getDashSegments(i int) []strokeSegment {
	d := r.dashes[i]
	return r.dashedSegs[d.start:d.end]
}
