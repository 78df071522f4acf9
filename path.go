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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Command identifies the kind of a path segment.
type Command uint8

// These are the segment kinds used in a [Path].
const (
	CmdMoveTo Command = iota
	CmdLineTo
	CmdArc
	CmdClose
)

func (c Command) String() string {
	switch c {
	case CmdMoveTo:
		return "moveto"
	case CmdLineTo:
		return "lineto"
	case CmdArc:
		return "arc"
	case CmdClose:
		return "close"
	default:
		return "unknown"
	}
}

// Segment is one drawing command of a [Path].
//
// For CmdMoveTo and CmdLineTo, To is the target point.  For CmdArc, the
// segment describes a circular arc around Center from angle Start to angle
// End (in radians); To is the end point of the arc.  Angles are measured in
// y-down coordinates, so that Clockwise arcs have End > Start.
// CmdClose returns to the start of the path and uses no other fields.
type Segment struct {
	Cmd Command
	To  vec.Vec2

	Center     vec.Vec2
	Radius     float64
	Start, End float64
	Clockwise  bool
}

// Path is an ordered sequence of drawing commands.
type Path []Segment

// Length returns the total length of all segments, including the implicit
// closing segment.
func (p Path) Length() float64 {
	var current, start vec.Vec2
	total := 0.0
	for _, seg := range p {
		switch seg.Cmd {
		case CmdMoveTo:
			current = seg.To
			start = seg.To
		case CmdLineTo:
			total += seg.To.Sub(current).Length()
			current = seg.To
		case CmdArc:
			// the arc may not start at the current point
			total += arcStart(seg).Sub(current).Length()
			total += seg.Radius * math.Abs(seg.End-seg.Start)
			current = seg.To
		case CmdClose:
			total += start.Sub(current).Length()
			current = start
		}
	}
	return total
}

// Data converts the path into a [path.Data] value.  Arcs are approximated
// by cubic Bézier curves, using at most a quarter circle per curve.
// Arcs with zero radius are omitted.
func (p Path) Data() *path.Data {
	res := &path.Data{}
	var current, start vec.Vec2
	for _, seg := range p {
		switch seg.Cmd {
		case CmdMoveTo:
			res = res.MoveTo(seg.To)
			current, start = seg.To, seg.To
		case CmdLineTo:
			res = res.LineTo(seg.To)
			current = seg.To
		case CmdArc:
			if seg.Radius <= 0 || seg.End == seg.Start {
				continue
			}
			if from := arcStart(seg); from.Sub(current).Length() > gapTolerance {
				res = res.LineTo(from)
			}
			res = appendArc(res, seg.Center, seg.Radius, seg.Start, seg.End)
			current = pointOnCircle(seg.Center, seg.Radius, seg.End)
		case CmdClose:
			res = res.Close()
			current = start
		}
	}
	return res
}

// gapTolerance is the largest distance between the current point and the
// start of an arc which is treated as no gap.
const gapTolerance = 1e-9

func arcStart(seg Segment) vec.Vec2 {
	return pointOnCircle(seg.Center, seg.Radius, seg.Start)
}

func pointOnCircle(c vec.Vec2, r, angle float64) vec.Vec2 {
	return vec.Vec2{
		X: c.X + r*math.Cos(angle),
		Y: c.Y + r*math.Sin(angle),
	}
}

// appendArc adds cubic Bézier curves for the arc from angle a0 to a1.
// The current point of res must already be at the start of the arc.
func appendArc(res *path.Data, c vec.Vec2, r, a0, a1 float64) *path.Data {
	sweep := a1 - a0
	n := max(int(math.Ceil(math.Abs(sweep)/(math.Pi/2)-1e-9)), 1)
	step := sweep / float64(n)

	// control point distance for a single piece, signed by direction
	k := 4.0 / 3.0 * math.Tan(step/4) * r

	for i := range n {
		s := a0 + float64(i)*step
		e := s + step
		if i == n-1 {
			e = a1
		}
		sinS, cosS := math.Sincos(s)
		sinE, cosE := math.Sincos(e)
		p0 := vec.Vec2{X: c.X + r*cosS, Y: c.Y + r*sinS}
		p3 := vec.Vec2{X: c.X + r*cosE, Y: c.Y + r*sinE}
		p1 := p0.Add(vec.Vec2{X: -sinS, Y: cosS}.Mul(k))
		p2 := p3.Sub(vec.Vec2{X: -sinE, Y: cosE}.Mul(k))
		res = res.CubeTo(p1, p2, p3)
	}
	return res
}
