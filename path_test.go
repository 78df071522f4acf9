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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestPathLength(t *testing.T) {
	p := Path{
		{Cmd: CmdMoveTo, To: vec.Vec2{X: 0, Y: 0}},
		{Cmd: CmdLineTo, To: vec.Vec2{X: 3, Y: 0}},
		// the arc starts at (4, 0), one unit away from the current point
		{Cmd: CmdArc, To: vec.Vec2{X: 4, Y: 2}, Center: vec.Vec2{X: 4, Y: 1}, Radius: 1,
			Start: 3 * math.Pi / 2, End: 5 * math.Pi / 2, Clockwise: true},
		{Cmd: CmdClose},
	}

	expected := 3 + 1 + math.Pi + math.Hypot(4, 2)
	if got := p.Length(); math.Abs(got-expected) > 1e-12 {
		t.Errorf("length = %g, expected %g", got, expected)
	}
}

// TestPathDataArcs checks that the curves generated for arcs stay close to
// the circle.
func TestPathDataArcs(t *testing.T) {
	c := vec.Vec2{X: 10, Y: 10}
	const r = 5.0
	p := Path{
		{Cmd: CmdMoveTo, To: vec.Vec2{X: 5, Y: 10}},
		{Cmd: CmdArc, To: vec.Vec2{X: 5, Y: 10}, Center: c, Radius: r,
			Start: math.Pi, End: 3 * math.Pi, Clockwise: true},
		{Cmd: CmdClose},
	}
	data := p.Data()

	nCurves := 0
	coordIdx := 0
	current := data.Coords[0]
	for _, cmd := range data.Cmds {
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			current = data.Coords[coordIdx]
			coordIdx++
		case path.CmdCubeTo:
			nCurves++
			p0, p1, p2, p3 := current, data.Coords[coordIdx], data.Coords[coordIdx+1], data.Coords[coordIdx+2]
			for i := 0; i <= 16; i++ {
				t1 := float64(i) / 16
				s := 1 - t1
				pt := p0.Mul(s * s * s).Add(p1.Mul(3 * s * s * t1)).Add(p2.Mul(3 * s * t1 * t1)).Add(p3.Mul(t1 * t1 * t1))
				if d := pt.Sub(c).Length(); math.Abs(d-r) > 0.002*r {
					t.Fatalf("curve point %v at distance %g from center", pt, d)
				}
			}
			current = p3
			coordIdx += 3
		}
	}
	if nCurves != 4 {
		t.Errorf("full circle uses %d curves, expected 4", nCurves)
	}
}

func TestPathDataGap(t *testing.T) {
	p := Path{
		{Cmd: CmdMoveTo, To: vec.Vec2{X: 0, Y: 0}},
		{Cmd: CmdArc, To: vec.Vec2{X: 2, Y: 1}, Center: vec.Vec2{X: 1, Y: 1}, Radius: 1,
			Start: math.Pi, End: 2 * math.Pi, Clockwise: true},
	}
	data := p.Data()

	if len(data.Cmds) < 2 || data.Cmds[1] != path.CmdLineTo {
		t.Fatalf("expected a line to the start of the arc, got %v", data.Cmds)
	}
	if got := data.Coords[1]; got.Sub(vec.Vec2{X: 0, Y: 1}).Length() > 1e-12 {
		t.Errorf("line ends at %v, expected (0, 1)", got)
	}
}

func TestCommandString(t *testing.T) {
	for cmd, name := range map[Command]string{
		CmdMoveTo: "moveto",
		CmdLineTo: "lineto",
		CmdArc:    "arc",
		CmdClose:  "close",
	} {
		if got := cmd.String(); got != name {
			t.Errorf("%d.String() = %q, expected %q", cmd, got, name)
		}
	}
}
