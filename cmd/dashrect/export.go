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

package main

import (
	"encoding/json"
	"io"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/dashrect/testcases"
)

// Export writes the test case catalogue, together with the computed
// outlines and fitted dash patterns, as JSON.
type Export struct {
	Output string `short:"o" default:"-" desc:"Output file, - for stdout"`
}

func (cmd *Export) Run() error {
	if cmd.Output == "" || cmd.Output == "-" {
		return writeCatalogue(os.Stdout)
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	err = writeCatalogue(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

type jsonCatalogue struct {
	TestCases []jsonTestCase `json:"testcases"`
}

type jsonTestCase struct {
	Name         string        `json:"name"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	CornerRadius float64       `json:"corner_radius"`
	StrokeWidth  float64       `json:"stroke_width"`
	Dash         []float64     `json:"dash"`
	Phase        float64       `json:"phase,omitempty"`
	Filled       bool          `json:"filled,omitempty"`
	Radius       float64       `json:"radius"`
	Perimeter    float64       `json:"perimeter"`
	Fitted       []float64     `json:"fitted,omitempty"`
	Repetitions  int           `json:"repetitions"`
	Path         []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func writeCatalogue(w io.Writer) error {
	var out jsonCatalogue
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	w := tc.Widget()
	f := w.Frame(tc.Box())
	return jsonTestCase{
		Name:         category + "_" + tc.Name,
		Width:        tc.Width,
		Height:       tc.Height,
		CornerRadius: tc.CornerRadius,
		StrokeWidth:  tc.StrokeWidth,
		Dash:         w.DashPattern(),
		Phase:        tc.Phase,
		Filled:       tc.Fill,
		Radius:       f.Outline.Radius,
		Perimeter:    f.Outline.Perimeter,
		Fitted:       f.Style.Dash,
		Repetitions:  f.Repetitions,
		Path:         pathToJSON(f.Outline.Path.Data()),
	}
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
