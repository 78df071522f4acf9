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

package testcases

var basicCases = []TestCase{
	{
		Name:         "default",
		Width:        100,
		Height:       50,
		CornerRadius: 10,
		StrokeWidth:  1,
	},
	{
		Name:         "thick",
		Width:        120,
		Height:       80,
		CornerRadius: 12,
		StrokeWidth:  4,
		Dash:         []float64{8, 4},
	},
	{
		Name:         "filled",
		Width:        100,
		Height:       60,
		CornerRadius: 10,
		StrokeWidth:  2,
		Dash:         []float64{6, 3},
		Fill:         true,
	},
	{
		Name:         "solid",
		Width:        64,
		Height:       64,
		CornerRadius: 8,
		StrokeWidth:  2,
		Dash:         []float64{0, 0, 0, 0},
	},
}

var radiusCases = []TestCase{
	{
		// plain rectangle, the arcs collapse to the corner points
		Name:         "zero",
		Width:        80,
		Height:       40,
		CornerRadius: 0,
		StrokeWidth:  2,
		Dash:         []float64{5, 5},
	},
	{
		// the radius is clamped to half the height: a stadium shape
		Name:         "clamped",
		Width:        120,
		Height:       40,
		CornerRadius: 100,
		StrokeWidth:  2,
		Dash:         []float64{4, 2},
	},
	{
		// the radius is clamped in both directions: a circle
		Name:         "circle",
		Width:        64,
		Height:       64,
		CornerRadius: 40,
		StrokeWidth:  2,
		Dash:         []float64{3, 3},
	},
}

var dashCases = []TestCase{
	{
		Name:         "two_pairs",
		Width:        120,
		Height:       60,
		CornerRadius: 10,
		StrokeWidth:  2,
		Dash:         []float64{8, 3, 2, 3},
	},
	{
		Name:         "many_pairs",
		Width:        120,
		Height:       60,
		CornerRadius: 10,
		StrokeWidth:  2,
		Dash:         []float64{6, 2, 2, 2, 1, 2},
	},
	{
		// odd patterns are repeated twice per cycle
		Name:         "odd",
		Width:        100,
		Height:       50,
		CornerRadius: 10,
		StrokeWidth:  2,
		Dash:         []float64{5},
	},
	{
		Name:         "phase",
		Width:        100,
		Height:       50,
		CornerRadius: 10,
		StrokeWidth:  2,
		Dash:         []float64{10, 5},
		Phase:        7,
	},
	{
		// one pattern is longer than the outline
		Name:         "long_pattern",
		Width:        30,
		Height:       30,
		CornerRadius: 5,
		StrokeWidth:  2,
		Dash:         []float64{200, 50},
	},
}

var degenerateCases = []TestCase{
	{
		Name:         "empty_box",
		Width:        0,
		Height:       0,
		CornerRadius: 10,
		StrokeWidth:  1,
	},
	{
		// the stroke is wider than the box
		Name:         "wide_stroke",
		Width:        20,
		Height:       20,
		CornerRadius: 4,
		StrokeWidth:  30,
	},
	{
		Name:         "thin_box",
		Width:        60,
		Height:       4,
		CornerRadius: 3,
		StrokeWidth:  1,
		Dash:         []float64{2, 2},
	},
}
