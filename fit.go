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

import "math"

// Fit stretches a dash pattern so that it repeats a whole number of times
// along a closed path of the given length.
//
// The pattern lists alternating dash and gap lengths, which must be
// non-negative.  Fit returns the stretched pattern together with the number
// of repetitions; sum(fitted)*repetitions equals perimeter up to rounding
// errors.  If the pattern has no positive total length, Fit returns
// (nil, 0), which callers must interpret as a solid line.
//
// If the perimeter is shorter than half a pattern, the pattern is squeezed
// to fit exactly once.  A perimeter which is not finite, or which would need
// more than [math.MaxInt32] repetitions, also gives (nil, 0).  A negative
// perimeter is treated as zero.  Fit never modifies the pattern slice.
func Fit(pattern []float64, perimeter float64) (fitted []float64, repetitions int) {
	patternLength := 0.0
	for _, l := range pattern {
		patternLength += l
	}
	if !(patternLength > 0) {
		Logger().Debug("dash pattern has zero length, using solid line")
		return nil, 0
	}

	if math.IsNaN(perimeter) || math.IsInf(perimeter, 0) {
		Logger().Debug("perimeter is not finite, using solid line", "perimeter", perimeter)
		return nil, 0
	}
	perimeter = max(perimeter, 0)

	ratio := math.Round(perimeter / patternLength)
	if ratio >= math.MaxInt32 {
		Logger().Debug("dash pattern too fine for perimeter, using solid line",
			"pattern", patternLength, "perimeter", perimeter)
		return nil, 0
	}
	repetitions = int(ratio)
	if repetitions < 1 {
		Logger().Debug("dash pattern longer than perimeter",
			"pattern", patternLength, "perimeter", perimeter)
		repetitions = 1
	}

	stretch := perimeter / (patternLength * float64(repetitions))
	fitted = make([]float64, len(pattern))
	for i, l := range pattern {
		fitted[i] = l * stretch
	}
	return fitted, repetitions
}

// Solid reports whether a dash pattern describes a solid line,
// i.e. whether it is empty or has no positive entry.
func Solid(pattern []float64) bool {
	for _, l := range pattern {
		if l > 0 {
			return false
		}
	}
	return true
}
