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

import (
	"regexp"
	"testing"
)

func TestNames(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9_]+$`)
	seen := make(map[string]bool)
	for category, cases := range All {
		for _, tc := range cases {
			name := category + "_" + tc.Name
			if !valid.MatchString(name) {
				t.Errorf("invalid name %q", name)
			}
			if seen[name] {
				t.Errorf("duplicate name %q", name)
			}
			seen[name] = true
		}
	}
}

func TestWidget(t *testing.T) {
	tc := TestCase{Width: 10, Height: 10, CornerRadius: 2, StrokeWidth: 1, Fill: true}
	w := tc.Widget()
	if w.StrokeColor() == nil || w.FillColor() != FillColor || !w.Filled() {
		t.Error("colors not set")
	}
	if got := w.DashPattern(); len(got) != 4 || got[0] != 3 {
		t.Errorf("nil Dash changed the default pattern to %v", got)
	}
}
