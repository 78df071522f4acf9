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
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/dashrect/testcases"
)

// Gallery renders every test case to a PNG and a PDF file, for visual
// inspection.
type Gallery struct {
	Dir     string  `short:"d" default:"gallery" desc:"Output directory"`
	Scale   float64 `short:"s" default:"2" desc:"Pixels per unit for PNG output"`
	Verbose bool    `short:"v" desc:"Log debug messages"`
}

func (cmd *Gallery) Run() error {
	if cmd.Verbose {
		setVerbose()
	}
	if err := os.MkdirAll(cmd.Dir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if tc.Width <= 0 || tc.Height <= 0 {
				continue
			}

			box := tc.Box()
			f := tc.Widget().Frame(box)
			for _, ext := range []string{".pdf", ".png"} {
				fileName := filepath.Join(cmd.Dir, name+ext)
				if err := writeFrame(fileName, box, f, cmd.Scale); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
		}
	}
	return nil
}
