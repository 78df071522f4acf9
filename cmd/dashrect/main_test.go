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
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dashrect"
)

func TestParseDash(t *testing.T) {
	tests := []struct {
		in       string
		expected []float64
	}{
		{"3,3,0,0", []float64{3, 3, 0, 0}},
		{" 4.5 , 1 ", []float64{4.5, 1}},
		{"2", []float64{2}},
		{"solid", []float64{}},
	}
	for _, test := range tests {
		got, err := parseDash(test.in)
		if err != nil {
			t.Errorf("parseDash(%q): %v", test.in, err)
			continue
		}
		if d := cmp.Diff(test.expected, got); d != "" {
			t.Errorf("parseDash(%q) (-want +got):\n%s", test.in, d)
		}
	}

	for _, in := range []string{"", "1,,2", "a,b", "1,-2", "Inf"} {
		if _, err := parseDash(in); err == nil {
			t.Errorf("parseDash(%q): expected error", in)
		}
	}
}

func TestRenderSettings(t *testing.T) {
	cmd := &Render{
		Radius:      4,
		StrokeWidth: math.NaN(),
		Phase:       math.NaN(),
		Dash:        "5,1",
		Fill:        "#ff0000",
	}
	s, err := cmd.settings()
	if err != nil {
		t.Fatal(err)
	}

	w := dashrect.NewWidget()
	w.SetStrokeWidth(3)
	if err := w.Apply(s); err != nil {
		t.Fatal(err)
	}
	if w.CornerRadius() != 4 {
		t.Errorf("radius %g, expected 4", w.CornerRadius())
	}
	if w.StrokeWidth() != 3 {
		t.Errorf("stroke width changed to %g", w.StrokeWidth())
	}
	if !w.Filled() || w.FillColor() == nil {
		t.Error("fill not enabled")
	}
	if d := cmp.Diff([]float64{5, 1}, w.DashPattern()); d != "" {
		t.Errorf("pattern (-want +got):\n%s", d)
	}
}

func TestWriteFrame(t *testing.T) {
	dir := t.TempDir()

	w := dashrect.NewWidget()
	w.SetStrokeColor(color.Black)
	box := rect.Rect{URx: 40, URy: 30}
	f := w.Frame(box)

	pngFile := filepath.Join(dir, "out.png")
	if err := writeFrame(pngFile, box, f, 2); err != nil {
		t.Fatal(err)
	}
	in, err := os.Open(pngFile)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()
	img, err := png.Decode(in)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 60 {
		t.Errorf("image size %dx%d, expected 80x60", b.Dx(), b.Dy())
	}

	if err := writeFrame(filepath.Join(dir, "out.pdf"), box, f, 1); err != nil {
		t.Fatal(err)
	}
	if err := writeFrame(filepath.Join(dir, "out.svg"), box, f, 1); err == nil {
		t.Error("expected an error for unsupported format")
	}
}

func TestWriteCatalogue(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := writeCatalogue(buf); err != nil {
		t.Fatal(err)
	}

	var out jsonCatalogue
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out.TestCases) == 0 {
		t.Fatal("no test cases")
	}

	for _, tc := range out.TestCases {
		if tc.Perimeter == 0 {
			continue
		}
		if tc.Path[0].Cmd != "M" || tc.Path[len(tc.Path)-1].Cmd != "Z" {
			t.Errorf("%s: path is not closed", tc.Name)
		}
		if tc.Fitted == nil {
			continue
		}
		sum := 0.0
		for _, l := range tc.Fitted {
			sum += l
		}
		if total := sum * float64(tc.Repetitions); math.Abs(total-tc.Perimeter) > 1e-6*tc.Perimeter {
			t.Errorf("%s: fitted pattern covers %g, perimeter %g", tc.Name, total, tc.Perimeter)
		}
	}
}
