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

// Command dashrect renders dashed rounded rectangles to PNG or PDF files.
//
// Usage:
//
//	dashrect render [-c settings.yaml] [--radius R] [--dash 4,2] -o out.png
//	dashrect export [-o testcases.json]
//	dashrect gallery [-d dir]
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tdewolff/argp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dashrect"
	"seehuhn.de/go/dashrect/pdfout"
	"seehuhn.de/go/dashrect/raster"
)

// Render draws a single rounded rectangle.
//
// Numeric options default to NaN, which means "not given".  Values from
// the settings file are used for options which are not given.
type Render struct {
	Config      string  `short:"c" desc:"Settings file (YAML or TOML)"`
	Width       int     `default:"200" desc:"Bounding box width"`
	Height      int     `default:"100" desc:"Bounding box height"`
	Radius      float64 `short:"r" default:"NaN" desc:"Corner radius"`
	StrokeWidth float64 `short:"w" default:"NaN" desc:"Stroke width"`
	Dash        string  `short:"d" desc:"Dash pattern, comma separated"`
	Phase       float64 `default:"NaN" desc:"Dash phase"`
	Stroke      string  `desc:"Stroke color (#rrggbb or none)"`
	Fill        string  `desc:"Fill color (#rrggbb or none)"`
	Scale       float64 `short:"s" default:"1" desc:"Pixels per unit for PNG output"`
	Verbose     bool    `short:"v" desc:"Log debug messages"`
	Output      string  `short:"o" desc:"Output file (.png or .pdf)"`
}

func main() {
	root := argp.NewCmd(&Render{}, "Dashed rounded rectangles")
	root.AddCmd(&Render{}, "render", "Render a rounded rectangle to PNG or PDF")
	root.AddCmd(&Export{}, "export", "Write the test case catalogue as JSON")
	root.AddCmd(&Gallery{}, "gallery", "Render all test cases to PNG and PDF")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Render) Run() error {
	if cmd.Output == "" {
		return argp.ShowUsage
	}
	if cmd.Verbose {
		setVerbose()
	}

	w := dashrect.NewWidget()
	w.SetStrokeColor(color.Black)

	if cmd.Config != "" {
		data, err := os.ReadFile(cmd.Config)
		if err != nil {
			return err
		}
		format := strings.TrimPrefix(filepath.Ext(cmd.Config), ".")
		s, err := dashrect.DecodeSettings(data, format)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Config, err)
		}
		if err := w.Apply(s); err != nil {
			return fmt.Errorf("%s: %w", cmd.Config, err)
		}
	}

	s, err := cmd.settings()
	if err != nil {
		return err
	}
	if err := w.Apply(s); err != nil {
		return err
	}

	box := rect.Rect{URx: float64(cmd.Width), URy: float64(cmd.Height)}
	return writeFrame(cmd.Output, box, w.Frame(box), cmd.Scale)
}

// settings collects the options given on the command line.
func (cmd *Render) settings() (*dashrect.Settings, error) {
	s := &dashrect.Settings{
		CornerRadius: given(cmd.Radius),
		StrokeWidth:  given(cmd.StrokeWidth),
		Phase:        given(cmd.Phase),
		StrokeColor:  cmd.Stroke,
		FillColor:    cmd.Fill,
	}
	if cmd.Fill != "" {
		filled := !strings.EqualFold(cmd.Fill, "none")
		s.Filled = &filled
	}
	if cmd.Dash != "" {
		pattern, err := parseDash(cmd.Dash)
		if err != nil {
			return nil, err
		}
		s.DashPattern = pattern
	}
	return s, nil
}

func given(x float64) *float64 {
	if math.IsNaN(x) {
		return nil
	}
	return &x
}

// parseDash parses a comma separated list of lengths.
// The string "solid" gives an empty pattern.
func parseDash(s string) ([]float64, error) {
	if strings.EqualFold(strings.TrimSpace(s), "solid") {
		return []float64{}, nil
	}
	fields := strings.Split(s, ",")
	pattern := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid dash pattern %q: %w", s, err)
		}
		if x < 0 || math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, fmt.Errorf("invalid dash length %g", x)
		}
		pattern[i] = x
	}
	return pattern, nil
}

// writeFrame writes the frame to a PNG or PDF file, depending on the file
// name extension.
func writeFrame(fileName string, box rect.Rect, f *dashrect.Frame, scale float64) error {
	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".pdf":
		return pdfout.WriteFile(fileName, box.Dx(), box.Dy(), f)
	case ".png":
		return writePNG(fileName, box, f, scale)
	default:
		return fmt.Errorf("%s: unsupported output format %q", fileName, ext)
	}
}

func writePNG(fileName string, box rect.Rect, f *dashrect.Frame, scale float64) error {
	if !(scale > 0) {
		return fmt.Errorf("invalid scale %g", scale)
	}
	width := int(math.Ceil(box.Dx() * scale))
	height := int(math.Ceil(box.Dy() * scale))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%s: empty image (%dx%d)", fileName, width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	r := raster.NewImageRenderer(img)
	r.CTM = matrix.Scale(scale, scale)
	if err := f.Draw(r); err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}

	out, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = png.Encode(out, img)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fileName, err)
	}
	dashrect.Logger().Debug("PNG written", "file", fileName,
		"width", width, "height", height)
	return nil
}

func setVerbose() {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	dashrect.SetLogger(slog.New(h))
}
