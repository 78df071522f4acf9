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
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings is the serialisable form of a [Widget] configuration.
// Nil and empty fields leave the corresponding widget value unchanged.
//
// Colors are given as hex strings ("#rgb" or "#rrggbb"); the value "none"
// removes the color.
type Settings struct {
	CornerRadius *float64 `yaml:"cornerRadius,omitempty" toml:"cornerRadius,omitempty" json:"cornerRadius,omitempty"`
	StrokeWidth  *float64 `yaml:"strokeWidth,omitempty" toml:"strokeWidth,omitempty" json:"strokeWidth,omitempty"`
	StrokeColor  string   `yaml:"strokeColor,omitempty" toml:"strokeColor,omitempty" json:"strokeColor,omitempty"`
	Filled       *bool    `yaml:"filled,omitempty" toml:"filled,omitempty" json:"filled,omitempty"`
	FillColor    string   `yaml:"fillColor,omitempty" toml:"fillColor,omitempty" json:"fillColor,omitempty"`

	FirstDash  *float64 `yaml:"firstDash,omitempty" toml:"firstDash,omitempty" json:"firstDash,omitempty"`
	FirstGap   *float64 `yaml:"firstGap,omitempty" toml:"firstGap,omitempty" json:"firstGap,omitempty"`
	SecondDash *float64 `yaml:"secondDash,omitempty" toml:"secondDash,omitempty" json:"secondDash,omitempty"`
	SecondGap  *float64 `yaml:"secondGap,omitempty" toml:"secondGap,omitempty" json:"secondGap,omitempty"`

	// DashPattern overrides the pattern built from the four scalars.
	DashPattern []float64 `yaml:"dashPattern,omitempty" toml:"dashPattern,omitempty" json:"dashPattern,omitempty"`

	Phase *float64 `yaml:"phase,omitempty" toml:"phase,omitempty" json:"phase,omitempty"`
}

// DecodeSettings parses settings in the given format, which must be
// "yaml", "yml" or "toml".  Unknown keys are rejected.
func DecodeSettings(data []byte, format string) (*Settings, error) {
	s := &Settings{}
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml settings: %w", err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(s); err != nil {
			return nil, fmt.Errorf("decode toml settings: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown settings format %q", format)
	}
	return s, nil
}

// Apply copies all set fields of s into the widget.
//
// The four dash scalars are applied before DashPattern, so that an
// explicit pattern in s takes precedence.  If a color cannot be parsed,
// the widget is left unchanged.
func (w *Widget) Apply(s *Settings) error {
	var strokeColor, fillColor color.Color
	var err error
	if s.StrokeColor != "" {
		strokeColor, err = ParseColor(s.StrokeColor)
		if err != nil {
			return fmt.Errorf("stroke color: %w", err)
		}
	}
	if s.FillColor != "" {
		fillColor, err = ParseColor(s.FillColor)
		if err != nil {
			return fmt.Errorf("fill color: %w", err)
		}
	}

	if s.CornerRadius != nil {
		w.SetCornerRadius(*s.CornerRadius)
	}
	if s.StrokeWidth != nil {
		w.SetStrokeWidth(*s.StrokeWidth)
	}
	if s.StrokeColor != "" {
		w.SetStrokeColor(strokeColor)
	}
	if s.Filled != nil {
		w.SetFilled(*s.Filled)
	}
	if s.FillColor != "" {
		w.SetFillColor(fillColor)
	}
	if s.FirstDash != nil {
		w.SetFirstDash(*s.FirstDash)
	}
	if s.FirstGap != nil {
		w.SetFirstGap(*s.FirstGap)
	}
	if s.SecondDash != nil {
		w.SetSecondDash(*s.SecondDash)
	}
	if s.SecondGap != nil {
		w.SetSecondGap(*s.SecondGap)
	}
	if s.DashPattern != nil {
		w.SetDashPattern(s.DashPattern)
	}
	if s.Phase != nil {
		w.SetPhase(*s.Phase)
	}
	return nil
}

// ParseColor parses a hex color of the form "#rgb" or "#rrggbb".
// The string "none" gives a nil color.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "none") {
		return nil, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
