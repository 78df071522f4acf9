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

// Package dashrect draws rounded rectangles with a dashed outline, where
// the dash pattern is stretched to repeat a whole number of times around
// the perimeter.  This avoids a partial dash, or a visible seam, where the
// outline closes.
//
// [Build] computes the outline of the rounded rectangle and its exact
// length.  [Fit] stretches a dash pattern to this length.  A [Widget]
// holds the user-facing configuration and combines both steps into a
// [Frame], which can be painted by any [Renderer].  Renderers for raster
// images and PDF files are provided by the sub-packages raster and pdfout.
package dashrect
